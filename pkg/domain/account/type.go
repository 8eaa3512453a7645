package account

import "strings"

// Type classifies an account.
type Type string

const (
	// TypeCorrente is a checking account.
	TypeCorrente Type = "corrente"
	// TypePoupanca is a savings account.
	TypePoupanca Type = "poupanca"
	// TypeInvestimento is an investment account.
	TypeInvestimento Type = "investimento"
	// TypeCartaoCredito is a credit card.
	TypeCartaoCredito Type = "cartao_credito"
	// TypeDinheiro is cash on hand.
	TypeDinheiro Type = "dinheiro"
)

var types = []Type{TypeCorrente, TypePoupanca, TypeInvestimento, TypeCartaoCredito, TypeDinheiro}

// Types returns every valid account type in declaration order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// IsValid reports whether t is one of the known account types.
func (t Type) IsValid() bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// ParseType converts s into a Type. Surrounding spaces are ignored.
func ParseType(s string) (Type, error) {
	t := Type(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
