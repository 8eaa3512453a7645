package money

import "golang.org/x/text/currency"

// Code represents an ISO 4217 currency code (e.g., "BRL", "USD").
type Code string

// Common currency codes
const (
	BRL Code = "BRL" // Brazilian Real
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	JPY Code = "JPY" // Japanese Yen
)

// DefaultCode is the currency used when none is given.
const DefaultCode = BRL

// IsValid reports whether c is a well-formed, known ISO 4217 code.
func (c Code) IsValid() bool {
	_, err := c.unit()
	return err == nil
}

// Decimals returns the number of minor-unit digits for the currency,
// or -1 when the code is unknown.
func (c Code) Decimals() int {
	u, err := c.unit()
	if err != nil {
		return -1
	}
	scale, _ := currency.Standard.Rounding(u)
	return scale
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

func (c Code) unit() (currency.Unit, error) {
	if len(c) != 3 {
		return currency.Unit{}, ErrInvalidCurrency
	}
	for i := 0; i < 3; i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return currency.Unit{}, ErrInvalidCurrency
		}
	}
	u, err := currency.ParseISO(string(c))
	if err != nil {
		return currency.Unit{}, ErrInvalidCurrency
	}
	return u, nil
}
