// Package money provides an immutable value object for monetary amounts.
//
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., centavos for BRL).
//   - Amount is never negative.
//   - Currency code must be a known ISO 4217 code.
//   - All arithmetic operations require matching currencies.
package money

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., centavos for BRL).
type Amount = int64

// DisplayLanguage is the locale used by Display.
var DisplayLanguage = language.BrazilianPortuguese

// Money represents a non-negative monetary value in a specific currency.
// Every operation returns a new Money; values are never mutated in place.
type Money struct {
	amount   Amount
	currency Code
}

// New creates a Money value from an amount in the main currency unit.
// An empty code defaults to DefaultCode.
func New(value float64, code Code) (Money, error) {
	if code == "" {
		code = DefaultCode
	}
	if !code.IsValid() {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, value)
	}
	if value < 0 {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, value)
	}
	smallest, err := toSmallestUnit(value, code.Decimals())
	if err != nil {
		return Money{}, err
	}
	return Money{amount: smallest, currency: code}, nil
}

// NewFromSmallestUnit creates a Money value from an amount already expressed
// in the smallest currency unit.
func NewFromSmallestUnit(amount int64, code Code) (Money, error) {
	if code == "" {
		code = DefaultCode
	}
	if !code.IsValid() {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	return Money{amount: amount, currency: code}, nil
}

// Zero returns a zero amount in the given currency (DefaultCode when empty).
func Zero(code Code) Money {
	if code == "" {
		code = DefaultCode
	}
	return Money{currency: code}
}

// Must is like New but panics on error. Intended for tests and constants.
func Must(value float64, code Code) Money {
	m, err := New(value, code)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v, %v): %v", value, code, err))
	}
	return m
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// Value returns the amount in the main currency unit (e.g., reais for BRL).
func (m Money) Value() float64 {
	amount := new(big.Rat).SetInt64(m.amount)
	divisor := new(big.Rat).SetFloat64(math.Pow10(m.Currency().Decimals()))
	f, _ := new(big.Rat).Quo(amount, divisor).Float64()
	return f
}

// Currency returns the currency code, DefaultCode for the zero Money.
func (m Money) Currency() Code {
	if m.currency == "" {
		return DefaultCode
	}
	return m.currency
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrMismatchedCurrencies, m.Currency(), other.Currency())
	}
	if other.amount > math.MaxInt64-m.amount {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount + other.amount, currency: m.Currency()}, nil
}

// Subtract returns m minus other. A result below zero violates the Money
// invariant and fails with ErrInvalidAmount.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrMismatchedCurrencies, m.Currency(), other.Currency())
	}
	return NewFromSmallestUnit(m.amount-other.amount, m.Currency())
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsSameCurrency reports whether m and other share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.Currency() == other.Currency()
}

// Equals reports whether m and other have the same currency and amount.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// GreaterThanOrEqual compares two amounts of the same currency.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, fmt.Errorf("%w: %s and %s", ErrMismatchedCurrencies, m.Currency(), other.Currency())
	}
	return m.amount >= other.amount, nil
}

// String returns a plain representation such as "1000.00 BRL".
func (m Money) String() string {
	return fmt.Sprintf("%.*f %s", m.Currency().Decimals(), m.Value(), m.Currency())
}

// Display formats m for humans using DisplayLanguage.
func (m Money) Display() string {
	return m.Format(DisplayLanguage)
}

// Format formats m with the currency symbol and number conventions of tag,
// e.g. "R$ 1.234,50" for pt-BR. Not meant for computation.
func (m Money) Format(tag language.Tag) string {
	code := m.Currency()
	unit, err := code.unit()
	if err != nil {
		return m.String()
	}
	digits := code.Decimals()
	p := message.NewPrinter(tag)
	return p.Sprintf("%v %v",
		currency.Symbol(unit),
		number.Decimal(m.Value(), number.MinFractionDigits(digits), number.MaxFractionDigits(digits)),
	)
}

// toSmallestUnit converts an amount in the main unit to the smallest unit
// without floating-point drift. value must be the float nearest to a number
// with at most decimals places, or one ulp away from it.
func toSmallestUnit(value float64, decimals int) (int64, error) {
	str := strconv.FormatFloat(value, 'f', decimals, 64)
	nearest, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, value)
	}
	if nearest != value && math.Nextafter(nearest, value) != value {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDecimals, decimals)
	}

	rat, ok := new(big.Rat).SetString(str)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, value)
	}
	scaled := new(big.Rat).Mul(rat, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)))
	num := scaled.Num()
	if !num.IsInt64() {
		return 0, ErrAmountExceedsMaxSafeInt
	}
	return num.Int64(), nil
}
