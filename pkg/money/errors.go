package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when an amount is negative or an operation
	// would produce a negative amount.
	ErrInvalidAmount = errors.New("invalid amount: must not be negative")

	// ErrInvalidDecimals is returned when an amount has more decimal places
	// than the currency allows.
	ErrInvalidDecimals = errors.New("amount has more decimal places than allowed by the currency")

	// ErrAmountExceedsMaxSafeInt is returned when an amount exceeds the maximum safe integer value.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")

	// ErrInvalidCurrency is returned for malformed or unknown currency codes.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrMismatchedCurrencies is returned when performing operations on money with
	// different currencies.
	ErrMismatchedCurrencies = errors.New("mismatched currencies")
)
