package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when an amount is not a valid decimal
	// literal for its currency.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCurrency is returned when a currency code or definition is invalid.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrMismatchedCurrencies is returned when performing operations on money with
	// different currencies
	ErrMismatchedCurrencies = errors.New("mismatched currencies")

	// ErrNegativeAmount is returned when an operation would result in a negative amount
	ErrNegativeAmount = errors.New("resulting amount cannot be negative")

	// ErrInvalidFactor is returned when multiplying by a negative factor.
	ErrInvalidFactor = errors.New("factor cannot be negative")

	// ErrInvalidDivisor is returned when dividing by zero or a negative number.
	ErrInvalidDivisor = errors.New("divisor must be positive")
)
