// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is an exact decimal, never a binary float.
//   - Amount is never negative; Money describes a transaction magnitude.
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - All arithmetic operations require matching currencies.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToCurrency converts a Code to a Currency with default decimals
func (c Code) ToCurrency() Currency {
	switch c {
	case USD:
		return USDCurrency
	case EUR:
		return EURCurrency
	case GBP:
		return GBPCurrency
	case JPY:
		return JPYCurrency
	case KWD:
		return KWDCurrency
	default:
		return Currency{Code: c, Decimals: 2}
	}
}

// IsValid checks if the currency code is valid
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// Currency represents a monetary unit with its standard decimal places
type Currency struct {
	Code     Code // 3-letter ISO 4217 code (e.g., "USD")
	Decimals int  // Number of decimal places (0-8)
}

// IsValid checks if the currency is valid.
func (c Currency) IsValid() bool {
	if c.Decimals < 0 || c.Decimals > 8 {
		return false
	}
	return c.Code.IsValid()
}

// String returns the currency code as a string
func (c Currency) String() string { return string(c.Code) }

// Common currency instances
var (
	USDCurrency = Currency{Code: USD, Decimals: 2}
	EURCurrency = Currency{Code: EUR, Decimals: 2}
	GBPCurrency = Currency{Code: GBP, Decimals: 2}
	JPYCurrency = Currency{Code: JPY, Decimals: 0} // Japanese Yen has no decimal places
	KWDCurrency = Currency{Code: KWD, Decimals: 3}
)

// RoundingMode selects the direction used when an amount is brought
// back to the minor unit of its currency.
type RoundingMode int

const (
	// RoundDown truncates toward zero.
	RoundDown RoundingMode = iota
	// RoundUp rounds away from zero.
	RoundUp
)

// String returns the rounding mode name.
func (r RoundingMode) String() string {
	if r == RoundUp {
		return "up"
	}
	return "down"
}

// Round rounds d to the given number of decimal places in direction r.
func (r RoundingMode) Round(d decimal.Decimal, places int) decimal.Decimal {
	if r == RoundUp {
		return d.RoundUp(int32(places))
	}
	return d.RoundDown(int32(places))
}

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// Zero creates a Money object with zero amount in the specified currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// New parses amount as an exact decimal literal and returns Money in the
// given currency. The currency parameter can be a Code, a Currency or a
// string (e.g., "USD").
// Invariants enforced:
//   - Currency must be valid.
//   - Amount must be a non-negative decimal literal.
//   - Amount must not have more decimal places than allowed by the currency.
func New(amount string, currency any) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return NewFromDecimal(d, currency)
}

// NewFromDecimal creates Money from an already parsed decimal. It applies
// the same invariants as New.
func NewFromDecimal(amount decimal.Decimal, currency any) (Money, error) {
	c, err := resolveCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	if !amount.Equal(amount.Truncate(int32(c.Decimals))) {
		return Money{}, fmt.Errorf(
			"%w: %s has more than %d decimal places for %s",
			ErrInvalidAmount, amount, c.Decimals, c.Code,
		)
	}
	return Money{amount: amount, currency: c}, nil
}

// NewRounded creates Money from an arbitrary precision decimal, rounding it
// to the currency minor unit in the given direction.
func NewRounded(amount decimal.Decimal, currency any, mode RoundingMode) (Money, error) {
	c, err := resolveCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return NewFromDecimal(mode.Round(amount, c.Decimals), c)
}

// Must creates Money like New and panics if any invariant is violated.
func Must(amount string, currency any) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%q, %v): %v", amount, currency, err))
	}
	return m
}

func resolveCurrency(currency any) (Currency, error) {
	var c Currency
	switch v := currency.(type) {
	case string:
		code := Code(v)
		if !code.IsValid() {
			return Currency{}, fmt.Errorf("%w: %s", ErrInvalidCurrency, v)
		}
		c = code.ToCurrency()
	case Code:
		c = v.ToCurrency()
	case Currency:
		c = v
	default:
		return Currency{}, fmt.Errorf(
			"invalid currency type: %T, expected string, Code, or Currency",
			currency,
		)
	}
	if !c.IsValid() {
		return Currency{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, c)
	}
	return c, nil
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of the Money object.
func (m Money) Currency() Currency {
	return m.currency
}

// CurrencyCode returns the currency code of the Money object.
func (m Money) CurrencyCode() Code {
	return m.currency.Code
}

// IsSameCurrency checks if both values share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// Subtract returns a new Money object with the difference of amounts.
// Invariants enforced:
//   - Currencies must match.
//   - The result must not be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf(
			"%w: cannot subtract %s from %s",
			ErrMismatchedCurrencies, other.currency.Code, m.currency.Code,
		)
	}
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrNegativeAmount, m.amount, other.amount)
	}
	return Money{amount: diff, currency: m.currency}, nil
}

// Equals reports whether both values have the same currency and amount.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// GreaterThan checks if m is greater than other.
// Returns an error if currencies do not match.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, fmt.Errorf(
			"%w: cannot compare %s and %s",
			ErrMismatchedCurrencies, m.currency.Code, other.currency.Code,
		)
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan checks if m is less than other.
// Returns an error if currencies do not match.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, fmt.Errorf(
			"%w: cannot compare %s and %s",
			ErrMismatchedCurrencies, m.currency.Code, other.currency.Code,
		)
	}
	return m.amount.LessThan(other.amount), nil
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Multiply multiplies the amount by factor and rounds the product to the
// currency minor unit in the given direction.
func (m Money) Multiply(factor decimal.Decimal, mode RoundingMode) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidFactor, factor)
	}
	return Money{
		amount:   mode.Round(m.amount.Mul(factor), m.currency.Decimals),
		currency: m.currency,
	}, nil
}

// Divide divides the amount by divisor and rounds the quotient to the
// currency minor unit in the given direction.
func (m Money) Divide(divisor decimal.Decimal, mode RoundingMode) (Money, error) {
	if !divisor.IsPositive() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidDivisor, divisor)
	}
	// keep DivisionPrecision extra digits so the directional rounding below
	// sees the true quotient
	q := m.amount.DivRound(divisor, int32(m.currency.Decimals+decimal.DivisionPrecision))
	return Money{
		amount:   mode.Round(q, m.currency.Decimals),
		currency: m.currency,
	}, nil
}

// Percent returns pct percent of m. The multiplication and the division by
// one hundred are each rounded to the minor unit in the given direction.
func (m Money) Percent(pct decimal.Decimal, mode RoundingMode) (Money, error) {
	product, err := m.Multiply(pct, mode)
	if err != nil {
		return Money{}, err
	}
	return product.Divide(hundred, mode)
}

// String returns the amount with exactly the currency's number of decimals,
// e.g. "0.60" for EUR or "8612" for JPY.
func (m Money) String() string {
	return m.amount.StringFixed(int32(m.currency.Decimals))
}

// Format returns the amount followed by the currency code.
func (m Money) Format() string {
	return m.String() + " " + string(m.currency.Code)
}
