package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/snikolow/commission-calculator/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a new Money instance for testing
func mustNew(t *testing.T, amount string, currency money.Code) money.Money {
	t.Helper()
	m, err := money.New(amount, currency)
	require.NoError(t, err, "failed to create money for test")
	return m
}

func TestNewMoney_Precision(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency any
		expected string
		wantErr  error
	}{
		{"EUR with cents", "100.50", money.EUR, "100.50", nil},
		{"EUR with one decimal", "100.5", money.EUR, "100.50", nil},
		{"EUR without decimals", "1000", money.EUR, "1000.00", nil},
		{"JPY without cents", "30000", money.JPY, "30000", nil},
		{"KWD with 3 decimals", "100.123", money.KWD, "100.123", nil},
		{"string currency", "1.10", "USD", "1.10", nil},
		{"JPY with cents", "1000.5", money.JPY, "", money.ErrInvalidAmount},
		{"EUR with more than 2 decimals", "100.999", money.EUR, "", money.ErrInvalidAmount},
		{"not a number", "12,50", money.EUR, "", money.ErrInvalidAmount},
		{"negative amount", "-1.00", money.EUR, "", money.ErrNegativeAmount},
		{"invalid currency", "100.50", money.Code("INVALID"), "", money.ErrInvalidCurrency},
		{"lower case currency", "100.50", "eur", "", money.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.New(tt.amount, tt.currency)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.String())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	eur100 := mustNew(t, "100.00", money.EUR)
	eur50 := mustNew(t, "50.25", money.EUR)
	usd100 := mustNew(t, "100.00", money.USD)

	t.Run("Subtract same currency", func(t *testing.T) {
		result, err := eur100.Subtract(eur50)
		require.NoError(t, err)
		assert.Equal(t, "49.75", result.String())
		assert.Equal(t, money.EUR, result.CurrencyCode())
	})

	t.Run("Subtract to zero", func(t *testing.T) {
		result, err := eur100.Subtract(eur100)
		require.NoError(t, err)
		assert.True(t, result.IsZero())
	})

	t.Run("Subtract below zero", func(t *testing.T) {
		_, err := eur50.Subtract(eur100)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("Subtract different currency", func(t *testing.T) {
		_, err := eur100.Subtract(usd100)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
	})

	t.Run("operations do not mutate receiver", func(t *testing.T) {
		_, err := eur100.Subtract(eur50)
		require.NoError(t, err)
		assert.Equal(t, "100.00", eur100.String())
	})
}

func TestMoney_Comparison(t *testing.T) {
	eur100 := mustNew(t, "100.00", money.EUR)
	eur50 := mustNew(t, "50.00", money.EUR)
	usd100 := mustNew(t, "100.00", money.USD)

	t.Run("Equals ignores representation scale", func(t *testing.T) {
		assert.True(t, eur100.Equals(mustNew(t, "100", money.EUR)))
		assert.False(t, eur100.Equals(eur50))
		assert.False(t, eur100.Equals(usd100))
	})

	t.Run("GreaterThan", func(t *testing.T) {
		gt, err := eur100.GreaterThan(eur50)
		require.NoError(t, err)
		assert.True(t, gt)

		gt, err = eur50.GreaterThan(eur100)
		require.NoError(t, err)
		assert.False(t, gt)

		gt, err = eur100.GreaterThan(eur100)
		require.NoError(t, err)
		assert.False(t, gt)
	})

	t.Run("LessThan", func(t *testing.T) {
		lt, err := eur50.LessThan(eur100)
		require.NoError(t, err)
		assert.True(t, lt)

		lt, err = eur100.LessThan(eur100)
		require.NoError(t, err)
		assert.False(t, lt)
	})

	t.Run("different currency", func(t *testing.T) {
		_, err := eur100.GreaterThan(usd100)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
		_, err = eur100.LessThan(usd100)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
	})
}

func TestMoney_State(t *testing.T) {
	eur100 := mustNew(t, "100.00", money.EUR)
	eur0 := money.Zero(money.EURCurrency)

	assert.True(t, eur100.IsPositive())
	assert.False(t, eur100.IsZero())
	assert.True(t, eur0.IsZero())
	assert.False(t, eur0.IsPositive())
	assert.Equal(t, "0.00", eur0.String())
	assert.Equal(t, "0", money.Zero(money.JPYCurrency).String())
}

func TestMoney_Percent(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency money.Code
		pct      string
		mode     money.RoundingMode
		expected string
	}{
		{"cash in 0.03% of 1000", "1000.00", money.EUR, "0.03", money.RoundDown, "0.30"},
		{"cash in 0.03% of 200", "200.00", money.EUR, "0.03", money.RoundDown, "0.06"},
		{"0.3% of 250", "250.00", money.EUR, "0.3", money.RoundUp, "0.75"},
		{"0.3% of 1.00 rounded down", "1.00", money.EUR, "0.3", money.RoundDown, "0.00"},
		{"0.3% of 1.00 rounded up", "1.00", money.EUR, "0.3", money.RoundUp, "0.01"},
		{"product rounded up before division", "333.33", money.EUR, "0.3", money.RoundUp, "1.00"},
		{"product rounded down before division", "333.33", money.EUR, "0.3", money.RoundDown, "0.99"},
		{"JPY has no minor unit", "3000000", money.JPY, "0.3", money.RoundUp, "9000"},
		{"JPY rounds up to whole yen", "30001", money.JPY, "0.3", money.RoundUp, "91"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustNew(t, tt.amount, tt.currency)
			fee, err := m.Percent(decimal.RequireFromString(tt.pct), tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fee.String())
			assert.Equal(t, tt.currency, fee.CurrencyCode())
		})
	}
}

func TestMoney_MultiplyDivideGuards(t *testing.T) {
	m := mustNew(t, "10.00", money.EUR)

	_, err := m.Multiply(decimal.NewFromInt(-1), money.RoundDown)
	assert.ErrorIs(t, err, money.ErrInvalidFactor)

	_, err = m.Divide(decimal.Zero, money.RoundDown)
	assert.ErrorIs(t, err, money.ErrInvalidDivisor)

	_, err = m.Divide(decimal.NewFromInt(-2), money.RoundUp)
	assert.ErrorIs(t, err, money.ErrInvalidDivisor)

	_, err = m.Percent(decimal.RequireFromString("-0.3"), money.RoundUp)
	assert.ErrorIs(t, err, money.ErrInvalidFactor)

	q, err := m.Divide(decimal.NewFromInt(3), money.RoundUp)
	require.NoError(t, err)
	assert.Equal(t, "3.34", q.String())

	q, err = m.Divide(decimal.NewFromInt(3), money.RoundDown)
	require.NoError(t, err)
	assert.Equal(t, "3.33", q.String())
}

func TestNewRounded(t *testing.T) {
	raw := decimal.RequireFromString("1.005")

	up, err := money.NewRounded(raw, money.EUR, money.RoundUp)
	require.NoError(t, err)
	assert.Equal(t, "1.01", up.String())

	down, err := money.NewRounded(raw, money.EUR, money.RoundDown)
	require.NoError(t, err)
	assert.Equal(t, "1.00", down.String())

	yen, err := money.NewRounded(decimal.RequireFromString("8611.0001"), money.JPY, money.RoundUp)
	require.NoError(t, err)
	assert.Equal(t, "8612", yen.String())
}

func TestMust_Panics(t *testing.T) {
	assert.Panics(t, func() { money.Must("abc", money.EUR) })
	assert.NotPanics(t, func() { money.Must("1.00", money.EUR) })
}

func TestRoundingMode_String(t *testing.T) {
	assert.Equal(t, "down", money.RoundDown.String())
	assert.Equal(t, "up", money.RoundUp.String())
}
