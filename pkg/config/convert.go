package config

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/snikolow/commission-calculator/pkg/currency"
	"github.com/snikolow/commission-calculator/pkg/fee"
	"github.com/snikolow/commission-calculator/pkg/ledger"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// ErrInvalidConfig is returned for settings that cannot be loaded or used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Window returns the week window discounts are tracked in.
func (a *App) Window() (ledger.Window, error) {
	first, err := ledger.ParseWeekday(a.Week.FirstDay)
	if err != nil {
		return ledger.Window{}, fmt.Errorf("%w: week first day: %w", ErrInvalidConfig, err)
	}
	last, err := ledger.ParseWeekday(a.Week.LastDay)
	if err != nil {
		return ledger.Window{}, fmt.Errorf("%w: week last day: %w", ErrInvalidConfig, err)
	}
	return ledger.Window{FirstDay: first, LastDay: last, Layout: a.DateLayout}, nil
}

// FeeConfig builds the fee schedule. Currency precision is taken from
// currencies, which must hold every code the settings mention. The cap
// and the floor must be expressed in the pivot currency.
func (a *App) FeeConfig(currencies *currency.Registry) (fee.Config, error) {
	pivot, err := currencies.Currency(a.PivotCurrency)
	if err != nil {
		return fee.Config{}, fmt.Errorf("%w: pivot currency: %w", ErrInvalidConfig, err)
	}
	window, err := a.Window()
	if err != nil {
		return fee.Config{}, err
	}

	cashInPct, err := percent("cash in", a.CashIn.Percent)
	if err != nil {
		return fee.Config{}, err
	}
	maxFee, err := amount(currencies, "cash in max fee", a.CashIn.MaxFee, a.CashIn.MaxFeeCurrency)
	if err != nil {
		return fee.Config{}, err
	}
	legalPct, err := percent("legal", a.Legal.Percent)
	if err != nil {
		return fee.Config{}, err
	}
	minFee, err := amount(currencies, "legal min fee", a.Legal.MinFee, a.Legal.MinFeeCurrency)
	if err != nil {
		return fee.Config{}, err
	}
	naturalPct, err := percent("natural", a.Natural.Percent)
	if err != nil {
		return fee.Config{}, err
	}
	allowance, err := amount(currencies, "natural discount", a.Natural.Discount, a.Natural.DiscountCurrency)
	if err != nil {
		return fee.Config{}, err
	}

	for name, m := range map[string]money.Money{"cash in max fee": maxFee, "legal min fee": minFee} {
		if m.CurrencyCode() != pivot.Code {
			return fee.Config{}, fmt.Errorf(
				"%w: %s currency %s differs from pivot %s",
				ErrInvalidConfig, name, m.CurrencyCode(), pivot.Code,
			)
		}
	}

	return fee.Config{
		PivotCurrency: pivot,
		CashIn:        fee.CashInConfig{Percent: cashInPct, MaxFee: maxFee},
		LegalCashOut:  fee.LegalCashOutConfig{Percent: legalPct, MinFee: minFee},
		NaturalCashOut: fee.NaturalCashOutConfig{
			Percent:       naturalPct,
			Allowance:     allowance,
			MaxOperations: a.Natural.MaxOperations,
			Window:        window,
		},
	}, nil
}

func percent(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s percent %q: %w", ErrInvalidConfig, name, value, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s percent %s is negative", ErrInvalidConfig, name, value)
	}
	return d, nil
}

func amount(currencies *currency.Registry, name, value, code string) (money.Money, error) {
	c, err := currencies.Currency(code)
	if err != nil {
		return money.Money{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
	}
	m, err := money.New(value, c)
	if err != nil {
		return money.Money{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
	}
	return m, nil
}
