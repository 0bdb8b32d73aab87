// Package fee computes the commission charged for a single transaction.
//
// Percentages are applied in the pivot currency. A transaction in another
// currency is converted to the pivot first and the fee is converted back,
// each conversion rounded in the direction the rule prescribes.
package fee

import (
	"github.com/shopspring/decimal"
	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/snikolow/commission-calculator/pkg/ledger"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// Rule calculates the fee of one transaction.
type Rule interface {
	CalculateFee(tx domain.Transaction) (money.Money, error)
}

// Converter converts money between currencies with an explicit rounding
// direction. *exchange.Converter satisfies it.
type Converter interface {
	Convert(m money.Money, target money.Currency, mode money.RoundingMode) (money.Money, error)
}

// CashInConfig configures deposit fees.
type CashInConfig struct {
	Percent decimal.Decimal
	MaxFee  money.Money
}

// LegalCashOutConfig configures withdrawal fees for legal persons.
type LegalCashOutConfig struct {
	Percent decimal.Decimal
	MinFee  money.Money
}

// NaturalCashOutConfig configures withdrawal fees for natural persons.
type NaturalCashOutConfig struct {
	Percent decimal.Decimal
	// Allowance is the weekly amount withdrawn free of charge.
	Allowance money.Money
	// MaxOperations is the number of withdrawals per week eligible for
	// the allowance.
	MaxOperations int
	Window        ledger.Window
}

// Config is the fee configuration. It is read-only once built.
type Config struct {
	PivotCurrency  money.Currency
	CashIn         CashInConfig
	LegalCashOut   LegalCashOutConfig
	NaturalCashOut NaturalCashOutConfig
}

// DefaultConfig returns the stock commission schedule in EUR.
func DefaultConfig() Config {
	return Config{
		PivotCurrency: money.EURCurrency,
		CashIn: CashInConfig{
			Percent: decimal.RequireFromString("0.03"),
			MaxFee:  money.Must("5.00", money.EUR),
		},
		LegalCashOut: LegalCashOutConfig{
			Percent: decimal.RequireFromString("0.3"),
			MinFee:  money.Must("0.50", money.EUR),
		},
		NaturalCashOut: NaturalCashOutConfig{
			Percent:       decimal.RequireFromString("0.3"),
			Allowance:     money.Must("1000.00", money.EUR),
			MaxOperations: 3,
			Window:        ledger.DefaultWindow(),
		},
	}
}
