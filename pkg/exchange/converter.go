package exchange

import (
	"fmt"
	"log/slog"

	"github.com/snikolow/commission-calculator/pkg/money"
)

// Converter converts Money between currencies using a rate table.
type Converter struct {
	rates  *Rates
	logger *slog.Logger
}

// NewConverter creates a converter backed by rates.
func NewConverter(rates *Rates, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{rates: rates, logger: logger}
}

// Convert returns m expressed in target. The product of the amount and the
// rate is rounded to the target minor unit in the given direction.
// Converting to the money's own currency returns m unchanged.
func (c *Converter) Convert(
	m money.Money,
	target money.Currency,
	mode money.RoundingMode,
) (money.Money, error) {
	if m.CurrencyCode() == target.Code {
		return m, nil
	}

	rate, ok := c.rates.Lookup(m.CurrencyCode(), target.Code)
	if !ok {
		return money.Money{}, fmt.Errorf(
			"%w: %s -> %s",
			ErrNoRateAvailable, m.CurrencyCode(), target.Code,
		)
	}

	converted, err := money.NewRounded(m.Amount().Mul(rate.Value), target, mode)
	if err != nil {
		return money.Money{}, fmt.Errorf("convert %s: %w", m.Format(), err)
	}

	c.logger.Debug("converted amount",
		"from", m.Format(),
		"to", converted.Format(),
		"rate", rate.Value.String(),
		"rounding", mode.String(),
	)
	return converted, nil
}
