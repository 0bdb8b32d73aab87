package fee

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// CashInFee charges a percentage of a deposit, capped at a maximum fee.
type CashInFee struct {
	cfg       CashInConfig
	pivot     money.Currency
	converter Converter
	logger    *slog.Logger
}

// NewCashInFee creates the deposit rule.
func NewCashInFee(
	cfg CashInConfig,
	pivot money.Currency,
	converter Converter,
	logger *slog.Logger,
) *CashInFee {
	if logger == nil {
		logger = slog.Default()
	}
	return &CashInFee{cfg: cfg, pivot: pivot, converter: converter, logger: logger}
}

// CalculateFee implements Rule. A fee above the cap is replaced by the cap,
// which is returned in the pivot currency.
func (r *CashInFee) CalculateFee(tx domain.Transaction) (money.Money, error) {
	fee, err := pivotPercent(r.converter, tx.Amount, r.pivot, r.cfg.Percent)
	if err != nil {
		return money.Money{}, fmt.Errorf("cash in fee: %w", err)
	}

	capped, err := fee.GreaterThan(r.cfg.MaxFee)
	if err != nil {
		return money.Money{}, fmt.Errorf("cash in fee: %w", err)
	}
	if capped {
		r.logger.Debug("cash in fee capped",
			"user_id", tx.UserID,
			"fee", fee.Format(),
			"max_fee", r.cfg.MaxFee.Format(),
		)
		return r.cfg.MaxFee, nil
	}

	return backToOriginal(r.converter, fee, tx.Amount.Currency(), money.RoundUp)
}

// pivotPercent converts amount to the pivot rounding down and applies pct,
// rounding down at each step.
func pivotPercent(
	converter Converter,
	amount money.Money,
	pivot money.Currency,
	pct decimal.Decimal,
) (money.Money, error) {
	inPivot, err := converter.Convert(amount, pivot, money.RoundDown)
	if err != nil {
		return money.Money{}, err
	}
	return inPivot.Percent(pct, money.RoundDown)
}

func backToOriginal(
	converter Converter,
	fee money.Money,
	original money.Currency,
	mode money.RoundingMode,
) (money.Money, error) {
	if fee.CurrencyCode() == original.Code {
		return fee, nil
	}
	converted, err := converter.Convert(fee, original, mode)
	if err != nil {
		return money.Money{}, fmt.Errorf("convert fee back: %w", err)
	}
	return converted, nil
}
