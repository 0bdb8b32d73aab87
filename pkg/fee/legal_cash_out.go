package fee

import (
	"fmt"
	"log/slog"

	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// LegalCashOutFee charges a percentage of a legal person's withdrawal,
// never less than a minimum fee.
type LegalCashOutFee struct {
	cfg       LegalCashOutConfig
	pivot     money.Currency
	converter Converter
	logger    *slog.Logger
}

// NewLegalCashOutFee creates the legal person withdrawal rule.
func NewLegalCashOutFee(
	cfg LegalCashOutConfig,
	pivot money.Currency,
	converter Converter,
	logger *slog.Logger,
) *LegalCashOutFee {
	if logger == nil {
		logger = slog.Default()
	}
	return &LegalCashOutFee{cfg: cfg, pivot: pivot, converter: converter, logger: logger}
}

// CalculateFee implements Rule. A fee below the floor is replaced by the
// floor, which is returned in the pivot currency.
func (r *LegalCashOutFee) CalculateFee(tx domain.Transaction) (money.Money, error) {
	fee, err := pivotPercent(r.converter, tx.Amount, r.pivot, r.cfg.Percent)
	if err != nil {
		return money.Money{}, fmt.Errorf("legal cash out fee: %w", err)
	}

	floored, err := fee.LessThan(r.cfg.MinFee)
	if err != nil {
		return money.Money{}, fmt.Errorf("legal cash out fee: %w", err)
	}
	if floored {
		r.logger.Debug("legal cash out fee raised to minimum",
			"user_id", tx.UserID,
			"fee", fee.Format(),
			"min_fee", r.cfg.MinFee.Format(),
		)
		return r.cfg.MinFee, nil
	}

	return backToOriginal(r.converter, fee, tx.Amount.Currency(), money.RoundUp)
}
