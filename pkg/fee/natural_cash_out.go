package fee

import (
	"fmt"
	"log/slog"

	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/snikolow/commission-calculator/pkg/ledger"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// Discount outcomes, as logged.
const (
	discountExhausted = "exhausted"
	discountExact     = "exact"
	discountPartial   = "partial"
	discountFull      = "full"
	discountNone      = "none"
)

// NaturalCashOutFee charges a percentage of a natural person's withdrawal
// after deducting what is left of the weekly allowance. The first
// MaxOperations withdrawals of a week draw on the allowance.
type NaturalCashOutFee struct {
	cfg       NaturalCashOutConfig
	pivot     money.Currency
	converter Converter
	store     ledger.Store
	logger    *slog.Logger
}

// NewNaturalCashOutFee creates the natural person withdrawal rule. The
// store is shared with every other holder and outlives the rule.
func NewNaturalCashOutFee(
	cfg NaturalCashOutConfig,
	pivot money.Currency,
	converter Converter,
	store ledger.Store,
	logger *slog.Logger,
) *NaturalCashOutFee {
	if logger == nil {
		logger = slog.Default()
	}
	return &NaturalCashOutFee{
		cfg:       cfg,
		pivot:     pivot,
		converter: converter,
		store:     store,
		logger:    logger,
	}
}

// CalculateFee implements Rule. Every call counts as one operation of the
// week, whether it is charged or not.
func (r *NaturalCashOutFee) CalculateFee(tx domain.Transaction) (money.Money, error) {
	amount, err := r.converter.Convert(tx.Amount, r.pivot, money.RoundDown)
	if err != nil {
		return money.Money{}, fmt.Errorf("natural cash out fee: %w", err)
	}

	key := r.cfg.Window.Key(tx.Date, tx.UserID)
	entry, ok := r.store.Get(key)
	if !ok {
		allowance, err := r.converter.Convert(r.cfg.Allowance, r.pivot, money.RoundDown)
		if err != nil {
			return money.Money{}, fmt.Errorf("natural cash out allowance: %w", err)
		}
		entry = ledger.Entry{RemainingDiscount: allowance}
	}

	outcome, chargeable, remaining, err := r.applyDiscount(entry, amount)
	if err != nil {
		return money.Money{}, fmt.Errorf("natural cash out fee: %w", err)
	}

	r.store.Put(key, ledger.Entry{
		OperationsCount:   entry.OperationsCount + 1,
		RemainingDiscount: remaining,
	})

	r.logger.Debug("weekly discount applied",
		"user_id", tx.UserID,
		"date", r.cfg.Window.Format(tx.Date),
		"outcome", outcome,
		"operations", entry.OperationsCount+1,
		"remaining", remaining.Format(),
	)

	if outcome == discountExact || outcome == discountFull {
		return money.Zero(tx.Amount.Currency()), nil
	}

	fee, err := chargeable.Percent(r.cfg.Percent, money.RoundUp)
	if err != nil {
		return money.Money{}, fmt.Errorf("natural cash out fee: %w", err)
	}
	return backToOriginal(r.converter, fee, tx.Amount.Currency(), money.RoundDown)
}

// applyDiscount returns the outcome, the amount left to charge and the
// allowance left for the week.
func (r *NaturalCashOutFee) applyDiscount(
	entry ledger.Entry,
	amount money.Money,
) (string, money.Money, money.Money, error) {
	remaining := entry.RemainingDiscount
	zero := money.Zero(remaining.Currency())

	if entry.OperationsCount >= r.cfg.MaxOperations {
		return discountExhausted, amount, remaining, nil
	}
	if !remaining.IsPositive() {
		return discountNone, amount, remaining, nil
	}
	if amount.Equals(remaining) {
		return discountExact, zero, zero, nil
	}

	covers, err := remaining.GreaterThan(amount)
	if err != nil {
		return "", money.Money{}, money.Money{}, err
	}
	if covers {
		left, err := remaining.Subtract(amount)
		if err != nil {
			return "", money.Money{}, money.Money{}, err
		}
		return discountFull, zero, left, nil
	}

	chargeable, err := amount.Subtract(remaining)
	if err != nil {
		return "", money.Money{}, money.Money{}, err
	}
	return discountPartial, chargeable, zero, nil
}
