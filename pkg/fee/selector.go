package fee

import (
	"fmt"
	"log/slog"

	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/snikolow/commission-calculator/pkg/ledger"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// Selector picks the fee rule for an operation and person kind. It holds
// the configuration and the shared ledger but no per-call state.
type Selector struct {
	cfg       Config
	converter Converter
	store     ledger.Store
	logger    *slog.Logger
}

// NewSelector creates a selector. All natural person rules it returns share
// store.
func NewSelector(
	cfg Config,
	converter Converter,
	store ledger.Store,
	logger *slog.Logger,
) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{cfg: cfg, converter: converter, store: store, logger: logger}
}

// Select returns the rule for op and person. The person kind is ignored
// for deposits.
func (s *Selector) Select(op domain.OperationKind, person domain.PersonKind) (Rule, error) {
	switch op {
	case domain.CashIn:
		return NewCashInFee(s.cfg.CashIn, s.cfg.PivotCurrency, s.converter, s.logger), nil
	case domain.CashOut:
		switch person {
		case "":
			return nil, ErrMissingPersonKind
		case domain.Legal:
			return NewLegalCashOutFee(
				s.cfg.LegalCashOut, s.cfg.PivotCurrency, s.converter, s.logger,
			), nil
		case domain.Natural:
			return NewNaturalCashOutFee(
				s.cfg.NaturalCashOut, s.cfg.PivotCurrency, s.converter, s.store, s.logger,
			), nil
		}
	}
	return nil, fmt.Errorf("%w (%s/%s)", ErrUnsupportedOperation, op, person)
}

// Calculate selects the rule for tx and applies it.
func (s *Selector) Calculate(tx domain.Transaction) (money.Money, error) {
	rule, err := s.Select(tx.Operation, tx.PersonKind)
	if err != nil {
		return money.Money{}, err
	}
	return rule.CalculateFee(tx)
}
