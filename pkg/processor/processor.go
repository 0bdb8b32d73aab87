// Package processor drives a batch of transaction records through the fee
// engine and writes one fee per record.
package processor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/snikolow/commission-calculator/pkg/currency"
	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/snikolow/commission-calculator/pkg/ledger"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// Columns of an input record.
const (
	colDate = iota
	colUserID
	colPerson
	colOperation
	colAmount
	colCurrency
	columns
)

// ErrMalformedRecord is returned for a record that cannot be parsed.
var ErrMalformedRecord = errors.New("malformed record")

// Calculator computes the fee of one transaction. *fee.Selector satisfies it.
type Calculator interface {
	Calculate(tx domain.Transaction) (money.Money, error)
}

// Processor reads records, validates them against the whitelists and
// writes the fee of each one, in input order.
type Processor struct {
	kinds      *domain.Kinds
	currencies *currency.Registry
	calculator Calculator
	window     ledger.Window
	logger     *slog.Logger
}

// New creates a processor. Dates are parsed with the window layout.
func New(
	kinds *domain.Kinds,
	currencies *currency.Registry,
	calculator Calculator,
	window ledger.Window,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		kinds:      kinds,
		currencies: currencies,
		calculator: calculator,
		window:     window,
		logger:     logger,
	}
}

// Run processes every record of in and writes one fee per line to out.
// It stops at the first failing record; fees already written stay written.
func (p *Processor) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := p.logger.With("run_id", uuid.NewString())
	start := time.Now()
	logger.Info("batch started")

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	processed := 0
	for {
		if err := ctx.Err(); err != nil {
			logger.Warn("batch cancelled", "processed", processed, "error", err)
			return err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrMalformedRecord, err)
			logger.Error("batch failed", "processed", processed, "error", err)
			return err
		}
		line, _ := reader.FieldPos(0)
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		fee, err := p.process(record)
		if err != nil {
			err = fmt.Errorf("line %d: %w", line, err)
			logger.Error("batch failed", "line", line, "processed", processed, "error", err)
			return err
		}

		if _, err := fmt.Fprintln(out, fee.String()); err != nil {
			return fmt.Errorf("write fee: %w", err)
		}
		processed++
	}

	logger.Info("batch completed",
		"processed", processed,
		"duration", time.Since(start),
	)
	return nil
}

func (p *Processor) process(record []string) (money.Money, error) {
	tx, err := p.Parse(record)
	if err != nil {
		return money.Money{}, err
	}
	fee, err := p.calculator.Calculate(tx)
	if err != nil {
		return money.Money{}, err
	}
	p.logger.Debug("fee calculated",
		"user_id", tx.UserID,
		"operation", tx.Operation,
		"person", tx.PersonKind,
		"amount", tx.Amount.Format(),
		"fee", fee.Format(),
	)
	return fee, nil
}

// Parse validates a raw record and builds the transaction. Operation,
// person and currency are checked in that order.
func (p *Processor) Parse(record []string) (domain.Transaction, error) {
	if len(record) != columns {
		return domain.Transaction{}, fmt.Errorf(
			"%w: expected %d columns, got %d",
			ErrMalformedRecord, columns, len(record),
		)
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	op, err := p.kinds.Operation(record[colOperation])
	if err != nil {
		return domain.Transaction{}, err
	}
	person, err := p.kinds.Person(record[colPerson])
	if err != nil {
		return domain.Transaction{}, err
	}
	cur, err := p.currencies.Currency(record[colCurrency])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf(
			"%w (%s)", domain.ErrInvalidCurrencyCode, record[colCurrency],
		)
	}

	amount, err := money.New(record[colAmount], cur)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: amount: %w", ErrMalformedRecord, err)
	}
	date, err := p.window.Parse(record[colDate])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf(
			"%w: date %q: %w", ErrMalformedRecord, record[colDate], err,
		)
	}
	if record[colUserID] == "" {
		return domain.Transaction{}, fmt.Errorf("%w: empty user id", ErrMalformedRecord)
	}

	return domain.Transaction{
		Date:       date,
		UserID:     record[colUserID],
		PersonKind: person,
		Operation:  op,
		Amount:     amount,
	}, nil
}
