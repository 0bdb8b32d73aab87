// Package currency embeds the currency metadata and exchange rate tables
// the calculator starts with.
package currency

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/snikolow/commission-calculator/pkg/currency"
	"github.com/snikolow/commission-calculator/pkg/money"
)

//go:embed meta.csv
var metaCSV string

//go:embed rates.csv
var ratesCSV string

// RateRecord is one row of a rates table.
type RateRecord struct {
	From  money.Code
	To    money.Code
	Value decimal.Decimal
}

// LoadCurrencyMetaCSV loads currency metadata from a CSV file or embedded content.
// If path is empty, it uses the embedded CSV content. Inactive rows are skipped.
func LoadCurrencyMetaCSV(path string) ([]currency.Meta, error) {
	r, closeFn, err := open(path, metaCSV)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return parseCurrencyMetaCSV(r)
}

// LoadRatesCSV loads exchange rates from a CSV file or embedded content.
// If path is empty, it uses the embedded CSV content.
func LoadRatesCSV(path string) ([]RateRecord, error) {
	r, closeFn, err := open(path, ratesCSV)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return parseRatesCSV(r)
}

func open(path, embedded string) (io.Reader, func(), error) {
	if path == "" {
		return strings.NewReader(embedded), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func readAll(r io.Reader, expectedColumns int) ([][]string, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("invalid CSV format: missing header")
	}
	if len(records[0]) < expectedColumns {
		return nil, fmt.Errorf(
			"invalid CSV format: expected at least %d columns, got %d",
			expectedColumns,
			len(records[0]),
		)
	}
	return records[1:], nil
}

func parseCurrencyMetaCSV(r io.Reader) ([]currency.Meta, error) {
	records, err := readAll(r, 7)
	if err != nil {
		return nil, err
	}

	var metas []currency.Meta
	for _, rec := range records {
		// Skip malformed rows
		if len(rec) < 7 {
			continue
		}
		if strings.ToLower(strings.TrimSpace(rec[6])) != "true" {
			continue
		}
		decimals, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			continue
		}
		metas = append(metas, currency.Meta{
			Code:     money.Code(strings.ToUpper(strings.TrimSpace(rec[0]))),
			Name:     rec[1],
			Symbol:   rec[2],
			Decimals: decimals,
		})
	}
	return metas, nil
}

func parseRatesCSV(r io.Reader) ([]RateRecord, error) {
	records, err := readAll(r, 3)
	if err != nil {
		return nil, err
	}

	rates := make([]RateRecord, 0, len(records))
	for i, rec := range records {
		if len(rec) < 3 {
			return nil, fmt.Errorf("rates line %d: expected 3 columns, got %d", i+2, len(rec))
		}
		value, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("rates line %d: invalid rate %q: %w", i+2, rec[2], err)
		}
		rates = append(rates, RateRecord{
			From:  money.Code(strings.ToUpper(strings.TrimSpace(rec[0]))),
			To:    money.Code(strings.ToUpper(strings.TrimSpace(rec[1]))),
			Value: value,
		})
	}
	return rates, nil
}
