// Package initializer builds the calculator's object graph from its
// configuration.
package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	currencyfixtures "github.com/snikolow/commission-calculator/internal/fixtures/currency"
	"github.com/snikolow/commission-calculator/pkg/config"
	"github.com/snikolow/commission-calculator/pkg/currency"
	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/snikolow/commission-calculator/pkg/exchange"
	"github.com/snikolow/commission-calculator/pkg/fee"
	"github.com/snikolow/commission-calculator/pkg/ledger"
	"github.com/snikolow/commission-calculator/pkg/processor"
)

// Deps holds everything a batch run needs.
type Deps struct {
	Logger     *slog.Logger
	Currencies *currency.Registry
	Kinds      *domain.Kinds
	Rates      *exchange.Rates
	Converter  *exchange.Converter
	Ledger     *ledger.MemoryStore
	Selector   *fee.Selector
	Processor  *processor.Processor
}

// InitializeDependencies wires the calculator. Logs are written to logOut.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (*Deps, error) {
	deps := &Deps{}
	logger := SetupLogger(cfg.Log, logOut)
	deps.Logger = logger

	currencies, err := initCurrencies(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize currency registry: %w", err)
	}
	deps.Currencies = currencies

	deps.Rates, err = initRates(cfg, currencies, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize exchange rates: %w", err)
	}

	feeCfg, err := cfg.FeeConfig(currencies)
	if err != nil {
		return nil, err
	}

	deps.Kinds = domain.NewKinds()
	deps.Converter = exchange.NewConverter(deps.Rates, logger)
	deps.Ledger = ledger.NewMemoryStore()
	deps.Selector = fee.NewSelector(feeCfg, deps.Converter, deps.Ledger, logger)
	deps.Processor = processor.New(
		deps.Kinds,
		currencies,
		deps.Selector,
		feeCfg.NaturalCashOut.Window,
		logger,
	)

	logger.Debug("Dependencies initialized",
		"currencies", currencies.ListSupported(),
		"registered", currencies.Count(),
		"rates", deps.Rates.Len(),
		"pivot", feeCfg.PivotCurrency.Code,
	)
	return deps, nil
}

// initCurrencies whitelists the built-in currencies plus the configured
// extras. Extras take their precision from the embedded metadata.
func initCurrencies(cfg *config.App, logger *slog.Logger) (*currency.Registry, error) {
	currencies := currency.NewDefaultRegistry()
	if len(cfg.Currencies) == 0 {
		return currencies, nil
	}

	metas, err := currencyfixtures.LoadCurrencyMetaCSV("")
	if err != nil {
		return nil, err
	}
	known := make(map[string]currency.Meta, len(metas))
	for _, m := range metas {
		known[string(m.Code)] = m
	}

	for _, code := range cfg.Currencies {
		if meta, ok := known[strings.ToUpper(code)]; ok {
			err = currencies.Register(meta)
		} else {
			logger.Warn("No metadata for currency, using defaults", "code", code)
			err = currencies.RegisterCode(code)
		}
		if err != nil {
			return nil, err
		}
	}
	return currencies, nil
}

// initRates loads the configured rate table, or the embedded one.
func initRates(
	cfg *config.App,
	currencies *currency.Registry,
	logger *slog.Logger,
) (*exchange.Rates, error) {
	records, err := currencyfixtures.LoadRatesCSV(cfg.RatesFile)
	if err != nil {
		return nil, err
	}

	rates := exchange.NewRates()
	for _, r := range records {
		if !currencies.IsSupported(string(r.From)) || !currencies.IsSupported(string(r.To)) {
			logger.Warn("Rate registered for a currency outside the whitelist",
				"from", r.From, "to", r.To)
		}
		if err := rates.Register(r.From, r.To, r.Value); err != nil {
			return nil, err
		}
	}

	source := cfg.RatesFile
	if source == "" {
		source = "embedded"
	}
	logger.Info("Exchange rates loaded", "source", source, "pairs", len(records))
	for _, r := range rates.All() {
		logger.Debug("Exchange rate", "rate", r.String())
	}
	return rates, nil
}
