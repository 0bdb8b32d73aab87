// Package currency keeps the whitelist of currencies the calculator accepts
// together with their minor-unit precision.
package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/snikolow/commission-calculator/pkg/money"
	"github.com/snikolow/commission-calculator/pkg/registry"
)

const (
	// DefaultDecimals is the default number of decimal places for currencies
	DefaultDecimals = 2
)

// ErrUnsupportedCurrency is returned for codes missing from the registry.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Meta holds currency-specific metadata
type Meta struct {
	Code     money.Code
	Name     string
	Decimals int
	Symbol   string
}

// Registry wraps the generic registry for currency-specific operations
type Registry struct {
	registry *registry.Registry
}

// NewRegistry creates an empty currency registry
func NewRegistry() *Registry {
	return &Registry{registry: registry.New()}
}

// NewDefaultRegistry creates a registry holding the currencies the
// calculator supports out of the box.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	defaults := []Meta{
		{Code: money.EUR, Name: "Euro", Decimals: 2, Symbol: "€"},
		{Code: money.USD, Name: "US Dollar", Decimals: 2, Symbol: "$"},
		{Code: money.JPY, Name: "Japanese Yen", Decimals: 0, Symbol: "¥"},
	}
	for _, meta := range defaults {
		// defaults are valid by construction
		_ = r.Register(meta)
	}
	return r
}

// Register adds or updates a currency in the registry. Codes are stored
// upper-cased.
func (r *Registry) Register(meta Meta) error {
	meta.Code = normalize(string(meta.Code))
	c := money.Currency{Code: meta.Code, Decimals: meta.Decimals}
	if !c.IsValid() {
		return fmt.Errorf("%w: %s/%d", money.ErrInvalidCurrency, meta.Code, meta.Decimals)
	}
	name := meta.Name
	if name == "" {
		name = string(meta.Code)
	}
	r.registry.Register(string(meta.Code), registry.Meta{
		Name:   name,
		Active: true,
		Metadata: map[string]string{
			"decimals": strconv.Itoa(meta.Decimals),
			"symbol":   meta.Symbol,
		},
	})
	return nil
}

// RegisterCode whitelists a code using the decimals money already knows
// for it (two for anything unknown).
func (r *Registry) RegisterCode(code string) error {
	c := normalize(code).ToCurrency()
	return r.Register(Meta{Code: c.Code, Decimals: c.Decimals})
}

// Get returns currency metadata for the given code
func (r *Registry) Get(code string) (Meta, bool) {
	entity, ok := r.registry.Get(string(normalize(code)))
	if !ok {
		return Meta{}, false
	}

	decimals := DefaultDecimals
	if decStr, found := entity.Metadata["decimals"]; found {
		if dec, err := strconv.Atoi(decStr); err == nil {
			decimals = dec
		}
	}

	symbol := entity.ID
	if sym, found := entity.Metadata["symbol"]; found && sym != "" {
		symbol = sym
	}

	return Meta{
		Code:     money.Code(entity.ID),
		Name:     entity.Name,
		Decimals: decimals,
		Symbol:   symbol,
	}, true
}

// Currency resolves a code to the money.Currency used for arithmetic.
func (r *Registry) Currency(code string) (money.Currency, error) {
	meta, ok := r.Get(code)
	if !ok {
		return money.Currency{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, code)
	}
	return money.Currency{Code: meta.Code, Decimals: meta.Decimals}, nil
}

// IsSupported checks if a currency code is registered
func (r *Registry) IsSupported(code string) bool {
	return r.registry.IsActive(string(normalize(code)))
}

// ListSupported returns a sorted list of all supported currency codes
func (r *Registry) ListSupported() []string {
	return r.registry.ListActive()
}

// Count returns the total number of registered currencies
func (r *Registry) Count() int {
	return r.registry.Count()
}

func normalize(code string) money.Code {
	return money.Code(strings.ToUpper(strings.TrimSpace(code)))
}
