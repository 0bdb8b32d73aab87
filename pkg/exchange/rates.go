// Package exchange holds the exchange rate table and converts money between
// currencies with an explicit rounding direction.
package exchange

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// ReciprocalPrecision is the number of fractional digits kept when the
// inverse of a registered rate is derived.
const ReciprocalPrecision = 16

// Rate represents an exchange rate between two currencies
type Rate struct {
	From  money.Code      `json:"from"`
	To    money.Code      `json:"to"`
	Value decimal.Decimal `json:"value"`
	// Derived is set on the reciprocal side of a registered pair.
	Derived bool `json:"derived"`
}

// String returns the rate as "FROM/TO=VALUE".
func (r Rate) String() string {
	return fmt.Sprintf("%s/%s=%s", r.From, r.To, r.Value)
}

// Rates is an in-memory table of directional exchange rates.
type Rates struct {
	store map[string]Rate
	mu    sync.RWMutex
}

// NewRates creates an empty rate table
func NewRates() *Rates {
	return &Rates{store: make(map[string]Rate)}
}

// Register stores the rate from -> to and its reciprocal to -> from.
// Registering an existing pair overwrites both directions.
func (t *Rates) Register(from, to money.Code, value decimal.Decimal) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: %s/%s", money.ErrInvalidCurrency, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %s/%s is not a pair", ErrInvalidRate, from, to)
	}
	if !value.IsPositive() {
		return fmt.Errorf("%w: %s/%s=%s", ErrInvalidRate, from, to, value)
	}

	inverse := decimal.NewFromInt(1).DivRound(value, ReciprocalPrecision)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.store[cacheKey(from, to)] = Rate{From: from, To: to, Value: value}
	t.store[cacheKey(to, from)] = Rate{From: to, To: from, Value: inverse, Derived: true}
	return nil
}

// Lookup returns the rate from -> to, whether registered directly or
// derived from the opposite pair.
func (t *Rates) Lookup(from, to money.Code) (Rate, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rate, ok := t.store[cacheKey(from, to)]
	return rate, ok
}

// All returns every stored rate sorted by pair.
func (t *Rates) All() []Rate {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rates := make([]Rate, 0, len(t.store))
	for _, r := range t.store {
		rates = append(rates, r)
	}
	sort.Slice(rates, func(i, j int) bool {
		return cacheKey(rates[i].From, rates[i].To) < cacheKey(rates[j].From, rates[j].To)
	})
	return rates
}

// Len returns the number of stored directional rates.
func (t *Rates) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.store)
}

// cacheKey generates a consistent key for a currency pair
func cacheKey(from, to money.Code) string {
	return string(from) + "_" + string(to)
}
