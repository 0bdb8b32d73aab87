package ledger

import (
	"sync"

	"github.com/snikolow/commission-calculator/pkg/money"
)

// Entry is the discount state of one user in one week.
type Entry struct {
	OperationsCount   int
	RemainingDiscount money.Money
}

// Store maps ledger keys to entries. Implementations are shared by
// reference: a Put is visible to every holder of the same Store.
type Store interface {
	Get(key string) (Entry, bool)
	Put(key string, entry Entry)
}

// MemoryStore implements Store using in-memory storage
type MemoryStore struct {
	entries map[string]Entry
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory ledger
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Get retrieves the entry stored under key
func (s *MemoryStore) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	return entry, ok
}

// Put stores entry under key, replacing any previous value
func (s *MemoryStore) Put(key string, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
}

// Len returns the number of tracked (user, week) entries
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
