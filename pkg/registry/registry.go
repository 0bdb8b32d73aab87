// Package registry provides a small thread-safe whitelist of named entities
// with free-form metadata. Currencies, operation kinds and person kinds are
// all registered through it.
package registry

import (
	"sort"
	"sync"
)

// Meta represents generic metadata that can be associated with any entity
type Meta struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Active   bool              `json:"active"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Registry is a generic, thread-safe registry for managing any type of entity
type Registry struct {
	entities map[string]Meta
	mu       sync.RWMutex
}

// New creates a new empty registry
func New() *Registry {
	return &Registry{
		entities: make(map[string]Meta),
	}
}

// Register adds or updates an entity in the registry
func (r *Registry) Register(id string, meta Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	meta.ID = id
	r.entities[id] = meta
}

// Get returns entity metadata for the given ID.
// Returns an inactive Meta and false if the entity is not found.
func (r *Registry) Get(id string) (Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if meta, exists := r.entities[id]; exists {
		return meta, true
	}
	return Meta{ID: id, Active: false}, false
}

// IsActive checks if an entity ID is registered and active
func (r *Registry) IsActive(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, exists := r.entities[id]
	return exists && meta.Active
}

// ListActive returns the sorted IDs of all active entities
func (r *Registry) ListActive() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0)
	for id, meta := range r.entities {
		if meta.Active {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Count returns the total number of registered entities
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}
