package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	assert.NotNil(registry)
	assert.Equal(0, registry.Count())
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()

	registry.Register("cash_in", Meta{Name: "Deposit", Active: true})
	assert.True(registry.IsActive("cash_in"))

	// Update existing entity
	registry.Register("cash_in", Meta{Name: "Cash in", Active: false})
	entity, ok := registry.Get("cash_in")
	assert.True(ok)
	assert.Equal("Cash in", entity.Name)
	assert.False(entity.Active)
	assert.Equal(1, registry.Count())
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()

	registry.Register("EUR", Meta{Name: "Euro", Active: true})
	entity, ok := registry.Get("EUR")
	assert.True(ok)
	assert.Equal("EUR", entity.ID)
	assert.Equal("Euro", entity.Name)
	assert.True(entity.Active)

	unknown, ok := registry.Get("BGN")
	assert.False(ok)
	assert.Equal("BGN", unknown.ID)
	assert.False(unknown.Active)
}

func TestRegistry_IsActive(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	registry.Register("legal", Meta{Active: true})
	registry.Register("institution", Meta{Active: false})

	assert.True(registry.IsActive("legal"))
	assert.False(registry.IsActive("institution"))
	assert.False(registry.IsActive("natural"))
	assert.Equal([]string{"legal"}, registry.ListActive())
}

func TestRegistry_ListActiveIsSorted(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	assert.Empty(registry.ListActive())

	registry.Register("USD", Meta{Active: true})
	registry.Register("EUR", Meta{Active: true})
	registry.Register("JPY", Meta{Active: true})

	assert.Equal([]string{"EUR", "JPY", "USD"}, registry.ListActive())
}

func TestRegistry_KeepsMetadata(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	registry.Register("JPY", Meta{Metadata: map[string]string{"decimals": "0"}})

	entity, ok := registry.Get("JPY")
	assert.True(ok)
	assert.Equal("0", entity.Metadata["decimals"])
}

func TestRegistry_Concurrency(t *testing.T) {
	t.Parallel()

	registry := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", i)
			registry.Register(id, Meta{Active: true})
			registry.IsActive(id)
			registry.ListActive()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, registry.Count())
}
