package geocoding

import (
	"context"
	"disposal-locator-service/internal/domain"
	"sync"
)

// MockGeocoder answers from a fixed address table and counts lookups.
type MockGeocoder struct {
	m map[string]domain.Coordinates

	mu    sync.Mutex
	calls int
}

func NewMockGeocoder(table map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(table))
	for k, v := range table {
		m[Normalize(k)] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) ResolveAddress(ctx context.Context, address string) (domain.Coordinates, bool) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	c, ok := g.m[Normalize(address)]
	return c, ok
}

func (g *MockGeocoder) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// Disabled never resolves anything. It stands in when no geocoding
// credentials are configured.
type Disabled struct{}

func (Disabled) ResolveAddress(context.Context, string) (domain.Coordinates, bool) {
	return domain.Coordinates{}, false
}
