package ports

import (
	"context"
	"disposal-locator-service/internal/domain"
)

// Persistent address -> coordinates cache.
// Keys are expected to be normalized by the caller.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
