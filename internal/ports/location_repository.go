package ports

import (
	"context"
	"disposal-locator-service/internal/domain"
)

// Port: a boundary for retrieving the disposal location catalog from a data source.
type LocationRepository interface {
	// Retrieve all catalog locations ordered by id.
	ListLocations(ctx context.Context) ([]domain.Location, error)
}
