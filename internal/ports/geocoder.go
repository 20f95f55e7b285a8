package ports

import (
	"context"
	"disposal-locator-service/internal/domain"
)

// Contract for turning a free-text address into coordinates.
//
// Implementations collapse every failure (network, parsing, missing
// credentials) into ok == false; callers get no further detail.
type Geocoder interface {
	ResolveAddress(ctx context.Context, address string) (coords domain.Coordinates, ok bool)
}
