package ports

import (
	"context"
	"disposal-locator-service/internal/domain"
)

// Contract for determining the user's current position.
// Failures are reported as *domain.GeolocationError.
type PositionResolver interface {
	ResolveCurrentPosition(ctx context.Context) (domain.Coordinates, error)
}
