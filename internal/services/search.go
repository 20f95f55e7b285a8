package services

import (
	"context"
	"disposal-locator-service/internal/domain"
	"disposal-locator-service/internal/platform/obs"
	"disposal-locator-service/internal/ports"
	"errors"
	"fmt"
	"strings"
)

// DefaultTopN is how many locations an address search returns by default.
const DefaultTopN = 3

type NearbyResult struct {
	Origin    domain.Coordinates
	RadiusKm  float64
	Locations []domain.LocationWithDistance
}

type AddressResult struct {
	Address   string
	Searched  domain.Coordinates
	Locations []domain.LocationWithDistance
}

// NearbySearch resolves the caller's position and lists locations within radiusKm.
// A *domain.GeolocationError from the resolver is returned unwrapped.
func (l *Locator) NearbySearch(
	ctx context.Context,
	resolver ports.PositionResolver,
	radiusKm float64,
) (*NearbyResult, error) {
	if resolver == nil {
		return nil, errors.New("nearby search: position resolver is nil")
	}

	origin, err := resolver.ResolveCurrentPosition(ctx)
	if err != nil {
		var geoErr *domain.GeolocationError
		if errors.As(err, &geoErr) {
			return nil, geoErr
		}
		return nil, fmt.Errorf("nearby search: resolve position: %w", err)
	}

	return &NearbyResult{
		Origin:    origin,
		RadiusKm:  radiusKm,
		Locations: l.FindNearbyLocations(origin, radiusKm),
	}, nil
}

// AddressSearch geocodes address once and returns the n closest locations.
//
// Returns domain.ErrEmptyAddress for blank input and domain.ErrAddressNotFound
// when the geocoder yields nothing.
func (l *Locator) AddressSearch(
	ctx context.Context,
	geocoder ports.Geocoder,
	address string,
	n int,
) (_ *AddressResult, err error) {
	defer obs.Time(ctx, "search.AddressSearch", domain.ErrEmptyAddress, domain.ErrAddressNotFound)(&err)

	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domain.ErrEmptyAddress
	}

	if geocoder == nil {
		return nil, errors.New("address search: geocoder is nil")
	}

	coords, ok := geocoder.ResolveAddress(ctx, address)
	if !ok {
		return nil, fmt.Errorf("address search %q: %w", address, domain.ErrAddressNotFound)
	}

	return &AddressResult{
		Address:   address,
		Searched:  coords,
		Locations: l.FindTopNLocations(coords, n),
	}, nil
}
