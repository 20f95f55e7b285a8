package position

import (
	"context"
	"disposal-locator-service/internal/domain"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Codes sent by browsers in GeolocationPositionError.code.
const (
	codePermissionDenied    = "1"
	codePositionUnavailable = "2"
	codeTimeout             = "3"
)

// QueryResolver reads the device position a client obtained from the
// browser geolocation API and forwarded as query parameters: either
// lat and lng, or geo_error carrying the browser's failure code.
type QueryResolver struct {
	values url.Values
}

func NewQueryResolver(values url.Values) *QueryResolver {
	return &QueryResolver{values: values}
}

func (q *QueryResolver) ResolveCurrentPosition(ctx context.Context) (domain.Coordinates, error) {
	if code := strings.TrimSpace(q.values.Get("geo_error")); code != "" {
		return domain.Coordinates{}, domain.NewGeolocationError(reasonForCode(code))
	}

	rawLat := strings.TrimSpace(q.values.Get("lat"))
	rawLng := strings.TrimSpace(q.values.Get("lng"))
	if rawLat == "" && rawLng == "" {
		return domain.Coordinates{}, domain.NewGeolocationError(domain.GeoUnsupported)
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return domain.Coordinates{}, &InvalidPositionError{Field: "lat", Value: rawLat}
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return domain.Coordinates{}, &InvalidPositionError{Field: "lng", Value: rawLng}
	}

	c := domain.Coordinates{Lat: lat, Lng: lng}
	if !c.InRange() {
		return domain.Coordinates{}, &InvalidPositionError{Field: "lat/lng", Value: c.String()}
	}

	return c, nil
}

func reasonForCode(code string) domain.GeolocationReason {
	switch strings.ToLower(code) {
	case codePermissionDenied, string(domain.GeoPermissionDenied):
		return domain.GeoPermissionDenied
	case codePositionUnavailable, string(domain.GeoPositionUnavailable):
		return domain.GeoPositionUnavailable
	case codeTimeout, string(domain.GeoTimeout):
		return domain.GeoTimeout
	case string(domain.GeoUnsupported):
		return domain.GeoUnsupported
	default:
		return domain.GeoUnknown
	}
}

// InvalidPositionError reports malformed or out-of-range coordinates.
type InvalidPositionError struct {
	Field string
	Value string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}
