package geocoding

import (
	"context"
	"disposal-locator-service/internal/domain"
	"disposal-locator-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const orsBaseURL = "https://api.openrouteservice.org"

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// ORSGeocoder resolves addresses with the OpenRouteService search endpoint.
// Each lookup is a single request; there is no retry.
//
// The geocoder is safe for concurrent use.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	country string
}

func NewORSGeocoder(apiKey, country string) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: orsBaseURL,
		country: country,
	}, nil
}

func (o *ORSGeocoder) ResolveAddress(ctx context.Context, address string) (domain.Coordinates, bool) {
	coords, err := o.geocode(ctx, address)
	if err != nil {
		zap.L().Warn("ors geocode failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("address", address),
			zap.Error(err),
		)
		return domain.Coordinates{}, false
	}
	return coords, true
}

func (o *ORSGeocoder) geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.geocode")(&err)

	norm := Normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("address must be non-empty")
	}

	decoded, err := o.search(ctx, norm)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", norm)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for %q", norm)
	}

	// GeoJSON order is [lon, lat].
	return domain.Coordinates{Lng: coords[0], Lat: coords[1]}, nil
}

// search issues one GET /geocode/search call and decodes the GeoJSON body.
func (o *ORSGeocoder) search(ctx context.Context, text string) (*geocodeResponse, error) {
	q := url.Values{}
	q.Set("text", text)
	if o.country != "" {
		q.Set("boundary.country", o.country)
	}
	q.Set("size", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/geocode/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("search: create request: %w", err)
	}
	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := o.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &orsStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("search: decode response: %w", err)
	}
	return &decoded, nil
}

type orsStatusError struct {
	Code int
	Body string
}

func (e *orsStatusError) Error() string {
	return fmt.Sprintf("ors status %d: %s", e.Code, e.Body)
}
