package geocoding

import (
	"context"
	"disposal-locator-service/internal/domain"
	"disposal-locator-service/internal/platform/obs"
	"disposal-locator-service/internal/ports"

	"go.uber.org/zap"
)

// CachingGeocoder checks a persistent cache before delegating to the
// wrapped geocoder. Only successful lookups are cached.
type CachingGeocoder struct {
	inner ports.Geocoder
	cache ports.GeocodeCache
}

func NewCachingGeocoder(inner ports.Geocoder, cache ports.GeocodeCache) *CachingGeocoder {
	return &CachingGeocoder{inner: inner, cache: cache}
}

func (c *CachingGeocoder) ResolveAddress(ctx context.Context, address string) (domain.Coordinates, bool) {
	key := Normalize(address)
	if key == "" {
		return domain.Coordinates{}, false
	}

	log := zap.L().With(zap.String("req_id", obs.RequestID(ctx)), zap.String("address", key))

	if c.cache != nil {
		hits, err := c.cache.GetMany(ctx, []string{key})
		if err != nil {
			log.Warn("geocode cache read failed", zap.Error(err))
		} else if coords, ok := hits[key]; ok {
			return coords, true
		}
	}

	coords, ok := c.inner.ResolveAddress(ctx, key)
	if !ok {
		return domain.Coordinates{}, false
	}

	if c.cache != nil {
		if err := c.cache.PutMany(ctx, map[string]domain.Coordinates{key: coords}); err != nil {
			log.Warn("geocode cache write failed", zap.Error(err))
		}
	}

	return coords, true
}
