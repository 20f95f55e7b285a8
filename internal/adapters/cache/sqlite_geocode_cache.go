package cache

import (
	"context"
	"database/sql"
	"disposal-locator-service/internal/domain"
	"disposal-locator-service/internal/platform/obs"
	"errors"
	"strings"
)

// SqliteGeocodeCache stores geocoder answers in the local SQLite database.
// Keys are used as given; callers normalize them.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

func (s *SqliteGeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.cache.sqlite.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("geocode cache: db is nil")
	}

	uniq := uniqueKeys(addresses)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	args := make([]any, len(uniq))
	for i, a := range uniq {
		args[i] = a
	}

	// IN (...) cannot bind a slice; only the placeholders are interpolated.
	q := "SELECT address, lat, lng FROM geocode_cache WHERE address IN (?" +
		strings.Repeat(",?", len(uniq)-1) + ")"

	return queryCoordinates(ctx, s.DB, q, args...)
}

func (s *SqliteGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) error {
	return putMany(ctx, s.DB, results, `
	INSERT OR REPLACE INTO geocode_cache (address, lat, lng) VALUES (?, ?, ?);
	`)
}
