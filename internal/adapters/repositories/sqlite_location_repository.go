package repositories

import (
	"context"
	"database/sql"
	"disposal-locator-service/internal/domain"
	"errors"
	"fmt"
)

const listLocationsQuery = `
	SELECT
		id,
		name,
		road_address,
		lat,
		lng,
		phone
	FROM locations
	ORDER BY id;
	`

// SQLite-backed implementation of the LocationRepository port.
type SqliteLocationRepository struct{ DB *sql.DB }

func NewSqliteLocationRepository(db *sql.DB) *SqliteLocationRepository {
	return &SqliteLocationRepository{DB: db}
}

// Return all locations stored in the database.
func (s *SqliteLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite location repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, listLocationsQuery)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 64)
	for rows.Next() {
		var l domain.Location
		err := rows.Scan(&l.ID, &l.Name, &l.RoadAddress, &l.Coordinates.Lat, &l.Coordinates.Lng, &l.Phone)
		if err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}
