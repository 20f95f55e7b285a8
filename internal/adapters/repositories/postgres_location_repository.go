package repositories

import (
	"context"
	"disposal-locator-service/internal/domain"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres-backed implementation of the LocationRepository port using a native pgx pool.
type PostgresLocationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLocationRepository(pool *pgxpool.Pool) *PostgresLocationRepository {
	return &PostgresLocationRepository{pool: pool}
}

func (p *PostgresLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if p.pool == nil {
		return nil, errors.New("postgres location repository: pool is nil")
	}

	rows, err := p.pool.Query(ctx, listLocationsQuery)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}

	locations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Location, error) {
		var l domain.Location
		err := row.Scan(&l.ID, &l.Name, &l.RoadAddress, &l.Coordinates.Lat, &l.Coordinates.Lng, &l.Phone)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("list locations: scan rows: %w", err)
	}

	return locations, nil
}
