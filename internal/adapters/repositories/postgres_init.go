package repositories

import (
	"database/sql"
	"fmt"
)

// Populate a Postgres database with location data from a JSON file.
// Existing rows with the same id are overwritten.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := LoadSeed(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	return seedLocations(db, rows, `
	INSERT INTO locations (id, name, road_address, lat, lng, phone)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		road_address = EXCLUDED.road_address,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		phone = EXCLUDED.phone;
	`)
}
