package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Shared by SQLite and Postgres; both accept this DDL.
var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS locations (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		road_address TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		phone TEXT NOT NULL DEFAULT ''
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL,
        lng DOUBLE PRECISION NOT NULL
    );
	`,
}

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite database with location data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := LoadSeed(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	return seedLocations(db, rows, `
	INSERT OR REPLACE INTO locations (
		id,
		name,
		road_address,
		lat,
		lng,
		phone
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
}

func seedLocations(db *sql.DB, rows []LocationSeed, query string) error {
	if db == nil {
		return errors.New("seed locations: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		if _, err := stmt.Exec(l.ID, l.Name, l.RoadAddress, l.Lat, l.Lng, l.Phone); err != nil {
			return fmt.Errorf("seed locations: insert id=%d: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
