package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// clientsSchema is the full schema of the one table this service owns.
// Timestamps default to NOW() so a freshly inserted row always has
// created_at equal to updated_at.
const clientsSchema = `
CREATE TABLE IF NOT EXISTS clients (
	id            BIGSERIAL PRIMARY KEY,
	full_name     TEXT NOT NULL,
	email         TEXT,
	phone         TEXT,
	location      TEXT,
	service_type  TEXT,
	serial_number TEXT,
	price         NUMERIC(12,2),
	supporter     TEXT,
	has_bonus     BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Open connects to PostgreSQL and verifies the connection with a ping.
// Pooling is left to database/sql; no per-request connections are made.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the clients table if it does not exist yet. It runs
// once at startup, outside the request path.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(clientsSchema); err != nil {
		return fmt.Errorf("ensuring clients table: %w", err)
	}
	return nil
}
