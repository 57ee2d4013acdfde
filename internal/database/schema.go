package database

import (
	"database/sql"
	"fmt"
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS farms (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		size_acres DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS crops (
		id BIGSERIAL PRIMARY KEY,
		farm_id BIGINT NOT NULL,
		name TEXT NOT NULL,
		variety TEXT,
		planted_date TIMESTAMPTZ NOT NULL,
		expected_harvest TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'Planted',
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		farm_id BIGINT NOT NULL,
		crop_id BIGINT,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		priority TEXT NOT NULL,
		due_date TIMESTAMPTZ NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		farm_id BIGINT NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		amount BIGINT NOT NULL,
		description TEXT,
		date TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS weather_days (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL UNIQUE,
		condition TEXT NOT NULL,
		temperature DOUBLE PRECISION NOT NULL,
		humidity DOUBLE PRECISION,
		wind_speed DOUBLE PRECISION,
		precipitation DOUBLE PRECISION
	);

	CREATE INDEX IF NOT EXISTS idx_crops_farm_id ON crops(farm_id);
	CREATE INDEX IF NOT EXISTS idx_tasks_farm_id ON tasks(farm_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_farm_id ON transactions(farm_id);
`

// Deliberately no foreign keys on farm_id: deleting a farm leaves
// dependents in place and they render with a fallback farm name.

// EnsureSchema creates all tables on first run. Statements are
// idempotent so it is safe to call on every startup.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
