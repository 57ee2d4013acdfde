package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jgrattan/fieldhand/internal/farm"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectFarmColumns = `id, name, location, size_acres, created_at`

func scanFarm(s scanner) (*farm.Farm, error) {
	var f farm.Farm
	if err := s.Scan(&f.ID, &f.Name, &f.Location, &f.SizeAcres, &f.CreatedAt); err != nil {
		return nil, err
	}

	return &f, nil
}

func (s *Store) CreateFarm(ctx context.Context, f *farm.Farm) error {
	query := `
		INSERT INTO farms (name, location, size_acres, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, f.Name, f.Location, f.SizeAcres).
		Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating farm: %w", err)
	}

	return nil
}

func (s *Store) GetFarm(ctx context.Context, id int64) (*farm.Farm, error) {
	query := `SELECT ` + selectFarmColumns + ` FROM farms WHERE id = $1`

	f, err := scanFarm(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, farm.ErrNotFound
		}

		return nil, fmt.Errorf("getting farm: %w", err)
	}

	return f, nil
}

func (s *Store) ListFarms(ctx context.Context) ([]*farm.Farm, error) {
	query := `SELECT ` + selectFarmColumns + ` FROM farms ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing farms: %w", err)
	}
	defer rows.Close()

	var farms []*farm.Farm

	for rows.Next() {
		f, err := scanFarm(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning farm: %w", err)
		}

		farms = append(farms, f)
	}

	return farms, rows.Err()
}

func (s *Store) UpdateFarm(ctx context.Context, f *farm.Farm) error {
	query := `
		UPDATE farms
		SET name = $1, location = $2, size_acres = $3
		WHERE id = $4
	`

	res, err := s.db.ExecContext(ctx, query, f.Name, f.Location, f.SizeAcres, f.ID)
	if err != nil {
		return fmt.Errorf("updating farm: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return farm.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteFarm(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM farms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting farm: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return farm.ErrNotFound
	}

	return nil
}
