package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jgrattan/fieldhand/internal/crop"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCropColumns = `id, farm_id, name, variety, planted_date, expected_harvest, status, notes`

func scanCrop(s scanner) (*crop.Crop, error) {
	var c crop.Crop

	var variety, notes sql.NullString

	var status string

	if err := s.Scan(
		&c.ID, &c.FarmID, &c.Name, &variety,
		&c.PlantedDate, &c.ExpectedHarvest, &status, &notes,
	); err != nil {
		return nil, err
	}

	c.Variety = variety.String
	c.Notes = notes.String
	c.Status = crop.Status(status)

	return &c, nil
}

func (s *Store) CreateCrop(ctx context.Context, c *crop.Crop) error {
	query := `
		INSERT INTO crops (farm_id, name, variety, planted_date, expected_harvest, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		c.FarmID, c.Name, c.Variety, c.PlantedDate, c.ExpectedHarvest, c.Status, c.Notes,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("creating crop: %w", err)
	}

	return nil
}

func (s *Store) GetCrop(ctx context.Context, id int64) (*crop.Crop, error) {
	query := `SELECT ` + selectCropColumns + ` FROM crops WHERE id = $1`

	c, err := scanCrop(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, crop.ErrNotFound
		}

		return nil, fmt.Errorf("getting crop: %w", err)
	}

	return c, nil
}

func (s *Store) ListCrops(ctx context.Context) ([]*crop.Crop, error) {
	return s.list(ctx, `SELECT `+selectCropColumns+` FROM crops ORDER BY id`)
}

func (s *Store) ListCropsByFarm(ctx context.Context, farmID int64) ([]*crop.Crop, error) {
	return s.list(ctx, `SELECT `+selectCropColumns+` FROM crops WHERE farm_id = $1 ORDER BY id`, farmID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*crop.Crop, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing crops: %w", err)
	}
	defer rows.Close()

	var crops []*crop.Crop

	for rows.Next() {
		c, err := scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning crop: %w", err)
		}

		crops = append(crops, c)
	}

	return crops, rows.Err()
}

func (s *Store) UpdateCrop(ctx context.Context, c *crop.Crop) error {
	query := `
		UPDATE crops
		SET farm_id = $1, name = $2, variety = $3, planted_date = $4,
		    expected_harvest = $5, status = $6, notes = $7
		WHERE id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		c.FarmID, c.Name, c.Variety, c.PlantedDate, c.ExpectedHarvest, c.Status, c.Notes, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating crop: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return crop.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteCrop(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM crops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting crop: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return crop.ErrNotFound
	}

	return nil
}
