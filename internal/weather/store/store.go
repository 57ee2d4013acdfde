package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jgrattan/fieldhand/internal/weather"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListDays returns forecast rows from today onward, earliest first.
func (s *Store) ListDays(ctx context.Context, limit int) ([]*weather.Day, error) {
	query := `
		SELECT id, date, condition, temperature, humidity, wind_speed, precipitation
		FROM weather_days
		WHERE date >= CURRENT_DATE
		ORDER BY date ASC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing weather days: %w", err)
	}
	defer rows.Close()

	var days []*weather.Day

	for rows.Next() {
		var d weather.Day

		var humidity, windSpeed, precipitation sql.NullFloat64

		if err := rows.Scan(
			&d.ID, &d.Date, &d.Condition, &d.Temperature,
			&humidity, &windSpeed, &precipitation,
		); err != nil {
			return nil, fmt.Errorf("scanning weather day: %w", err)
		}

		d.Humidity = humidity.Float64
		d.WindSpeed = windSpeed.Float64
		d.Precipitation = precipitation.Float64

		days = append(days, &d)
	}

	return days, rows.Err()
}
