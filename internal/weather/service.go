package weather

import (
	"context"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=weather
type Repository interface {
	ListDays(ctx context.Context, limit int) ([]*Day, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Current returns the first forecast day, which doubles as today's
// conditions.
func (s *Service) Current(ctx context.Context) (*Day, error) {
	days, err := s.repo.ListDays(ctx, 1)
	if err != nil {
		return nil, err
	}

	if len(days) == 0 {
		return nil, ErrNotFound
	}

	return days[0], nil
}

// Today is an alias for Current kept for callers that phrase it that way.
func (s *Service) Today(ctx context.Context) (*Day, error) {
	return s.Current(ctx)
}

// Forecast returns up to days of forecast data, today first.
func (s *Service) Forecast(ctx context.Context, days int) ([]*Day, error) {
	return s.repo.ListDays(ctx, days)
}

// FarmingTip suggests field work appropriate for the day's conditions.
func FarmingTip(condition string, temperature float64) string {
	c := strings.ToLower(condition)

	switch {
	case strings.Contains(c, "rain"):
		return "Great day for natural irrigation. Consider postponing manual watering tasks."
	case strings.Contains(c, "sun") || strings.Contains(c, "clear"):
		if temperature > 80 {
			return "Hot and sunny. Good for harvesting, but keep sensitive crops irrigated."
		}

		return "Excellent weather for field work: planting, weeding and equipment maintenance."
	case strings.Contains(c, "cloud"):
		return "Overcast conditions are good working weather without heat stress. Great for transplanting."
	default:
		return "Check your crops' weather requirements and adjust today's tasks accordingly."
	}
}
