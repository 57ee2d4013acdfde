package fixture

import (
	"context"
	"sync"

	"github.com/jgrattan/fieldhand/internal/weather"
)

type WeatherStore struct {
	mu   sync.Mutex
	days []*weather.Day
}

func NewWeatherStore(seed []*weather.Day) *WeatherStore {
	s := &WeatherStore{days: make([]*weather.Day, 0, len(seed))}
	for _, d := range seed {
		dc := *d
		s.days = append(s.days, &dc)
	}

	return s
}

func (s *WeatherStore) ListDays(_ context.Context, limit int) ([]*weather.Day, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.days)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]*weather.Day, 0, n)

	for _, d := range s.days[:n] {
		dc := *d
		out = append(out, &dc)
	}

	return out, nil
}
