package fixture

import (
	"context"
	"sync"

	"github.com/jgrattan/fieldhand/internal/farm"
)

type FarmStore struct {
	mu    sync.Mutex
	farms []*farm.Farm
}

func NewFarmStore(seed []*farm.Farm) *FarmStore {
	s := &FarmStore{farms: make([]*farm.Farm, 0, len(seed))}
	for _, f := range seed {
		c := *f
		s.farms = append(s.farms, &c)
	}

	return s
}

func (s *FarmStore) CreateFarm(_ context.Context, f *farm.Farm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.farms))
	for i, existing := range s.farms {
		ids[i] = existing.ID
	}

	f.ID = nextID(ids)

	c := *f
	s.farms = append(s.farms, &c)

	return nil
}

func (s *FarmStore) GetFarm(_ context.Context, id int64) (*farm.Farm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.farms {
		if f.ID == id {
			c := *f
			return &c, nil
		}
	}

	return nil, farm.ErrNotFound
}

func (s *FarmStore) ListFarms(_ context.Context) ([]*farm.Farm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*farm.Farm, 0, len(s.farms))

	for _, f := range s.farms {
		c := *f
		out = append(out, &c)
	}

	return out, nil
}

func (s *FarmStore) UpdateFarm(_ context.Context, f *farm.Farm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.farms {
		if existing.ID == f.ID {
			c := *f
			s.farms[i] = &c

			return nil
		}
	}

	return farm.ErrNotFound
}

func (s *FarmStore) DeleteFarm(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.farms {
		if existing.ID == id {
			s.farms = append(s.farms[:i], s.farms[i+1:]...)
			return nil
		}
	}

	return farm.ErrNotFound
}
