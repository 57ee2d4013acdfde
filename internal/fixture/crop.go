package fixture

import (
	"context"
	"sync"

	"github.com/jgrattan/fieldhand/internal/crop"
)

type CropStore struct {
	mu    sync.Mutex
	crops []*crop.Crop
}

func NewCropStore(seed []*crop.Crop) *CropStore {
	s := &CropStore{crops: make([]*crop.Crop, 0, len(seed))}
	for _, c := range seed {
		cc := *c
		s.crops = append(s.crops, &cc)
	}

	return s
}

func (s *CropStore) CreateCrop(_ context.Context, c *crop.Crop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.crops))
	for i, existing := range s.crops {
		ids[i] = existing.ID
	}

	c.ID = nextID(ids)

	cc := *c
	s.crops = append(s.crops, &cc)

	return nil
}

func (s *CropStore) GetCrop(_ context.Context, id int64) (*crop.Crop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.crops {
		if c.ID == id {
			cc := *c
			return &cc, nil
		}
	}

	return nil, crop.ErrNotFound
}

func (s *CropStore) ListCrops(_ context.Context) ([]*crop.Crop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*crop.Crop, 0, len(s.crops))

	for _, c := range s.crops {
		cc := *c
		out = append(out, &cc)
	}

	return out, nil
}

func (s *CropStore) ListCropsByFarm(_ context.Context, farmID int64) ([]*crop.Crop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*crop.Crop

	for _, c := range s.crops {
		if c.FarmID == farmID {
			cc := *c
			out = append(out, &cc)
		}
	}

	return out, nil
}

func (s *CropStore) UpdateCrop(_ context.Context, c *crop.Crop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.crops {
		if existing.ID == c.ID {
			cc := *c
			s.crops[i] = &cc

			return nil
		}
	}

	return crop.ErrNotFound
}

func (s *CropStore) DeleteCrop(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.crops {
		if existing.ID == id {
			s.crops = append(s.crops[:i], s.crops[i+1:]...)
			return nil
		}
	}

	return crop.ErrNotFound
}
