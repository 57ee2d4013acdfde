package crop

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=crop
type Repository interface {
	CreateCrop(ctx context.Context, c *Crop) error
	GetCrop(ctx context.Context, id int64) (*Crop, error)
	ListCrops(ctx context.Context) ([]*Crop, error)
	ListCropsByFarm(ctx context.Context, farmID int64) ([]*Crop, error)
	UpdateCrop(ctx context.Context, c *Crop) error
	DeleteCrop(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	FarmID          int64
	Name            string
	Variety         string
	PlantedDate     time.Time
	ExpectedHarvest time.Time
	Status          Status
	Notes           string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Crop, error) {
	c := &Crop{
		FarmID:          params.FarmID,
		Name:            params.Name,
		Variety:         params.Variety,
		PlantedDate:     params.PlantedDate,
		ExpectedHarvest: params.ExpectedHarvest,
		Status:          params.Status,
		Notes:           params.Notes,
	}
	if c.Status == "" {
		c.Status = StatusPlanted
	}

	if err := s.repo.CreateCrop(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Crop, error) {
	return s.repo.GetCrop(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Crop, error) {
	return s.repo.ListCrops(ctx)
}

func (s *Service) ListByFarm(ctx context.Context, farmID int64) ([]*Crop, error) {
	return s.repo.ListCropsByFarm(ctx, farmID)
}

func (s *Service) Update(ctx context.Context, c *Crop) error {
	return s.repo.UpdateCrop(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteCrop(ctx, id)
}

// Harvest forces the crop into the Harvested status regardless of its
// current state.
func (s *Service) Harvest(ctx context.Context, id int64) (*Crop, error) {
	c, err := s.repo.GetCrop(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Status = StatusHarvested
	if err := s.repo.UpdateCrop(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
