package farm

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=farm
type Repository interface {
	CreateFarm(ctx context.Context, f *Farm) error
	GetFarm(ctx context.Context, id int64) (*Farm, error)
	ListFarms(ctx context.Context) ([]*Farm, error)
	UpdateFarm(ctx context.Context, f *Farm) error
	DeleteFarm(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name      string
	Location  string
	SizeAcres float64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Farm, error) {
	f := &Farm{
		Name:      params.Name,
		Location:  params.Location,
		SizeAcres: params.SizeAcres,
	}
	if err := s.repo.CreateFarm(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Farm, error) {
	return s.repo.GetFarm(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Farm, error) {
	return s.repo.ListFarms(ctx)
}

func (s *Service) Update(ctx context.Context, f *Farm) error {
	return s.repo.UpdateFarm(ctx, f)
}

// Delete removes the farm only. Crops, tasks and transactions that
// reference it are left in place and render with a fallback farm name.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteFarm(ctx, id)
}
