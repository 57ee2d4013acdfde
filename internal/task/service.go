package task

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=task
type Repository interface {
	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByFarm(ctx context.Context, farmID int64) ([]*Task, error)
	UpdateTask(ctx context.Context, t *Task) error
	DeleteTask(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	FarmID      int64
	CropID      int64
	Title       string
	Description string
	Category    Category
	Priority    Priority
	DueDate     time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Task, error) {
	t := &Task{
		FarmID:      params.FarmID,
		CropID:      params.CropID,
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
	}
	if err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Task, error) {
	return s.repo.GetTask(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Task, error) {
	return s.repo.ListTasks(ctx)
}

func (s *Service) ListByFarm(ctx context.Context, farmID int64) ([]*Task, error) {
	return s.repo.ListTasksByFarm(ctx, farmID)
}

func (s *Service) Update(ctx context.Context, t *Task) error {
	return s.repo.UpdateTask(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTask(ctx, id)
}

// Complete marks the task done and returns the updated record.
func (s *Service) Complete(ctx context.Context, id int64) (*Task, error) {
	t, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Completed = true
	if err := s.repo.UpdateTask(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Upcoming lists incomplete tasks due within the next windowDays,
// soonest first.
func (s *Service) Upcoming(ctx context.Context, windowDays int) ([]*Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	return Upcoming(tasks, windowDays, s.now()), nil
}
