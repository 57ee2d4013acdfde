package fixture

import (
	"context"
	"sync"

	"github.com/jgrattan/fieldhand/internal/task"
)

type TaskStore struct {
	mu    sync.Mutex
	tasks []*task.Task
}

func NewTaskStore(seed []*task.Task) *TaskStore {
	s := &TaskStore{tasks: make([]*task.Task, 0, len(seed))}
	for _, t := range seed {
		tc := *t
		s.tasks = append(s.tasks, &tc)
	}

	return s
}

func (s *TaskStore) CreateTask(_ context.Context, t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.tasks))
	for i, existing := range s.tasks {
		ids[i] = existing.ID
	}

	t.ID = nextID(ids)

	tc := *t
	s.tasks = append(s.tasks, &tc)

	return nil
}

func (s *TaskStore) GetTask(_ context.Context, id int64) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			tc := *t
			return &tc, nil
		}
	}

	return nil, task.ErrNotFound
}

func (s *TaskStore) ListTasks(_ context.Context) ([]*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*task.Task, 0, len(s.tasks))

	for _, t := range s.tasks {
		tc := *t
		out = append(out, &tc)
	}

	return out, nil
}

func (s *TaskStore) ListTasksByFarm(_ context.Context, farmID int64) ([]*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*task.Task

	for _, t := range s.tasks {
		if t.FarmID == farmID {
			tc := *t
			out = append(out, &tc)
		}
	}

	return out, nil
}

func (s *TaskStore) UpdateTask(_ context.Context, t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.ID == t.ID {
			tc := *t
			s.tasks[i] = &tc

			return nil
		}
	}

	return task.ErrNotFound
}

func (s *TaskStore) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}

	return task.ErrNotFound
}
