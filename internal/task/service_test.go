package task_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jgrattan/fieldhand/internal/task"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *task.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().
					CreateTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tsk *task.Task) error {
						tsk.ID = 1
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().
					CreateTask(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := task.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := task.NewService(repo)
			got, err := svc.Create(context.Background(), task.CreateParams{
				FarmID:   1,
				Title:    "Water north field",
				Category: task.CategoryWatering,
				Priority: task.PriorityHigh,
				DueDate:  time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, int64(1), got.ID)
		})
	}
}

func TestService_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := task.NewMockRepository(ctrl)

	stored := &task.Task{ID: 7, Title: "Fix fence by the creek"}

	repo.EXPECT().GetTask(gomock.Any(), int64(7)).Return(stored, nil)
	repo.EXPECT().
		UpdateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tsk *task.Task) error {
			assert.True(t, tsk.Completed)
			return nil
		})

	svc := task.NewService(repo)
	got, err := svc.Complete(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestService_Complete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := task.NewMockRepository(ctrl)
	repo.EXPECT().GetTask(gomock.Any(), int64(99)).Return(nil, task.ErrNotFound)

	svc := task.NewService(repo)
	got, err := svc.Complete(context.Background(), 99)

	assert.ErrorIs(t, err, task.ErrNotFound)
	assert.Nil(t, got)
}

func TestService_Upcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The service anchors the window to the wall clock.
	now := time.Now()

	repo := task.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTasks(gomock.Any()).
		Return([]*task.Task{
			{ID: 1, DueDate: now.AddDate(0, 0, 2)},
			{ID: 2, DueDate: now.AddDate(0, 0, 30)},
			{ID: 3, DueDate: now.AddDate(0, 0, -1)},
		}, nil)

	svc := task.NewService(repo)
	got, err := svc.Upcoming(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}
