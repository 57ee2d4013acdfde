package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrattan/fieldhand/internal/task"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestFilter(t *testing.T) {
	tasks := []*task.Task{
		{ID: 1, Priority: task.PriorityHigh, Category: task.CategoryWatering, DueDate: now.AddDate(0, 0, 1)},
		{ID: 2, Priority: task.PriorityLow, Category: task.CategoryWeeding, DueDate: now.AddDate(0, 0, 2)},
		{ID: 3, Priority: task.PriorityMedium, Category: task.CategoryWatering, DueDate: now.AddDate(0, 0, -1)},
		{ID: 4, Priority: task.PriorityHigh, Category: task.CategoryHarvesting, DueDate: now.AddDate(0, 0, -3), Completed: true},
	}

	type testCase struct {
		name    string
		filters task.Filters
		wantIDs []int64
	}

	tests := []testCase{
		{
			name:    "All",
			filters: task.Filters{Status: task.StatusAll},
			wantIDs: []int64{1, 2, 3, 4},
		},
		{
			name:    "Pending",
			filters: task.Filters{Status: task.StatusPending},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "Completed",
			filters: task.Filters{Status: task.StatusCompleted},
			wantIDs: []int64{4},
		},
		{
			// A completed task past its due date is not overdue.
			name:    "Overdue",
			filters: task.Filters{Status: task.StatusOverdue},
			wantIDs: []int64{3},
		},
		{
			name:    "PriorityCaseInsensitive",
			filters: task.Filters{Priority: "HIGH"},
			wantIDs: []int64{1, 4},
		},
		{
			name:    "Category",
			filters: task.Filters{Category: string(task.CategoryWatering)},
			wantIDs: []int64{1, 3},
		},
		{
			name:    "Composed",
			filters: task.Filters{Status: task.StatusPending, Priority: string(task.PriorityHigh), Category: string(task.CategoryWatering)},
			wantIDs: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := task.Filter(tasks, tt.filters, now)

			gotIDs := make([]int64, 0, len(got))
			for _, tsk := range got {
				gotIDs = append(gotIDs, tsk.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestSortDefault(t *testing.T) {
	tasks := []*task.Task{
		{ID: 1, Priority: task.PriorityLow, DueDate: now.AddDate(0, 0, 2)},
		{ID: 2, Priority: task.PriorityHigh, DueDate: now.AddDate(0, 0, -5), Completed: true},
		{ID: 3, Priority: task.PriorityHigh, DueDate: now.AddDate(0, 0, 1)},
	}

	got := task.SortDefault(tasks)

	// Incomplete first by due date, completed last.
	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, int64(2), got[2].ID)

	// Input untouched.
	assert.Equal(t, int64(1), tasks[0].ID)
}

func TestSortDefault_PriorityBreaksDateTies(t *testing.T) {
	due := now.AddDate(0, 0, 1)

	tasks := []*task.Task{
		{ID: 1, Priority: task.PriorityLow, DueDate: due},
		{ID: 2, Priority: task.PriorityHigh, DueDate: due},
		{ID: 3, Priority: task.PriorityMedium, DueDate: due},
	}

	got := task.SortDefault(tasks)

	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, int64(1), got[2].ID)
}

func TestSortDefault_StableOnFullTies(t *testing.T) {
	due := now.AddDate(0, 0, 1)

	tasks := []*task.Task{
		{ID: 1, Priority: task.PriorityMedium, DueDate: due},
		{ID: 2, Priority: task.PriorityMedium, DueDate: due},
	}

	got := task.SortDefault(tasks)

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestIsOverdue(t *testing.T) {
	assert.True(t, task.IsOverdue(&task.Task{DueDate: now.Add(-time.Hour)}, now))
	assert.False(t, task.IsOverdue(&task.Task{DueDate: now.Add(-time.Hour), Completed: true}, now))
	assert.False(t, task.IsOverdue(&task.Task{DueDate: now.Add(time.Hour)}, now))
}

func TestIsDueSoon(t *testing.T) {
	// Overdue wins over due-soon.
	assert.False(t, task.IsDueSoon(&task.Task{DueDate: now.Add(-time.Hour)}, now))

	assert.True(t, task.IsDueSoon(&task.Task{DueDate: now.Add(6 * time.Hour)}, now))
	assert.False(t, task.IsDueSoon(&task.Task{DueDate: now.Add(25 * time.Hour)}, now))
	assert.False(t, task.IsDueSoon(&task.Task{DueDate: now.Add(6 * time.Hour), Completed: true}, now))
}

func TestUpcoming(t *testing.T) {
	tasks := []*task.Task{
		{ID: 1, DueDate: now.AddDate(0, 0, 3)},
		{ID: 2, DueDate: now.AddDate(0, 0, 10)},
		{ID: 3, DueDate: now.AddDate(0, 0, -2)}, // overdue still shows
		{ID: 4, DueDate: now.AddDate(0, 0, 1), Completed: true},
	}

	got := task.Upcoming(tasks, 7, now)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}
