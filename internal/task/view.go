package task

import (
	"sort"
	"strings"
	"time"
)

// Status filter values for the task list view. Unlike crop status these
// are derived, not stored.
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusOverdue   = "overdue"
)

// Filters describes the task list view parameters, AND-ed together.
// Priority and Category match exactly, case-insensitively; "all" or the
// empty string match everything.
type Filters struct {
	Status   string
	Priority string
	Category string
}

// Filter returns the tasks matching every predicate relative to now.
// The input slice and its elements are never modified.
func Filter(tasks []*Task, f Filters, now time.Time) []*Task {
	priority := strings.ToLower(f.Priority)
	category := strings.ToLower(f.Category)

	out := make([]*Task, 0, len(tasks))

	for _, t := range tasks {
		switch f.Status {
		case StatusPending:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		case StatusOverdue:
			if !IsOverdue(t, now) {
				continue
			}
		}

		if priority != "" && priority != StatusAll && strings.ToLower(string(t.Priority)) != priority {
			continue
		}

		if category != "" && category != StatusAll && strings.ToLower(string(t.Category)) != category {
			continue
		}

		out = append(out, t)
	}

	return out
}

// priorityRank orders priorities for the default view: high before
// medium before low. Unknown values sort last.
func priorityRank(p Priority) int {
	switch Priority(strings.ToLower(string(p))) {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}

	return 3
}

// SortDefault returns a copy of tasks in the canonical task-screen
// order: incomplete before completed, then dueDate ascending, then
// priority high to low. Remaining ties keep their input order.
func SortDefault(tasks []*Task) []*Task {
	out := make([]*Task, len(tasks))
	copy(out, tasks)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if a.Completed != b.Completed {
			return !a.Completed
		}

		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}

		return priorityRank(a.Priority) < priorityRank(b.Priority)
	})

	return out
}

// IsOverdue reports whether an incomplete task's due date has passed.
func IsOverdue(t *Task, now time.Time) bool {
	return !t.Completed && t.DueDate.Before(now)
}

// IsDueSoon reports whether an incomplete task is due within 24 hours.
// An overdue task is never due-soon; the overdue state wins.
func IsDueSoon(t *Task, now time.Time) bool {
	if t.Completed || IsOverdue(t, now) {
		return false
	}

	return t.DueDate.Sub(now) < 24*time.Hour
}

// Upcoming returns incomplete tasks due within the next windowDays,
// ordered by due date ascending. Already-overdue tasks are included;
// the window only bounds the future side.
func Upcoming(tasks []*Task, windowDays int, now time.Time) []*Task {
	cutoff := now.AddDate(0, 0, windowDays)

	out := make([]*Task, 0, len(tasks))

	for _, t := range tasks {
		if t.Completed || t.DueDate.After(cutoff) {
			continue
		}

		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})

	return out
}
