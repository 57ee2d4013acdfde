package task

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("task not found")

// Category groups tasks by the kind of field work involved.
type Category string

const (
	CategoryWatering    Category = "watering"
	CategoryHarvesting  Category = "harvesting"
	CategoryPlanting    Category = "planting"
	CategoryFertilizing Category = "fertilizing"
	CategoryWeeding     Category = "weeding"
	CategoryMaintenance Category = "maintenance"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task represents a unit of farm work with a due date. CropID is zero
// when the task is not tied to a specific crop.
type Task struct {
	ID          int64
	FarmID      int64
	CropID      int64
	Title       string
	Description string
	Category    Category
	Priority    Priority
	DueDate     time.Time
	Completed   bool
}
