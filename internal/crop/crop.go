package crop

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("crop not found")

// Status represents the lifecycle state of a crop. Transitions are
// user-driven; only Harvest forces a particular status.
type Status string

const (
	StatusPlanted   Status = "Planted"
	StatusGrowing   Status = "Growing"
	StatusReady     Status = "Ready"
	StatusHarvested Status = "Harvested"
)

// Crop represents a planting on a farm.
type Crop struct {
	ID              int64
	FarmID          int64
	Name            string
	Variety         string
	PlantedDate     time.Time
	ExpectedHarvest time.Time
	Status          Status
	Notes           string
}
