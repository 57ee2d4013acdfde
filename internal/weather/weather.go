package weather

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("weather day not found")

// Day is one day of forecast data. Weather is read-only from the
// application's point of view; rows are refreshed out of band.
type Day struct {
	ID            int64
	Date          time.Time
	Condition     string
	Temperature   float64
	Humidity      float64
	WindSpeed     float64
	Precipitation float64
}
