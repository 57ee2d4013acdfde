package crop

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FilterAll matches every value for a string filter field.
const FilterAll = "all"

// Filters describes the crop list view parameters. Zero or more
// predicates, AND-ed together.
type Filters struct {
	Search string // case-insensitive substring over name and variety
	Status string // FilterAll or a status value, case-insensitive
	FarmID int64  // 0 matches all farms
}

// Filter returns the crops matching every predicate. The input slice and
// its elements are never modified.
func Filter(crops []*Crop, f Filters) []*Crop {
	search := strings.ToLower(f.Search)
	status := strings.ToLower(f.Status)

	out := make([]*Crop, 0, len(crops))

	for _, c := range crops {
		if search != "" {
			name := strings.ToLower(c.Name)
			variety := strings.ToLower(c.Variety)

			if !strings.Contains(name, search) && !strings.Contains(variety, search) {
				continue
			}
		}

		if status != "" && status != FilterAll && strings.ToLower(string(c.Status)) != status {
			continue
		}

		if f.FarmID != 0 && c.FarmID != f.FarmID {
			continue
		}

		out = append(out, c)
	}

	return out
}

// SortKey selects which field the crop list is ordered by.
type SortKey string

const (
	SortByName    SortKey = "name"
	SortByStatus  SortKey = "status"
	SortByFarm    SortKey = "farm"
	SortByPlanted SortKey = "plantedDate"
	SortByHarvest SortKey = "expectedHarvest"
)

// SortOrder flips the comparator direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortBy returns a copy of crops ordered by the given key. String keys
// compare case-insensitively, date keys chronologically. The sort is
// stable so equal keys keep their input order. An unknown key returns
// the copy unchanged. farmName resolves FarmID for the farm key; it may
// be nil for any other key.
func SortBy(crops []*Crop, key SortKey, order SortOrder, farmName func(int64) string) []*Crop {
	out := make([]*Crop, len(crops))
	copy(out, crops)

	var less func(a, b *Crop) bool

	switch key {
	case SortByName:
		less = func(a, b *Crop) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByStatus:
		less = func(a, b *Crop) bool {
			return strings.ToLower(string(a.Status)) < strings.ToLower(string(b.Status))
		}
	case SortByFarm:
		less = func(a, b *Crop) bool {
			return strings.ToLower(farmName(a.FarmID)) < strings.ToLower(farmName(b.FarmID))
		}
	case SortByPlanted:
		less = func(a, b *Crop) bool {
			return a.PlantedDate.Before(b.PlantedDate)
		}
	case SortByHarvest:
		less = func(a, b *Crop) bool {
			return a.ExpectedHarvest.Before(b.ExpectedHarvest)
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == Descending {
			return less(out[j], out[i])
		}

		return less(out[i], out[j])
	})

	return out
}

// DaysToHarvest returns the calendar-day difference between now and the
// expected harvest date. Both instants are read as dates in now's
// location, so a harvest later today counts as zero days. The dates are
// rebuilt in UTC before subtracting; otherwise a DST transition inside
// the gap shaves an hour off and truncation loses a day.
func DaysToHarvest(expectedHarvest, now time.Time) int {
	loc := now.Location()
	return int(dateUTC(expectedHarvest, loc).Sub(dateUTC(now, loc)).Hours() / 24)
}

// HarvestCountdown renders DaysToHarvest as a human label.
func HarvestCountdown(expectedHarvest, now time.Time) string {
	days := DaysToHarvest(expectedHarvest, now)

	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

func dateUTC(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
