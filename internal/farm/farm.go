package farm

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("farm not found")

// Farm is a single farm property tracked by the user.
type Farm struct {
	ID        int64
	Name      string
	Location  string
	SizeAcres float64
	CreatedAt time.Time
}

// NameByID resolves a farm name from an already-loaded collection.
// Dependents may reference farms that were deleted afterwards; those
// resolve to a fallback label instead of failing.
func NameByID(farms []*Farm, id int64) string {
	for _, f := range farms {
		if f.ID == id {
			return f.Name
		}
	}

	return "Unknown Farm"
}
