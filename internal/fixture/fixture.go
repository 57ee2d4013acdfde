// Package fixture provides in-memory repository implementations seeded
// with sample data. It backs the "fixture" store strategy so the app
// runs without a database, and doubles as a test double for service
// and handler tests.
package fixture

// nextID assigns identifiers the way the sample-data stores always
// have: one past the current maximum.
func nextID(ids []int64) int64 {
	var max int64

	for _, id := range ids {
		if id > max {
			max = id
		}
	}

	return max + 1
}
