package crop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrattan/fieldhand/internal/crop"
)

func testCrops() []*crop.Crop {
	return []*crop.Crop{
		{
			ID: 1, FarmID: 1, Name: "Sweet Corn", Variety: "Honey Select", Status: crop.StatusGrowing,
			PlantedDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			ExpectedHarvest: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, FarmID: 1, Name: "Tomato", Variety: "Roma", Status: crop.StatusReady,
			PlantedDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ExpectedHarvest: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 3, FarmID: 2, Name: "Winter Wheat", Status: crop.StatusPlanted,
			PlantedDate:     time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
			ExpectedHarvest: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func ids(crops []*crop.Crop) []int64 {
	out := make([]int64, 0, len(crops))
	for _, c := range crops {
		out = append(out, c.ID)
	}

	return out
}

func TestFilter(t *testing.T) {
	crops := testCrops()

	type testCase struct {
		name    string
		filters crop.Filters
		wantIDs []int64
	}

	tests := []testCase{
		{
			name:    "Empty",
			filters: crop.Filters{},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "SearchMatchesName",
			filters: crop.Filters{Search: "corn"},
			wantIDs: []int64{1},
		},
		{
			name:    "SearchMatchesVariety",
			filters: crop.Filters{Search: "roma"},
			wantIDs: []int64{2},
		},
		{
			name:    "SearchCaseInsensitive",
			filters: crop.Filters{Search: "WHEAT"},
			wantIDs: []int64{3},
		},
		{
			name:    "StatusAll",
			filters: crop.Filters{Status: crop.FilterAll},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "Status",
			filters: crop.Filters{Status: "ready"},
			wantIDs: []int64{2},
		},
		{
			name:    "Farm",
			filters: crop.Filters{FarmID: 2},
			wantIDs: []int64{3},
		},
		{
			name:    "Composed",
			filters: crop.Filters{Search: "o", Status: string(crop.StatusGrowing), FarmID: 1},
			wantIDs: []int64{1},
		},
		{
			name:    "NoMatch",
			filters: crop.Filters{Search: "pumpkin"},
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := crop.Filter(crops, tt.filters)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestSortBy(t *testing.T) {
	crops := testCrops()

	farmName := func(id int64) string {
		if id == 1 {
			return "Green Valley Farm"
		}

		return "Sunrise Acres"
	}

	type testCase struct {
		name    string
		key     crop.SortKey
		order   crop.SortOrder
		wantIDs []int64
	}

	tests := []testCase{
		{
			name:    "NameAsc",
			key:     crop.SortByName,
			order:   crop.Ascending,
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "NameDesc",
			key:     crop.SortByName,
			order:   crop.Descending,
			wantIDs: []int64{3, 2, 1},
		},
		{
			name:    "StatusAsc",
			key:     crop.SortByStatus,
			order:   crop.Ascending,
			wantIDs: []int64{1, 3, 2},
		},
		{
			name:    "FarmAsc",
			key:     crop.SortByFarm,
			order:   crop.Ascending,
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "PlantedAsc",
			key:     crop.SortByPlanted,
			order:   crop.Ascending,
			wantIDs: []int64{3, 2, 1},
		},
		{
			name:    "HarvestDesc",
			key:     crop.SortByHarvest,
			order:   crop.Descending,
			wantIDs: []int64{1, 2, 3},
		},
		{
			// Unknown keys leave the order alone.
			name:    "UnknownKey",
			key:     crop.SortKey("acreage"),
			order:   crop.Ascending,
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := crop.SortBy(crops, tt.key, tt.order, farmName)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestSortBy_StableAndPure(t *testing.T) {
	crops := []*crop.Crop{
		{ID: 1, Name: "Tomato", Variety: "Roma"},
		{ID: 2, Name: "tomato", Variety: "Cherry"},
		{ID: 3, Name: "Basil"},
	}

	got := crop.SortBy(crops, crop.SortByName, crop.Ascending, nil)

	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].ID)
	// Case-insensitive equal names keep input order.
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, int64(2), got[2].ID)

	// Input untouched.
	assert.Equal(t, int64(1), crops[0].ID)
}

func TestDaysToHarvest(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	type testCase struct {
		name    string
		harvest time.Time
		want    int
	}

	tests := []testCase{
		{
			name:    "LaterToday",
			harvest: time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC),
			want:    0,
		},
		{
			name:    "EarlierToday",
			harvest: time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC),
			want:    0,
		},
		{
			name:    "TomorrowMorning",
			harvest: time.Date(2024, 1, 11, 6, 0, 0, 0, time.UTC),
			want:    1,
		},
		{
			name:    "Yesterday",
			harvest: time.Date(2024, 1, 9, 23, 59, 0, 0, time.UTC),
			want:    -1,
		},
		{
			name:    "NextWeek",
			harvest: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			want:    7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, crop.DaysToHarvest(tt.harvest, now))
		})
	}
}

func TestDaysToHarvest_SpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 is the US spring-forward date, so this two-calendar-day
	// gap spans only 47 real hours.
	now := time.Date(2024, 3, 9, 8, 0, 0, 0, loc)
	harvest := time.Date(2024, 3, 11, 8, 0, 0, 0, loc)

	assert.Equal(t, 2, crop.DaysToHarvest(harvest, now))
	assert.Equal(t, "2 days", crop.HarvestCountdown(harvest, now))
}

func TestDaysToHarvest_FallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-11-03 is the US fall-back date; the extra hour must not push
	// the difference up a day either.
	now := time.Date(2024, 11, 2, 8, 0, 0, 0, loc)
	harvest := time.Date(2024, 11, 4, 8, 0, 0, 0, loc)

	assert.Equal(t, 2, crop.DaysToHarvest(harvest, now))
}

func TestHarvestCountdown(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Overdue", crop.HarvestCountdown(now.AddDate(0, 0, -4), now))
	assert.Equal(t, "Today", crop.HarvestCountdown(now.Add(10*time.Hour), now))
	assert.Equal(t, "Tomorrow", crop.HarvestCountdown(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "21 days", crop.HarvestCountdown(now.AddDate(0, 0, 21), now))
}
