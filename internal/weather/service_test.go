package weather_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrattan/fieldhand/internal/fixture"
	"github.com/jgrattan/fieldhand/internal/weather"
)

func seedDays() []*weather.Day {
	base := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	return []*weather.Day{
		{ID: 1, Date: base, Condition: "Sunny", Temperature: 78},
		{ID: 2, Date: base.AddDate(0, 0, 1), Condition: "Rain Showers", Temperature: 66},
		{ID: 3, Date: base.AddDate(0, 0, 2), Condition: "Cloudy", Temperature: 69},
	}
}

func TestService_Current(t *testing.T) {
	svc := weather.NewService(fixture.NewWeatherStore(seedDays()))

	got, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sunny", got.Condition)

	today, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got.ID, today.ID)
}

func TestService_Current_NoData(t *testing.T) {
	svc := weather.NewService(fixture.NewWeatherStore(nil))

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, weather.ErrNotFound)
}

func TestService_Forecast(t *testing.T) {
	svc := weather.NewService(fixture.NewWeatherStore(seedDays()))

	got, err := svc.Forecast(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestFarmingTip(t *testing.T) {
	type testCase struct {
		name        string
		condition   string
		temperature float64
		contains    string
	}

	tests := []testCase{
		{name: "Rain", condition: "Rain Showers", temperature: 66, contains: "irrigation"},
		{name: "HotSun", condition: "Sunny", temperature: 85, contains: "harvesting"},
		{name: "MildSun", condition: "Clear", temperature: 72, contains: "field work"},
		{name: "Cloudy", condition: "Partly Cloudy", temperature: 70, contains: "transplanting"},
		{name: "Unknown", condition: "Fog", temperature: 55, contains: "adjust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip := weather.FarmingTip(tt.condition, tt.temperature)
			assert.Contains(t, tip, tt.contains)
		})
	}
}
