package fixture

import (
	"time"

	"github.com/jgrattan/fieldhand/internal/crop"
	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/task"
	"github.com/jgrattan/fieldhand/internal/transaction"
	"github.com/jgrattan/fieldhand/internal/weather"
)

// SeedFarms returns the sample farm set. Dates are anchored to now so
// overdue and due-soon states show up out of the box.
func SeedFarms(now time.Time) []*farm.Farm {
	return []*farm.Farm{
		{ID: 1, Name: "Green Valley Farm", Location: "Cedar Rapids, IA", SizeAcres: 120, CreatedAt: now.AddDate(-1, -2, 0)},
		{ID: 2, Name: "Sunrise Acres", Location: "Ames, IA", SizeAcres: 64.5, CreatedAt: now.AddDate(0, -8, 0)},
		{ID: 3, Name: "Maple Hollow", Location: "Decorah, IA", SizeAcres: 32, CreatedAt: now.AddDate(0, -3, -12)},
	}
}

func SeedCrops(now time.Time) []*crop.Crop {
	return []*crop.Crop{
		{ID: 1, FarmID: 1, Name: "Sweet Corn", Variety: "Honey Select", PlantedDate: now.AddDate(0, -2, 0), ExpectedHarvest: now.AddDate(0, 0, 21), Status: crop.StatusGrowing, Notes: "North field, drip irrigated"},
		{ID: 2, FarmID: 1, Name: "Tomato", Variety: "Roma", PlantedDate: now.AddDate(0, -3, 0), ExpectedHarvest: now.AddDate(0, 0, 3), Status: crop.StatusReady},
		{ID: 3, FarmID: 2, Name: "Winter Wheat", PlantedDate: now.AddDate(0, -7, 0), ExpectedHarvest: now.AddDate(0, 0, -4), Status: crop.StatusReady, Notes: "Harvest window slipping"},
		{ID: 4, FarmID: 2, Name: "Soybean", Variety: "Pioneer 94Y23", PlantedDate: now.AddDate(0, -1, -10), ExpectedHarvest: now.AddDate(0, 2, 0), Status: crop.StatusPlanted},
		{ID: 5, FarmID: 3, Name: "Potato", Variety: "Yukon Gold", PlantedDate: now.AddDate(0, -4, 0), ExpectedHarvest: now.AddDate(0, -1, 0), Status: crop.StatusHarvested},
	}
}

func SeedTasks(now time.Time) []*task.Task {
	return []*task.Task{
		{ID: 1, FarmID: 1, CropID: 1, Title: "Water north field", Category: task.CategoryWatering, Priority: task.PriorityHigh, DueDate: now.Add(6 * time.Hour)},
		{ID: 2, FarmID: 1, CropID: 2, Title: "Harvest Roma tomatoes", Category: task.CategoryHarvesting, Priority: task.PriorityHigh, DueDate: now.AddDate(0, 0, 2)},
		{ID: 3, FarmID: 2, Title: "Fix fence by the creek", Description: "Two posts leaning after the storm", Category: task.CategoryMaintenance, Priority: task.PriorityMedium, DueDate: now.AddDate(0, 0, -1)},
		{ID: 4, FarmID: 2, CropID: 4, Title: "Fertilize soybeans", Category: task.CategoryFertilizing, Priority: task.PriorityLow, DueDate: now.AddDate(0, 0, 5)},
		{ID: 5, FarmID: 3, Title: "Weed potato beds", Category: task.CategoryWeeding, Priority: task.PriorityMedium, DueDate: now.AddDate(0, 0, -6), Completed: true},
	}
}

func SeedTransactions(now time.Time) []*transaction.Transaction {
	return []*transaction.Transaction{
		{ID: 1, FarmID: 1, Type: transaction.TypeIncome, Category: "Crop Sales", Amount: 452000, Description: "Sweet corn, farmers market", Date: now.AddDate(0, 0, -2)},
		{ID: 2, FarmID: 1, Type: transaction.TypeExpense, Category: "Seeds", Amount: -38750, Description: "Fall seed order", Date: now.AddDate(0, 0, -10)},
		{ID: 3, FarmID: 2, Type: transaction.TypeExpense, Category: "Fuel", Amount: -21500, Description: "Diesel for combine", Date: now.AddDate(0, 0, -5)},
		{ID: 4, FarmID: 2, Type: transaction.TypeIncome, Category: "Equipment Rental", Amount: 90000, Description: "Baler rental to neighbor", Date: now.AddDate(0, -1, 0)},
		{ID: 5, FarmID: 3, Type: transaction.TypeExpense, Category: "Maintenance", Amount: -12600, Description: "Irrigation pump repair", Date: now.AddDate(0, 0, -1)},
		{ID: 6, FarmID: 1, Type: transaction.TypeIncome, Category: "Subsidies", Amount: 150000, Description: "Conservation program payment", Date: now.AddDate(0, -2, 0)},
	}
}

func SeedWeather(now time.Time) []*weather.Day {
	day := func(offset int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	}

	return []*weather.Day{
		{ID: 1, Date: day(0), Condition: "Sunny", Temperature: 78, Humidity: 52, WindSpeed: 8, Precipitation: 0},
		{ID: 2, Date: day(1), Condition: "Partly Cloudy", Temperature: 74, Humidity: 60, WindSpeed: 12, Precipitation: 10},
		{ID: 3, Date: day(2), Condition: "Rain Showers", Temperature: 66, Humidity: 85, WindSpeed: 15, Precipitation: 70},
		{ID: 4, Date: day(3), Condition: "Cloudy", Temperature: 69, Humidity: 72, WindSpeed: 10, Precipitation: 20},
		{ID: 5, Date: day(4), Condition: "Sunny", Temperature: 81, Humidity: 48, WindSpeed: 6, Precipitation: 0},
	}
}
