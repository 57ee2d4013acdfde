package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jgrattan/fieldhand/internal/config"
	"github.com/jgrattan/fieldhand/internal/crop"
	cropStore "github.com/jgrattan/fieldhand/internal/crop/store"
	"github.com/jgrattan/fieldhand/internal/database"
	"github.com/jgrattan/fieldhand/internal/export"
	"github.com/jgrattan/fieldhand/internal/farm"
	farmStore "github.com/jgrattan/fieldhand/internal/farm/store"
	"github.com/jgrattan/fieldhand/internal/fixture"
	fieldhandHttp "github.com/jgrattan/fieldhand/internal/http"
	cropHandler "github.com/jgrattan/fieldhand/internal/http/crop"
	exportHandler "github.com/jgrattan/fieldhand/internal/http/export"
	farmHandler "github.com/jgrattan/fieldhand/internal/http/farm"
	importHandler "github.com/jgrattan/fieldhand/internal/http/importcsv"
	profileHandler "github.com/jgrattan/fieldhand/internal/http/profile"
	taskHandler "github.com/jgrattan/fieldhand/internal/http/task"
	txHandler "github.com/jgrattan/fieldhand/internal/http/transaction"
	weatherHandler "github.com/jgrattan/fieldhand/internal/http/weather"
	"github.com/jgrattan/fieldhand/internal/importer"
	"github.com/jgrattan/fieldhand/internal/task"
	taskStore "github.com/jgrattan/fieldhand/internal/task/store"
	"github.com/jgrattan/fieldhand/internal/transaction"
	txStore "github.com/jgrattan/fieldhand/internal/transaction/store"
	"github.com/jgrattan/fieldhand/internal/weather"
	weatherStore "github.com/jgrattan/fieldhand/internal/weather/store"
)

type repositories struct {
	farms        farm.Repository
	crops        crop.Repository
	tasks        task.Repository
	transactions transaction.Repository
	weather      weather.Repository
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repos, cleanup, err := newRepositories(cfg)
	if err != nil {
		slog.Error("failed to set up storage", "error", err, "store", cfg.App.Store)
		os.Exit(1)
	}
	defer cleanup()

	var (
		farmService        = farm.NewService(repos.farms)
		cropService        = crop.NewService(repos.crops)
		taskService        = task.NewService(repos.tasks)
		transactionService = transaction.NewService(repos.transactions)
		weatherService     = weather.NewService(repos.weather)
		importService      = importer.NewService(transactionService, farmService)
		exportService      = export.NewService(transactionService, farmService)
	)

	var (
		farmH    = farmHandler.NewHandler(farmService)
		cropH    = cropHandler.NewHandler(cropService)
		taskH    = taskHandler.NewHandler(taskService)
		txH      = txHandler.NewHandler(transactionService)
		weatherH = weatherHandler.NewHandler(weatherService)
		importH  = importHandler.NewHandler(importService)
		exportH  = exportHandler.NewHandler(exportService, transactionService, cfg.Export.Dir)
		profileH = profileHandler.NewHandler(cfg.Auth.Secret, cfg.User.DisplayName)
	)

	router := fieldhandHttp.New(farmH, cropH, taskH, txH, weatherH, importH, exportH, profileH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "store", cfg.App.Store)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newRepositories(cfg *config.Config) (*repositories, func(), error) {
	switch cfg.App.Store {
	case config.StoreFixture:
		now := time.Now()

		return &repositories{
			farms:        fixture.NewFarmStore(fixture.SeedFarms(now)),
			crops:        fixture.NewCropStore(fixture.SeedCrops(now)),
			tasks:        fixture.NewTaskStore(fixture.SeedTasks(now)),
			transactions: fixture.NewTransactionStore(fixture.SeedTransactions(now)),
			weather:      fixture.NewWeatherStore(fixture.SeedWeather(now)),
		}, func() {}, nil

	case config.StorePostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}

		if err := database.EnsureSchema(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ensuring schema: %w", err)
		}

		return &repositories{
			farms:        farmStore.New(db),
			crops:        cropStore.New(db),
			tasks:        taskStore.New(db),
			transactions: txStore.New(db),
			weather:      weatherStore.New(db),
		}, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.App.Store)
	}
}
