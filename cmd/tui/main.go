package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jgrattan/fieldhand/cmd/tui/internal/view"
	"github.com/jgrattan/fieldhand/internal/config"
	"github.com/jgrattan/fieldhand/internal/crop"
	cropStore "github.com/jgrattan/fieldhand/internal/crop/store"
	"github.com/jgrattan/fieldhand/internal/database"
	"github.com/jgrattan/fieldhand/internal/export"
	"github.com/jgrattan/fieldhand/internal/farm"
	farmStore "github.com/jgrattan/fieldhand/internal/farm/store"
	"github.com/jgrattan/fieldhand/internal/fixture"
	"github.com/jgrattan/fieldhand/internal/importer"
	"github.com/jgrattan/fieldhand/internal/task"
	taskStore "github.com/jgrattan/fieldhand/internal/task/store"
	"github.com/jgrattan/fieldhand/internal/transaction"
	txStore "github.com/jgrattan/fieldhand/internal/transaction/store"
	"github.com/jgrattan/fieldhand/internal/weather"
	weatherStore "github.com/jgrattan/fieldhand/internal/weather/store"
)

type model struct {
	farmService    *farm.Service
	cropService    *crop.Service
	taskService    *task.Service
	txService      *transaction.Service
	weatherService *weather.Service
	importService  *importer.Service
	exportService  *export.Service

	displayName string
	currentView View

	dashboardView view.DashboardModel
	farmsView     view.FarmsModel
	cropsView     view.CropsModel
	tasksView     view.TasksModel
	financesView  view.FinancesModel
	weatherView   view.WeatherModel
	importView    view.ImportModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewFarms     View = 2
	ViewCrops     View = 3
	ViewTasks     View = 4
	ViewFinances  View = 5
	ViewWeather   View = 6
	ViewImport    View = 7
	ViewExport    View = 8
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		farmRepo    farm.Repository
		cropRepo    crop.Repository
		taskRepo    task.Repository
		txRepo      transaction.Repository
		weatherRepo weather.Repository
	)

	switch cfg.App.Store {
	case config.StorePostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		if err := database.EnsureSchema(db); err != nil {
			slog.Error("failed to ensure schema", "error", err)
			os.Exit(1)
		}

		farmRepo = farmStore.New(db)
		cropRepo = cropStore.New(db)
		taskRepo = taskStore.New(db)
		txRepo = txStore.New(db)
		weatherRepo = weatherStore.New(db)

	default:
		now := time.Now()
		farmRepo = fixture.NewFarmStore(fixture.SeedFarms(now))
		cropRepo = fixture.NewCropStore(fixture.SeedCrops(now))
		taskRepo = fixture.NewTaskStore(fixture.SeedTasks(now))
		txRepo = fixture.NewTransactionStore(fixture.SeedTransactions(now))
		weatherRepo = fixture.NewWeatherStore(fixture.SeedWeather(now))
	}

	farmSvc := farm.NewService(farmRepo)
	cropSvc := crop.NewService(cropRepo)
	taskSvc := task.NewService(taskRepo)
	txSvc := transaction.NewService(txRepo)
	weatherSvc := weather.NewService(weatherRepo)
	impSvc := importer.NewService(txSvc, farmSvc)
	expSvc := export.NewService(txSvc, farmSvc)

	return model{
		farmService:    farmSvc,
		cropService:    cropSvc,
		taskService:    taskSvc,
		txService:      txSvc,
		weatherService: weatherSvc,
		importService:  impSvc,
		exportService:  expSvc,
		displayName:    cfg.User.DisplayName,
		currentView:    ViewMenu,
		dashboardView:  view.NewDashboardModel(farmSvc, cropSvc, taskSvc, txSvc, weatherSvc),
		farmsView:      view.NewFarmsModel(farmSvc),
		cropsView:      view.NewCropsModel(cropSvc, farmSvc),
		tasksView:      view.NewTasksModel(taskSvc, farmSvc),
		financesView:   view.NewFinancesModel(txSvc, farmSvc),
		weatherView:    view.NewWeatherModel(weatherSvc),
		importView:     view.NewImportModel(impSvc, farmSvc),
		exportView:     view.NewExportModel(expSvc, txSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.farmService, m.cropService, m.taskService, m.txService, m.weatherService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewFarms
				m.farmsView = view.NewFarmsModel(m.farmService)

				return m, m.farmsView.Init()
			case "3":
				m.currentView = ViewCrops
				m.cropsView = view.NewCropsModel(m.cropService, m.farmService)

				return m, m.cropsView.Init()
			case "4":
				m.currentView = ViewTasks
				m.tasksView = view.NewTasksModel(m.taskService, m.farmService)

				return m, m.tasksView.Init()
			case "5":
				m.currentView = ViewFinances
				m.financesView = view.NewFinancesModel(m.txService, m.farmService)

				return m, m.financesView.Init()
			case "6":
				m.currentView = ViewWeather
				m.weatherView = view.NewWeatherModel(m.weatherService)

				return m, m.weatherView.Init()
			case "7":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.farmService)

				return m, m.importView.Init()
			case "8":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.txService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewFarms:
		var newModel tea.Model
		newModel, cmd = m.farmsView.Update(msg)
		m.farmsView = newModel.(view.FarmsModel)
	case ViewCrops:
		var newModel tea.Model
		newModel, cmd = m.cropsView.Update(msg)
		m.cropsView = newModel.(view.CropsModel)
	case ViewTasks:
		var newModel tea.Model
		newModel, cmd = m.tasksView.Update(msg)
		m.tasksView = newModel.(view.TasksModel)
	case ViewFinances:
		var newModel tea.Model
		newModel, cmd = m.financesView.Update(msg)
		m.financesView = newModel.(view.FinancesModel)
	case ViewWeather:
		var newModel tea.Model
		newModel, cmd = m.weatherView.Update(msg)
		m.weatherView = newModel.(view.WeatherModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Fieldhand | Welcome, %s\n\n", m.displayName) +
				"1. Dashboard\n" +
				"2. Farms\n" +
				"3. Crops\n" +
				"4. Tasks\n" +
				"5. Finances\n" +
				"6. Weather\n" +
				"7. Import Ledger CSV\n" +
				"8. Export Transactions\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewFarms:
		return m.farmsView.View()
	case ViewCrops:
		return m.cropsView.View()
	case ViewTasks:
		return m.tasksView.View()
	case ViewFinances:
		return m.financesView.View()
	case ViewWeather:
		return m.weatherView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
