package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/jgrattan/fieldhand/internal/crop"
	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/task"
	"github.com/jgrattan/fieldhand/internal/transaction"
	"github.com/jgrattan/fieldhand/internal/weather"
)

const upcomingWindowDays = 7

type DashboardModel struct {
	CommonModel
	farmService    *farm.Service
	cropService    *crop.Service
	taskService    *task.Service
	txService      *transaction.Service
	weatherService *weather.Service

	farms    []*farm.Farm
	crops    []*crop.Crop
	upcoming []*task.Task
	summary  transaction.Summary
	today    *weather.Day

	loading bool
	err     error
}

func NewDashboardModel(
	farmSvc *farm.Service,
	cropSvc *crop.Service,
	taskSvc *task.Service,
	txSvc *transaction.Service,
	weatherSvc *weather.Service,
) DashboardModel {
	return DashboardModel{
		farmService:    farmSvc,
		cropService:    cropSvc,
		taskService:    taskSvc,
		txService:      txSvc,
		weatherService: weatherSvc,
		loading:        true,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.farms = msg.farms
			m.crops = msg.crops
			m.upcoming = msg.upcoming
			m.summary = msg.summary
			m.today = msg.today
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.err = nil

			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error: %v\n\n(r to retry, Esc to back)", m.err),
		)
	}

	var totalAcres float64
	for _, f := range m.farms {
		totalAcres += f.SizeAcres
	}

	activeCrops := 0

	for _, c := range m.crops {
		if c.Status != crop.StatusHarvested {
			activeCrops++
		}
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Farms", fmt.Sprintf("%d (%.1f acres)", len(m.farms), totalAcres)),
		card("Active Crops", fmt.Sprintf("%d", activeCrops)),
		card("Net Profit", FormatAmount(m.summary.NetProfit)),
	)

	sections := []string{cards, "", m.weatherSection(), "", m.tasksSection()}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n\n(r to refresh, Esc to back)",
	)
}

func (m DashboardModel) weatherSection() string {
	if m.today == nil {
		return "No weather data."
	}

	return fmt.Sprintf("Today: %s, %.0f°F\nTip: %s",
		m.today.Condition, m.today.Temperature,
		weather.FarmingTip(m.today.Condition, m.today.Temperature))
}

func (m DashboardModel) tasksSection() string {
	if len(m.upcoming) == 0 {
		return "No tasks due this week."
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Due in the next %d days:\n", upcomingWindowDays)

	now := time.Now()

	for _, t := range m.upcoming {
		badge := ""
		if task.IsOverdue(t, now) {
			badge = " " + overdueStyle.Render("OVERDUE")
		} else if task.IsDueSoon(t, now) {
			badge = " " + dueSoonStyle.Render("DUE SOON")
		}

		fmt.Fprintf(&sb, "* %s  %s (%s)%s\n",
			FormatDate(t.DueDate), t.Title, t.Priority, badge)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func card(title, value string) string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(fmt.Sprintf("%s\n%s", lipgloss.NewStyle().Faint(true).Render(title), value))
}

var (
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dueSoonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type dashboardLoadedMsg struct {
	farms    []*farm.Farm
	crops    []*crop.Crop
	upcoming []*task.Task
	summary  transaction.Summary
	today    *weather.Day
	err      error
}

// loadCmd fetches every dashboard section concurrently and fails fast
// on the first error.
func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var out dashboardLoadedMsg

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() (err error) {
			out.farms, err = m.farmService.List(ctx)
			return err
		})
		g.Go(func() (err error) {
			out.crops, err = m.cropService.List(ctx)
			return err
		})
		g.Go(func() (err error) {
			out.upcoming, err = m.taskService.Upcoming(ctx, upcomingWindowDays)
			return err
		})
		g.Go(func() (err error) {
			out.summary, err = m.txService.Summary(ctx)
			return err
		})
		g.Go(func() (err error) {
			out.today, err = m.weatherService.Today(ctx)
			if errors.Is(err, weather.ErrNotFound) {
				out.today, err = nil, nil
			}
			return err
		})

		out.err = g.Wait()

		return out
	}
}
