package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgrattan/fieldhand/internal/weather"
)

const forecastDays = 4

type WeatherModel struct {
	CommonModel
	weatherService *weather.Service

	current  *weather.Day
	forecast []*weather.Day

	loading bool
	err     error
}

func NewWeatherModel(weatherSvc *weather.Service) WeatherModel {
	return WeatherModel{weatherService: weatherSvc, loading: true}
}

func (m WeatherModel) Init() tea.Cmd {
	return m.loadWeatherCmd()
}

func (m WeatherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadWeatherMsg:
		m.loading = false
		m.err = msg.err
		m.current = msg.current
		m.forecast = msg.forecast

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.err = nil

			return m, m.loadWeatherCmd()
		}
	}

	return m, nil
}

func (m WeatherModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading weather...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error: %v\n\n(r to retry, Esc to back)", m.err),
		)
	}

	if m.current == nil {
		return lipgloss.NewStyle().Padding(2).Render("No weather data.\n\n(Esc to back)")
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Now: %s, %.0f°F\n", m.current.Condition, m.current.Temperature)
	fmt.Fprintf(&sb, "Humidity %.0f%% | Wind %.0f mph | Precipitation %.0f%%\n\n",
		m.current.Humidity, m.current.WindSpeed, m.current.Precipitation)

	tip := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(
		weather.FarmingTip(m.current.Condition, m.current.Temperature))
	fmt.Fprintf(&sb, "Tip: %s\n\n", tip)

	sb.WriteString("Forecast:\n")

	for _, d := range m.forecast {
		fmt.Fprintf(&sb, "  %s  %-14s %.0f°F  %.0f%% precip\n",
			d.Date.Format("Mon 01-02"), d.Condition, d.Temperature, d.Precipitation)
	}

	sb.WriteString("\n(r to refresh, Esc to back)")

	return lipgloss.NewStyle().Padding(1).Render(sb.String())
}

type loadWeatherMsg struct {
	current  *weather.Day
	forecast []*weather.Day
	err      error
}

func (m WeatherModel) loadWeatherCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		current, err := m.weatherService.Current(ctx)
		if err != nil {
			if errors.Is(err, weather.ErrNotFound) {
				return loadWeatherMsg{}
			}

			return loadWeatherMsg{err: err}
		}

		forecast, err := m.weatherService.Forecast(ctx, forecastDays)

		return loadWeatherMsg{current: current, forecast: forecast, err: err}
	}
}
