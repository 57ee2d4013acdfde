package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgrattan/fieldhand/internal/farm"
)

type farmsState int

const (
	farmsStateBrowse farmsState = iota
	farmsStateAdd
)

type FarmsModel struct {
	CommonModel
	farmService *farm.Service

	state farmsState
	table table.Model
	farms []*farm.Farm
	form  *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formName     string
	formLocation string
	formAcres    string
}

func NewFarmsModel(farmSvc *farm.Service) FarmsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Location", Width: 24},
		{Title: "Acres", Width: 8},
		{Title: "Added", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return FarmsModel{
		farmService: farmSvc,
		table:       t,
		loading:     true,
	}
}

func (m FarmsModel) Init() tea.Cmd {
	return m.loadFarmsCmd()
}

func (m FarmsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadFarmsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.farms = msg.farms
		m.err = nil
		m.refreshTable()

		return m, nil

	case farmSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = farmsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadFarmsCmd()

	case farmDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		}

		return m, m.loadFarmsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case farmsStateBrowse:
		return m.updateBrowse(msg)
	case farmsStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m FarmsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadFarmsCmd()
		case "a":
			return m.enterAddMode()
		case "x":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.farms) {
				return m, m.deleteFarmCmd(m.farms[idx].ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m FarmsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formLocation = ""
	m.formAcres = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Farm Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("location").
				Title("Location").
				Placeholder("Town, State").
				Value(&m.formLocation),

			huh.NewInput().
				Key("acres").
				Title("Size (acres)").
				Value(&m.formAcres).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = farmsStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m FarmsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = farmsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveFarmCmd()
}

func (m FarmsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading farms...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error: %v\n\n(r to retry, Esc to back)", m.err),
		)
	}

	header := "Farms | a: add | x: delete | r: refresh | Esc: back"

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == farmsStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Add Farm\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *FarmsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.farms))
	for _, f := range m.farms {
		rows = append(rows, table.Row{
			f.Name,
			f.Location,
			fmt.Sprintf("%.1f", f.SizeAcres),
			FormatDate(f.CreatedAt),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadFarmsMsg struct {
	farms []*farm.Farm
	err   error
}

func (m FarmsModel) loadFarmsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		farms, err := m.farmService.List(ctx)

		return loadFarmsMsg{farms: farms, err: err}
	}
}

type farmSavedMsg struct {
	err error
}

func (m FarmsModel) saveFarmCmd() tea.Cmd {
	name := strings.TrimSpace(m.formName)
	location := strings.TrimSpace(m.formLocation)
	acres, _ := strconv.ParseFloat(strings.TrimSpace(m.formAcres), 64)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.farmService.Create(ctx, farm.CreateParams{
			Name:      name,
			Location:  location,
			SizeAcres: acres,
		})

		return farmSavedMsg{err: err}
	}
}

type farmDeletedMsg struct {
	err error
}

func (m FarmsModel) deleteFarmCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return farmDeletedMsg{err: m.farmService.Delete(ctx, id)}
	}
}
