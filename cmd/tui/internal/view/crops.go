package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgrattan/fieldhand/internal/crop"
	"github.com/jgrattan/fieldhand/internal/farm"
)

type cropsState int

const (
	cropsStateBrowse cropsState = iota
	cropsStateSearch
	cropsStateAdd
)

var cropStatusFilters = []string{crop.FilterAll, string(crop.StatusPlanted), string(crop.StatusGrowing), string(crop.StatusReady), string(crop.StatusHarvested)}

var cropSortKeys = []crop.SortKey{crop.SortByName, crop.SortByStatus, crop.SortByFarm, crop.SortByPlanted, crop.SortByHarvest}

type CropsModel struct {
	CommonModel
	cropService *crop.Service
	farmService *farm.Service

	state cropsState
	table table.Model
	crops []*crop.Crop
	farms []*farm.Farm
	form  *huh.Form

	searchInput textinput.Model

	statusFilterIdx int
	farmFilterIdx   int // 0 means all farms
	sortKeyIdx      int
	sortOrder       crop.SortOrder

	loading bool
	err     error
	status  string

	// Form bindings
	formFarmID  int64
	formName    string
	formVariety string
	formPlanted string
	formHarvest string
	formNotes   string
}

func NewCropsModel(cropSvc *crop.Service, farmSvc *farm.Service) CropsModel {
	columns := []table.Column{
		{Title: "Crop", Width: 18},
		{Title: "Variety", Width: 16},
		{Title: "Farm", Width: 18},
		{Title: "Status", Width: 10},
		{Title: "Planted", Width: 12},
		{Title: "Harvest", Width: 12},
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

	ti := textinput.New()
	ti.Placeholder = "name or variety"
	ti.Width = 30

	return CropsModel{
		cropService: cropSvc,
		farmService: farmSvc,
		table:       t,
		searchInput: ti,
		sortOrder:   crop.Ascending,
		loading:     true,
	}
}

func (m CropsModel) Init() tea.Cmd {
	return m.loadCropsCmd()
}

func (m CropsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCropsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.crops = msg.crops
		m.farms = msg.farms
		m.err = nil
		m.refreshTable()

		return m, nil

	case cropSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = cropsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCropsCmd()

	case cropActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, m.loadCropsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case cropsStateBrowse:
		return m.updateBrowse(msg)
	case cropsStateSearch:
		return m.updateSearch(msg)
	case cropsStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m CropsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCropsCmd()
		case "/":
			m.state = cropsStateSearch
			m.table.Blur()
			m.searchInput.Focus()

			return m, nil
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(cropStatusFilters)
			m.refreshTable()

			return m, nil
		case "f":
			m.farmFilterIdx = (m.farmFilterIdx + 1) % (len(m.farms) + 1)
			m.refreshTable()

			return m, nil
		case "o":
			m.sortKeyIdx = (m.sortKeyIdx + 1) % len(cropSortKeys)
			m.refreshTable()

			return m, nil
		case "O":
			if m.sortOrder == crop.Ascending {
				m.sortOrder = crop.Descending
			} else {
				m.sortOrder = crop.Ascending
			}
			m.refreshTable()

			return m, nil
		case "a":
			return m.enterAddMode()
		case "h":
			if c := m.selectedCrop(); c != nil {
				return m, m.harvestCmd(c.ID)
			}
		case "x":
			if c := m.selectedCrop(); c != nil {
				return m, m.deleteCmd(c.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CropsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.searchInput.SetValue("")
			fallthrough
		case tea.KeyEnter:
			m.state = cropsStateBrowse
			m.searchInput.Blur()
			m.table.Focus()
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refreshTable()

	return m, cmd
}

func (m CropsModel) enterAddMode() (tea.Model, tea.Cmd) {
	if len(m.farms) == 0 {
		m.status = "Add a farm before adding crops"
		return m, nil
	}

	m.formFarmID = m.farms[0].ID
	m.formName = ""
	m.formVariety = ""
	m.formPlanted = FormatDate(time.Now())
	m.formHarvest = ""
	m.formNotes = ""

	farmOptions := make([]huh.Option[int64], 0, len(m.farms))
	for _, f := range m.farms {
		farmOptions = append(farmOptions, huh.NewOption(f.Name, f.ID))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Key("farm").
				Title("Farm").
				Options(farmOptions...).
				Value(&m.formFarmID),

			huh.NewInput().
				Key("name").
				Title("Crop Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("variety").
				Title("Variety").
				Value(&m.formVariety),

			huh.NewInput().
				Key("planted").
				Title("Planted Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formPlanted).
				Validate(validateDate),

			huh.NewInput().
				Key("harvest").
				Title("Expected Harvest").
				Placeholder("YYYY-MM-DD").
				Value(&m.formHarvest).
				Validate(validateDate),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Value(&m.formNotes),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = cropsStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}

	return nil
}

func (m CropsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = cropsStateBrowse
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

	return m, m.saveCropCmd()
}

func (m CropsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading crops...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error: %v\n\n(r to retry, Esc to back)", m.err),
		)
	}

	farmLabel := "All"
	if m.farmFilterIdx > 0 && m.farmFilterIdx <= len(m.farms) {
		farmLabel = m.farms[m.farmFilterIdx-1].Name
	}

	header := fmt.Sprintf(
		"[/] Search: %s | [s] Status: %s | [f] Farm: %s | [o/O] Sort: %s %s",
		m.searchInput.Value(),
		activeStyle(cropStatusFilters[m.statusFilterIdx]),
		activeStyle(farmLabel),
		activeStyle(string(cropSortKeys[m.sortKeyIdx])),
		string(m.sortOrder),
	)

	if m.state == cropsStateSearch {
		header = "Search: " + m.searchInput.View()
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	footer := "a: add | h: harvest | x: delete | r: refresh | Esc: back"

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Faint(true).Render(footer),
	)

	if m.state == cropsStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Add Crop\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// visible applies the current filters and sort to the loaded crops.
func (m CropsModel) visible() []*crop.Crop {
	var farmID int64
	if m.farmFilterIdx > 0 && m.farmFilterIdx <= len(m.farms) {
		farmID = m.farms[m.farmFilterIdx-1].ID
	}

	crops := crop.Filter(m.crops, crop.Filters{
		Search: m.searchInput.Value(),
		Status: cropStatusFilters[m.statusFilterIdx],
		FarmID: farmID,
	})

	return crop.SortBy(crops, cropSortKeys[m.sortKeyIdx], m.sortOrder, func(id int64) string {
		return farm.NameByID(m.farms, id)
	})
}

func (m *CropsModel) refreshTable() {
	visible := m.visible()

	now := time.Now()

	rows := make([]table.Row, 0, len(visible))
	for _, c := range visible {
		rows = append(rows, table.Row{
			c.Name,
			c.Variety,
			farm.NameByID(m.farms, c.FarmID),
			string(c.Status),
			FormatDate(c.PlantedDate),
			crop.HarvestCountdown(c.ExpectedHarvest, now),
		})
	}

	m.table.SetRows(rows)
}

func (m CropsModel) selectedCrop() *crop.Crop {
	visible := m.visible()

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(visible) {
		return nil
	}

	return visible[idx]
}

// Messages

type loadCropsMsg struct {
	crops []*crop.Crop
	farms []*farm.Farm
	err   error
}

func (m CropsModel) loadCropsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		crops, err := m.cropService.List(ctx)
		if err != nil {
			return loadCropsMsg{err: err}
		}

		farms, err := m.farmService.List(ctx)

		return loadCropsMsg{crops: crops, farms: farms, err: err}
	}
}

type cropSavedMsg struct {
	err error
}

func (m CropsModel) saveCropCmd() tea.Cmd {
	planted, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formPlanted))
	harvest, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formHarvest))

	params := crop.CreateParams{
		FarmID:          m.formFarmID,
		Name:            strings.TrimSpace(m.formName),
		Variety:         strings.TrimSpace(m.formVariety),
		PlantedDate:     planted,
		ExpectedHarvest: harvest,
		Notes:           strings.TrimSpace(m.formNotes),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.cropService.Create(ctx, params)

		return cropSavedMsg{err: err}
	}
}

type cropActionMsg struct {
	err error
}

func (m CropsModel) harvestCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.cropService.Harvest(ctx, id)

		return cropActionMsg{err: err}
	}
}

func (m CropsModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return cropActionMsg{err: m.cropService.Delete(ctx, id)}
	}
}
