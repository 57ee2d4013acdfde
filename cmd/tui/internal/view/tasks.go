package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/task"
)

type tasksState int

const (
	tasksStateBrowse tasksState = iota
	tasksStateAdd
)

var (
	taskStatusFilters = []string{task.StatusAll, task.StatusPending, task.StatusCompleted, task.StatusOverdue}

	taskPriorityFilters = []string{task.StatusAll, string(task.PriorityHigh), string(task.PriorityMedium), string(task.PriorityLow)}

	taskCategoryFilters = []string{
		task.StatusAll,
		string(task.CategoryWatering),
		string(task.CategoryHarvesting),
		string(task.CategoryPlanting),
		string(task.CategoryFertilizing),
		string(task.CategoryWeeding),
		string(task.CategoryMaintenance),
	}
)

type TasksModel struct {
	CommonModel
	taskService *task.Service
	farmService *farm.Service

	state tasksState
	table table.Model
	tasks []*task.Task
	farms []*farm.Farm
	form  *huh.Form

	statusFilterIdx   int
	priorityFilterIdx int
	categoryFilterIdx int

	loading bool
	err     error
	status  string

	// Form bindings
	formFarmID   int64
	formTitle    string
	formDesc     string
	formCategory task.Category
	formPriority task.Priority
	formDue      string
}

func NewTasksModel(taskSvc *task.Service, farmSvc *farm.Service) TasksModel {
	columns := []table.Column{
		{Title: "Due", Width: 12},
		{Title: "Task", Width: 28},
		{Title: "Farm", Width: 18},
		{Title: "Category", Width: 12},
		{Title: "Priority", Width: 8},
		{Title: "Status", Width: 10},
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

	return TasksModel{
		taskService: taskSvc,
		farmService: farmSvc,
		table:       t,
		loading:     true,
	}
}

func (m TasksModel) Init() tea.Cmd {
	return m.loadTasksCmd()
}

func (m TasksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTasksMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.tasks = msg.tasks
		m.farms = msg.farms
		m.err = nil
		m.refreshTable()

		return m, nil

	case taskSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = tasksStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadTasksCmd()

	case taskActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, m.loadTasksCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case tasksStateBrowse:
		return m.updateBrowse(msg)
	case tasksStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TasksModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTasksCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(taskStatusFilters)
			m.refreshTable()

			return m, nil
		case "p":
			m.priorityFilterIdx = (m.priorityFilterIdx + 1) % len(taskPriorityFilters)
			m.refreshTable()

			return m, nil
		case "c":
			m.categoryFilterIdx = (m.categoryFilterIdx + 1) % len(taskCategoryFilters)
			m.refreshTable()

			return m, nil
		case "a":
			return m.enterAddMode()
		case "d":
			if t := m.selectedTask(); t != nil && !t.Completed {
				return m, m.completeCmd(t.ID)
			}
		case "x":
			if t := m.selectedTask(); t != nil {
				return m, m.deleteCmd(t.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TasksModel) enterAddMode() (tea.Model, tea.Cmd) {
	if len(m.farms) == 0 {
		m.status = "Add a farm before adding tasks"
		return m, nil
	}

	m.formFarmID = m.farms[0].ID
	m.formTitle = ""
	m.formDesc = ""
	m.formCategory = task.CategoryWatering
	m.formPriority = task.PriorityMedium
	m.formDue = FormatDate(time.Now().AddDate(0, 0, 1))

	farmOptions := make([]huh.Option[int64], 0, len(m.farms))
	for _, f := range m.farms {
		farmOptions = append(farmOptions, huh.NewOption(f.Name, f.ID))
	}

	categoryOptions := make([]huh.Option[task.Category], 0, len(taskCategoryFilters)-1)
	for _, c := range taskCategoryFilters[1:] {
		categoryOptions = append(categoryOptions, huh.NewOption(c, task.Category(c)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Key("farm").
				Title("Farm").
				Options(farmOptions...).
				Value(&m.formFarmID),

			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewSelect[task.Category]().
				Key("category").
				Title("Category").
				Options(categoryOptions...).
				Value(&m.formCategory),

			huh.NewSelect[task.Priority]().
				Key("priority").
				Title("Priority").
				Options(
					huh.NewOption("High", task.PriorityHigh),
					huh.NewOption("Medium", task.PriorityMedium),
					huh.NewOption("Low", task.PriorityLow),
				).
				Value(&m.formPriority),

			huh.NewInput().
				Key("due").
				Title("Due Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDue).
				Validate(validateDate),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = tasksStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m TasksModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = tasksStateBrowse
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

	return m, m.saveTaskCmd()
}

func (m TasksModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading tasks...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error: %v\n\n(r to retry, Esc to back)", m.err),
		)
	}

	header := fmt.Sprintf(
		"[s] Status: %s | [p] Priority: %s | [c] Category: %s",
		activeStyle(taskStatusFilters[m.statusFilterIdx]),
		activeStyle(taskPriorityFilters[m.priorityFilterIdx]),
		activeStyle(taskCategoryFilters[m.categoryFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	footer := "a: add | d: done | x: delete | r: refresh | Esc: back"

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Faint(true).Render(footer),
	)

	if m.state == tasksStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Add Task\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// visible applies the current filters and the canonical sort to the
// loaded tasks.
func (m TasksModel) visible() []*task.Task {
	now := time.Now()

	tasks := task.Filter(m.tasks, task.Filters{
		Status:   taskStatusFilters[m.statusFilterIdx],
		Priority: taskPriorityFilters[m.priorityFilterIdx],
		Category: taskCategoryFilters[m.categoryFilterIdx],
	}, now)

	return task.SortDefault(tasks)
}

func taskStatusLabel(t *task.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "done"
	case task.IsOverdue(t, now):
		return overdueStyle.Render("OVERDUE")
	case task.IsDueSoon(t, now):
		return dueSoonStyle.Render("DUE SOON")
	default:
		return "pending"
	}
}

func (m *TasksModel) refreshTable() {
	visible := m.visible()

	now := time.Now()

	rows := make([]table.Row, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, table.Row{
			FormatDate(t.DueDate),
			t.Title,
			farm.NameByID(m.farms, t.FarmID),
			string(t.Category),
			string(t.Priority),
			taskStatusLabel(t, now),
		})
	}

	m.table.SetRows(rows)
}

func (m TasksModel) selectedTask() *task.Task {
	visible := m.visible()

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(visible) {
		return nil
	}

	return visible[idx]
}

// Messages

type loadTasksMsg struct {
	tasks []*task.Task
	farms []*farm.Farm
	err   error
}

func (m TasksModel) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tasks, err := m.taskService.List(ctx)
		if err != nil {
			return loadTasksMsg{err: err}
		}

		farms, err := m.farmService.List(ctx)

		return loadTasksMsg{tasks: tasks, farms: farms, err: err}
	}
}

type taskSavedMsg struct {
	err error
}

func (m TasksModel) saveTaskCmd() tea.Cmd {
	due, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formDue))

	params := task.CreateParams{
		FarmID:      m.formFarmID,
		Title:       strings.TrimSpace(m.formTitle),
		Description: strings.TrimSpace(m.formDesc),
		Category:    m.formCategory,
		Priority:    m.formPriority,
		DueDate:     due,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.taskService.Create(ctx, params)

		return taskSavedMsg{err: err}
	}
}

type taskActionMsg struct {
	err error
}

func (m TasksModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.taskService.Complete(ctx, id)

		return taskActionMsg{err: err}
	}
}

func (m TasksModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return taskActionMsg{err: m.taskService.Delete(ctx, id)}
	}
}
