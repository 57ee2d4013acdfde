package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

type financesState int

const (
	financesStateBrowse financesState = iota
	financesStateAdd
)

var txTypeFilters = []string{transaction.FilterAll, string(transaction.TypeIncome), string(transaction.TypeExpense)}

type FinancesModel struct {
	CommonModel
	txService   *transaction.Service
	farmService *farm.Service

	state   financesState
	table   table.Model
	txs     []*transaction.Transaction
	farms   []*farm.Farm
	summary transaction.Summary
	form    *huh.Form

	typeFilterIdx int

	loading bool
	err     error
	status  string

	// Form bindings
	formFarmID   int64
	formType     transaction.Type
	formCategory string
	formAmount   string
	formDesc     string
	formDate     string
}

func NewFinancesModel(txSvc *transaction.Service, farmSvc *farm.Service) FinancesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Farm", Width: 18},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 12},
		{Title: "Description", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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

	return FinancesModel{
		txService:   txSvc,
		farmService: farmSvc,
		table:       t,
		loading:     true,
	}
}

func (m FinancesModel) Init() tea.Cmd {
	return m.loadFinancesCmd()
}

func (m FinancesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadFinancesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.farms = msg.farms
		m.summary = msg.summary
		m.err = nil
		m.refreshTable()

		return m, nil

	case txSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = financesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadFinancesCmd()

	case txDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		}

		return m, m.loadFinancesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil
	}

	switch m.state {
	case financesStateBrowse:
		return m.updateBrowse(msg)
	case financesStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m FinancesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadFinancesCmd()
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % len(txTypeFilters)
			m.refreshTable()

			return m, nil
		case "a":
			return m.enterAddMode()
		case "x":
			if tx := m.selectedTx(); tx != nil {
				return m, m.deleteTxCmd(tx.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m FinancesModel) enterAddMode() (tea.Model, tea.Cmd) {
	if len(m.farms) == 0 {
		m.status = "Add a farm before recording transactions"
		return m, nil
	}

	m.formFarmID = m.farms[0].ID
	m.formType = transaction.TypeExpense
	m.formCategory = ""
	m.formAmount = ""
	m.formDesc = ""
	m.formDate = FormatDate(time.Now())

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

			huh.NewSelect[transaction.Type]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", transaction.TypeExpense),
					huh.NewOption("Income", transaction.TypeIncome),
				).
				Value(&m.formType),

			// Category choices depend on the selected type, so they are
			// recomputed whenever the type changes.
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				OptionsFunc(func() []huh.Option[string] {
					categories := transaction.CategoriesFor(m.formType)

					opts := make([]huh.Option[string], 0, len(categories))
					for _, c := range categories {
						opts = append(opts, huh.NewOption(c, c))
					}

					return opts
				}, &m.formType).
				Value(&m.formCategory),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("125.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil || d.IsNegative() || d.IsZero() {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(validateDate),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = financesStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m FinancesModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = financesStateBrowse
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

	return m, m.saveTxCmd()
}

func (m FinancesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading finances...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error: %v\n\n(r to retry, Esc to back)", m.err),
		)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Income", FormatAmount(m.summary.TotalIncome)),
		card("Expenses", FormatAmount(-m.summary.TotalExpenses)),
		card("Net", FormatAmount(m.summary.NetProfit)),
	)

	header := fmt.Sprintf("[t] Type: %s", activeStyle(txTypeFilters[m.typeFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	footer := "a: add | x: delete | r: refresh | Esc: back"

	content := lipgloss.JoinVertical(lipgloss.Left,
		cards,
		lipgloss.NewStyle().Padding(1, 0).Render(header),
		tableView,
		lipgloss.NewStyle().Faint(true).Render(footer),
	)

	if m.state == financesStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Record Transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// visible applies the type filter and the newest-first sort to the
// loaded transactions.
func (m FinancesModel) visible() []*transaction.Transaction {
	txs := transaction.Filter(m.txs, transaction.Filters{
		Type: txTypeFilters[m.typeFilterIdx],
	})

	return transaction.SortByDateDesc(txs)
}

func (m *FinancesModel) refreshTable() {
	visible := m.visible()

	rows := make([]table.Row, 0, len(visible))
	for _, tx := range visible {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			farm.NameByID(m.farms, tx.FarmID),
			string(tx.Type),
			tx.Category,
			FormatAmount(tx.Amount),
			tx.Description,
		})
	}

	m.table.SetRows(rows)
}

func (m FinancesModel) selectedTx() *transaction.Transaction {
	visible := m.visible()

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(visible) {
		return nil
	}

	return visible[idx]
}

// Messages

type loadFinancesMsg struct {
	txs     []*transaction.Transaction
	farms   []*farm.Farm
	summary transaction.Summary
	err     error
}

func (m FinancesModel) loadFinancesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx)
		if err != nil {
			return loadFinancesMsg{err: err}
		}

		farms, err := m.farmService.List(ctx)
		if err != nil {
			return loadFinancesMsg{err: err}
		}

		summary, err := m.txService.Summary(ctx)

		return loadFinancesMsg{txs: txs, farms: farms, summary: summary, err: err}
	}
}

type txSavedMsg struct {
	err error
}

func (m FinancesModel) saveTxCmd() tea.Cmd {
	amount, _ := decimal.NewFromString(strings.TrimSpace(m.formAmount))
	date, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formDate))

	params := transaction.CreateParams{
		FarmID:      m.formFarmID,
		Type:        m.formType,
		Category:    m.formCategory,
		Amount:      amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Description: strings.TrimSpace(m.formDesc),
		Date:        date,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.txService.Create(ctx, params)

		return txSavedMsg{err: err}
	}
}

type txDeletedMsg struct {
	err error
}

func (m FinancesModel) deleteTxCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return txDeletedMsg{err: m.txService.Delete(ctx, id)}
	}
}
