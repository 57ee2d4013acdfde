package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgrattan/fieldhand/internal/export"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

type ExportModel struct {
	CommonModel
	exportService *export.Service
	txService     *transaction.Service

	state exportState
	err   error

	form    *huh.Form
	path    string
	txType  string
	spinner spinner.Model

	resultPath  string
	resultCount int
	report      string
}

func NewExportModel(exportSvc *export.Service, txSvc *transaction.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		exportService: exportSvc,
		txService:     txSvc,
		path:          "./exports",
		txType:        transaction.FilterAll,
		spinner:       s,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Transactions").
				Options(
					huh.NewOption("All", transaction.FilterAll),
					huh.NewOption("Income only", string(transaction.TypeIncome)),
					huh.NewOption("Expenses only", string(transaction.TypeExpense)),
				).
				Value(&m.txType),

			huh.NewInput().
				Key("path").
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&m.path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(m.txType, m.path))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(csvExportedMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.resultPath = result.path
		m.resultCount = result.count
		m.report = result.report

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Exporting transactions...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			fmt.Sprintf("Wrote %d transactions to %s", m.resultCount, m.resultPath),
			"",
			m.report,
		),
	)
}

type csvExportedMsg struct {
	path   string
	count  int
	report string
	err    error
}

const exportTimeout = 2 * time.Minute

func (m ExportModel) runExportCmd(txType, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		outPath, count, err := m.exportService.Export(ctx, transaction.Filters{Type: txType}, path)
		if err != nil {
			return csvExportedMsg{err: err}
		}

		summary, err := m.txService.Summary(ctx)
		if err != nil {
			return csvExportedMsg{err: err}
		}

		return csvExportedMsg{
			path:   outPath,
			count:  count,
			report: m.exportService.GenerateReport(summary),
		}
	}
}
