package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFarmSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

// ImportModel walks the user through importing a ledger CSV: pick the
// fallback farm for rows that name no farm, pick the file, run the
// import.
type ImportModel struct {
	CommonModel
	importService *importer.Service
	farmService   *farm.Service

	state      importState
	filePicker filepicker.Model

	farms      []*farm.Farm
	farmCursor int

	status string
	err    error
}

func NewImportModel(impSvc *importer.Service, farmSvc *farm.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService: impSvc,
		farmService:   farmSvc,
		filePicker:    fp,
	}
}

func (m ImportModel) Init() tea.Cmd {
	return m.loadImportFarmsCmd()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importFarmsMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.farms = msg.farms

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateFarmSelect {
			return m.updateFarmSelect(msg)
		}

	case importDoneMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d transactions, skipped %d duplicates.", msg.imported, msg.skipped)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateFarmSelect
		return m, nil
	case importStateResult:
		m.state = importStateFarmSelect
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateFarmSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.farmCursor > 0 {
			m.farmCursor--
		}
	case tea.KeyDown:
		if m.farmCursor < len(m.farms)-1 {
			m.farmCursor++
		}
	case tea.KeyEnter:
		if len(m.farms) == 0 {
			return m, nil
		}

		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFarmSelect:
		return m.viewFarmSelect()
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select ledger CSV to import:\n\n" + m.filePicker.View(),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewFarmSelect() string {
	if len(m.farms) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No farms yet. Add a farm first.\n\n(Esc to back)")
	}

	s := "Default farm for unmatched rows:\n\n"

	for i, f := range m.farms {
		cursor := " "
		if i == m.farmCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, f.Name)
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

// Messages

type importFarmsMsg struct {
	farms []*farm.Farm
	err   error
}

func (m ImportModel) loadImportFarmsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		farms, err := m.farmService.List(ctx)

		return importFarmsMsg{farms: farms, err: err}
	}
}

type importDoneMsg struct {
	imported int
	skipped  int
	err      error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	defaultFarmID := m.farms[m.farmCursor].ID

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		entries, err := m.importService.Parse(importer.FormatLedger, f)
		if err != nil {
			return importDoneMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.importService.Import(ctx, entries, defaultFarmID)
		if err != nil {
			return importDoneMsg{err: err}
		}

		return importDoneMsg{imported: len(result.Imported), skipped: len(result.Skipped)}
	}
}
