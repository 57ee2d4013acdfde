// Package ledger parses farm ledger CSV exports into transaction
// entries. The column layout is auto-detected by matching headers
// against known profiles, so files from different spreadsheet
// templates import without configuration.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/jgrattan/fieldhand/internal/encoding"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

// Entry is one parsed ledger row. FarmName is resolved to a farm id by
// the caller; AmountCents is the absolute magnitude with the sign
// carried by Type.
type Entry struct {
	Date        time.Time
	Type        transaction.Type
	Category    string
	AmountCents int64
	Description string
	FarmName    string
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Entry, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching ledger format: expected a header with date, amount and description columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:])
}

// colIndex maps lowercased column names to their index in the row.
type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts entries from data rows. Rows without a parseable
// date or amount are skipped; ledger exports routinely carry footer
// and subtotal rows.
func parseRows(p *Profile, cols colIndex, rows [][]string) ([]Entry, error) {
	var entries []Entry

	for _, row := range rows {
		date, ok := parseDate(row, cols[p.DateCol])
		if !ok {
			continue
		}

		cents, txType, ok := extractAmount(p, cols, row)
		if !ok {
			continue
		}

		e := Entry{
			Date:        date,
			Type:        txType,
			AmountCents: cents,
			Description: cellValue(row, cols[p.DescCol]),
		}

		if p.CategoryCol != "" {
			if idx, ok := cols[p.CategoryCol]; ok {
				e.Category = cellValue(row, idx)
			}
		}

		if e.Category == "" {
			e.Category = "Other"
		}

		if p.FarmCol != "" {
			if idx, ok := cols[p.FarmCol]; ok {
				e.FarmName = cellValue(row, idx)
			}
		}

		entries = append(entries, e)
	}

	return entries, nil
}

var dateLayouts = []string{"2006-01-02", "01/02/2006", "02-01-2006"}

func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func extractAmount(p *Profile, cols colIndex, row []string) (int64, transaction.Type, bool) {
	switch p.AmountMode {
	case amountSingle:
		return parseSingleAmount(row, cols[p.AmountCol])
	case amountSplit:
		return parseSplitAmount(row, cols[p.IncomeCol], cols[p.ExpenseCol])
	}

	return 0, "", false
}

// parseSingleAmount handles one signed amount column: negative values
// are expenses, positive values income.
func parseSingleAmount(row []string, idx int) (int64, transaction.Type, bool) {
	cents, err := parseAmount(cellValue(row, idx))
	if err != nil || cents == 0 {
		return 0, "", false
	}

	if cents < 0 {
		return -cents, transaction.TypeExpense, true
	}

	return cents, transaction.TypeIncome, true
}

// parseSplitAmount handles separate income and expense columns.
func parseSplitAmount(row []string, incomeIdx, expenseIdx int) (int64, transaction.Type, bool) {
	if cents, err := parseAmount(cellValue(row, incomeIdx)); err == nil && cents != 0 {
		return abs(cents), transaction.TypeIncome, true
	}

	if cents, err := parseAmount(cellValue(row, expenseIdx)); err == nil && cents != 0 {
		return abs(cents), transaction.TypeExpense, true
	}

	return 0, "", false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
