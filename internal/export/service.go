package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

// Service writes transaction ledgers out as CSV files.
type Service struct {
	transactions *transaction.Service
	farms        *farm.Service
}

func NewService(txSvc *transaction.Service, farmSvc *farm.Service) *Service {
	return &Service{transactions: txSvc, farms: farmSvc}
}

var header = []string{"date", "farm", "type", "category", "amount", "description"}

// Export writes the transactions matching the filter to a new CSV file
// in outputDir and returns its path. Each run gets a unique batch id
// in the filename so repeated exports never clobber each other.
func (s *Service) Export(ctx context.Context, filters transaction.Filters, outputDir string) (string, int, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("listing transactions: %w", err)
	}

	farms, err := s.farms.List(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("listing farms: %w", err)
	}

	txs = transaction.SortByDateDesc(transaction.Filter(txs, filters))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("creating output directory: %w", err)
	}

	name := fmt.Sprintf("ledger_%s_%s.csv", time.Now().Format("20060102"), uuid.NewString())
	path := filepath.Join(outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return "", 0, fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		record := []string{
			tx.Date.Format(time.DateOnly),
			farm.NameByID(farms, tx.FarmID),
			string(tx.Type),
			tx.Category,
			formatCents(tx.Amount),
			tx.Description,
		}
		if err := w.Write(record); err != nil {
			return "", 0, fmt.Errorf("writing record: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", 0, fmt.Errorf("flushing csv: %w", err)
	}

	return path, len(txs), nil
}

// GenerateReport renders a plain-text financial summary suitable for
// pasting into a message.
func (s *Service) GenerateReport(summary transaction.Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Income:   +%s\n", formatCents(summary.TotalIncome))
	fmt.Fprintf(&sb, "Expenses: -%s\n", formatCents(summary.TotalExpenses))
	fmt.Fprintf(&sb, "Net:      %s\n", formatCents(summary.NetProfit))

	if len(summary.Recent) > 0 {
		sb.WriteString("\nRecent transactions:\n")

		for _, tx := range summary.Recent {
			sign := "-"
			if tx.Type == transaction.TypeIncome {
				sign = "+"
			}

			amount := tx.Amount
			if amount < 0 {
				amount = -amount
			}

			fmt.Fprintf(&sb, "* %s | %s | %s%s\n",
				tx.Date.Format(time.DateOnly), tx.Description, sign, formatCents(amount))
		}
	}

	return sb.String()
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
