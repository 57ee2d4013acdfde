package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/importer/ledger"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

type Service struct {
	ledgerImporter Importer
	transactions   *transaction.Service
	farms          *farm.Service
}

func NewService(txSvc *transaction.Service, farmSvc *farm.Service) *Service {
	return &Service{
		ledgerImporter: ledger.NewParser(),
		transactions:   txSvc,
		farms:          farmSvc,
	}
}

func (s *Service) Parse(format Format, r io.Reader) ([]ledger.Entry, error) {
	switch format {
	case FormatLedger:
		return s.ledgerImporter.Parse(r)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// Result summarizes an import run.
type Result struct {
	Imported []*transaction.Transaction
	Skipped  []ledger.Entry // exact duplicates of existing records
}

// dupKey identifies a transaction well enough to skip re-imports of
// the same file.
type dupKey struct {
	Date        string
	Amount      int64
	Type        transaction.Type
	Description string
}

func entryKey(e ledger.Entry) dupKey {
	return dupKey{
		Date:        e.Date.Format(time.DateOnly),
		Amount:      transaction.SignedAmount(e.Type, e.AmountCents),
		Type:        e.Type,
		Description: e.Description,
	}
}

// Import creates transactions for entries not already present.
// Entries naming an unknown farm fall back to defaultFarmID.
func (s *Service) Import(ctx context.Context, entries []ledger.Entry, defaultFarmID int64) (*Result, error) {
	if len(entries) == 0 {
		return &Result{}, nil
	}

	existing, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	seen := make(map[dupKey]struct{}, len(existing))

	for _, tx := range existing {
		seen[dupKey{
			Date:        tx.Date.Format(time.DateOnly),
			Amount:      tx.Amount,
			Type:        tx.Type,
			Description: tx.Description,
		}] = struct{}{}
	}

	farms, err := s.farms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing farms: %w", err)
	}

	result := &Result{}

	for _, e := range entries {
		k := entryKey(e)
		if _, found := seen[k]; found {
			result.Skipped = append(result.Skipped, e)
			continue
		}

		tx, err := s.transactions.Create(ctx, transaction.CreateParams{
			FarmID:      s.resolveFarm(farms, e.FarmName, defaultFarmID),
			Type:        e.Type,
			Category:    e.Category,
			Amount:      e.AmountCents,
			Description: e.Description,
			Date:        e.Date,
		})
		if err != nil {
			return nil, fmt.Errorf("creating transaction: %w", err)
		}

		seen[k] = struct{}{}
		result.Imported = append(result.Imported, tx)
	}

	return result, nil
}

func (s *Service) resolveFarm(farms []*farm.Farm, name string, defaultID int64) int64 {
	if name == "" {
		return defaultID
	}

	for _, f := range farms {
		if strings.EqualFold(f.Name, name) {
			return f.ID
		}
	}

	return defaultID
}
