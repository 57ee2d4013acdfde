package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/fixture"
	"github.com/jgrattan/fieldhand/internal/importer"
	"github.com/jgrattan/fieldhand/internal/importer/ledger"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

func newTestServices(t *testing.T) (*importer.Service, *transaction.Service) {
	t.Helper()

	farmSvc := farm.NewService(fixture.NewFarmStore([]*farm.Farm{
		{ID: 1, Name: "Green Valley Farm"},
		{ID: 2, Name: "Sunrise Acres"},
	}))
	txSvc := transaction.NewService(fixture.NewTransactionStore(nil))

	return importer.NewService(txSvc, farmSvc), txSvc
}

func TestImport_ResolvesFarms(t *testing.T) {
	svc, txSvc := newTestServices(t)

	entries := []ledger.Entry{
		{
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Type:        transaction.TypeExpense,
			Category:    "Seeds",
			AmountCents: 38750,
			Description: "Seed order",
			FarmName:    "green valley farm", // matched case-insensitively
		},
		{
			Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Type:        transaction.TypeIncome,
			Category:    "Crop Sales",
			AmountCents: 123456,
			Description: "Corn sale",
			FarmName:    "Nowhere Farm", // unknown, falls back
		},
	}

	result, err := svc.Import(context.Background(), entries, 2)
	require.NoError(t, err)
	require.Len(t, result.Imported, 2)
	assert.Empty(t, result.Skipped)

	assert.Equal(t, int64(1), result.Imported[0].FarmID)
	assert.Equal(t, int64(-38750), result.Imported[0].Amount)
	assert.Equal(t, int64(2), result.Imported[1].FarmID)
	assert.Equal(t, int64(123456), result.Imported[1].Amount)

	stored, err := txSvc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestImport_SkipsDuplicates(t *testing.T) {
	svc, txSvc := newTestServices(t)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := txSvc.Create(context.Background(), transaction.CreateParams{
		FarmID:      1,
		Type:        transaction.TypeExpense,
		Category:    "Seeds",
		Amount:      38750,
		Description: "Seed order",
		Date:        date,
	})
	require.NoError(t, err)

	entries := []ledger.Entry{
		{Date: date, Type: transaction.TypeExpense, Category: "Seeds", AmountCents: 38750, Description: "Seed order"},
		{Date: date, Type: transaction.TypeExpense, Category: "Seeds", AmountCents: 38750, Description: "Seed order"},
		{Date: date, Type: transaction.TypeExpense, Category: "Fuel", AmountCents: 21500, Description: "Diesel"},
	}

	result, err := svc.Import(context.Background(), entries, 1)
	require.NoError(t, err)

	// First entry duplicates the stored transaction; the second
	// duplicates the first within the same batch.
	assert.Len(t, result.Imported, 1)
	assert.Len(t, result.Skipped, 2)
	assert.Equal(t, "Diesel", result.Imported[0].Description)
}

func TestImport_Empty(t *testing.T) {
	svc, _ := newTestServices(t)

	result, err := svc.Import(context.Background(), nil, 1)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Skipped)
}

func TestParse_UnknownFormat(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Parse(importer.Format("qif"), nil)
	assert.Error(t, err)
}
