package export_test

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrattan/fieldhand/internal/export"
	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/fixture"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

func newTestService() (*export.Service, *transaction.Service) {
	farmSvc := farm.NewService(fixture.NewFarmStore([]*farm.Farm{
		{ID: 1, Name: "Green Valley Farm"},
	}))

	txSvc := transaction.NewService(fixture.NewTransactionStore([]*transaction.Transaction{
		{ID: 1, FarmID: 1, Type: transaction.TypeIncome, Category: "Crop Sales", Amount: 452000, Description: "Corn sale", Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, FarmID: 1, Type: transaction.TypeExpense, Category: "Seeds", Amount: -38750, Description: "Seed order", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 3, FarmID: 9, Type: transaction.TypeExpense, Category: "Fuel", Amount: -21500, Description: "Diesel", Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
	}))

	return export.NewService(txSvc, farmSvc), txSvc
}

func TestExport(t *testing.T) {
	svc, _ := newTestService()

	dir := t.TempDir()

	path, count, err := svc.Export(context.Background(), transaction.Filters{}, dir)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"date", "farm", "type", "category", "amount", "description"}, rows[0])

	// Newest first.
	assert.Equal(t, "2024-03-20", rows[1][0])
	// A transaction pointing at a deleted farm still exports.
	assert.Equal(t, "Unknown Farm", rows[1][1])
	assert.Equal(t, "-215.00", rows[1][4])

	assert.Equal(t, "Green Valley Farm", rows[2][1])
	assert.Equal(t, "4520.00", rows[2][4])
}

func TestExport_Filtered(t *testing.T) {
	svc, _ := newTestService()

	dir := t.TempDir()

	_, count, err := svc.Export(context.Background(), transaction.Filters{Type: string(transaction.TypeExpense)}, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestExport_UniqueFilenames(t *testing.T) {
	svc, _ := newTestService()

	dir := t.TempDir()

	first, _, err := svc.Export(context.Background(), transaction.Filters{}, dir)
	require.NoError(t, err)

	second, _, err := svc.Export(context.Background(), transaction.Filters{}, dir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateReport(t *testing.T) {
	svc, txSvc := newTestService()

	summary, err := txSvc.Summary(context.Background())
	require.NoError(t, err)

	report := svc.GenerateReport(summary)

	assert.Contains(t, report, "Income:   +4520.00")
	assert.Contains(t, report, "Expenses: -602.50")
	assert.Contains(t, report, "Net:      3917.50")
	assert.Contains(t, report, "Corn sale")
}
