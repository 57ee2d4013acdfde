package ledger_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrattan/fieldhand/internal/importer/ledger"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

func TestParse_Standard(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Category,Farm,Amount",
		"2024-03-01,Seed order,Seeds,Green Valley Farm,-387.50",
		`2024-03-15,"Corn sale, farmers market",Crop Sales,Green Valley Farm,"$1,234.56"`,
		"2024-03-20,Diesel,,Sunrise Acres,-215.00",
		"Total,,,,631.06",
	}, "\n")

	p := ledger.NewParser()
	entries, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.Equal(t, transaction.TypeExpense, entries[0].Type)
	assert.Equal(t, int64(38750), entries[0].AmountCents)
	assert.Equal(t, "Seed order", entries[0].Description)
	assert.Equal(t, "Seeds", entries[0].Category)
	assert.Equal(t, "Green Valley Farm", entries[0].FarmName)

	assert.Equal(t, transaction.TypeIncome, entries[1].Type)
	assert.Equal(t, int64(123456), entries[1].AmountCents)
	assert.Equal(t, "Corn sale, farmers market", entries[1].Description)

	// Missing category falls back to Other.
	assert.Equal(t, "Other", entries[2].Category)
	assert.Equal(t, "Sunrise Acres", entries[2].FarmName)
}

func TestParse_Split(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Category,Income,Expense",
		"01/15/2024,Baler rental,Equipment Rental,900.00,",
		"01/20/2024,Pump repair,Maintenance,,126.00",
		",subtotal,,900.00,126.00",
	}, "\n")

	p := ledger.NewParser()
	entries, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, transaction.TypeIncome, entries[0].Type)
	assert.Equal(t, int64(90000), entries[0].AmountCents)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), entries[0].Date)

	assert.Equal(t, transaction.TypeExpense, entries[1].Type)
	assert.Equal(t, int64(12600), entries[1].AmountCents)
}

func TestParse_PreambleBeforeHeader(t *testing.T) {
	input := strings.Join([]string{
		"Maple Hollow ledger export",
		"",
		"Date,Description,Amount",
		"2024-02-02,Fence posts,-45.10",
	}, "\n")

	p := ledger.NewParser()
	entries, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4510), entries[0].AmountCents)
}

func TestParse_UnknownFormat(t *testing.T) {
	p := ledger.NewParser()
	_, err := p.Parse(strings.NewReader("foo,bar\n1,2\n"))
	assert.Error(t, err)
}

func TestParse_Windows1252(t *testing.T) {
	// "Caf\xe9 supplies" encoded as Windows-1252.
	input := "Date,Description,Amount\n2024-04-01,Caf\xe9 supplies,-12.00\n"

	p := ledger.NewParser()
	entries, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Café supplies", entries[0].Description)
}
