package transaction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrattan/fieldhand/internal/transaction"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestFilter(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Type: transaction.TypeIncome, Category: "Crop Sales"},
		{ID: 2, Type: transaction.TypeExpense, Category: "Seeds"},
		{ID: 3, Type: transaction.TypeExpense, Category: "Fuel"},
	}

	type testCase struct {
		name    string
		filters transaction.Filters
		wantIDs []int64
	}

	tests := []testCase{
		{
			name:    "Empty",
			filters: transaction.Filters{},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "All",
			filters: transaction.Filters{Type: transaction.FilterAll, Category: transaction.FilterAll},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "ByType",
			filters: transaction.Filters{Type: string(transaction.TypeExpense)},
			wantIDs: []int64{2, 3},
		},
		{
			name:    "ByTypeAndCategory",
			filters: transaction.Filters{Type: string(transaction.TypeExpense), Category: "Fuel"},
			wantIDs: []int64{3},
		},
		{
			name:    "NoMatch",
			filters: transaction.Filters{Category: "Labor"},
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transaction.Filter(txs, tt.filters)

			gotIDs := make([]int64, 0, len(got))
			for _, tx := range got {
				gotIDs = append(gotIDs, tx.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Type: transaction.TypeIncome},
		{ID: 2, Type: transaction.TypeExpense},
	}

	_ = transaction.Filter(txs, transaction.Filters{Type: string(transaction.TypeIncome)})

	require.Len(t, txs, 2)
	assert.Equal(t, int64(1), txs[0].ID)
	assert.Equal(t, int64(2), txs[1].ID)
}

func TestSortByDateDesc_StableOnTies(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Date: day(5)},
		{ID: 2, Date: day(5)},
		{ID: 3, Date: day(9)},
	}

	got := transaction.SortByDateDesc(txs)

	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, int64(2), got[2].ID)

	// Input order untouched.
	assert.Equal(t, int64(1), txs[0].ID)
}

func TestSummarize(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Type: transaction.TypeIncome, Amount: 452000, Date: day(8)},
		{ID: 2, Type: transaction.TypeExpense, Amount: -38750, Date: day(1)},
		{ID: 3, Type: transaction.TypeExpense, Amount: -21500, Date: day(6)},
		{ID: 4, Type: transaction.TypeIncome, Amount: 90000, Date: day(3)},
		{ID: 5, Type: transaction.TypeExpense, Amount: -12600, Date: day(9)},
		{ID: 6, Type: transaction.TypeIncome, Amount: 150000, Date: day(2)},
	}

	s := transaction.Summarize(txs)

	assert.Equal(t, int64(692000), s.TotalIncome)
	assert.Equal(t, int64(72850), s.TotalExpenses)
	assert.Equal(t, int64(619150), s.NetProfit)

	// Five most recent, newest first.
	require.Len(t, s.Recent, 5)
	assert.Equal(t, int64(5), s.Recent[0].ID)
	assert.Equal(t, int64(1), s.Recent[1].ID)
	assert.Equal(t, int64(3), s.Recent[2].ID)
	assert.Equal(t, int64(4), s.Recent[3].ID)
	assert.Equal(t, int64(6), s.Recent[4].ID)
}

func TestSummarize_FewerThanFive(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: 1, Type: transaction.TypeIncome, Amount: 1000, Date: day(1)},
		{ID: 2, Type: transaction.TypeExpense, Amount: -400, Date: day(2)},
	}

	s := transaction.Summarize(txs)

	assert.Equal(t, int64(600), s.NetProfit)
	require.Len(t, s.Recent, 2)
	assert.Equal(t, int64(2), s.Recent[0].ID)
}

func TestSummarize_Empty(t *testing.T) {
	s := transaction.Summarize(nil)

	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.TotalExpenses)
	assert.Zero(t, s.NetProfit)
	assert.Empty(t, s.Recent)
}

func TestSignedAmount(t *testing.T) {
	assert.Equal(t, int64(-500), transaction.SignedAmount(transaction.TypeExpense, 500))
	assert.Equal(t, int64(-500), transaction.SignedAmount(transaction.TypeExpense, -500))
	assert.Equal(t, int64(500), transaction.SignedAmount(transaction.TypeIncome, 500))
	assert.Equal(t, int64(500), transaction.SignedAmount(transaction.TypeIncome, -500))
}

func TestCategoriesFor(t *testing.T) {
	assert.Contains(t, transaction.CategoriesFor(transaction.TypeExpense), "Seeds")
	assert.Contains(t, transaction.CategoriesFor(transaction.TypeIncome), "Crop Sales")
	assert.NotContains(t, transaction.CategoriesFor(transaction.TypeIncome), "Seeds")
}
