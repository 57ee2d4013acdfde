package transaction

import (
	"sort"
)

// FilterAll matches every value for a filter field.
const FilterAll = "all"

// Filters describes the finances list view parameters, AND-ed together.
type Filters struct {
	Type     string // FilterAll or "income"/"expense"
	Category string // FilterAll or an exact category
}

// Filter returns the transactions matching every predicate. The input
// slice and its elements are never modified.
func Filter(txs []*Transaction, f Filters) []*Transaction {
	out := make([]*Transaction, 0, len(txs))

	for _, t := range txs {
		if f.Type != "" && f.Type != FilterAll && string(t.Type) != f.Type {
			continue
		}

		if f.Category != "" && f.Category != FilterAll && t.Category != f.Category {
			continue
		}

		out = append(out, t)
	}

	return out
}

// SortByDateDesc returns a copy ordered newest first. Equal dates keep
// their input order.
func SortByDateDesc(txs []*Transaction) []*Transaction {
	out := make([]*Transaction, len(txs))
	copy(out, txs)

	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})

	return out
}

const recentLimit = 5

// Summary is the reduced financial view of a transaction collection.
// Totals are over absolute amounts and therefore never negative;
// NetProfit may be.
type Summary struct {
	TotalIncome   int64 // cents
	TotalExpenses int64 // cents
	NetProfit     int64 // cents
	Recent        []*Transaction
}

// Summarize reduces txs into income/expense/net totals plus the five
// most recent transactions by date. The input is not mutated; the
// recency sort happens on a copy.
func Summarize(txs []*Transaction) Summary {
	var s Summary

	for _, t := range txs {
		amount := t.Amount
		if amount < 0 {
			amount = -amount
		}

		switch t.Type {
		case TypeIncome:
			s.TotalIncome += amount
		case TypeExpense:
			s.TotalExpenses += amount
		}
	}

	s.NetProfit = s.TotalIncome - s.TotalExpenses

	recent := SortByDateDesc(txs)
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	s.Recent = recent

	return s
}
