package transaction

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("transaction not found")

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a financial record tied to a farm.
//
// Amount is stored in cents with the sign derived from Type: expenses
// are negative, income positive. The sign is never user-entered; any
// write path re-derives it from the absolute magnitude.
type Transaction struct {
	ID          int64
	FarmID      int64
	Type        Type
	Category    string
	Amount      int64 // cents, sign follows Type
	Description string
	Date        time.Time
}

// SignedAmount normalizes an amount so its sign matches the type.
func SignedAmount(t Type, cents int64) int64 {
	if cents < 0 {
		cents = -cents
	}

	if t == TypeExpense {
		return -cents
	}

	return cents
}
