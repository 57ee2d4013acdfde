package transaction

import (
	"time"

	"github.com/jgrattan/fieldhand/internal/transaction"
)

type transactionResponse struct {
	ID          int64            `json:"id"`
	FarmID      int64            `json:"farm_id"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	Amount      int64            `json:"amount"` // cents, signed
	Description string           `json:"description,omitempty"`
	Date        time.Time        `json:"date"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		FarmID:      tx.FarmID,
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type summaryResponse struct {
	TotalIncome   int64                 `json:"total_income"`
	TotalExpenses int64                 `json:"total_expenses"`
	NetProfit     int64                 `json:"net_profit"`
	Recent        []transactionResponse `json:"recent_transactions"`
}

func toSummaryResponse(s transaction.Summary) summaryResponse {
	return summaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		NetProfit:     s.NetProfit,
		Recent:        toResponseList(s.Recent),
	}
}
