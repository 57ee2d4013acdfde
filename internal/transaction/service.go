package transaction

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id int64) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	ListTransactionsByFarm(ctx context.Context, farmID int64) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	FarmID      int64
	Type        Type
	Category    string
	Amount      int64 // cents, absolute magnitude
	Description string
	Date        time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		FarmID:      params.FarmID,
		Type:        params.Type,
		Category:    params.Category,
		Amount:      SignedAmount(params.Type, params.Amount),
		Description: params.Description,
		Date:        params.Date,
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) ListByFarm(ctx context.Context, farmID int64) ([]*Transaction, error) {
	return s.repo.ListTransactionsByFarm(ctx, farmID)
}

// Update persists tx after re-deriving the amount sign from its type.
// A type change therefore flips the stored sign while keeping the
// magnitude.
func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	tx.Amount = SignedAmount(tx.Type, tx.Amount)
	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// Summary reduces the full transaction collection into financial
// totals and the recent-five projection.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(txs), nil
}
