package fixture

import (
	"context"
	"sync"

	"github.com/jgrattan/fieldhand/internal/transaction"
)

type TransactionStore struct {
	mu  sync.Mutex
	txs []*transaction.Transaction
}

func NewTransactionStore(seed []*transaction.Transaction) *TransactionStore {
	s := &TransactionStore{txs: make([]*transaction.Transaction, 0, len(seed))}
	for _, tx := range seed {
		tc := *tx
		s.txs = append(s.txs, &tc)
	}

	return s
}

func (s *TransactionStore) CreateTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(s.txs))
	for i, existing := range s.txs {
		ids[i] = existing.ID
	}

	tx.ID = nextID(ids)

	tc := *tx
	s.txs = append(s.txs, &tc)

	return nil
}

func (s *TransactionStore) GetTransaction(_ context.Context, id int64) (*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.txs {
		if tx.ID == id {
			tc := *tx
			return &tc, nil
		}
	}

	return nil, transaction.ErrNotFound
}

func (s *TransactionStore) ListTransactions(_ context.Context) ([]*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*transaction.Transaction, 0, len(s.txs))

	for _, tx := range s.txs {
		tc := *tx
		out = append(out, &tc)
	}

	return out, nil
}

func (s *TransactionStore) ListTransactionsByFarm(_ context.Context, farmID int64) ([]*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*transaction.Transaction

	for _, tx := range s.txs {
		if tx.FarmID == farmID {
			tc := *tx
			out = append(out, &tc)
		}
	}

	return out, nil
}

func (s *TransactionStore) UpdateTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.txs {
		if existing.ID == tx.ID {
			tc := *tx
			s.txs[i] = &tc

			return nil
		}
	}

	return transaction.ErrNotFound
}

func (s *TransactionStore) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.txs {
		if existing.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return nil
		}
	}

	return transaction.ErrNotFound
}
