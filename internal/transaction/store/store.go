package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jgrattan/fieldhand/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `id, farm_id, type, category, amount, description, date`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	var description sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.FarmID, &typeStr, &tx.Category,
		&tx.Amount, &description, &tx.Date,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Description = description.String

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (farm_id, type, category, amount, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.FarmID, tx.Type, tx.Category, tx.Amount, tx.Description, tx.Date,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id int64) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	return s.list(ctx, `SELECT `+selectTransactionColumns+` FROM transactions ORDER BY id`)
}

func (s *Store) ListTransactionsByFarm(ctx context.Context, farmID int64) ([]*transaction.Transaction, error) {
	return s.list(ctx, `SELECT `+selectTransactionColumns+` FROM transactions WHERE farm_id = $1 ORDER BY id`, farmID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET farm_id = $1, type = $2, category = $3, amount = $4, description = $5, date = $6
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		tx.FarmID, tx.Type, tx.Category, tx.Amount, tx.Description, tx.Date, tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
