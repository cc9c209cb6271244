package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store"
)

// CreateTransaction inserts a new transaction and returns it with its
// assigned ID. The insert and the foreign key checks on both account
// references run in one SQL transaction.
func (s *Store) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	const query = `INSERT INTO transactions (user_id, idempotency_key, debit_account_id, credit_account_id, amount, description, transaction_date)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	var id int64
	err := s.transact(ctx, func(dbTx *sql.Tx) error {
		res, err := dbTx.ExecContext(ctx, query,
			tx.UserID, nullString(tx.IdempotencyKey),
			tx.DebitAccountID, tx.CreditAccountID,
			tx.Amount.String(), tx.Description, tx.TransactionDate)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get transaction ID: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return s.TransactionByID(ctx, tx.UserID, id)
}

// TransactionByID returns one of the user's transactions, or
// store.ErrNotFound.
func (s *Store) TransactionByID(ctx context.Context, userID, id int64) (models.Transaction, error) {
	const query = `SELECT id, user_id, COALESCE(idempotency_key, ''), debit_account_id, credit_account_id, amount, description, transaction_date, created_at
	FROM transactions WHERE id = ? AND user_id = ?`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, store.ErrNotFound
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to query transaction: %w", err)
	}
	return tx, nil
}

// TransactionByIdempotencyKey returns the user's transaction stored under the
// key, or store.ErrNotFound. Used to make transaction creation replay-safe.
func (s *Store) TransactionByIdempotencyKey(ctx context.Context, userID int64, key string) (models.Transaction, error) {
	const query = `SELECT id, user_id, COALESCE(idempotency_key, ''), debit_account_id, credit_account_id, amount, description, transaction_date, created_at
	FROM transactions WHERE user_id = ? AND idempotency_key = ?`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, userID, key))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, store.ErrNotFound
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to query transaction: %w", err)
	}
	return tx, nil
}

// ListTransactions returns all of the user's transactions with the joined
// debit and credit account names, ordered by date then insertion.
func (s *Store) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	const query = `SELECT t.id, t.user_id, COALESCE(t.idempotency_key, ''), t.debit_account_id, t.credit_account_id, t.amount, t.description, t.transaction_date, t.created_at,
		COALESCE(da.name, ''), COALESCE(ca.name, '')
	FROM transactions t
	LEFT JOIN accounts da ON t.debit_account_id = da.id
	LEFT JOIN accounts ca ON t.credit_account_id = ca.id
	WHERE t.user_id = ?
	ORDER BY t.transaction_date, t.id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.IdempotencyKey,
			&tx.DebitAccountID, &tx.CreditAccountID,
			&tx.Amount, &tx.Description, &tx.TransactionDate, &tx.CreatedAt,
			&tx.DebitAccountName, &tx.CreditAccountName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// TransactionsForAccount returns every transaction that touches the account
// on either side, in insertion order.
func (s *Store) TransactionsForAccount(ctx context.Context, userID, accountID int64) ([]models.Transaction, error) {
	const query = `SELECT id, user_id, COALESCE(idempotency_key, ''), debit_account_id, credit_account_id, amount, description, transaction_date, created_at
	FROM transactions
	WHERE user_id = ? AND (debit_account_id = ? OR credit_account_id = ?)
	ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, userID, accountID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// UpdateTransaction persists a transaction's mutable fields.
func (s *Store) UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	const query = `UPDATE transactions
	SET debit_account_id = ?, credit_account_id = ?, amount = ?, description = ?, transaction_date = ?
	WHERE id = ? AND user_id = ?`

	res, err := s.db.ExecContext(ctx, query,
		tx.DebitAccountID, tx.CreditAccountID,
		tx.Amount.String(), tx.Description, tx.TransactionDate,
		tx.ID, tx.UserID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to update transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Transaction{}, store.ErrNotFound
	}
	return s.TransactionByID(ctx, tx.UserID, tx.ID)
}

// DeleteTransaction removes one of the user's transactions.
func (s *Store) DeleteTransaction(ctx context.Context, userID, id int64) error {
	const query = `DELETE FROM transactions WHERE id = ? AND user_id = ?`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID, &tx.UserID, &tx.IdempotencyKey,
		&tx.DebitAccountID, &tx.CreditAccountID,
		&tx.Amount, &tx.Description, &tx.TransactionDate, &tx.CreatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
