package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store"
)

const accountColumns = `id, user_id, name, code, category, account_type, normal_balance, balance, description, created_at`

// CreateAccount inserts a new account and returns it with its assigned ID.
func (s *Store) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	const query = `INSERT INTO accounts (user_id, name, code, category, account_type, normal_balance, balance, description)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query,
		account.UserID, account.Name, account.Code, account.Category,
		string(account.AccountType), string(account.NormalBalance),
		account.Balance.String(), account.Description)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to get account ID: %w", err)
	}
	return s.AccountByID(ctx, account.UserID, id)
}

// AccountByID returns one of the user's accounts, or store.ErrNotFound.
func (s *Store) AccountByID(ctx context.Context, userID, id int64) (models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ? AND user_id = ?`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, store.ErrNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to query account: %w", err)
	}
	return account, nil
}

// ListAccounts returns all of the user's accounts. The base cash account
// (code "1" or "0001") sorts first, then insertion order.
func (s *Store) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
	WHERE user_id = ?
	ORDER BY
		CASE WHEN code = '1' OR code = '0001' THEN 0 ELSE 1 END,
		id ASC`

	return s.queryAccounts(ctx, query, userID)
}

// AccountsWithTransactions returns the user's accounts that appear on either
// side of at least one transaction, ordered by code.
func (s *Store) AccountsWithTransactions(ctx context.Context, userID int64) ([]models.Account, error) {
	query := `SELECT DISTINCT a.id, a.user_id, a.name, a.code, a.category, a.account_type, a.normal_balance, a.balance, a.description, a.created_at
	FROM accounts a
	INNER JOIN (
		SELECT debit_account_id AS account_id FROM transactions WHERE user_id = ?
		UNION
		SELECT credit_account_id AS account_id FROM transactions WHERE user_id = ?
	) t ON a.id = t.account_id
	WHERE a.user_id = ?
	ORDER BY a.code, a.id`

	return s.queryAccounts(ctx, query, userID, userID, userID)
}

// UpdateAccount persists an account's mutable fields.
func (s *Store) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	const query = `UPDATE accounts
	SET name = ?, code = ?, category = ?, account_type = ?, normal_balance = ?, balance = ?, description = ?
	WHERE id = ? AND user_id = ?`

	res, err := s.db.ExecContext(ctx, query,
		account.Name, account.Code, account.Category,
		string(account.AccountType), string(account.NormalBalance),
		account.Balance.String(), account.Description,
		account.ID, account.UserID)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to update account: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Account{}, store.ErrNotFound
	}
	return s.AccountByID(ctx, account.UserID, account.ID)
}

// DeleteAccount removes one of the user's accounts.
func (s *Store) DeleteAccount(ctx context.Context, userID, id int64) error {
	const query = `DELETE FROM accounts WHERE id = ? AND user_id = ?`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) queryAccounts(ctx context.Context, query string, args ...any) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	var accountType, normalBalance string
	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Code,
		&account.Category,
		&accountType,
		&normalBalance,
		&account.Balance,
		&account.Description,
		&account.CreatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}
	account.AccountType = classify.AccountType(accountType)
	account.NormalBalance = classify.NormalBalance(normalBalance)
	return account, nil
}
