// Package store defines the storage contract the API and report pipeline
// depend on. Implementations live in subpackages.
package store

import (
	"context"
	"errors"

	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID is returned when an invalid ID is provided.
	ErrInvalidID = errors.New("invalid ID")
)

// Store is the full storage contract. Accounts and transactions are scoped by
// the owning user in every query.
type Store interface {
	// Users.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)

	// Accounts.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	AccountByID(ctx context.Context, userID, id int64) (models.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]models.Account, error)
	AccountsWithTransactions(ctx context.Context, userID int64) ([]models.Account, error)
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)
	DeleteAccount(ctx context.Context, userID, id int64) error

	// Transactions.
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	TransactionByID(ctx context.Context, userID, id int64) (models.Transaction, error)
	TransactionByIdempotencyKey(ctx context.Context, userID int64, key string) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	TransactionsForAccount(ctx context.Context, userID, accountID int64) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error

	Ping(ctx context.Context) error
	Close() error
}
