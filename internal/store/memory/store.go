// Package memory implements store.Store in memory. It backs tests and local
// development without a database file.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store"
)

// Store is an in-memory implementation of store.Store, safe for concurrent
// use.
type Store struct {
	mu           sync.Mutex
	users        map[int64]models.User
	accounts     map[int64]models.Account
	transactions map[int64]models.Transaction
	nextUser     int64
	nextAccount  int64
	nextTx       int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:        make(map[int64]models.User),
		accounts:     make(map[int64]models.Account),
		transactions: make(map[int64]models.Transaction),
	}
}

// CreateUser inserts a new user and returns it with its assigned ID.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUser++
	user.ID = s.nextUser
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return user, nil
}

// UserByEmail returns the user with the given email, or store.ErrNotFound.
func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

// CreateAccount inserts a new account and returns it with its assigned ID.
func (s *Store) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAccount++
	account.ID = s.nextAccount
	account.CreatedAt = time.Now()
	s.accounts[account.ID] = account
	return account, nil
}

// AccountByID returns one of the user's accounts, or store.ErrNotFound.
func (s *Store) AccountByID(ctx context.Context, userID, id int64) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok || account.UserID != userID {
		return models.Account{}, store.ErrNotFound
	}
	return account, nil
}

// ListAccounts returns all of the user's accounts with the base cash account
// first, then insertion order.
func (s *Store) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accounts []models.Account
	for _, a := range s.accounts {
		if a.UserID == userID {
			accounts = append(accounts, a)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		bi, bj := baseAccountRank(accounts[i].Code), baseAccountRank(accounts[j].Code)
		if bi != bj {
			return bi < bj
		}
		return accounts[i].ID < accounts[j].ID
	})
	return accounts, nil
}

// AccountsWithTransactions returns the user's accounts referenced by at least
// one transaction, ordered by code then ID.
func (s *Store) AccountsWithTransactions(ctx context.Context, userID int64) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	touched := make(map[int64]bool)
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			touched[tx.DebitAccountID] = true
			touched[tx.CreditAccountID] = true
		}
	}

	var accounts []models.Account
	for id := range touched {
		if a, ok := s.accounts[id]; ok && a.UserID == userID {
			accounts = append(accounts, a)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Code != accounts[j].Code {
			return accounts[i].Code < accounts[j].Code
		}
		return accounts[i].ID < accounts[j].ID
	})
	return accounts, nil
}

// UpdateAccount persists an account's mutable fields.
func (s *Store) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.ID]
	if !ok || existing.UserID != account.UserID {
		return models.Account{}, store.ErrNotFound
	}
	account.CreatedAt = existing.CreatedAt
	s.accounts[account.ID] = account
	return account, nil
}

// DeleteAccount removes one of the user's accounts.
func (s *Store) DeleteAccount(ctx context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok || account.UserID != userID {
		return store.ErrNotFound
	}
	delete(s.accounts, id)
	return nil
}

// CreateTransaction inserts a new transaction and returns it with its
// assigned ID.
func (s *Store) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTx++
	tx.ID = s.nextTx
	tx.CreatedAt = time.Now()
	s.transactions[tx.ID] = tx
	return tx, nil
}

// TransactionByID returns one of the user's transactions, or
// store.ErrNotFound.
func (s *Store) TransactionByID(ctx context.Context, userID, id int64) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[id]
	if !ok || tx.UserID != userID {
		return models.Transaction{}, store.ErrNotFound
	}
	return tx, nil
}

// TransactionByIdempotencyKey returns the user's transaction stored under the
// key, or store.ErrNotFound.
func (s *Store) TransactionByIdempotencyKey(ctx context.Context, userID int64, key string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.transactions {
		if tx.UserID == userID && tx.IdempotencyKey == key {
			return tx, nil
		}
	}
	return models.Transaction{}, store.ErrNotFound
}

// ListTransactions returns all of the user's transactions with joined account
// names, ordered by date then insertion.
func (s *Store) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []models.Transaction
	for _, tx := range s.transactions {
		if tx.UserID != userID {
			continue
		}
		if a, ok := s.accounts[tx.DebitAccountID]; ok {
			tx.DebitAccountName = a.Name
		}
		if a, ok := s.accounts[tx.CreditAccountID]; ok {
			tx.CreditAccountName = a.Name
		}
		transactions = append(transactions, tx)
	}
	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].TransactionDate != transactions[j].TransactionDate {
			return transactions[i].TransactionDate < transactions[j].TransactionDate
		}
		return transactions[i].ID < transactions[j].ID
	})
	return transactions, nil
}

// TransactionsForAccount returns every transaction touching the account on
// either side, in insertion order.
func (s *Store) TransactionsForAccount(ctx context.Context, userID, accountID int64) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []models.Transaction
	for _, tx := range s.transactions {
		if tx.UserID == userID && (tx.DebitAccountID == accountID || tx.CreditAccountID == accountID) {
			transactions = append(transactions, tx)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].ID < transactions[j].ID
	})
	return transactions, nil
}

// UpdateTransaction persists a transaction's mutable fields.
func (s *Store) UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.transactions[tx.ID]
	if !ok || existing.UserID != tx.UserID {
		return models.Transaction{}, store.ErrNotFound
	}
	tx.CreatedAt = existing.CreatedAt
	tx.IdempotencyKey = existing.IdempotencyKey
	s.transactions[tx.ID] = tx
	return tx, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *Store) DeleteTransaction(ctx context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[id]
	if !ok || tx.UserID != userID {
		return store.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

func baseAccountRank(code string) int {
	if code == "1" || code == "0001" {
		return 0
	}
	return 1
}

// Compile-time check: Store satisfies the storage contract.
var _ store.Store = (*Store)(nil)
