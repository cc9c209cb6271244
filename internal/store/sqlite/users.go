package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store"
)

// CreateUser inserts a new user and returns it with its assigned ID.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `INSERT INTO users (username, email) VALUES (?, ?)`

	res, err := s.db.ExecContext(ctx, query, user.Username, user.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user ID: %w", err)
	}
	return s.userByID(ctx, id)
}

// UserByEmail returns the user with the given email, or store.ErrNotFound.
func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT id, username, email, created_at FROM users WHERE email = ?`

	var user models.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, store.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// Compile-time check: Store satisfies the storage contract.
var _ store.Store = (*Store)(nil)

func (s *Store) userByID(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT id, username, email, created_at FROM users WHERE id = ?`

	var user models.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, store.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
