// Package models defines the domain types exchanged between the API, the
// ledger logic and the storage layer.
package models

import "time"

// User is an authenticated owner of a set of accounts and transactions.
// Users are provisioned automatically on first sign-in.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
