// Package auth issues and validates opaque bearer tokens and decodes Google
// sign-in credentials.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	tokenLength = 32
	tokenTTL    = 30 * 24 * time.Hour
)

const bucketTokens = "tokens"

// ErrInvalidToken is returned when a token is unknown or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenManager manages bearer tokens in a bbolt database. Each token maps to
// the owning user's ID and an expiration time.
type TokenManager struct {
	db *bolt.DB
}

// NewTokenManager opens the token database at path.
func NewTokenManager(path string) (*TokenManager, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open token database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketTokens))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create token bucket: %w", err)
	}

	return &TokenManager{db: db}, nil
}

// Close closes the token database.
func (tm *TokenManager) Close() error {
	return tm.db.Close()
}

// Issue generates a new bearer token for the user and stores it.
func (tm *TokenManager) Issue(userID int64) (string, error) {
	token, err := generateRandomToken(tokenLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	expiresAt := time.Now().Add(tokenTTL).Unix()
	err = tm.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketTokens))
		return b.Put([]byte(token), []byte(fmt.Sprintf("%d:%d", userID, expiresAt)))
	})
	if err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return token, nil
}

// Validate returns the user ID a token was issued for. Expired tokens are
// deleted and reported as ErrInvalidToken.
func (tm *TokenManager) Validate(token string) (int64, error) {
	var record string
	err := tm.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketTokens))
		data := b.Get([]byte(token))
		if data == nil {
			return ErrInvalidToken
		}
		record = string(data)
		return nil
	})
	if err != nil {
		return 0, err
	}

	var userID, expiresAt int64
	if _, err := fmt.Sscanf(record, "%d:%d", &userID, &expiresAt); err != nil {
		return 0, fmt.Errorf("failed to parse token record: %w", err)
	}

	if time.Now().Unix() > expiresAt {
		_ = tm.Revoke(token)
		return 0, ErrInvalidToken
	}

	return userID, nil
}

// Revoke deletes a token.
func (tm *TokenManager) Revoke(token string) error {
	return tm.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketTokens))
		return b.Delete([]byte(token))
	})
}

func generateRandomToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
