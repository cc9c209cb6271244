package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single double-entry posting: Amount is debited to
// DebitAccountID and credited to CreditAccountID. Amount is always positive;
// the sign of an account's balance movement follows its normal balance.
type Transaction struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	IdempotencyKey  string          `json:"-"`
	DebitAccountID  int64           `json:"debit_account_id"`
	CreditAccountID int64           `json:"credit_account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD
	CreatedAt       time.Time       `json:"created_at"`

	// Joined account names, populated on list queries.
	DebitAccountName  string `json:"debit_account_name,omitempty"`
	CreditAccountName string `json:"credit_account_name,omitempty"`
}
