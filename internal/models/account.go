package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
)

// Account is one row in a user's chart of accounts. AccountType and
// NormalBalance are derived by the classifier when the account is created and
// re-derived whenever it is renamed; they are never set directly by callers.
// Balance holds the opening balance; reported balances are always recomputed
// from transaction history.
type Account struct {
	ID            int64                  `json:"id"`
	UserID        int64                  `json:"user_id"`
	Name          string                 `json:"name"`
	Code          string                 `json:"code"`
	Category      string                 `json:"category"`
	AccountType   classify.AccountType   `json:"account_type"`
	NormalBalance classify.NormalBalance `json:"normal_balance"`
	Balance       decimal.Decimal        `json:"balance"`
	Description   string                 `json:"description,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// AccountRef is the minimal account snapshot embedded in report rows.
type AccountRef struct {
	ID            int64                  `json:"id,omitempty"`
	Name          string                 `json:"name"`
	Code          string                 `json:"code"`
	Category      string                 `json:"category,omitempty"`
	AccountType   classify.AccountType   `json:"account_type,omitempty"`
	NormalBalance classify.NormalBalance `json:"normal_balance,omitempty"`
}

// Ref returns the report snapshot for the account.
func (a Account) Ref() AccountRef {
	return AccountRef{
		ID:            a.ID,
		Name:          a.Name,
		Code:          a.Code,
		Category:      a.Category,
		AccountType:   a.AccountType,
		NormalBalance: a.NormalBalance,
	}
}
