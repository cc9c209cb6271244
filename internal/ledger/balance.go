// Package ledger implements the balance derivation pipeline: input
// validation, balance computation and the report chain from general journal
// to financial statements.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
)

// ComputeBalance folds an account's transactions into its final balance,
// starting from the stored opening balance. Whether a debit or credit
// increases the balance depends on the account's normal balance, which is
// re-derived from the name and code rather than trusted from the row.
//
// Transactions with a non-positive amount are skipped; invalid rows must not
// move a balance even if they slipped past input validation. An account that
// is both the debit and the credit side of one transaction receives both
// adjustments.
func ComputeBalance(account models.Account, transactions []models.Transaction) decimal.Decimal {
	classification := classify.Classify(account.Name, account.Code)
	balance := account.Balance

	for _, tx := range transactions {
		if tx.Amount.Sign() <= 0 {
			continue
		}

		if tx.DebitAccountID == account.ID {
			if classification.NormalBalance == classify.Debit {
				balance = balance.Add(tx.Amount)
			} else {
				balance = balance.Sub(tx.Amount)
			}
		}

		if tx.CreditAccountID == account.ID {
			if classification.NormalBalance == classify.Credit {
				balance = balance.Add(tx.Amount)
			} else {
				balance = balance.Sub(tx.Amount)
			}
		}
	}

	return balance
}
