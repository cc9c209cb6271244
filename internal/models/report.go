package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalRow is one side of a transaction in the general journal. Every
// transaction contributes a debit row and a credit row with equal amounts.
type JournalRow struct {
	ID            string          `json:"id"`
	TransactionID int64           `json:"transaction_id"`
	Tgl           string          `json:"tgl"`
	Bln           string          `json:"bln"`
	Thn           string          `json:"thn"`
	Code          string          `json:"code"`
	AccountName   string          `json:"account_name"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Type          string          `json:"type"` // "debit" or "credit"
}

// JournalSummary totals the general journal.
type JournalSummary struct {
	TotalTransactions int             `json:"totalTransactions"`
	TotalDebit        decimal.Decimal `json:"totalDebit"`
	TotalCredit       decimal.Decimal `json:"totalCredit"`
	TotalEntries      int             `json:"totalEntries"`
}

// GeneralJournal is the first report stage, built directly from transactions.
type GeneralJournal struct {
	JournalEntries []JournalRow   `json:"journalEntries"`
	Summary        JournalSummary `json:"summary"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}

// LedgerEntry is one transaction line in a single account's ledger, with the
// running balance after the line.
type LedgerEntry struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountLedger is the per-account view of the journal.
type AccountLedger struct {
	Account     AccountRef      `json:"account"`
	Entries     []LedgerEntry   `json:"entries"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// Ledger is the second report stage, grouping journal lines by account.
type Ledger struct {
	Success     bool            `json:"success"`
	Ledgers     []AccountLedger `json:"ledgers"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// TrialBalanceEntry is one account's recomputed balance, restated into the
// debit or credit column according to sign and normal balance.
type TrialBalanceEntry struct {
	Account       AccountRef      `json:"account"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	FinalBalance  decimal.Decimal `json:"finalBalance"`
}

// TrialBalanceSummary carries the column totals and the balance check.
type TrialBalanceSummary struct {
	TotalAccounts    int             `json:"totalAccounts"`
	GrandTotalDebit  decimal.Decimal `json:"grandTotalDebit"`
	GrandTotalCredit decimal.Decimal `json:"grandTotalCredit"`
	IsBalanced       bool            `json:"isBalanced"`
}

// TrialBalance is the third report stage and the single source for both
// financial statements.
type TrialBalance struct {
	Success      bool                `json:"success"`
	TrialBalance []TrialBalanceEntry `json:"trialBalance"`
	Summary      TrialBalanceSummary `json:"summary"`
	DataSource   string              `json:"dataSource"`
	GeneratedAt  time.Time           `json:"generatedAt"`
}

// StatementLine is one account figure in a financial statement.
type StatementLine struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// StatementSection groups statement lines with their total.
type StatementSection struct {
	Accounts []StatementLine `json:"accounts"`
	Total    decimal.Decimal `json:"total"`
}

// IncomeStatement reports revenue and expense balances from the trial balance.
type IncomeStatement struct {
	Success     bool             `json:"success"`
	Revenue     StatementSection `json:"revenue"`
	Expenses    StatementSection `json:"expenses"`
	NetIncome   decimal.Decimal  `json:"netIncome"`
	DataSource  string           `json:"dataSource"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

// BalanceSheetLine is one account figure on the balance sheet. Retained
// earnings is a synthetic line injected from the income statement.
type BalanceSheetLine struct {
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Balance            decimal.Decimal `json:"balance"`
	IsRetainedEarnings bool            `json:"isRetainedEarnings,omitempty"`
}

// BalanceSheetAssets splits assets into current and non-current by category.
type BalanceSheetAssets struct {
	CurrentAssets    []BalanceSheetLine `json:"currentAssets"`
	NonCurrentAssets []BalanceSheetLine `json:"nonCurrentAssets"`
	Total            decimal.Decimal    `json:"total"`
}

// BalanceSheetLiabilities lists liability balances.
type BalanceSheetLiabilities struct {
	CurrentLiabilities []BalanceSheetLine `json:"currentLiabilities"`
	Total              decimal.Decimal    `json:"total"`
}

// BalanceSheetEquity lists equity balances including injected net income.
type BalanceSheetEquity struct {
	Accounts []BalanceSheetLine `json:"accounts"`
	Total    decimal.Decimal    `json:"total"`
}

// BalanceSheetTotals carries the accounting equation check.
type BalanceSheetTotals struct {
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	IsBalanced                bool            `json:"isBalanced"`
}

// BalanceSheet is the final report stage, covering the real accounts.
type BalanceSheet struct {
	Success bool `json:"success"`
	Sheet   struct {
		Assets      BalanceSheetAssets      `json:"assets"`
		Liabilities BalanceSheetLiabilities `json:"liabilities"`
		Equity      BalanceSheetEquity      `json:"equity"`
	} `json:"balanceSheet"`
	Totals      BalanceSheetTotals `json:"totals"`
	NetIncome   decimal.Decimal    `json:"netIncome"`
	DataSource  string             `json:"dataSource"`
	GeneratedAt time.Time          `json:"generatedAt"`
}
