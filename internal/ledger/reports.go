package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
)

// balanceTolerance is the maximum debit/credit discrepancy treated as
// balanced; anything larger is reported as a data integrity failure.
var balanceTolerance = decimal.NewFromFloat(0.01)

// retainedEarningsCode is the synthetic equity line injected into the balance
// sheet for the period's net income.
const retainedEarningsCode = "3900"

// DataSource is what the report pipeline needs from storage. Reports are
// always rebuilt in full from transaction history; the cached balance column
// on accounts is never consulted beyond its role as opening balance.
type DataSource interface {
	ListAccounts(ctx context.Context, userID int64) ([]models.Account, error)
	AccountsWithTransactions(ctx context.Context, userID int64) ([]models.Account, error)
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	TransactionsForAccount(ctx context.Context, userID, accountID int64) ([]models.Transaction, error)
}

// Reporter derives the four standard reports from a data source. Each report
// is computed only from the preceding stage: transactions feed the journal,
// the journal view feeds the ledger, recomputed balances feed the trial
// balance, and both statements are filtered views over the trial balance.
type Reporter struct {
	source DataSource
}

// NewReporter creates a Reporter over a data source.
func NewReporter(source DataSource) *Reporter {
	return &Reporter{source: source}
}

// GeneralJournal lists every stored transaction as a debit row and a credit
// row. Rows for transactions with a non-positive amount, or whose accounts no
// longer resolve, are omitted.
func (r *Reporter) GeneralJournal(ctx context.Context, userID int64) (models.GeneralJournal, error) {
	accounts, err := r.accountIndex(ctx, userID)
	if err != nil {
		return models.GeneralJournal{}, err
	}
	transactions, err := r.source.ListTransactions(ctx, userID)
	if err != nil {
		return models.GeneralJournal{}, fmt.Errorf("fetching transactions: %w", err)
	}

	journal := models.GeneralJournal{
		JournalEntries: []models.JournalRow{},
		GeneratedAt:    time.Now(),
	}

	for _, tx := range transactions {
		if tx.Amount.Sign() <= 0 {
			continue
		}
		debitAccount, okDebit := accounts[tx.DebitAccountID]
		creditAccount, okCredit := accounts[tx.CreditAccountID]
		if !okDebit || !okCredit {
			continue
		}

		tgl, bln, thn := splitDate(tx.TransactionDate)
		journal.JournalEntries = append(journal.JournalEntries,
			models.JournalRow{
				ID:            fmt.Sprintf("%d_debit", tx.ID),
				TransactionID: tx.ID,
				Tgl:           tgl,
				Bln:           bln,
				Thn:           thn,
				Code:          debitAccount.Code,
				AccountName:   debitAccount.Name,
				Description:   tx.Description,
				Debit:         tx.Amount,
				Credit:        decimal.Zero,
				Type:          "debit",
			},
			models.JournalRow{
				ID:            fmt.Sprintf("%d_credit", tx.ID),
				TransactionID: tx.ID,
				Tgl:           tgl,
				Bln:           bln,
				Thn:           thn,
				Code:          creditAccount.Code,
				AccountName:   creditAccount.Name,
				Description:   tx.Description,
				Debit:         decimal.Zero,
				Credit:        tx.Amount,
				Type:          "credit",
			})

		journal.Summary.TotalTransactions++
		journal.Summary.TotalDebit = journal.Summary.TotalDebit.Add(tx.Amount)
		journal.Summary.TotalCredit = journal.Summary.TotalCredit.Add(tx.Amount)
	}

	journal.Summary.TotalEntries = len(journal.JournalEntries)
	return journal, nil
}

// Ledger posts the journal to per-account histories with a running balance
// column. Accounts without transactions are omitted.
func (r *Reporter) Ledger(ctx context.Context, userID int64) (models.Ledger, error) {
	accounts, err := r.source.ListAccounts(ctx, userID)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("fetching accounts: %w", err)
	}
	transactions, err := r.source.ListTransactions(ctx, userID)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("fetching transactions: %w", err)
	}

	ledger := models.Ledger{
		Success:     true,
		Ledgers:     []models.AccountLedger{},
		GeneratedAt: time.Now(),
	}

	for _, account := range accounts {
		var entries []models.LedgerEntry
		running := decimal.Zero
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero

		for _, tx := range transactions {
			isDebit := tx.DebitAccountID == account.ID
			if !isDebit && tx.CreditAccountID != account.ID {
				continue
			}

			entry := models.LedgerEntry{
				Date:        tx.TransactionDate,
				Description: tx.Description,
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
			}
			if isDebit {
				running = running.Add(tx.Amount)
				entry.Debit = tx.Amount
				totalDebit = totalDebit.Add(tx.Amount)
			} else {
				running = running.Sub(tx.Amount)
				entry.Credit = tx.Amount
				totalCredit = totalCredit.Add(tx.Amount)
			}
			entry.Balance = running
			entries = append(entries, entry)
		}

		if len(entries) == 0 {
			continue
		}
		ledger.Ledgers = append(ledger.Ledgers, models.AccountLedger{
			Account:     models.AccountRef{Code: account.Code, Name: account.Name},
			Entries:     entries,
			TotalDebit:  totalDebit,
			TotalCredit: totalCredit,
		})
	}

	return ledger, nil
}

// TrialBalance recomputes every transacted account's balance from its full
// transaction history and restates it into a debit or credit column figure.
// A debit/credit total mismatch beyond the tolerance is reported via the
// IsBalanced flag, never silently corrected.
func (r *Reporter) TrialBalance(ctx context.Context, userID int64) (models.TrialBalance, error) {
	accounts, err := r.source.AccountsWithTransactions(ctx, userID)
	if err != nil {
		return models.TrialBalance{}, fmt.Errorf("fetching accounts: %w", err)
	}

	tb := models.TrialBalance{
		Success:      true,
		TrialBalance: []models.TrialBalanceEntry{},
		DataSource:   "ledger-to-trial-balance",
		GeneratedAt:  time.Now(),
	}

	grandTotalDebit := decimal.Zero
	grandTotalCredit := decimal.Zero

	for _, account := range accounts {
		transactions, err := r.source.TransactionsForAccount(ctx, userID, account.ID)
		if err != nil {
			return models.TrialBalance{}, fmt.Errorf("fetching transactions for account %d: %w", account.ID, err)
		}

		finalBalance := ComputeBalance(account, transactions)
		classification := classify.Classify(account.Name, account.Code)

		debitBalance := decimal.Zero
		creditBalance := decimal.Zero
		if classification.NormalBalance == classify.Debit {
			if finalBalance.Sign() >= 0 {
				debitBalance = finalBalance
			} else {
				creditBalance = finalBalance.Abs()
			}
		} else {
			if finalBalance.Sign() >= 0 {
				creditBalance = finalBalance
			} else {
				debitBalance = finalBalance.Abs()
			}
		}

		grandTotalDebit = grandTotalDebit.Add(debitBalance)
		grandTotalCredit = grandTotalCredit.Add(creditBalance)

		tb.TrialBalance = append(tb.TrialBalance, models.TrialBalanceEntry{
			Account: models.AccountRef{
				ID:            account.ID,
				Name:          account.Name,
				Code:          account.Code,
				Category:      account.Category,
				AccountType:   classification.Type,
				NormalBalance: classification.NormalBalance,
			},
			DebitBalance:  debitBalance,
			CreditBalance: creditBalance,
			FinalBalance:  finalBalance,
		})
	}

	tb.Summary = models.TrialBalanceSummary{
		TotalAccounts:    len(tb.TrialBalance),
		GrandTotalDebit:  grandTotalDebit,
		GrandTotalCredit: grandTotalCredit,
		IsBalanced:       grandTotalDebit.Sub(grandTotalCredit).Abs().LessThan(balanceTolerance),
	}
	return tb, nil
}

// IncomeStatement filters the trial balance down to the nominal accounts and
// nets revenue against expenses.
func (r *Reporter) IncomeStatement(ctx context.Context, userID int64) (models.IncomeStatement, error) {
	tb, err := r.TrialBalance(ctx, userID)
	if err != nil {
		return models.IncomeStatement{}, err
	}

	statement := models.IncomeStatement{
		Success:     true,
		Revenue:     models.StatementSection{Accounts: []models.StatementLine{}},
		Expenses:    models.StatementSection{Accounts: []models.StatementLine{}},
		DataSource:  "trial-balance",
		GeneratedAt: time.Now(),
	}

	for _, entry := range tb.TrialBalance {
		line := models.StatementLine{
			Code:   entry.Account.Code,
			Name:   entry.Account.Name,
			Amount: entry.FinalBalance,
		}
		switch entry.Account.AccountType {
		case classify.TypeRevenue:
			statement.Revenue.Accounts = append(statement.Revenue.Accounts, line)
			statement.Revenue.Total = statement.Revenue.Total.Add(entry.FinalBalance)
		case classify.TypeExpense:
			statement.Expenses.Accounts = append(statement.Expenses.Accounts, line)
			statement.Expenses.Total = statement.Expenses.Total.Add(entry.FinalBalance)
		}
	}

	statement.NetIncome = statement.Revenue.Total.Sub(statement.Expenses.Total)
	return statement, nil
}

// BalanceSheet covers the real accounts from the trial balance, splitting
// assets into current and non-current by category and injecting the period's
// net income into equity as a retained earnings line.
func (r *Reporter) BalanceSheet(ctx context.Context, userID int64) (models.BalanceSheet, error) {
	tb, err := r.TrialBalance(ctx, userID)
	if err != nil {
		return models.BalanceSheet{}, err
	}

	sheet := models.BalanceSheet{
		Success:     true,
		DataSource:  "trial-balance",
		GeneratedAt: time.Now(),
	}
	sheet.Sheet.Assets.CurrentAssets = []models.BalanceSheetLine{}
	sheet.Sheet.Assets.NonCurrentAssets = []models.BalanceSheetLine{}
	sheet.Sheet.Liabilities.CurrentLiabilities = []models.BalanceSheetLine{}
	sheet.Sheet.Equity.Accounts = []models.BalanceSheetLine{}

	totalRevenue := decimal.Zero
	totalExpense := decimal.Zero
	for _, entry := range tb.TrialBalance {
		switch entry.Account.AccountType {
		case classify.TypeRevenue:
			totalRevenue = totalRevenue.Add(entry.FinalBalance)
		case classify.TypeExpense:
			totalExpense = totalExpense.Add(entry.FinalBalance)
		}
	}
	netIncome := totalRevenue.Sub(totalExpense)

	for _, entry := range tb.TrialBalance {
		line := models.BalanceSheetLine{
			Code:    entry.Account.Code,
			Name:    entry.Account.Name,
			Balance: entry.FinalBalance.Abs(),
		}

		switch entry.Account.AccountType {
		case classify.TypeAsset:
			if isCurrentAssetCategory(entry.Account.Category) {
				sheet.Sheet.Assets.CurrentAssets = append(sheet.Sheet.Assets.CurrentAssets, line)
			} else {
				sheet.Sheet.Assets.NonCurrentAssets = append(sheet.Sheet.Assets.NonCurrentAssets, line)
			}
			sheet.Sheet.Assets.Total = sheet.Sheet.Assets.Total.Add(line.Balance)
		case classify.TypeLiability:
			sheet.Sheet.Liabilities.CurrentLiabilities = append(sheet.Sheet.Liabilities.CurrentLiabilities, line)
			sheet.Sheet.Liabilities.Total = sheet.Sheet.Liabilities.Total.Add(line.Balance)
		case classify.TypeEquity:
			sheet.Sheet.Equity.Accounts = append(sheet.Sheet.Equity.Accounts, line)
			sheet.Sheet.Equity.Total = sheet.Sheet.Equity.Total.Add(line.Balance)
		}
	}

	if !netIncome.IsZero() {
		name := "Laba Ditahan"
		if netIncome.Sign() < 0 {
			name = "Rugi Ditahan"
		}
		sheet.Sheet.Equity.Accounts = append(sheet.Sheet.Equity.Accounts, models.BalanceSheetLine{
			Code:               retainedEarningsCode,
			Name:               name,
			Balance:            netIncome.Abs(),
			IsRetainedEarnings: true,
		})
		// The line is displayed as an absolute figure, but the total moves by
		// the signed net income: a loss reduces equity.
		sheet.Sheet.Equity.Total = sheet.Sheet.Equity.Total.Add(netIncome)
	}

	liabilitiesAndEquity := sheet.Sheet.Liabilities.Total.Add(sheet.Sheet.Equity.Total)
	sheet.Totals = models.BalanceSheetTotals{
		TotalAssets:               sheet.Sheet.Assets.Total,
		TotalLiabilities:          sheet.Sheet.Liabilities.Total,
		TotalEquity:               sheet.Sheet.Equity.Total,
		TotalLiabilitiesAndEquity: liabilitiesAndEquity,
		IsBalanced:                sheet.Sheet.Assets.Total.Sub(liabilitiesAndEquity).Abs().LessThan(balanceTolerance),
	}
	sheet.NetIncome = netIncome
	return sheet, nil
}

func (r *Reporter) accountIndex(ctx context.Context, userID int64) (map[int64]models.Account, error) {
	accounts, err := r.source.ListAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching accounts: %w", err)
	}
	index := make(map[int64]models.Account, len(accounts))
	for _, a := range accounts {
		index[a.ID] = a
	}
	return index, nil
}

func isCurrentAssetCategory(category string) bool {
	switch category {
	case classify.CategoryKas, classify.CategoryBank, classify.CategoryPiutang, classify.CategoryPersediaan:
		return true
	}
	return false
}

// splitDate breaks a YYYY-MM-DD date into day, month and year parts for
// journal rows.
func splitDate(date string) (tgl, bln, thn string) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", "", ""
	}
	return t.Format("02"), t.Format("01"), t.Format("2006")
}
