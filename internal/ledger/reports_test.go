package ledger

import (
	"context"
	"testing"

	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store/memory"
)

const testUserID = int64(1)

// seedBooks sets up a small but complete set of books: a capital injection,
// one sale and one expense payment.
func seedBooks(t *testing.T) *memory.Store {
	t.Helper()
	st := memory.New()
	ctx := context.Background()

	accounts := []models.Account{
		{Name: "Kas", Code: "1101", Category: "KAS"},
		{Name: "Modal Pemilik", Code: "3101", Category: "MODAL"},
		{Name: "Pendapatan Jasa", Code: "4101", Category: "PENDAPATAN"},
		{Name: "Beban Gaji", Code: "5102", Category: "BEBAN"},
	}
	ids := make([]int64, len(accounts))
	for i, a := range accounts {
		a.UserID = testUserID
		created, err := st.CreateAccount(ctx, a)
		if err != nil {
			t.Fatal(err)
		}
		ids[i] = created.ID
	}

	transactions := []models.Transaction{
		{DebitAccountID: ids[0], CreditAccountID: ids[1], Amount: d("10000000"), Description: "Setoran modal", TransactionDate: "2024-01-05"},
		{DebitAccountID: ids[0], CreditAccountID: ids[2], Amount: d("2000000"), Description: "Pendapatan jasa konsultasi", TransactionDate: "2024-01-10"},
		{DebitAccountID: ids[3], CreditAccountID: ids[0], Amount: d("500000"), Description: "Gaji karyawan", TransactionDate: "2024-01-25"},
	}
	for _, tx := range transactions {
		tx.UserID = testUserID
		if _, err := st.CreateTransaction(ctx, tx); err != nil {
			t.Fatal(err)
		}
	}

	return st
}

func TestGeneralJournal(t *testing.T) {
	r := NewReporter(seedBooks(t))
	journal, err := r.GeneralJournal(context.Background(), testUserID)
	if err != nil {
		t.Fatal(err)
	}

	if len(journal.JournalEntries) != 6 {
		t.Errorf("journal has %d rows, expected 6", len(journal.JournalEntries))
	}
	if journal.Summary.TotalTransactions != 3 {
		t.Errorf("total transactions = %d, expected 3", journal.Summary.TotalTransactions)
	}
	if !journal.Summary.TotalDebit.Equal(journal.Summary.TotalCredit) {
		t.Errorf("journal totals differ: debit %s, credit %s", journal.Summary.TotalDebit, journal.Summary.TotalCredit)
	}
	if !journal.Summary.TotalDebit.Equal(d("12500000")) {
		t.Errorf("total debit = %s, expected 12500000", journal.Summary.TotalDebit)
	}

	first := journal.JournalEntries[0]
	if first.Type != "debit" || first.Tgl != "05" || first.Bln != "01" || first.Thn != "2024" {
		t.Errorf("unexpected first row: %+v", first)
	}
}

func TestLedgerRunningBalance(t *testing.T) {
	r := NewReporter(seedBooks(t))
	report, err := r.Ledger(context.Background(), testUserID)
	if err != nil {
		t.Fatal(err)
	}

	var kas *models.AccountLedger
	for i := range report.Ledgers {
		if report.Ledgers[i].Account.Name == "Kas" {
			kas = &report.Ledgers[i]
		}
	}
	if kas == nil {
		t.Fatal("no ledger for Kas")
	}

	if len(kas.Entries) != 3 {
		t.Fatalf("Kas ledger has %d entries, expected 3", len(kas.Entries))
	}
	expected := []string{"10000000", "12000000", "11500000"}
	for i, e := range kas.Entries {
		if !e.Balance.Equal(d(expected[i])) {
			t.Errorf("Kas entry %d balance = %s, expected %s", i, e.Balance, expected[i])
		}
	}
	if !kas.TotalDebit.Equal(d("12000000")) || !kas.TotalCredit.Equal(d("500000")) {
		t.Errorf("Kas totals = %s/%s, expected 12000000/500000", kas.TotalDebit, kas.TotalCredit)
	}
}

func TestTrialBalance(t *testing.T) {
	r := NewReporter(seedBooks(t))
	tb, err := r.TrialBalance(context.Background(), testUserID)
	if err != nil {
		t.Fatal(err)
	}

	if !tb.Summary.IsBalanced {
		t.Errorf("trial balance not balanced: debit %s, credit %s",
			tb.Summary.GrandTotalDebit, tb.Summary.GrandTotalCredit)
	}
	if !tb.Summary.GrandTotalDebit.Equal(d("12000000")) {
		t.Errorf("grand total debit = %s, expected 12000000", tb.Summary.GrandTotalDebit)
	}
	if tb.Summary.TotalAccounts != 4 {
		t.Errorf("total accounts = %d, expected 4", tb.Summary.TotalAccounts)
	}

	balances := map[string]string{
		"Kas":             "11500000",
		"Modal Pemilik":   "10000000",
		"Pendapatan Jasa": "2000000",
		"Beban Gaji":      "500000",
	}
	for _, entry := range tb.TrialBalance {
		expected, ok := balances[entry.Account.Name]
		if !ok {
			t.Errorf("unexpected account %q in trial balance", entry.Account.Name)
			continue
		}
		if !entry.FinalBalance.Equal(d(expected)) {
			t.Errorf("%s balance = %s, expected %s", entry.Account.Name, entry.FinalBalance, expected)
		}
	}
}

// A balance driven negative against its normal side moves to the opposite
// column as a positive figure.
func TestTrialBalanceInvertedBalance(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	kas, err := st.CreateAccount(ctx, models.Account{UserID: testUserID, Name: "Kas", Code: "1101", Category: "KAS"})
	if err != nil {
		t.Fatal(err)
	}
	modal, err := st.CreateAccount(ctx, models.Account{UserID: testUserID, Name: "Modal Pemilik", Code: "3101", Category: "MODAL"})
	if err != nil {
		t.Fatal(err)
	}
	// Credit cash more than it ever held.
	if _, err := st.CreateTransaction(ctx, models.Transaction{
		UserID: testUserID, DebitAccountID: modal.ID, CreditAccountID: kas.ID,
		Amount: d("100000"), Description: "Penarikan", TransactionDate: "2024-02-01",
	}); err != nil {
		t.Fatal(err)
	}

	tb, err := NewReporter(st).TrialBalance(ctx, testUserID)
	if err != nil {
		t.Fatal(err)
	}

	for _, entry := range tb.TrialBalance {
		if entry.Account.Name != "Kas" {
			continue
		}
		if !entry.FinalBalance.Equal(d("-100000")) {
			t.Errorf("Kas final balance = %s, expected -100000", entry.FinalBalance)
		}
		if !entry.CreditBalance.Equal(d("100000")) {
			t.Errorf("Kas credit column = %s, expected 100000", entry.CreditBalance)
		}
		if !entry.DebitBalance.IsZero() {
			t.Errorf("Kas debit column = %s, expected 0", entry.DebitBalance)
		}
	}
}

func TestIncomeStatement(t *testing.T) {
	r := NewReporter(seedBooks(t))
	statement, err := r.IncomeStatement(context.Background(), testUserID)
	if err != nil {
		t.Fatal(err)
	}

	if !statement.Revenue.Total.Equal(d("2000000")) {
		t.Errorf("revenue total = %s, expected 2000000", statement.Revenue.Total)
	}
	if !statement.Expenses.Total.Equal(d("500000")) {
		t.Errorf("expense total = %s, expected 500000", statement.Expenses.Total)
	}
	if !statement.NetIncome.Equal(d("1500000")) {
		t.Errorf("net income = %s, expected 1500000", statement.NetIncome)
	}
	if len(statement.Revenue.Accounts) != 1 || len(statement.Expenses.Accounts) != 1 {
		t.Errorf("statement lines = %d revenue, %d expense, expected 1 each",
			len(statement.Revenue.Accounts), len(statement.Expenses.Accounts))
	}
}

func TestBalanceSheet(t *testing.T) {
	r := NewReporter(seedBooks(t))
	sheet, err := r.BalanceSheet(context.Background(), testUserID)
	if err != nil {
		t.Fatal(err)
	}

	if !sheet.Totals.IsBalanced {
		t.Errorf("balance sheet not balanced: assets %s, liabilities+equity %s",
			sheet.Totals.TotalAssets, sheet.Totals.TotalLiabilitiesAndEquity)
	}
	if !sheet.Totals.TotalAssets.Equal(d("11500000")) {
		t.Errorf("total assets = %s, expected 11500000", sheet.Totals.TotalAssets)
	}
	if !sheet.Totals.TotalEquity.Equal(d("11500000")) {
		t.Errorf("total equity = %s, expected 11500000", sheet.Totals.TotalEquity)
	}

	var retained *models.BalanceSheetLine
	for i := range sheet.Sheet.Equity.Accounts {
		if sheet.Sheet.Equity.Accounts[i].IsRetainedEarnings {
			retained = &sheet.Sheet.Equity.Accounts[i]
		}
	}
	if retained == nil {
		t.Fatal("no retained earnings line")
	}
	if retained.Name != "Laba Ditahan" {
		t.Errorf("retained earnings name = %q, expected Laba Ditahan", retained.Name)
	}
	if !retained.Balance.Equal(d("1500000")) {
		t.Errorf("retained earnings = %s, expected 1500000", retained.Balance)
	}
}

// A period that ends in a loss still balances: the loss line is displayed as
// a positive figure but reduces total equity.
func TestBalanceSheetLoss(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	kas, err := st.CreateAccount(ctx, models.Account{UserID: testUserID, Name: "Kas", Code: "1101", Category: "KAS"})
	if err != nil {
		t.Fatal(err)
	}
	modal, err := st.CreateAccount(ctx, models.Account{UserID: testUserID, Name: "Modal Pemilik", Code: "3101", Category: "MODAL"})
	if err != nil {
		t.Fatal(err)
	}
	beban, err := st.CreateAccount(ctx, models.Account{UserID: testUserID, Name: "Beban Listrik", Code: "5103", Category: "BEBAN"})
	if err != nil {
		t.Fatal(err)
	}

	seed := []models.Transaction{
		{UserID: testUserID, DebitAccountID: kas.ID, CreditAccountID: modal.ID, Amount: d("1000000"), Description: "Setoran modal", TransactionDate: "2024-01-01"},
		{UserID: testUserID, DebitAccountID: beban.ID, CreditAccountID: kas.ID, Amount: d("300000"), Description: "Bayar listrik", TransactionDate: "2024-01-15"},
	}
	for _, tx := range seed {
		if _, err := st.CreateTransaction(ctx, tx); err != nil {
			t.Fatal(err)
		}
	}

	sheet, err := NewReporter(st).BalanceSheet(ctx, testUserID)
	if err != nil {
		t.Fatal(err)
	}

	if !sheet.NetIncome.Equal(d("-300000")) {
		t.Errorf("net income = %s, expected -300000", sheet.NetIncome)
	}
	if !sheet.Totals.TotalAssets.Equal(d("700000")) {
		t.Errorf("total assets = %s, expected 700000", sheet.Totals.TotalAssets)
	}
	if !sheet.Totals.TotalEquity.Equal(d("700000")) {
		t.Errorf("total equity = %s, expected 700000", sheet.Totals.TotalEquity)
	}
	if !sheet.Totals.IsBalanced {
		t.Error("balance sheet with loss not balanced")
	}

	for _, line := range sheet.Sheet.Equity.Accounts {
		if line.IsRetainedEarnings {
			if line.Name != "Rugi Ditahan" {
				t.Errorf("loss line name = %q, expected Rugi Ditahan", line.Name)
			}
			if !line.Balance.Equal(d("300000")) {
				t.Errorf("loss line balance = %s, expected positive 300000", line.Balance)
			}
		}
	}
}

// Accounts another user owns never leak into a report.
func TestReportsScopedToUser(t *testing.T) {
	st := seedBooks(t)
	ctx := context.Background()

	other, err := st.CreateAccount(ctx, models.Account{UserID: 2, Name: "Kas", Code: "1101", Category: "KAS"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.CreateTransaction(ctx, models.Transaction{
		UserID: 2, DebitAccountID: other.ID, CreditAccountID: other.ID + 1,
		Amount: d("999999"), Description: "Milik user lain", TransactionDate: "2024-01-02",
	}); err != nil {
		t.Fatal(err)
	}

	journal, err := NewReporter(st).GeneralJournal(ctx, testUserID)
	if err != nil {
		t.Fatal(err)
	}
	if journal.Summary.TotalTransactions != 3 {
		t.Errorf("journal includes %d transactions, expected 3", journal.Summary.TotalTransactions)
	}
}
