package ledger

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
)

func TestValidateTransaction(t *testing.T) {
	v := ValidateTransaction(TransactionInput{
		DebitAccountID:  1,
		CreditAccountID: 2,
		Amount:          json.Number("150000"),
		Description:     "  Penjualan tunai  ",
		TransactionDate: "2024-03-15",
	})

	if !v.IsValid {
		t.Fatalf("expected valid, got errors: %v", v.Errors)
	}
	if v.Sanitized.Description != "Penjualan tunai" {
		t.Errorf("description = %q, expected trimmed", v.Sanitized.Description)
	}
	if !v.Sanitized.Amount.Equal(d("150000")) {
		t.Errorf("amount = %s, expected 150000", v.Sanitized.Amount)
	}
	if v.Sanitized.TransactionDate != "2024-03-15" {
		t.Errorf("date = %q, expected 2024-03-15", v.Sanitized.TransactionDate)
	}
}

func TestValidateTransactionCamelCaseFields(t *testing.T) {
	v := ValidateTransaction(TransactionInput{
		DebitAccountIDCamel:  3,
		CreditAccountIDCamel: 4,
		Nominal:              json.Number("99000"),
		Description:          "Bayar listrik",
		Date:                 "2024-01-31",
	})

	if !v.IsValid {
		t.Fatalf("expected valid, got errors: %v", v.Errors)
	}
	if v.Sanitized.DebitAccountID != 3 || v.Sanitized.CreditAccountID != 4 {
		t.Errorf("account IDs = %d/%d, expected 3/4", v.Sanitized.DebitAccountID, v.Sanitized.CreditAccountID)
	}
	if !v.Sanitized.Amount.Equal(d("99000")) {
		t.Errorf("amount = %s, expected 99000 from nominal field", v.Sanitized.Amount)
	}
}

func TestValidateTransactionAccumulatesErrors(t *testing.T) {
	v := ValidateTransaction(TransactionInput{})

	if v.IsValid {
		t.Fatal("expected invalid")
	}
	// Amount, debit, credit, description and date are all missing.
	if len(v.Errors) != 5 {
		t.Errorf("got %d errors, expected 5: %v", len(v.Errors), v.Errors)
	}
}

func TestValidateTransactionErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    TransactionInput
		expected string
	}{
		{
			"zero amount",
			TransactionInput{DebitAccountID: 1, CreditAccountID: 2, Amount: json.Number("0"), Description: "x", TransactionDate: "2024-01-01"},
			"Nominal transaksi",
		},
		{
			"negative amount",
			TransactionInput{DebitAccountID: 1, CreditAccountID: 2, Amount: json.Number("-5"), Description: "x", TransactionDate: "2024-01-01"},
			"Nominal transaksi",
		},
		{
			"same accounts",
			TransactionInput{DebitAccountID: 7, CreditAccountID: 7, Amount: json.Number("100"), Description: "x", TransactionDate: "2024-01-01"},
			"tidak boleh sama",
		},
		{
			"blank description",
			TransactionInput{DebitAccountID: 1, CreditAccountID: 2, Amount: json.Number("100"), Description: "   ", TransactionDate: "2024-01-01"},
			"Deskripsi",
		},
		{
			"bad date",
			TransactionInput{DebitAccountID: 1, CreditAccountID: 2, Amount: json.Number("100"), Description: "x", TransactionDate: "31-01-2024"},
			"Tanggal transaksi tidak valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateTransaction(tt.input)
			if v.IsValid {
				t.Fatal("expected invalid")
			}
			found := false
			for _, e := range v.Errors {
				if strings.Contains(e, tt.expected) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", v.Errors, tt.expected)
			}
		})
	}
}

func TestValidateTransactionNormalizesTimestampDate(t *testing.T) {
	v := ValidateTransaction(TransactionInput{
		DebitAccountID:  1,
		CreditAccountID: 2,
		Amount:          json.Number("100"),
		Description:     "x",
		TransactionDate: "2024-06-01T14:30:00Z",
	})

	if !v.IsValid {
		t.Fatalf("expected valid, got errors: %v", v.Errors)
	}
	if v.Sanitized.TransactionDate != "2024-06-01" {
		t.Errorf("date = %q, expected 2024-06-01", v.Sanitized.TransactionDate)
	}
}

func TestValidateAccount(t *testing.T) {
	v := ValidateAccount(AccountInput{
		Name:    " Kas ",
		Balance: json.Number("500000"),
	})

	if !v.IsValid {
		t.Fatalf("expected valid, got errors: %v", v.Errors)
	}
	if v.Sanitized.Name != "Kas" {
		t.Errorf("name = %q, expected trimmed", v.Sanitized.Name)
	}
	if v.Sanitized.Classification.Type != classify.TypeAsset {
		t.Errorf("classification = %s, expected %s", v.Sanitized.Classification.Type, classify.TypeAsset)
	}
	if !v.Sanitized.Balance.Equal(d("500000")) {
		t.Errorf("balance = %s, expected 500000", v.Sanitized.Balance)
	}
}

func TestValidateAccountDefaultsBalanceToZero(t *testing.T) {
	v := ValidateAccount(AccountInput{Name: "Kas"})
	if !v.IsValid {
		t.Fatalf("expected valid, got errors: %v", v.Errors)
	}
	if !v.Sanitized.Balance.IsZero() {
		t.Errorf("balance = %s, expected 0", v.Sanitized.Balance)
	}
}

func TestValidateAccountErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    AccountInput
		expected string
	}{
		{"empty name", AccountInput{}, "Nama akun"},
		{"bad balance", AccountInput{Name: "Kas", Balance: json.Number("abc")}, "Saldo awal"},
		{"unclassifiable name", AccountInput{Name: "Sesuatu Yang Aneh"}, "tidak dapat diklasifikasi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateAccount(tt.input)
			if v.IsValid {
				t.Fatal("expected invalid")
			}
			found := false
			for _, e := range v.Errors {
				if strings.Contains(e, tt.expected) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", v.Errors, tt.expected)
			}
		})
	}
}

func TestValidateAccountCodeDisambiguates(t *testing.T) {
	// A name the classifier cannot place is acceptable with a typed code.
	v := ValidateAccount(AccountInput{Name: "Sesuatu Yang Aneh", Code: "1501"})
	if !v.IsValid {
		t.Fatalf("expected valid with code, got errors: %v", v.Errors)
	}
	if v.Sanitized.Classification.Type != classify.TypeAsset {
		t.Errorf("classification = %s, expected %s", v.Sanitized.Classification.Type, classify.TypeAsset)
	}
}
