package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
)

// TransactionInput is a raw transaction payload. Account references are
// accepted in both snake_case and camelCase spellings and normalized during
// validation; amounts may arrive under either "amount" or "nominal".
type TransactionInput struct {
	DebitAccountID       int64       `json:"debit_account_id"`
	DebitAccountIDCamel  int64       `json:"debitAccountId"`
	CreditAccountID      int64       `json:"credit_account_id"`
	CreditAccountIDCamel int64       `json:"creditAccountId"`
	Amount               json.Number `json:"amount"`
	Nominal              json.Number `json:"nominal"`
	Description          string      `json:"description"`
	TransactionDate      string      `json:"transaction_date"`
	Date                 string      `json:"date"`
}

// SanitizedTransaction is the normalized output of transaction validation.
type SanitizedTransaction struct {
	DebitAccountID  int64           `json:"debit_account_id"`
	CreditAccountID int64           `json:"credit_account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transaction_date"`
}

// TransactionValidation is the accumulated result of validating a
// transaction payload.
type TransactionValidation struct {
	IsValid   bool                 `json:"isValid"`
	Errors    []string             `json:"errors"`
	Sanitized SanitizedTransaction `json:"sanitizedData"`
}

// ValidateTransaction checks a raw transaction payload before it reaches
// storage. All violations are collected rather than failing on the first.
func ValidateTransaction(in TransactionInput) TransactionValidation {
	var v TransactionValidation

	amount, ok := parseAmount(in.Amount, in.Nominal)
	if !ok || amount.Sign() <= 0 {
		v.Errors = append(v.Errors, "Nominal transaksi harus diisi dengan nilai yang valid dan lebih dari 0")
	} else {
		v.Sanitized.Amount = amount
	}

	debitID := in.DebitAccountID
	if debitID == 0 {
		debitID = in.DebitAccountIDCamel
	}
	if debitID == 0 {
		v.Errors = append(v.Errors, "Akun debit harus dipilih")
	}
	v.Sanitized.DebitAccountID = debitID

	creditID := in.CreditAccountID
	if creditID == 0 {
		creditID = in.CreditAccountIDCamel
	}
	if creditID == 0 {
		v.Errors = append(v.Errors, "Akun kredit harus dipilih")
	}
	v.Sanitized.CreditAccountID = creditID

	if debitID != 0 && debitID == creditID {
		v.Errors = append(v.Errors, "Akun debit dan kredit tidak boleh sama")
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		v.Errors = append(v.Errors, "Deskripsi transaksi harus diisi")
	}
	v.Sanitized.Description = description

	date := in.TransactionDate
	if date == "" {
		date = in.Date
	}
	if date == "" {
		v.Errors = append(v.Errors, "Tanggal transaksi harus diisi")
	} else {
		normalized, err := normalizeDate(date)
		if err != nil {
			v.Errors = append(v.Errors, "Tanggal transaksi tidak valid")
		} else {
			v.Sanitized.TransactionDate = normalized
		}
	}

	v.IsValid = len(v.Errors) == 0
	return v
}

// AccountInput is a raw account payload.
type AccountInput struct {
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	Balance     json.Number `json:"balance"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
}

// SanitizedAccount is the normalized output of account validation, including
// the classification derived from the sanitized name and code.
type SanitizedAccount struct {
	Name           string                  `json:"name"`
	Code           string                  `json:"code"`
	Balance        decimal.Decimal         `json:"balance"`
	Description    string                  `json:"description"`
	Classification classify.Classification `json:"classification"`
}

// AccountValidation is the accumulated result of validating an account
// payload.
type AccountValidation struct {
	IsValid   bool             `json:"isValid"`
	Errors    []string         `json:"errors"`
	Sanitized SanitizedAccount `json:"sanitizedData"`
}

// ValidateAccount checks a raw account payload. A name that classifies to
// LAIN is a validation error: the caller has to supply a recognizable name or
// a disambiguating code instead of silently filing the account under LAIN.
func ValidateAccount(in AccountInput) AccountValidation {
	var v AccountValidation

	name := strings.TrimSpace(in.Name)
	if name == "" {
		v.Errors = append(v.Errors, "Nama akun harus diisi")
	}
	v.Sanitized.Name = name
	v.Sanitized.Code = strings.TrimSpace(in.Code)
	v.Sanitized.Description = strings.TrimSpace(in.Description)

	if in.Balance.String() == "" {
		v.Sanitized.Balance = decimal.Zero
	} else if balance, err := decimal.NewFromString(in.Balance.String()); err != nil {
		v.Errors = append(v.Errors, "Saldo awal harus berupa angka yang valid")
	} else {
		v.Sanitized.Balance = balance
	}

	classification := classify.Classify(v.Sanitized.Name, v.Sanitized.Code)
	if name != "" && classification.Type == classify.TypeOther {
		v.Errors = append(v.Errors, fmt.Sprintf(
			"Akun %q tidak dapat diklasifikasi. Pastikan nama akun sesuai standar SAK EMKM atau berikan kode akun yang tepat.", name))
	}
	v.Sanitized.Classification = classification

	v.IsValid = len(v.Errors) == 0
	return v
}

func parseAmount(values ...json.Number) (decimal.Decimal, bool) {
	for _, n := range values {
		s := n.String()
		if s == "" {
			continue
		}
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return amount, true
	}
	return decimal.Zero, false
}

// normalizeDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar date part.
func normalizeDate(s string) (string, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
