package classify

import (
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name        string
		accountType AccountType
		category    string
		prefix      string
	}{
		{"cash category", TypeAsset, CategoryKas, "11"},
		{"bank category", TypeAsset, CategoryBank, "12"},
		{"receivable category", TypeAsset, CategoryPiutang, "13"},
		{"inventory category", TypeAsset, CategoryPersediaan, "14"},
		{"generic asset category", TypeAsset, CategoryAset, "15"},
		{"liability category", TypeLiability, CategoryUtang, "21"},
		{"equity category", TypeEquity, CategoryModal, "31"},
		{"revenue category", TypeRevenue, CategoryPendapatan, "41"},
		{"expense category", TypeExpense, CategoryBeban, "51"},
		{"type fallback", TypeLiability, "SOMETHING", "2"},
		{"unknown everything", TypeOther, "SOMETHING", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := GenerateCode(tt.accountType, tt.category)
			if !strings.HasPrefix(code, tt.prefix) {
				t.Errorf("GenerateCode(%s, %s) = %q, expected prefix %q", tt.accountType, tt.category, code, tt.prefix)
			}
			if len(code) != len(tt.prefix)+2 {
				t.Errorf("GenerateCode(%s, %s) = %q, expected %d characters", tt.accountType, tt.category, code, len(tt.prefix)+2)
			}
		})
	}
}

func TestGenerateCodeClassifiesBack(t *testing.T) {
	// A generated code's leading digit must agree with the account type, so
	// code-based classification of the stored account stays consistent.
	for accountType, prefix := range typePrefixes {
		code := GenerateCode(accountType, "")
		if !strings.HasPrefix(code, prefix) {
			t.Errorf("GenerateCode(%s) = %q, expected leading %q", accountType, code, prefix)
		}
	}
}
