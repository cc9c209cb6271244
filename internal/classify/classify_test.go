package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		account  string
		code     string
		expected AccountType
	}{
		{"cash", "Kas", "", TypeAsset},
		{"bank", "Bank BCA", "", TypeAsset},
		{"receivable", "Piutang Usaha", "", TypeAsset},
		{"supplies", "Perlengkapan", "", TypeAsset},
		{"equipment", "Peralatan Kantor", "", TypeAsset},
		{"prepaid", "Sewa Dibayar Dimuka", "", TypeAsset},
		{"payable", "Utang Usaha", "", TypeLiability},
		{"bank loan", "Pinjaman Bank", "", TypeLiability},
		{"unearned revenue by code", "Pendapatan Diterima Dimuka", "2105", TypeLiability},
		{"accrued expense", "Beban Yang Masih Harus Dibayar", "", TypeExpense},
		{"mortgage", "Utang Hipotik", "", TypeLiability},
		{"owner capital", "Modal Pemilik", "", TypeEquity},
		{"drawing", "Prive", "", TypeEquity},
		{"service revenue", "Pendapatan Jasa", "", TypeRevenue},
		{"sales", "Penjualan Barang", "", TypeRevenue},
		{"salary expense", "Beban Gaji", "", TypeExpense},
		{"electricity expense", "Beban Listrik", "", TypeExpense},
		{"cost prefix", "Biaya Operasional", "", TypeExpense},
		{"unknown", "Sesuatu Yang Aneh", "", TypeOther},
		{"empty name", "", "", TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.account, tt.code)
			if c.Type != tt.expected {
				t.Errorf("Classify(%q, %q).Type = %s, expected %s", tt.account, tt.code, c.Type, tt.expected)
			}
		})
	}
}

// The expense prefix outranks any asset vocabulary in the rest of the name.
// "Beban Perlengkapan" is an expense even though "Perlengkapan" alone is an
// asset.
func TestClassifyExpensePrefixBeatsAssetKeyword(t *testing.T) {
	c := Classify("Beban Perlengkapan", "")
	if c.Type != TypeExpense {
		t.Errorf("Classify(\"Beban Perlengkapan\").Type = %s, expected %s", c.Type, TypeExpense)
	}

	c = Classify("Perlengkapan", "")
	if c.Type != TypeAsset {
		t.Errorf("Classify(\"Perlengkapan\").Type = %s, expected %s", c.Type, TypeAsset)
	}
	if c.Category != CategoryPerlengkapan {
		t.Errorf("Classify(\"Perlengkapan\").Category = %s, expected %s", c.Category, CategoryPerlengkapan)
	}
}

// A code's leading digit wins over whatever the name suggests.
func TestClassifyCodeOverridesName(t *testing.T) {
	tests := []struct {
		name     string
		account  string
		code     string
		expected AccountType
	}{
		{"asset code", "Nama Bebas", "1501", TypeAsset},
		{"liability code", "Nama Bebas", "2101", TypeLiability},
		{"equity code", "Nama Bebas", "3101", TypeEquity},
		{"revenue code", "Nama Bebas", "4101", TypeRevenue},
		{"expense code", "Nama Bebas", "5101", TypeExpense},
		{"asset code beats expense name", "Beban Gaji", "1101", TypeAsset},
		{"unrecognized code falls back to name", "Beban Gaji", "9999", TypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.account, tt.code)
			if c.Type != tt.expected {
				t.Errorf("Classify(%q, %q).Type = %s, expected %s", tt.account, tt.code, c.Type, tt.expected)
			}
		})
	}
}

func TestClassifyNormalBalance(t *testing.T) {
	tests := []struct {
		account  string
		expected NormalBalance
	}{
		{"Kas", Debit},
		{"Beban Gaji", Debit},
		{"Utang Usaha", Credit},
		{"Modal Pemilik", Credit},
		{"Pendapatan Jasa", Credit},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			c := Classify(tt.account, "")
			if c.NormalBalance != tt.expected {
				t.Errorf("Classify(%q).NormalBalance = %s, expected %s", tt.account, c.NormalBalance, tt.expected)
			}
		})
	}
}

func TestClassifyEquityNotRevenue(t *testing.T) {
	// "Modal" related names must not leak into revenue via shared keywords.
	c := Classify("Setoran Modal", "")
	if c.Type != TypeEquity {
		t.Errorf("Classify(\"Setoran Modal\").Type = %s, expected %s", c.Type, TypeEquity)
	}
}

func TestAssetCategory(t *testing.T) {
	tests := []struct {
		account  string
		expected string
	}{
		{"Kas Kecil", CategoryKas},
		{"Bank Mandiri", CategoryBank},
		{"Piutang Dagang", CategoryPiutang},
		{"Persediaan Barang", CategoryPersediaan},
		{"Tanah Dan Bangunan", CategoryAset},
		{"Kendaraan Operasional", CategoryAset},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			c := Classify(tt.account, "")
			if c.Type != TypeAsset {
				t.Fatalf("Classify(%q).Type = %s, expected %s", tt.account, c.Type, TypeAsset)
			}
			if c.Category != tt.expected {
				t.Errorf("Classify(%q).Category = %s, expected %s", tt.account, c.Category, tt.expected)
			}
		})
	}
}

func TestAccountTypeNormalBalance(t *testing.T) {
	tests := []struct {
		accountType AccountType
		expected    NormalBalance
	}{
		{TypeAsset, Debit},
		{TypeExpense, Debit},
		{TypeOther, Debit},
		{TypeLiability, Credit},
		{TypeEquity, Credit},
		{TypeRevenue, Credit},
	}

	for _, tt := range tests {
		if got := tt.accountType.NormalBalance(); got != tt.expected {
			t.Errorf("%s.NormalBalance() = %s, expected %s", tt.accountType, got, tt.expected)
		}
	}
}
