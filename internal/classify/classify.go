package classify

import (
	"log/slog"
	"strings"
)

// Classify determines the account type, normal balance and category for an
// account name and optional code. It never fails: unrecognized input falls
// back to LAIN/DEBIT so an account can always be stored.
//
// The checks run in a fixed priority order: code first, then expense, revenue,
// asset, liability and equity name heuristics. The order resolves names whose
// vocabulary overlaps across types ("Beban Perlengkapan" is an expense even
// though "Perlengkapan" alone is an asset) and must not be rearranged.
func Classify(name, code string) Classification {
	accountName := strings.ToUpper(strings.TrimSpace(name))
	accountCode := strings.TrimSpace(code)

	if accountName == "" {
		slog.Warn("classify: empty account name")
		return other()
	}

	if accountCode != "" {
		if c := classifyByCode(accountCode, accountName); c.Type != TypeOther {
			return c
		}
	}

	if isExpenseName(accountName) {
		return Classification{Type: TypeExpense, NormalBalance: Debit, Category: CategoryBeban}
	}

	if isRevenueName(accountName) {
		return Classification{Type: TypeRevenue, NormalBalance: Credit, Category: CategoryPendapatan}
	}

	if isAssetName(accountName) {
		return Classification{Type: TypeAsset, NormalBalance: Debit, Category: assetCategory(accountName)}
	}

	if isLiabilityName(accountName) {
		return Classification{Type: TypeLiability, NormalBalance: Credit, Category: CategoryUtang}
	}

	if isEquityName(accountName) {
		return Classification{Type: TypeEquity, NormalBalance: Credit, Category: CategoryModal}
	}

	slog.Warn("classify: unknown account type", "name", accountName, "code", accountCode)
	return other()
}

// classifyByCode maps a SAK EMKM account code to a type by its leading digit.
// Codes take strict priority over name heuristics.
func classifyByCode(code, name string) Classification {
	switch code[0] {
	case '1':
		return Classification{Type: TypeAsset, NormalBalance: Debit, Category: assetCategory(name)}
	case '2':
		return Classification{Type: TypeLiability, NormalBalance: Credit, Category: CategoryUtang}
	case '3':
		return Classification{Type: TypeEquity, NormalBalance: Credit, Category: CategoryModal}
	case '4':
		return Classification{Type: TypeRevenue, NormalBalance: Credit, Category: CategoryPendapatan}
	case '5':
		return Classification{Type: TypeExpense, NormalBalance: Debit, Category: CategoryBeban}
	}
	return other()
}

func hasExpensePrefix(name string) bool {
	return strings.HasPrefix(name, "BEBAN ") || name == "BEBAN" ||
		strings.HasPrefix(name, "BIAYA ") || name == "BIAYA"
}

var specificExpenses = []string{
	"BEBAN GAJI", "BEBAN LISTRIK", "BEBAN AIR", "BEBAN SEWA",
	"BEBAN PERLENGKAPAN", "BEBAN TELEPON", "BEBAN INTERNET",
	"BIAYA GAJI", "BIAYA LISTRIK", "BIAYA OPERASIONAL",
}

var expenseKeywords = []string{
	"UPAH", "GAJI KARYAWAN", "HONORARIUM",
	"HARGA POKOK", "ONGKOS", "TRANSPORT",
	"MAKAN MINUM", "OPERASIONAL", "EXPENSE",
	"ADMINISTRASI", "MARKETING", "PROMOSI",
	"PENYUSUTAN", "PAJAK PENGHASILAN", "BUNGA PINJAMAN",
}

// assetIndicators void expense keyword matches for names that are really
// assets ("Peralatan" must not become an expense via a stray keyword).
var assetIndicators = []string{
	"PIUTANG", "PERSEDIAAN", "KAS", "BANK", "TANAH", "BANGUNAN",
	"PERALATAN", "KENDARAAN", "MESIN", "INVENTARIS",
}

func isExpenseName(name string) bool {
	if hasExpensePrefix(name) {
		return true
	}
	if containsAny(name, specificExpenses) {
		return true
	}
	if containsAny(name, expenseKeywords) && !containsAny(name, assetIndicators) {
		return true
	}
	return false
}

var specificRevenues = []string{
	"PENDAPATAN JASA", "PENDAPATAN PENJUALAN", "PENDAPATAN USAHA",
	"PENJUALAN BARANG", "PENJUALAN JASA",
	"HASIL PENJUALAN", "OMZET PENJUALAN",
}

var revenueKeywords = []string{
	"JASA KONSULTASI", "KOMISI PENJUALAN",
	"BUNGA DITERIMA", "DIVIDEN DITERIMA", "ROYALTI DITERIMA",
	"SEWA DITERIMA", "REVENUE", "INCOME OPERASIONAL",
	"LABA PENJUALAN ASET",
}

// equityIndicators keep revenue keywords from capturing equity accounts.
var equityIndicators = []string{
	"MODAL ", "SAHAM ", "INVESTASI PEMILIK", "SETORAN MODAL",
	"LABA DITAHAN", "CADANGAN ",
}

func isRevenueName(name string) bool {
	for _, r := range specificRevenues {
		if name == r || strings.HasPrefix(name, r) {
			return true
		}
	}
	if strings.HasPrefix(name, "PENDAPATAN ") || name == "PENDAPATAN" ||
		strings.HasPrefix(name, "PENJUALAN ") || name == "PENJUALAN" {
		return true
	}
	if containsAny(name, revenueKeywords) && !containsAny(name, equityIndicators) {
		return true
	}
	return false
}

var specificAssets = []string{
	"PERLENGKAPAN",
	"KAS", "KAS KECIL", "KAS BESAR",
	"BANK BCA", "BANK MANDIRI", "BANK BRI", "REKENING BANK",
	"PIUTANG USAHA", "PIUTANG DAGANG",
	"PERSEDIAAN BARANG", "STOK BARANG",
	"TANAH DAN BANGUNAN", "GEDUNG KANTOR",
	"KENDARAAN OPERASIONAL", "MOTOR DINAS",
	"PERALATAN KANTOR", "KOMPUTER", "PRINTER",
}

var assetKeywords = []string{
	"TUNAI", "CASH", "GIRO", "DEPOSITO",
	"TAGIHAN", "DEBITUR", "BARANG DAGANGAN",
	"TANAH", "BANGUNAN", "GEDUNG", "KENDARAAN", "MESIN",
	"INVENTARIS", "SUPPLIES",
	"DIBAYAR DIMUKA", "MASIH HARUS DITERIMA",
	"AKUMULASI PENYUSUTAN", "INVESTASI JANGKA PANJANG",
	"HAK PATEN", "GOODWILL", "LISENSI", "ASET TAKBERWUJUD",
}

// expenseIndicators void asset keyword matches for names that carry expense
// vocabulary alongside an asset word ("Sewa Gedung Kantor").
var expenseIndicators = []string{
	"BEBAN ", "BIAYA ", "UPAH", "GAJI", "SEWA GEDUNG", "LISTRIK", "AIR",
}

func isAssetName(name string) bool {
	// Expense prefixes never classify as assets, whatever follows.
	if hasExpensePrefix(name) {
		return false
	}
	for _, a := range specificAssets {
		if name == a {
			return true
		}
	}
	if containsAny(name, assetKeywords) && !containsAny(name, expenseIndicators) {
		return true
	}
	return false
}

var liabilityKeywords = []string{
	"UTANG", "HUTANG", "KREDIT", "PINJAMAN", "KREDITUR",
	"LIABILITAS", "KEWAJIBAN", "CICILAN",
	"BEBAN YANG MASIH HARUS DIBAYAR", "MASIH HARUS DIBAYAR",
	"PENDAPATAN DITERIMA DIMUKA", "DITERIMA DIMUKA",
	"OBLIGASI", "HIPOTIK", "HIPOTEK",
}

func isLiabilityName(name string) bool {
	return containsAny(name, liabilityKeywords)
}

var specificEquity = []string{
	"MODAL PEMILIK", "MODAL SAHAM", "MODAL DISETOR",
	"LABA DITAHAN", "CADANGAN", "PRIVE",
	"INVESTASI PEMILIK", "SETORAN MODAL",
}

var equityKeywords = []string{"MODAL", "SAHAM", "EKUITAS", "CADANGAN", "PRIVE"}

// revenueIndicators keep equity keywords from capturing revenue accounts.
var revenueIndicators = []string{"PENDAPATAN", "PENJUALAN", "JASA", "KOMISI"}

func isEquityName(name string) bool {
	if containsAny(name, specificEquity) {
		return true
	}
	return containsAny(name, equityKeywords) && !containsAny(name, revenueIndicators)
}

// assetCategory assigns the asset sub-category used for the balance sheet's
// current/non-current split.
func assetCategory(name string) string {
	switch {
	case strings.Contains(name, "KAS"), strings.Contains(name, "TUNAI"), strings.Contains(name, "CASH"):
		return CategoryKas
	case strings.Contains(name, "BANK"), strings.Contains(name, "REKENING"), strings.Contains(name, "GIRO"):
		return CategoryBank
	case strings.Contains(name, "PIUTANG"), strings.Contains(name, "TAGIHAN"):
		return CategoryPiutang
	case strings.Contains(name, "PERSEDIAAN"), strings.Contains(name, "STOK"), strings.Contains(name, "BARANG"):
		return CategoryPersediaan
	case strings.Contains(name, "PERLENGKAPAN"), strings.Contains(name, "SUPPLIES"):
		return CategoryPerlengkapan
	}
	return CategoryAset
}

func containsAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}
