// Package classify assigns SAK EMKM account types and normal balances to
// accounts based on their name and code.
package classify

// AccountType is one of the five SAK EMKM account types, plus LAIN for
// accounts that cannot be classified.
type AccountType string

const (
	TypeAsset     AccountType = "ASET"
	TypeLiability AccountType = "LIABILITAS"
	TypeEquity    AccountType = "EKUITAS"
	TypeRevenue   AccountType = "PENDAPATAN"
	TypeExpense   AccountType = "BEBAN"
	TypeOther     AccountType = "LAIN"
)

// NormalBalance is the side on which an account's balance increases.
type NormalBalance string

const (
	Debit  NormalBalance = "DEBIT"
	Credit NormalBalance = "CREDIT"
)

// Account categories. Asset accounts get a sub-category used by the balance
// sheet to split current from non-current assets.
const (
	CategoryKas          = "KAS"
	CategoryBank         = "BANK"
	CategoryPiutang      = "PIUTANG"
	CategoryPersediaan   = "PERSEDIAAN"
	CategoryPerlengkapan = "PERLENGKAPAN"
	CategoryAset         = "ASET"
	CategoryUtang        = "UTANG"
	CategoryModal        = "MODAL"
	CategoryPendapatan   = "PENDAPATAN"
	CategoryBeban        = "BEBAN"
	CategoryLain         = "LAIN"
)

// NormalBalance returns the normal balance side for an account type.
func (t AccountType) NormalBalance() NormalBalance {
	switch t {
	case TypeAsset, TypeExpense, TypeOther:
		return Debit
	case TypeLiability, TypeEquity, TypeRevenue:
		return Credit
	}
	return Debit
}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense, TypeOther:
		return true
	}
	return false
}

// Classification is the result of classifying an account. It is a value
// derived from the account's name and code and can be recomputed at any time.
type Classification struct {
	Type          AccountType   `json:"type"`
	NormalBalance NormalBalance `json:"normal_balance"`
	Category      string        `json:"category"`
}

func other() Classification {
	return Classification{Type: TypeOther, NormalBalance: Debit, Category: CategoryLain}
}
