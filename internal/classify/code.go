package classify

import (
	"strconv"
	"time"
)

var typePrefixes = map[AccountType]string{
	TypeAsset:     "1",
	TypeLiability: "2",
	TypeEquity:    "3",
	TypeRevenue:   "4",
	TypeExpense:   "5",
}

var categoryPrefixes = map[string]string{
	CategoryKas:        "11",
	CategoryBank:       "12",
	CategoryPiutang:    "13",
	CategoryPersediaan: "14",
	CategoryAset:       "15",
	CategoryUtang:      "21",
	CategoryModal:      "31",
	CategoryPendapatan: "41",
	CategoryBeban:      "51",
}

// GenerateCode builds a simple SAK EMKM account code for accounts created
// without one. The prefix comes from the category (or type as fallback) and
// the suffix from the clock, so generated codes stay unique enough for a
// small chart.
func GenerateCode(accountType AccountType, category string) string {
	prefix, ok := categoryPrefixes[category]
	if !ok {
		prefix, ok = typePrefixes[accountType]
		if !ok {
			prefix = "1"
		}
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return prefix + ts[len(ts)-2:]
}
