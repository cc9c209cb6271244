package classify

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed chart.yaml
var defaultChartYAML []byte

// ChartAccount is one template row in a chart of accounts.
type ChartAccount struct {
	Name        string      `yaml:"name" json:"name"`
	Code        string      `yaml:"code" json:"code"`
	Category    string      `yaml:"category" json:"category"`
	Type        AccountType `yaml:"type" json:"account_type"`
	Description string      `yaml:"description" json:"description,omitempty"`

	NormalBalance NormalBalance `yaml:"-" json:"normal_balance"`
}

type chartFile struct {
	Accounts []ChartAccount `yaml:"accounts"`
}

// DefaultChart returns the embedded SAK EMKM chart of accounts template.
func DefaultChart() []ChartAccount {
	chart, err := parseChart(defaultChartYAML)
	if err != nil {
		// The embedded chart is validated by tests; a parse failure here is a
		// build defect.
		panic(fmt.Sprintf("embedded chart: %v", err))
	}
	return chart
}

// LoadChart reads a chart of accounts template from a YAML file.
func LoadChart(path string) ([]ChartAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart file: %w", err)
	}
	chart, err := parseChart(data)
	if err != nil {
		return nil, fmt.Errorf("parsing chart file %s: %w", path, err)
	}
	return chart, nil
}

func parseChart(data []byte) ([]ChartAccount, error) {
	var f chartFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	for i := range f.Accounts {
		a := &f.Accounts[i]
		if a.Name == "" {
			return nil, fmt.Errorf("account %d: name is required", i)
		}
		if !a.Type.Valid() || a.Type == TypeOther {
			return nil, fmt.Errorf("account %q: invalid type %q", a.Name, a.Type)
		}
		a.NormalBalance = a.Type.NormalBalance()
	}
	return f.Accounts, nil
}

var typeOrder = map[AccountType]int{
	TypeAsset:     1,
	TypeLiability: 2,
	TypeEquity:    3,
	TypeRevenue:   4,
	TypeExpense:   5,
}

// SortChart orders chart accounts by type (assets first) and then by numeric
// code within each type.
func SortChart(chart []ChartAccount) []ChartAccount {
	sorted := make([]ChartAccount, len(chart))
	copy(sorted, chart)
	sort.SliceStable(sorted, func(i, j int) bool {
		oi, ok := typeOrder[sorted[i].Type]
		if !ok {
			oi = 99
		}
		oj, ok := typeOrder[sorted[j].Type]
		if !ok {
			oj = 99
		}
		if oi != oj {
			return oi < oj
		}
		ci, _ := strconv.Atoi(sorted[i].Code)
		cj, _ := strconv.Atoi(sorted[j].Code)
		return ci < cj
	})
	return sorted
}

// GroupChart splits chart accounts by account type.
func GroupChart(chart []ChartAccount) map[AccountType][]ChartAccount {
	groups := make(map[AccountType][]ChartAccount)
	for _, a := range chart {
		groups[a.Type] = append(groups[a.Type], a)
	}
	return groups
}
