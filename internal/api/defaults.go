package api

import (
	"net/http"

	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
)

// DefaultAccountsHandler serves the standard SAK EMKM chart of accounts used
// to seed a new user's books.
type DefaultAccountsHandler struct {
	chart []classify.ChartAccount
}

// NewDefaultAccountsHandler creates a new DefaultAccountsHandler.
func NewDefaultAccountsHandler(chart []classify.ChartAccount) *DefaultAccountsHandler {
	return &DefaultAccountsHandler{chart: classify.SortChart(chart)}
}

// DefaultAccountsResponse represents the response for
// GET /api/default-accounts.
type DefaultAccountsResponse struct {
	Accounts []classify.ChartAccount                         `json:"accounts"`
	Grouped  map[classify.AccountType][]classify.ChartAccount `json:"grouped"`
	Total    int                                             `json:"total"`
}

// List handles GET /api/default-accounts.
func (h *DefaultAccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DefaultAccountsResponse{
		Accounts: h.chart,
		Grouped:  classify.GroupChart(h.chart),
		Total:    len(h.chart),
	})
}
