package api

import (
	"net/http"

	"github.com/pigeonworks-llc/emkm-ledger/internal/ledger"
)

// ReportsHandler handles the financial report endpoints. Each report is
// rebuilt from the transaction log on every request.
type ReportsHandler struct {
	reporter *ledger.Reporter
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(r *ledger.Reporter) *ReportsHandler {
	return &ReportsHandler{reporter: r}
}

// GeneralJournal handles GET /api/reports/general-journal.
func (h *ReportsHandler) GeneralJournal(w http.ResponseWriter, r *http.Request) {
	report, err := h.reporter.GeneralJournal(r.Context(), userID(r))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to build general journal")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Ledger handles GET /api/reports/ledger.
func (h *ReportsHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	report, err := h.reporter.Ledger(r.Context(), userID(r))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to build ledger")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// TrialBalance handles GET /api/reports/trial-balance.
func (h *ReportsHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	report, err := h.reporter.TrialBalance(r.Context(), userID(r))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to build trial balance")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// IncomeStatement handles GET /api/reports/income-statement.
func (h *ReportsHandler) IncomeStatement(w http.ResponseWriter, r *http.Request) {
	report, err := h.reporter.IncomeStatement(r.Context(), userID(r))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to build income statement")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// BalanceSheet handles GET /api/reports/balance-sheet.
func (h *ReportsHandler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	report, err := h.reporter.BalanceSheet(r.Context(), userID(r))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to build balance sheet")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
