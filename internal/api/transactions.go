package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pigeonworks-llc/emkm-ledger/internal/ledger"
	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store"
)

// TransactionsHandler handles transaction-related API endpoints.
type TransactionsHandler struct {
	store store.Store
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(s store.Store) *TransactionsHandler {
	return &TransactionsHandler{store: s}
}

// TransactionsListResponse represents the response for GET /api/transactions.
type TransactionsListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// List handles GET /api/transactions.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.store.ListTransactions(r.Context(), userID(r))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list transactions")
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, TransactionsListResponse{Transactions: transactions})
}

// Get handles GET /api/transactions/{id}.
func (h *TransactionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid transaction ID")
		return
	}

	tx, err := h.store.TransactionByID(r.Context(), userID(r), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Transaction not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to get transaction")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"transaction": tx})
}

// Create handles POST /api/transactions. An Idempotency-Key header makes the
// request replay-safe: a retry with the same key returns the transaction
// recorded on the first attempt instead of posting a duplicate.
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ledger.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	v := ledger.ValidateTransaction(req)
	if !v.IsValid {
		writeValidationError(w, v.Errors)
		return
	}

	uid := userID(r)
	if !h.accountExists(w, r, uid, v.Sanitized.DebitAccountID, "Akun debit tidak ditemukan") {
		return
	}
	if !h.accountExists(w, r, uid, v.Sanitized.CreditAccountID, "Akun kredit tidak ditemukan") {
		return
	}

	key := r.Header.Get("Idempotency-Key")
	if key == "" {
		key = uuid.NewString()
	} else {
		existing, err := h.store.TransactionByIdempotencyKey(r.Context(), uid, key)
		if err == nil {
			writeJSON(w, http.StatusOK, map[string]any{"transaction": existing})
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to check idempotency key")
			return
		}
	}

	tx, err := h.store.CreateTransaction(r.Context(), models.Transaction{
		UserID:          uid,
		IdempotencyKey:  key,
		DebitAccountID:  v.Sanitized.DebitAccountID,
		CreditAccountID: v.Sanitized.CreditAccountID,
		Amount:          v.Sanitized.Amount,
		Description:     v.Sanitized.Description,
		TransactionDate: v.Sanitized.TransactionDate,
	})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to create transaction")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"transaction": tx})
}

// Update handles PUT /api/transactions/{id}. Because balances are derived
// from the transaction log, replacing the stored row is sufficient; nothing
// has to be reversed first.
func (h *TransactionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid transaction ID")
		return
	}

	var req ledger.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	v := ledger.ValidateTransaction(req)
	if !v.IsValid {
		writeValidationError(w, v.Errors)
		return
	}

	uid := userID(r)
	tx, err := h.store.TransactionByID(r.Context(), uid, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Transaction not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to get transaction")
		return
	}

	if !h.accountExists(w, r, uid, v.Sanitized.DebitAccountID, "Akun debit tidak ditemukan") {
		return
	}
	if !h.accountExists(w, r, uid, v.Sanitized.CreditAccountID, "Akun kredit tidak ditemukan") {
		return
	}

	tx.DebitAccountID = v.Sanitized.DebitAccountID
	tx.CreditAccountID = v.Sanitized.CreditAccountID
	tx.Amount = v.Sanitized.Amount
	tx.Description = v.Sanitized.Description
	tx.TransactionDate = v.Sanitized.TransactionDate

	tx, err = h.store.UpdateTransaction(r.Context(), tx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Transaction not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to update transaction")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"transaction": tx})
}

// Delete handles DELETE /api/transactions/{id}.
func (h *TransactionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid transaction ID")
		return
	}

	if err := h.store.DeleteTransaction(r.Context(), userID(r), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Transaction not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TransactionsHandler) accountExists(w http.ResponseWriter, r *http.Request, userID, accountID int64, msg string) bool {
	_, err := h.store.AccountByID(r.Context(), userID, accountID)
	if err == nil {
		return true
	}
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", msg)
	} else {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to check account")
	}
	return false
}
