package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
	"github.com/pigeonworks-llc/emkm-ledger/internal/ledger"
	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store"
)

// AccountsHandler handles account-related API endpoints.
type AccountsHandler struct {
	store store.Store
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(s store.Store) *AccountsHandler {
	return &AccountsHandler{store: s}
}

// AccountsListResponse represents the response for GET /api/accounts.
type AccountsListResponse struct {
	Accounts []models.Account `json:"accounts"`
}

// List handles GET /api/accounts.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context(), userID(r))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	writeJSON(w, http.StatusOK, AccountsListResponse{Accounts: accounts})
}

// Get handles GET /api/accounts/{id}.
func (h *AccountsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid account ID")
		return
	}

	account, err := h.store.AccountByID(r.Context(), userID(r), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Account not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to get account")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"account": account})
}

// Create handles POST /api/accounts. The account type, normal balance and
// category are derived from the name and code; a code is generated when the
// payload omits one.
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ledger.AccountInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	v := ledger.ValidateAccount(req)
	if !v.IsValid {
		writeValidationError(w, v.Errors)
		return
	}

	code := v.Sanitized.Code
	if code == "" {
		code = classify.GenerateCode(v.Sanitized.Classification.Type, v.Sanitized.Classification.Category)
	}

	account, err := h.store.CreateAccount(r.Context(), models.Account{
		UserID:        userID(r),
		Name:          v.Sanitized.Name,
		Code:          code,
		Category:      v.Sanitized.Classification.Category,
		AccountType:   v.Sanitized.Classification.Type,
		NormalBalance: v.Sanitized.Classification.NormalBalance,
		Balance:       v.Sanitized.Balance,
		Description:   v.Sanitized.Description,
	})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"account": account})
}

type updateAccountRequest struct {
	Name        *string      `json:"name"`
	Code        *string      `json:"code"`
	Balance     *json.Number `json:"balance"`
	Description *string      `json:"description"`
}

// Update handles PUT /api/accounts/{id}. Fields absent from the payload keep
// their stored values. Renaming an account reclassifies it from the new name
// and code.
func (h *AccountsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid account ID")
		return
	}

	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	account, err := h.store.AccountByID(r.Context(), userID(r), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Account not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to get account")
		return
	}

	in := ledger.AccountInput{
		Name:        account.Name,
		Code:        account.Code,
		Balance:     json.Number(account.Balance.String()),
		Description: account.Description,
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Code != nil {
		in.Code = *req.Code
	}
	if req.Balance != nil {
		in.Balance = *req.Balance
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	v := ledger.ValidateAccount(in)
	if !v.IsValid {
		writeValidationError(w, v.Errors)
		return
	}

	account.Name = v.Sanitized.Name
	account.Code = v.Sanitized.Code
	account.Category = v.Sanitized.Classification.Category
	account.AccountType = v.Sanitized.Classification.Type
	account.NormalBalance = v.Sanitized.Classification.NormalBalance
	account.Balance = v.Sanitized.Balance
	account.Description = v.Sanitized.Description

	account, err = h.store.UpdateAccount(r.Context(), account)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Account not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to update account")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"account": account})
}

// Delete handles DELETE /api/accounts/{id}. Accounts referenced by
// transactions cannot be deleted.
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid account ID")
		return
	}

	transactions, err := h.store.TransactionsForAccount(r.Context(), userID(r), id)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to check account usage")
		return
	}
	if len(transactions) > 0 {
		writeJSONError(w, http.StatusConflict, "account_in_use",
			"Akun tidak dapat dihapus karena masih memiliki transaksi")
		return
	}

	if err := h.store.DeleteAccount(r.Context(), userID(r), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Account not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to delete account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
