package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pigeonworks-llc/emkm-ledger/internal/auth"
	"github.com/pigeonworks-llc/emkm-ledger/internal/models"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store"
)

// AuthHandler handles sign-in endpoints.
type AuthHandler struct {
	store        store.Store
	tokenManager *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s store.Store, tm *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: s, tokenManager: tm}
}

type googleSignInRequest struct {
	Credential string `json:"credential"`
}

// GoogleSignInResponse represents the response for POST /api/auth/google.
type GoogleSignInResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// GoogleSignIn handles POST /api/auth/google. The Google credential is
// decoded for its email claim; a user record is created on first sign-in.
func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req googleSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.Credential == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing credential")
		return
	}

	claims, err := auth.ParseCredential(req.Credential)
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "invalid_credential", "Failed to decode Google credential")
		return
	}

	user, err := h.store.UserByEmail(r.Context(), claims.Email)
	if errors.Is(err, store.ErrNotFound) {
		user, err = h.store.CreateUser(r.Context(), models.User{
			Username: claims.Name,
			Email:    claims.Email,
		})
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to resolve user")
		return
	}

	token, err := h.tokenManager.Issue(user.ID)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, GoogleSignInResponse{Token: token, User: user})
}

// Logout handles POST /api/auth/logout. The bearer token used for the
// request is revoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		_ = h.tokenManager.Revoke(parts[1])
	}
	w.WriteHeader(http.StatusNoContent)
}
