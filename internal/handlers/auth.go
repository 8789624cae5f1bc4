package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"minisignal/internal/apperr"
	"minisignal/internal/auth"
	"minisignal/internal/store"
)

type AuthHandler struct {
	Store store.Store
	Authn *auth.Authenticator
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	Email       string `json:"email"`
}

// normalizeEmail applies the canonical form used for every email comparison.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	email := normalizeEmail(creds.Email)
	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.Store.CreateUser(email, hash)
	if err != nil {
		writeError(w, err)
		return
	}

	h.respondWithToken(w, user.ID, user.Email)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	// Unknown email and wrong password take the same path out, so a caller
	// cannot probe which addresses are registered.
	user, err := h.Store.GetUserByEmail(normalizeEmail(creds.Email))
	if err != nil || !auth.CheckPassword(creds.Password, user.PasswordHash) {
		writeError(w, apperr.ErrInvalidCredentials)
		return
	}

	h.respondWithToken(w, user.ID, user.Email)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, userID int, email string) {
	token, err := h.Authn.IssueToken(userID, email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      userID,
		Email:       email,
	})
}
