package handlers

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"minisignal/internal/models"
	"minisignal/internal/store"
)

type UserHandler struct {
	Store store.Store
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers()
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []models.UserSummary{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	// The path segment may arrive URL-encoded
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}

	user, err := h.Store.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"public_key_b64": user.PublicKeyB64,
		"hasKey":         user.PublicKeyB64 != nil,
	})
}
