package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"minisignal/internal/apperr"
	"minisignal/internal/middleware"
	"minisignal/internal/store"
)

type KeyHandler struct {
	Store store.Store
}

type PublishKeyRequest struct {
	PublicKeyB64 string `json:"public_key_b64"`
}

type PublicKeyResponse struct {
	UserID       int     `json:"user_id"`
	PublicKeyB64 *string `json:"public_key_b64"`
}

// PublishKey overwrites the caller's current public key. Self-publish only:
// the target id is the authenticated user, never a request parameter.
func (h *KeyHandler) PublishKey(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req PublishKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	if err := h.Store.SetPublicKey(userID, req.PublicKeyB64); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PublicKeyResponse{UserID: userID, PublicKeyB64: &req.PublicKeyB64})
}

// GetKey looks up any user's current key; null until they publish one.
func (h *KeyHandler) GetKey(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, apperr.ErrUserNotFound)
		return
	}

	user, err := h.Store.GetUserByID(targetID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PublicKeyResponse{UserID: user.ID, PublicKeyB64: user.PublicKeyB64})
}
