package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"minisignal/internal/apperr"
	"minisignal/internal/middleware"
	"minisignal/internal/models"
	"minisignal/internal/store"
	"minisignal/internal/ws"
)

type MessageHandler struct {
	Store store.Store
	Hub   *ws.Hub
}

type SendMessageRequest struct {
	ToUserID      int    `json:"to_user_id"`
	ChatID        string `json:"chat_id"`
	NonceB64      string `json:"nonce_b64"`
	CiphertextB64 string `json:"ciphertext_b64"`
	Timestamp     int64  `json:"timestamp"`
}

type InboxResponse struct {
	Messages []models.Message `json:"messages"`
}

// Send relays one ciphertext envelope. The server never inspects the nonce,
// ciphertext, chat id or timestamp — it is a blind relay.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	senderID := middleware.UserID(r)

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	if req.ToUserID == senderID {
		writeError(w, apperr.ErrSelfMessage)
		return
	}

	if _, err := h.Store.GetUserByID(req.ToUserID); err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			err = apperr.ErrReceiverNotFound
		}
		writeError(w, err)
		return
	}

	msg := &models.Message{
		SenderID:      senderID,
		ReceiverID:    req.ToUserID,
		ChatID:        req.ChatID,
		NonceB64:      req.NonceB64,
		CiphertextB64: req.CiphertextB64,
		Timestamp:     req.Timestamp,
	}

	id, err := h.Store.SaveMessage(msg)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.ID = id

	// Advisory push; the inbox remains the source of truth.
	if h.Hub != nil {
		h.Hub.NotifyNewMessage(msg.ReceiverID, msg)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "message_id": id})
}

// Inbox returns the caller's full message history, ascending by timestamp.
// Retrieval cost grows with every message ever received; there is no
// pagination and nothing is marked read.
func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	receiverID := middleware.UserID(r)

	messages, err := h.Store.GetInbox(receiverID)
	if err != nil {
		writeError(w, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	writeJSON(w, http.StatusOK, InboxResponse{Messages: messages})
}
