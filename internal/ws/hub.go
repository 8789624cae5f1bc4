package ws

import (
	"encoding/json"
	"log"
)

type notification struct {
	userID  int
	payload []byte
}

// Hub pushes new-message notifications to connected receivers. Delivery is
// best-effort: a client that is not connected simply fetches its inbox later.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound notifications addressed to a single user.
	notify chan notification

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		notify:     make(chan notification),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case n := <-h.notify:
			for client := range h.clients {
				if client.userID != n.userID {
					continue
				}
				select {
				case client.send <- n.payload:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// NotifyNewMessage pushes the stored envelope to the receiver's open
// sockets. The payload is ciphertext either way.
func (h *Hub) NotifyNewMessage(receiverID int, message interface{}) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "new_message",
		"message": message,
	})
	if err != nil {
		log.Printf("Error encoding notification: %v", err)
		return
	}
	h.notify <- notification{userID: receiverID, payload: payload}
}
