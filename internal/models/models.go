package models

type User struct {
	ID           int     `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	PublicKeyB64 *string `json:"public_key_b64"`
}

// UserSummary is the directory listing shape; HasKey is derived from
// whether a public key has been published.
type UserSummary struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	HasKey bool   `json:"hasKey"`
}

type Message struct {
	ID            int    `json:"id"`
	SenderID      int    `json:"sender_id"`
	ReceiverID    int    `json:"receiver_id"`
	ChatID        string `json:"chat_id"`
	NonceB64      string `json:"nonce_b64"`
	CiphertextB64 string `json:"ciphertext_b64"`
	Timestamp     int64  `json:"timestamp"`
}
