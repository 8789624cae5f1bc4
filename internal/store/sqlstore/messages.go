package sqlstore

import "minisignal/internal/models"

func (s *SQLStore) SaveMessage(msg *models.Message) (int, error) {
	var id int
	query := s.rebind(`
		INSERT INTO messages (sender_id, receiver_id, chat_id, nonce, ciphertext, timestamp)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id
	`)
	err := s.db.QueryRow(query,
		msg.SenderID, msg.ReceiverID, msg.ChatID,
		msg.NonceB64, msg.CiphertextB64, msg.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetInbox returns every message ever addressed to receiverID, ascending by
// client timestamp. Equal timestamps fall back to insertion order (id), so
// repeated calls always return the identical sequence.
func (s *SQLStore) GetInbox(receiverID int) ([]models.Message, error) {
	query := s.rebind(`
		SELECT id, sender_id, receiver_id, chat_id, nonce, ciphertext, timestamp
		FROM messages
		WHERE receiver_id = ?
		ORDER BY timestamp ASC, id ASC
	`)
	rows, err := s.db.Query(query, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.ChatID,
			&m.NonceB64, &m.CiphertextB64, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
