package sqlstore

import (
	"database/sql"

	"minisignal/internal/apperr"
	"minisignal/internal/models"
)

func (s *SQLStore) CreateUser(email, passwordHash string) (*models.User, error) {
	var id int
	query := s.rebind("INSERT INTO users (email, password_hash) VALUES (?, ?) RETURNING id")
	err := s.db.QueryRow(query, email, passwordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.ErrDuplicateEmail
		}
		return nil, err
	}
	return &models.User{ID: id, Email: email, PasswordHash: passwordHash}, nil
}

func (s *SQLStore) GetUserByEmail(email string) (*models.User, error) {
	query := s.rebind("SELECT id, email, password_hash, public_key FROM users WHERE email = ?")
	return s.scanUser(s.db.QueryRow(query, email))
}

func (s *SQLStore) GetUserByID(id int) (*models.User, error) {
	query := s.rebind("SELECT id, email, password_hash, public_key FROM users WHERE id = ?")
	return s.scanUser(s.db.QueryRow(query, id))
}

func (s *SQLStore) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var key sql.NullString
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &key)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if key.Valid {
		user.PublicKeyB64 = &key.String
	}
	return &user, nil
}

func (s *SQLStore) SetPublicKey(userID int, keyB64 string) error {
	query := s.rebind("UPDATE users SET public_key = ? WHERE id = ?")
	result, err := s.db.Exec(query, keyB64, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.ErrUserNotFound
	}
	return nil
}

func (s *SQLStore) ListUsers() ([]models.UserSummary, error) {
	query := "SELECT id, email, public_key IS NOT NULL FROM users ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.UserSummary
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Email, &u.HasKey); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
