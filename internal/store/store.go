package store

import "minisignal/internal/models"

type Store interface {
	// User operations
	CreateUser(email, passwordHash string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	SetPublicKey(userID int, keyB64 string) error
	ListUsers() ([]models.UserSummary, error)

	// Message operations
	SaveMessage(msg *models.Message) (int, error)
	GetInbox(receiverID int) ([]models.Message, error)
}
