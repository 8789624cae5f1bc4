package sqlstore

import (
	"errors"
	"testing"

	"minisignal/internal/apperr"
)

func TestCreateUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user, err := testStore.CreateUser("alice@x.com", "hash1")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected non-zero user ID")
	}

	// Duplicate email, regardless of password hash
	_, err = testStore.CreateUser("alice@x.com", "hash2")
	if !errors.Is(err, apperr.ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.CreateUser("alice@x.com", "hash1")

	user, err := testStore.GetUserByEmail("alice@x.com")
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if user.Email != "alice@x.com" {
		t.Errorf("Expected email 'alice@x.com', got '%s'", user.Email)
	}
	if user.PublicKeyB64 != nil {
		t.Error("Expected nil public key before publish")
	}

	_, err = testStore.GetUserByEmail("nobody@x.com")
	if !errors.Is(err, apperr.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestSetPublicKey(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user, _ := testStore.CreateUser("bob@x.com", "hash")

	if err := testStore.SetPublicKey(user.ID, "Zm9v"); err != nil {
		t.Fatalf("SetPublicKey failed: %v", err)
	}

	got, _ := testStore.GetUserByID(user.ID)
	if got.PublicKeyB64 == nil || *got.PublicKeyB64 != "Zm9v" {
		t.Errorf("Expected public key 'Zm9v', got %v", got.PublicKeyB64)
	}

	// Each upload overwrites the prior key
	testStore.SetPublicKey(user.ID, "YmFy")
	got, _ = testStore.GetUserByID(user.ID)
	if *got.PublicKeyB64 != "YmFy" {
		t.Errorf("Expected public key 'YmFy', got '%s'", *got.PublicKeyB64)
	}

	if err := testStore.SetPublicKey(9999, "Zm9v"); !errors.Is(err, apperr.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound for unknown user, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	alice, _ := testStore.CreateUser("alice@x.com", "h")
	testStore.CreateUser("bob@x.com", "h")
	testStore.SetPublicKey(alice.ID, "Zm9v")

	users, err := testStore.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	if !users[0].HasKey {
		t.Error("Expected alice to have a key")
	}
	if users[1].HasKey {
		t.Error("Expected bob to have no key")
	}
}
