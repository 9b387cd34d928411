package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account that can own trips.
// Trip members are plain names and need not be users.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is unique and used for login.
	Email string

	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	CreatedAt int64
	UpdatedAt int64
}

// NewUser builds a user with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
