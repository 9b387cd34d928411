// Package auth handles account credentials and session tokens for trip
// owners.
package auth

import (
	"context"
	"strings"

	"github.com/mmynk/tripledger/internal/models"
)

// Authenticator verifies account credentials. Password login is the only
// implementation today.
type Authenticator interface {
	// Register creates a new account. The credential format depends on the
	// implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account matching email and credential.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks a credential before it is stored.
	ValidateCredential(credential string) error
}

// NormalizeEmail lowercases and trims an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
