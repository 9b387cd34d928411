// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripledger/internal/models"
)

var (
	// ErrNotFound is returned when a trip or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict is returned by UpdateTrip when the stored trip has
	// moved past the version the caller read.
	ErrVersionConflict = errors.New("trip was modified concurrently")
)

// TripStore persists trip documents.
type TripStore interface {
	// CreateTrip persists a new trip. ID, Version and timestamps are
	// populated by the store.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by its ID.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips returns the trips owned by a user, most recently updated first.
	ListTrips(ctx context.Context, ownerID string) ([]*models.Trip, error)

	// UpdateTrip replaces a trip document. trip.Version must match the
	// stored version; on success it is incremented.
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	DeleteTrip(ctx context.Context, tripID string) error
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines the storage backend used by the services.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	TripStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}

// EncodeTrip serializes the trip document for storage.
func EncodeTrip(trip *models.Trip) ([]byte, error) {
	data, err := json.Marshal(trip)
	if err != nil {
		return nil, fmt.Errorf("failed to encode trip: %w", err)
	}
	return data, nil
}

// DecodeTrip parses a stored trip document.
func DecodeTrip(data []byte) (*models.Trip, error) {
	trip := &models.Trip{}
	if err := json.Unmarshal(data, trip); err != nil {
		return nil, fmt.Errorf("failed to decode trip: %w", err)
	}
	return trip, nil
}

// PrepareNew fills the fields a store assigns on insert.
func PrepareNew(trip *models.Trip, now time.Time) {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	trip.Version = 1
	trip.CreatedAt = now.Unix()
	trip.UpdatedAt = trip.CreatedAt
	if trip.Title == "" {
		trip.Title = generateTitle(trip)
	}
}

// generateTitle creates an auto-generated title from the destination or the
// members.
func generateTitle(trip *models.Trip) string {
	if trip.Destination != "" {
		return fmt.Sprintf("Trip to %s", trip.Destination)
	}
	members := trip.Members
	if len(members) == 0 {
		return fmt.Sprintf("Trip - %s", time.Unix(trip.CreatedAt, 0).Format("Jan 2, 2006"))
	}
	if len(members) <= 3 {
		return fmt.Sprintf("Trip with %s", strings.Join(members, ", "))
	}
	return fmt.Sprintf("Trip with %s and %d others",
		strings.Join(members[:2], ", "),
		len(members)-2,
	)
}
