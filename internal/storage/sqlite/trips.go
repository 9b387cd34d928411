package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/storage"
)

// CreateTrip persists a new trip document.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	storage.PrepareNew(trip, time.Now())

	doc, err := storage.EncodeTrip(trip)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO trips (id, owner_id, title, document, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		trip.ID, trip.OwnerID, trip.Title, string(doc), trip.Version, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT document, owner_id, version, created_at, updated_at FROM trips WHERE id = ?`,
		tripID,
	)

	trip, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// ListTrips retrieves all trips owned by a user.
func (s *SQLiteStore) ListTrips(ctx context.Context, ownerID string) ([]*models.Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document, owner_id, version, created_at, updated_at
		 FROM trips WHERE owner_id = ? ORDER BY updated_at DESC, id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}

// UpdateTrip replaces the trip document if the caller's version is current.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	readVersion := trip.Version
	next := *trip
	next.Version = readVersion + 1
	next.UpdatedAt = time.Now().Unix()

	doc, err := storage.EncodeTrip(&next)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE trips SET title = ?, document = ?, version = ?, updated_at = ?
		 WHERE id = ? AND version = ?`,
		next.Title, string(doc), next.Version, next.UpdatedAt, trip.ID, readVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return s.missingOrStale(ctx, trip.ID)
	}

	trip.Version = next.Version
	trip.UpdatedAt = next.UpdatedAt
	return nil
}

// DeleteTrip removes a trip by ID.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}

	return nil
}

func (s *SQLiteStore) missingOrStale(ctx context.Context, tripID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM trips WHERE id = ?", tripID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check trip existence: %w", err)
	}
	return fmt.Errorf("trip %s: %w", tripID, storage.ErrVersionConflict)
}

type scanner interface {
	Scan(dest ...any) error
}

// scanTrip decodes a row of (document, owner_id, version, created_at,
// updated_at). The columns win over the copies inside the document.
func scanTrip(row scanner) (*models.Trip, error) {
	var (
		doc                  string
		ownerID              string
		version              int64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&doc, &ownerID, &version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	trip, err := storage.DecodeTrip([]byte(doc))
	if err != nil {
		return nil, err
	}
	trip.OwnerID = ownerID
	trip.Version = version
	trip.CreatedAt = createdAt
	trip.UpdatedAt = updatedAt
	return trip, nil
}
