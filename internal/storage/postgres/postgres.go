// Package postgres provides a PostgreSQL-backed storage.Store using pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/storage"
)

var _ storage.Store = (*Store)(nil)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		title TEXT NOT NULL,
		document JSONB NOT NULL,
		version BIGINT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_owner_id ON trips(owner_id)`,
}

// Store implements storage.Store on a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL, pings it and creates the schema.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = "tripledger"
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) CreateTrip(ctx context.Context, trip *models.Trip) error {
	storage.PrepareNew(trip, time.Now())

	doc, err := storage.EncodeTrip(trip)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO trips (id, owner_id, title, document, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7)`,
		trip.ID, trip.OwnerID, trip.Title, string(doc), trip.Version, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

func (s *Store) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT document::text, owner_id, version, created_at, updated_at FROM trips WHERE id = $1`,
		tripID,
	)
	trip, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

func (s *Store) ListTrips(ctx context.Context, ownerID string) ([]*models.Trip, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT document::text, owner_id, version, created_at, updated_at
		 FROM trips WHERE owner_id = $1 ORDER BY updated_at DESC, id`,
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

func (s *Store) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	readVersion := trip.Version
	next := *trip
	next.Version = readVersion + 1
	next.UpdatedAt = time.Now().Unix()

	doc, err := storage.EncodeTrip(&next)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE trips SET title = $1, document = $2::jsonb, version = $3, updated_at = $4
		 WHERE id = $5 AND version = $6`,
		next.Title, string(doc), next.Version, next.UpdatedAt, trip.ID, readVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1)`, trip.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check trip existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("trip %s: %w", trip.ID, storage.ErrNotFound)
		}
		return fmt.Errorf("trip %s: %w", trip.ID, storage.ErrVersionConflict)
	}

	trip.Version = next.Version
	trip.UpdatedAt = next.UpdatedAt
	return nil
}

func (s *Store) DeleteTrip(ctx context.Context, tripID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	return nil
}

func scanTrip(row pgx.Row) (*models.Trip, error) {
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
