// Package storetest holds the behavior every storage.Store must satisfy.
// Backend packages call Run from their own tests.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/storage"
)

func sampleTrip(owner string) *models.Trip {
	return &models.Trip{
		OwnerID:            owner,
		Destination:        "Tokyo",
		BaseCurrency:       "JPY",
		SettlementCurrency: "HKD",
		FXRate:             0.052,
		Members:            []string{"Alice", "Bob"},
		ExternalNames:      []string{"Guide"},
		Expenses: []models.Expense{
			{
				ID:               "e1",
				Description:      "Ramen",
				AmountLocal:      3000,
				AmountSettlement: 156,
				FXRate:           0.052,
				PaymentMethod:    models.PaymentCash,
				Date:             "2025-04-01",
				Split: models.Split{
					Method:       models.SplitCustom,
					Payer:        "Alice",
					CustomShares: map[string]float64{"Bob": 100, "Guide": 56},
				},
			},
		},
		Bookings: []models.Booking{
			{ID: "b1", Type: models.BookingHotel, Name: "Hotel", AmountSettlement: 900, Split: models.Split{Method: models.SplitEqually, Payer: "Bob"}},
		},
	}
}

// Run exercises trip and user persistence against s.
func Run(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("CreateTrip assigns ID, version and title", func(t *testing.T) {
		trip := sampleTrip("owner-1")
		if err := s.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
		if trip.ID == "" {
			t.Error("Expected trip ID to be generated")
		}
		if trip.Version != 1 {
			t.Errorf("Version = %d, want 1", trip.Version)
		}
		if trip.Title != "Trip to Tokyo" {
			t.Errorf("Title = %q, want generated title", trip.Title)
		}
		if trip.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetTrip round-trips the document", func(t *testing.T) {
		original := sampleTrip("owner-2")
		if err := s.CreateTrip(ctx, original); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}

		got, err := s.GetTrip(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if got.OwnerID != "owner-2" || got.Version != 1 {
			t.Errorf("got owner %q version %d", got.OwnerID, got.Version)
		}
		if len(got.Members) != 2 || len(got.ExternalNames) != 1 {
			t.Errorf("roster mismatch: %+v / %+v", got.Members, got.ExternalNames)
		}
		if len(got.Expenses) != 1 || got.Expenses[0].Split.CustomShares["Guide"] != 56 {
			t.Errorf("expenses mismatch: %+v", got.Expenses)
		}
		if len(got.Bookings) != 1 || got.Bookings[0].Split.Method != models.SplitEqually {
			t.Errorf("bookings mismatch: %+v", got.Bookings)
		}
	})

	t.Run("GetTrip returns ErrNotFound", func(t *testing.T) {
		_, err := s.GetTrip(ctx, "00000000-0000-0000-0000-000000000000")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateTrip bumps version and rejects stale writers", func(t *testing.T) {
		trip := sampleTrip("owner-3")
		if err := s.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}

		stale := *trip
		trip.Expenses = append(trip.Expenses, models.Expense{
			ID: "e2", Description: "Taxi", AmountSettlement: 80,
			Split: models.Split{Method: models.SplitSolely, Payer: "Bob"},
		})
		if err := s.UpdateTrip(ctx, trip); err != nil {
			t.Fatalf("UpdateTrip failed: %v", err)
		}
		if trip.Version != 2 {
			t.Errorf("Version = %d, want 2", trip.Version)
		}

		got, err := s.GetTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if len(got.Expenses) != 2 || got.Version != 2 {
			t.Errorf("after update: %d expenses, version %d", len(got.Expenses), got.Version)
		}

		if err := s.UpdateTrip(ctx, &stale); !errors.Is(err, storage.ErrVersionConflict) {
			t.Errorf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("UpdateTrip on missing trip", func(t *testing.T) {
		trip := sampleTrip("owner-3")
		trip.ID = "00000000-0000-0000-0000-000000000001"
		trip.Version = 1
		if err := s.UpdateTrip(ctx, trip); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListTrips filters by owner", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := s.CreateTrip(ctx, sampleTrip("owner-list")); err != nil {
				t.Fatalf("CreateTrip failed: %v", err)
			}
		}
		if err := s.CreateTrip(ctx, sampleTrip("someone-else")); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}

		trips, err := s.ListTrips(ctx, "owner-list")
		if err != nil {
			t.Fatalf("ListTrips failed: %v", err)
		}
		if len(trips) != 2 {
			t.Errorf("ListTrips returned %d trips, want 2", len(trips))
		}
		for _, trip := range trips {
			if trip.OwnerID != "owner-list" {
				t.Errorf("trip %s belongs to %s", trip.ID, trip.OwnerID)
			}
		}
	})

	t.Run("DeleteTrip", func(t *testing.T) {
		trip := sampleTrip("owner-4")
		if err := s.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
		if err := s.DeleteTrip(ctx, trip.ID); err != nil {
			t.Fatalf("DeleteTrip failed: %v", err)
		}
		if _, err := s.GetTrip(ctx, trip.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := s.DeleteTrip(ctx, trip.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("users", func(t *testing.T) {
		user := models.NewUser("alice@example.com", "Alice", "hash")
		if err := s.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if byEmail.ID != user.ID || byEmail.DisplayName != "Alice" {
			t.Errorf("GetUserByEmail = %+v", byEmail)
		}

		byID, err := s.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byID.Email != user.Email || byID.PasswordHash != "hash" {
			t.Errorf("GetUserByID = %+v", byID)
		}

		if _, err := s.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := s.CreateUser(ctx, models.NewUser("alice@example.com", "Other", "hash")); err == nil {
			t.Error("expected duplicate email to fail")
		}
	})
}
