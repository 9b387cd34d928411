package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/tripledger/internal/currency"
	"github.com/mmynk/tripledger/internal/models"
)

var (
	errTripRequired   = errors.New("trip is required")
	errTripIDRequired = errors.New("trip_id is required")
)

// validateRoster rejects blank or duplicate names. A name may not be both a
// member and an external name.
func validateRoster(members, externalNames []string) error {
	seen := make(map[string]bool, len(members)+len(externalNames))
	for _, group := range [][]string{members, externalNames} {
		for _, name := range group {
			if strings.TrimSpace(name) == "" {
				return errors.New("names must not be blank")
			}
			if seen[name] {
				return fmt.Errorf("duplicate name %q", name)
			}
			seen[name] = true
		}
	}
	return nil
}

func validateSplit(s models.Split) error {
	switch s.Method {
	case models.SplitEqually, models.SplitSolely, models.SplitCustom:
		return nil
	case "":
		// a split with no method only makes sense as an empty placeholder
		if s.Payer != "" {
			return errors.New("split method is required")
		}
		return nil
	default:
		return fmt.Errorf("unknown split method %q", s.Method)
	}
}

// validateTrip checks the roster and every split of the trip.
func validateTrip(trip *models.Trip) error {
	if err := validateRoster(trip.Members, trip.ExternalNames); err != nil {
		return err
	}
	for _, e := range trip.Expenses {
		if err := validateSplit(e.Split); err != nil {
			return fmt.Errorf("expense %q: %w", e.Description, err)
		}
	}
	for _, b := range trip.Bookings {
		if err := validateSplit(b.Split); err != nil {
			return fmt.Errorf("booking %q: %w", b.Name, err)
		}
	}
	for _, d := range trip.PlanDays {
		for _, s := range d.Scheduled {
			if s.Split == nil {
				continue
			}
			if err := validateSplit(*s.Split); err != nil {
				return fmt.Errorf("activity %q: %w", s.Activity, err)
			}
		}
	}
	return nil
}

// settle fills in a missing settlement amount from the local amount and the
// rate chain.
func settle(local, rate, settlement, tripRate float64) float64 {
	if settlement != 0 || local == 0 {
		return settlement
	}
	return currency.New(local, currency.ResolveRate(rate, tripRate)).Settlement
}

// normalizeRecords assigns missing IDs and settlement amounts.
func normalizeRecords(trip *models.Trip) {
	for i := range trip.Expenses {
		e := &trip.Expenses[i]
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		e.AmountSettlement = settle(e.AmountLocal, e.FXRate, e.AmountSettlement, trip.FXRate)
	}
	for i := range trip.Bookings {
		b := &trip.Bookings[i]
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		b.AmountSettlement = settle(b.AmountLocal, b.FXRate, b.AmountSettlement, trip.FXRate)
	}
	for d := range trip.PlanDays {
		for i := range trip.PlanDays[d].Scheduled {
			s := &trip.PlanDays[d].Scheduled[i]
			if s.ID == "" {
				s.ID = uuid.New().String()
			}
			s.AmountSettlement = settle(s.AmountLocal, s.FXRate, s.AmountSettlement, trip.FXRate)
		}
	}
}
