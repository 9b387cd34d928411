package models

import (
	"math"
	"testing"
)

func TestSplitPolicy(t *testing.T) {
	tests := []struct {
		name  string
		split *Split
		check func(t *testing.T, p SplitPolicy)
	}{
		{
			name:  "nil split",
			split: nil,
			check: func(t *testing.T, p SplitPolicy) {
				if p != nil {
					t.Errorf("expected nil policy, got %#v", p)
				}
			},
		},
		{
			name:  "missing payer",
			split: &Split{Method: SplitEqually},
			check: func(t *testing.T, p SplitPolicy) {
				if p != nil {
					t.Errorf("expected nil policy, got %#v", p)
				}
			},
		},
		{
			name:  "unknown method",
			split: &Split{Method: "Halves", Payer: "A"},
			check: func(t *testing.T, p SplitPolicy) {
				if p != nil {
					t.Errorf("expected nil policy, got %#v", p)
				}
			},
		},
		{
			name:  "equally",
			split: &Split{Method: SplitEqually, Payer: "A"},
			check: func(t *testing.T, p SplitPolicy) {
				if _, ok := p.(Equally); !ok {
					t.Fatalf("expected Equally, got %T", p)
				}
				if p.Payer() != "A" {
					t.Errorf("payer = %q, want A", p.Payer())
				}
			},
		},
		{
			name: "custom keeps both currencies",
			split: &Split{
				Method:            SplitCustom,
				Payer:             "A",
				CustomShares:      map[string]float64{"B": 78},
				CustomLocalShares: map[string]float64{"B": 10},
			},
			check: func(t *testing.T, p SplitPolicy) {
				c, ok := p.(Custom)
				if !ok {
					t.Fatalf("expected Custom, got %T", p)
				}
				if got := c.Shares["B"]; got.Local != 10 || got.Settlement != 78 {
					t.Errorf("share = %+v, want {10 78}", got)
				}
				if c.Total() != 78 {
					t.Errorf("total = %v, want 78", c.Total())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.split.Policy())
		})
	}
}

func TestSetLocalShareAndReprice(t *testing.T) {
	var s Split
	s.SetLocalShare("Bob", 10, 7.8)
	if math.Abs(s.CustomShares["Bob"]-78) > 1e-9 {
		t.Fatalf("Bob share = %v, want 78", s.CustomShares["Bob"])
	}

	s.Reprice(2)
	if s.CustomShares["Bob"] != 20 {
		t.Errorf("Bob share after reprice = %v, want 20", s.CustomShares["Bob"])
	}
	if s.CustomLocalShares["Bob"] != 10 {
		t.Errorf("Bob local share = %v, want 10", s.CustomLocalShares["Bob"])
	}
}

func TestTripTransactions(t *testing.T) {
	trip := &Trip{
		FXRate:  0.5,
		Members: []string{"A", "B"},
		Expenses: []Expense{
			{ID: "e1", Description: "Dinner", AmountLocal: 100, AmountSettlement: 50, Split: Split{Method: SplitEqually, Payer: "A"}},
			{ID: "e2", Description: "Settlement: B -> A", AmountSettlement: 25, IsSettlement: true, Split: Split{Method: SplitCustom, Payer: "B"}},
		},
		Bookings: []Booking{
			{ID: "b1", Type: BookingHotel, Name: "Inn", Split: Split{Method: SplitSolely, Payer: "B"}},
		},
		PlanDays: []PlanDay{
			{Date: "2025-03-02", Scheduled: []ScheduledItem{
				{ID: "s1", Activity: "Museum", AmountSettlement: 30, FXRate: 2, Split: &Split{Method: SplitEqually, Payer: "B"}},
				{ID: "s2", Activity: "Walk"},
				{ID: "s3", Activity: "Ferry", AmountSettlement: 10},
			}},
		},
	}

	txs := trip.Transactions()
	if len(txs) != 5 {
		t.Fatalf("expected 5 transactions, got %d", len(txs))
	}

	if txs[0].Amount.Rate != 0.5 {
		t.Errorf("expense without rate should use trip rate, got %v", txs[0].Amount.Rate)
	}
	if txs[1].Category != "Settlement" || !txs[1].IsSettlement {
		t.Errorf("settlement expense category = %q", txs[1].Category)
	}
	if txs[2].Category != "Booking (Hotel)" || txs[2].Amount.Settlement != 0 {
		t.Errorf("booking = %+v", txs[2])
	}
	if txs[3].Source != SourceActivity || txs[3].Date != "2025-03-02" || txs[3].Amount.Rate != 2 {
		t.Errorf("activity = %+v", txs[3])
	}
	if txs[4].ID != "s3" || txs[4].Policy != nil || txs[4].Payer() != "" {
		t.Errorf("costed activity without split should be kept with no payer, got %+v", txs[4])
	}
}

func TestTripMembership(t *testing.T) {
	trip := &Trip{Members: []string{"A"}, ExternalNames: []string{"Guide"}}
	if !trip.IsMember("A") || trip.IsMember("Guide") {
		t.Error("IsMember mismatch")
	}
	if !trip.IsKnown("Guide") || trip.IsKnown("Stranger") {
		t.Error("IsKnown mismatch")
	}
}
