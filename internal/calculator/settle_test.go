package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/tripledger/internal/models"
)

func TestSimplifyDebts(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]float64
		want     []models.Transfer
	}{
		{
			name:     "two debtors one creditor",
			balances: map[string]float64{"A": -50, "B": -30, "C": 80},
			want: []models.Transfer{
				{From: "A", To: "C", Amount: 50},
				{From: "B", To: "C", Amount: 30},
			},
		},
		{
			name:     "one debtor two creditors",
			balances: map[string]float64{"A": -100, "B": 60, "C": 40},
			want: []models.Transfer{
				{From: "A", To: "B", Amount: 60},
				{From: "A", To: "C", Amount: 40},
			},
		},
		{
			name:     "balances inside tolerance are settled",
			balances: map[string]float64{"A": -0.005, "B": 0.01, "C": 0},
			want:     nil,
		},
		{
			name:     "ties broken by name",
			balances: map[string]float64{"B": -10, "A": -10, "C": 20},
			want: []models.Transfer{
				{From: "A", To: "C", Amount: 10},
				{From: "B", To: "C", Amount: 10},
			},
		},
		{
			name:     "empty",
			balances: map[string]float64{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimplifyDebts(tt.balances)
			if len(got) != len(tt.want) {
				t.Fatalf("SimplifyDebts() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i].From != tt.want[i].From || got[i].To != tt.want[i].To {
					t.Errorf("transfer %d = %+v, want %+v", i, got[i], tt.want[i])
				}
				if math.Abs(got[i].Amount-tt.want[i].Amount) > 1e-9 {
					t.Errorf("transfer %d amount = %v, want %v", i, got[i].Amount, tt.want[i].Amount)
				}
			}
		})
	}
}

func TestSimplifyDebtsStepBound(t *testing.T) {
	balances := map[string]float64{"A": -50, "B": -30, "C": 80}
	got := SimplifyDebts(balances)

	var total float64
	for _, tr := range got {
		if tr.Amount <= 0 {
			t.Errorf("non-positive transfer %+v", tr)
		}
		total += tr.Amount
	}
	if total != 80 {
		t.Errorf("transfers sum to %v, want 80", total)
	}
	if len(got) > 2 {
		t.Errorf("expected at most 2 transfers, got %d", len(got))
	}
	if balances["A"] != -50 {
		t.Error("SimplifyDebts modified its input")
	}
}

func TestRecordSettlement(t *testing.T) {
	members := []string{"A", "B", "C"}
	txs := []models.Transaction{tx("t1", 300, models.Equally{PaidBy: "A"})}
	before := Aggregate(txs, members)

	exp := RecordSettlement("B", "A", 100, time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC))
	if !exp.IsSettlement {
		t.Error("expected IsSettlement")
	}
	if exp.Description != "Settlement: B -> A" {
		t.Errorf("description = %q", exp.Description)
	}
	if exp.Date != "2025-04-02" {
		t.Errorf("date = %q", exp.Date)
	}
	if exp.Split.Method != models.SplitCustom || exp.Split.Payer != "B" || len(exp.Split.CustomShares) != 1 {
		t.Errorf("split = %+v", exp.Split)
	}

	trip := &models.Trip{Members: members, Expenses: []models.Expense{exp}}
	after := Aggregate(append(txs, trip.Transactions()...), members)

	if got := math.Abs(before.Balances["A"]) - math.Abs(after.Balances["A"]); math.Abs(got-100) > 1e-9 {
		t.Errorf("|A| reduced by %v, want 100", got)
	}
	if got := math.Abs(before.Balances["B"]) - math.Abs(after.Balances["B"]); math.Abs(got-100) > 1e-9 {
		t.Errorf("|B| reduced by %v, want 100", got)
	}
	if after.Balances["C"] != before.Balances["C"] {
		t.Errorf("C changed from %v to %v", before.Balances["C"], after.Balances["C"])
	}
}

func TestCalculateTripBalances(t *testing.T) {
	trip := &models.Trip{
		Members: []string{"A", "B", "C"},
		Expenses: []models.Expense{
			{ID: "e1", Description: "Dinner", AmountSettlement: 300, Split: models.Split{Method: models.SplitEqually, Payer: "A"}},
		},
		Bookings: []models.Booking{
			{ID: "b1", Name: "Hotel", AmountSettlement: 90, Split: models.Split{Method: models.SplitEqually, Payer: "B"}},
		},
	}

	res := CalculateTripBalances(trip)
	assertBalances(t, res.Balances, map[string]float64{"A": 170, "B": -40, "C": -130})
	if len(res.Transfers) != 2 {
		t.Fatalf("transfers = %+v", res.Transfers)
	}
	if res.Transfers[0].From != "C" || res.Transfers[0].To != "A" || math.Abs(res.Transfers[0].Amount-130) > 1e-9 {
		t.Errorf("first transfer = %+v", res.Transfers[0])
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings %+v", res.Warnings)
	}
	if len(res.Members) != 3 {
		t.Errorf("members = %+v", res.Members)
	}
}

func TestCalculateTripBalances_UnsplitActivity(t *testing.T) {
	trip := &models.Trip{
		Members: []string{"A", "B"},
		Expenses: []models.Expense{
			{ID: "e1", Description: "Dinner", AmountSettlement: 100, Split: models.Split{Method: models.SplitEqually, Payer: "A"}},
		},
		PlanDays: []models.PlanDay{
			{Date: "2025-03-02", Scheduled: []models.ScheduledItem{
				{ID: "s1", Activity: "Ferry", AmountSettlement: 40},
			}},
		},
	}

	res := CalculateTripBalances(trip)
	assertBalances(t, res.Balances, map[string]float64{"A": 50, "B": -50})
	if len(res.Warnings) != 1 || res.Warnings[0].Kind != WarningMissingPayer || res.Warnings[0].TransactionID != "s1" {
		t.Errorf("warnings = %+v, want one missing_payer for s1", res.Warnings)
	}
}
