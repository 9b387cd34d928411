package calculator

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/mmynk/tripledger/internal/models"
)

func assertBalances(t *testing.T, got map[string]float64, want map[string]float64) {
	t.Helper()
	for person, w := range want {
		if math.Abs(got[person]-w) > 0.01 {
			t.Errorf("%s balance = %v, want %v", person, got[person], w)
		}
	}
}

func TestAggregate(t *testing.T) {
	members := []string{"A", "B", "C"}

	tests := []struct {
		name         string
		transactions []models.Transaction
		wantBalances map[string]float64
		wantSpending map[string]float64
	}{
		{
			name:         "equally split",
			transactions: []models.Transaction{tx("t1", 300, models.Equally{PaidBy: "A"})},
			wantBalances: map[string]float64{"A": 200, "B": -100, "C": -100},
			wantSpending: map[string]float64{"A": 100, "B": 100, "C": 100},
		},
		{
			name:         "solely",
			transactions: []models.Transaction{tx("t1", 300, models.Solely{PaidBy: "A"})},
			wantBalances: map[string]float64{"A": 0, "B": 0, "C": 0},
			wantSpending: map[string]float64{"A": 300, "B": 0, "C": 0},
		},
		{
			name: "custom",
			transactions: []models.Transaction{
				tx("t1", 300, custom("A", map[string]float64{"A": 100, "B": 100, "C": 100})),
			},
			wantBalances: map[string]float64{"A": 200, "B": -100, "C": -100},
			wantSpending: map[string]float64{"A": 100, "B": 100, "C": 100},
		},
		{
			name: "external participant gets a balance but no spending",
			transactions: []models.Transaction{
				tx("t1", 100, custom("A", map[string]float64{"Guide": 100})),
			},
			wantBalances: map[string]float64{"A": 100, "Guide": -100, "B": 0},
			wantSpending: map[string]float64{"A": 0, "B": 0, "C": 0},
		},
		{
			name: "missing payer is a no-op",
			transactions: []models.Transaction{
				tx("t1", 300, nil),
				tx("t2", 60, models.Equally{PaidBy: "B"}),
			},
			wantBalances: map[string]float64{"A": -20, "B": 40, "C": -20},
			wantSpending: map[string]float64{"A": 20, "B": 20, "C": 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Aggregate(tt.transactions, members)
			assertBalances(t, l.Balances, tt.wantBalances)
			for person, want := range tt.wantSpending {
				if math.Abs(l.Spending[person]-want) > 0.01 {
					t.Errorf("%s spending = %v, want %v", person, l.Spending[person], want)
				}
			}
			if _, ok := l.Spending["Guide"]; ok {
				t.Error("external names must not get a spending total")
			}
		})
	}
}

// randomTransactions builds a set whose custom shares always add up, so
// balances are conserved.
func randomTransactions(r *rand.Rand, n int, members []string) []models.Transaction {
	externals := []string{"Guide", "Driver"}
	txs := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		amount := float64(r.Intn(50000)) / 100
		payer := members[r.Intn(len(members))]
		id := fmt.Sprintf("t%d", i)

		switch r.Intn(3) {
		case 0:
			txs = append(txs, tx(id, amount, models.Equally{PaidBy: payer}))
		case 1:
			txs = append(txs, tx(id, amount, models.Solely{PaidBy: payer}))
		default:
			people := append(append([]string(nil), members...), externals...)
			first := people[r.Intn(len(people))]
			second := people[r.Intn(len(people))]
			part := amount * r.Float64()
			shares := map[string]float64{first: part}
			shares[second] += amount - part
			txs = append(txs, tx(id, amount, custom(payer, shares)))
		}
	}
	return txs
}

func TestAggregateConservation(t *testing.T) {
	members := []string{"A", "B", "C", "D"}
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 25; trial++ {
		txs := randomTransactions(r, 30, members)
		l := Aggregate(txs, members)
		if math.Abs(l.Total()) > 1e-6 {
			t.Fatalf("trial %d: balances sum to %v", trial, l.Total())
		}
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	members := []string{"A", "B", "C"}
	r := rand.New(rand.NewSource(7))
	txs := randomTransactions(r, 40, members)
	base := Aggregate(txs, members)

	for trial := 0; trial < 10; trial++ {
		shuffled := append([]models.Transaction(nil), txs...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Aggregate(shuffled, members)
		for person, want := range base.Balances {
			if math.Abs(got.Balances[person]-want) > 1e-6 {
				t.Errorf("trial %d: %s balance = %v, want %v", trial, person, got.Balances[person], want)
			}
		}
	}
}

func TestAggregateIdempotent(t *testing.T) {
	members := []string{"A", "B", "C"}
	txs := randomTransactions(rand.New(rand.NewSource(3)), 20, members)

	first := Aggregate(txs, members)
	second := Aggregate(txs, members)
	if len(first.Balances) != len(second.Balances) {
		t.Fatalf("balance maps differ in size: %d vs %d", len(first.Balances), len(second.Balances))
	}
	for person, b := range first.Balances {
		if second.Balances[person] != b {
			t.Errorf("%s: %v then %v", person, b, second.Balances[person])
		}
	}
}

func TestMemberBalancesOrder(t *testing.T) {
	members := []string{"Zoe", "Adam"}
	l := Aggregate([]models.Transaction{
		tx("t1", 40, custom("Zoe", map[string]float64{"Driver": 20, "Chef": 20})),
	}, members)

	got := l.MemberBalances()
	var names []string
	for _, mb := range got {
		names = append(names, mb.MemberName)
	}
	want := []string{"Zoe", "Adam", "Chef", "Driver"}
	if fmt.Sprint(names) != fmt.Sprint(want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
	if got[0].TotalPaid != 40 || got[0].NetBalance != 40 {
		t.Errorf("Zoe = %+v", got[0])
	}
	if !got[2].External || got[0].External {
		t.Error("external flags wrong")
	}
}

func TestSettlementConvergence(t *testing.T) {
	members := []string{"A", "B", "C", "D", "E"}
	r := rand.New(rand.NewSource(11))
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 20; trial++ {
		txs := randomTransactions(r, 25, members)
		l := Aggregate(txs, members)

		trip := &models.Trip{Members: members}
		for _, tr := range SimplifyDebts(l.Balances) {
			trip.Expenses = append(trip.Expenses, RecordSettlement(tr.From, tr.To, tr.Amount, now))
		}
		settled := Aggregate(append(txs, trip.Transactions()...), members)

		for person, b := range settled.Balances {
			if math.Abs(b) > BalanceEpsilon {
				t.Errorf("trial %d: %s still at %v after settling", trial, person, b)
			}
		}
	}
}
