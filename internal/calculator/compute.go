package calculator

import "github.com/mmynk/tripledger/internal/models"

// Result is everything the settlement panel shows for a trip.
type Result struct {
	Balances  map[string]float64 `json:"balances"`
	Spending  map[string]float64 `json:"spending"`
	Members   []MemberBalance    `json:"members"`
	Transfers []models.Transfer  `json:"transfers"`
	Warnings  []Warning          `json:"warnings"`
}

// CalculateTripBalances runs the full pipeline over a trip snapshot:
// unify records, aggregate, simplify debts and collect warnings.
func CalculateTripBalances(trip *models.Trip) *Result {
	txs := trip.Transactions()
	ledger := Aggregate(txs, trip.Members)

	return &Result{
		Balances:  ledger.Balances,
		Spending:  ledger.Spending,
		Members:   ledger.MemberBalances(),
		Transfers: SimplifyDebts(ledger.Balances),
		Warnings:  CheckTransactions(txs, trip.Members, trip.ExternalNames),
	}
}
