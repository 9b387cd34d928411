// Package journal builds the trip's transaction list as shown to users:
// every costed record, newest first, optionally filtered.
package journal

import (
	"sort"

	"github.com/mmynk/tripledger/internal/models"
)

// Filter narrows the journal. Zero values match everything.
type Filter struct {
	// Payer keeps only records paid by this person.
	Payer string

	// PaymentMethod keeps only records paid with this method.
	PaymentMethod models.PaymentMethod
}

func (f Filter) match(tx models.Transaction) bool {
	if f.Payer != "" && tx.Payer() != f.Payer {
		return false
	}
	if f.PaymentMethod != "" && tx.PaymentMethod != f.PaymentMethod {
		return false
	}
	return true
}

// Build returns the trip's transactions sorted by date descending, keeping
// document order within a date. Scheduled items only appear when they carry
// a positive amount.
func Build(trip *models.Trip, f Filter) []models.Transaction {
	var out []models.Transaction
	for _, tx := range trip.Transactions() {
		if tx.Source == models.SourceActivity && tx.Amount.Settlement <= 0 {
			continue
		}
		if !f.match(tx) {
			continue
		}
		out = append(out, tx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Totals sums settlement amounts, split into real spending and settlement
// transfers.
func Totals(txs []models.Transaction) (spent, settled float64) {
	for _, tx := range txs {
		if tx.IsSettlement {
			settled += tx.Amount.Settlement
		} else {
			spent += tx.Amount.Settlement
		}
	}
	return spent, settled
}
