package models

import "github.com/mmynk/tripledger/internal/currency"

// Source identifies which trip record a Transaction came from.
type Source string

const (
	SourceExpense  Source = "Expense"
	SourceBooking  Source = "Booking"
	SourceActivity Source = "Activity"
)

// Transaction is the unified view of one group financial event.
type Transaction struct {
	ID          string
	Source      Source
	Description string

	// Category is the display label, e.g. "Settlement" or "Booking (Hotel)".
	Category string
	Date     string

	Amount currency.Amount

	// Policy is nil for records without a payer; those are no-ops.
	Policy SplitPolicy

	PaymentMethod PaymentMethod
	IsSettlement  bool
}

// Payer returns the payer's name, or "" when the record has none.
func (t Transaction) Payer() string {
	if t.Policy == nil {
		return ""
	}
	return t.Policy.Payer()
}
