package models

// Transfer is a suggested payment from a debtor to a creditor.
// Transfers are derived on every read and never stored; confirming one
// appends a settlement Expense to the trip.
type Transfer struct {
	// From is the debtor who pays.
	From string `json:"from"`

	// To is the creditor who receives.
	To string `json:"to"`

	// Amount is positive, in settlement currency.
	Amount float64 `json:"amount"`
}
