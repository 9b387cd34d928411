package models

import "github.com/mmynk/tripledger/internal/currency"

// Trip is the persisted trip document.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string `json:"id" yaml:"id"`

	// OwnerID is the user who created the trip.
	OwnerID string `json:"ownerId,omitempty" yaml:"ownerId,omitempty"`

	Title       string `json:"title" yaml:"title"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`

	// BaseCurrency is the local currency code spent at the destination.
	BaseCurrency string `json:"baseCurrency,omitempty" yaml:"baseCurrency,omitempty"`

	// SettlementCurrency is the common currency balances are computed in.
	SettlementCurrency string `json:"settlementCurrency,omitempty" yaml:"settlementCurrency,omitempty"`

	// FXRate is the trip-level local → settlement rate used when a record
	// has none of its own.
	FXRate float64 `json:"fxRate,omitempty" yaml:"fxRate,omitempty"`

	StartDate string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty" yaml:"endDate,omitempty"`

	// Members is the ordered internal roster.
	Members []string `json:"members" yaml:"members"`

	// ExternalNames are people outside the group, usable in custom splits only.
	ExternalNames []string `json:"externalNames,omitempty" yaml:"externalNames,omitempty"`

	Expenses []Expense `json:"expenses,omitempty" yaml:"expenses,omitempty"`
	Bookings []Booking `json:"bookings,omitempty" yaml:"bookings,omitempty"`
	PlanDays []PlanDay `json:"planDays,omitempty" yaml:"planDays,omitempty"`

	// Version increases on every stored update.
	Version int64 `json:"version" yaml:"-"`

	CreatedAt int64 `json:"createdAt" yaml:"-"`
	UpdatedAt int64 `json:"updatedAt" yaml:"-"`
}

// Expense is a direct group expense. Settlement transfers are stored as
// expenses with IsSettlement set.
type Expense struct {
	ID               string        `json:"id" yaml:"id"`
	Description      string        `json:"description" yaml:"description"`
	AmountSettlement float64       `json:"amountSettlement" yaml:"amountSettlement"`
	AmountLocal      float64       `json:"amountLocal" yaml:"amountLocal"`
	FXRate           float64       `json:"fxRate,omitempty" yaml:"fxRate,omitempty"`
	Currency         string        `json:"currency,omitempty" yaml:"currency,omitempty"`
	PaymentMethod    PaymentMethod `json:"paymentMethod,omitempty" yaml:"paymentMethod,omitempty"`
	Split            Split         `json:"split" yaml:"split"`
	IsSettlement     bool          `json:"isSettlement,omitempty" yaml:"isSettlement,omitempty"`
	Date             string        `json:"date,omitempty" yaml:"date,omitempty"`
}

// BookingType classifies a booking.
type BookingType string

const (
	BookingFlight     BookingType = "Flight"
	BookingHotel      BookingType = "Hotel"
	BookingActivity   BookingType = "Activity"
	BookingTicket     BookingType = "Ticket"
	BookingService    BookingType = "Service"
	BookingRestaurant BookingType = "Restaurant"
)

// Booking is a reservation. An unset amount counts as 0.
type Booking struct {
	ID               string        `json:"id" yaml:"id"`
	Type             BookingType   `json:"type" yaml:"type"`
	Name             string        `json:"name" yaml:"name"`
	Details          string        `json:"details,omitempty" yaml:"details,omitempty"`
	Confirmation     string        `json:"confirmation,omitempty" yaml:"confirmation,omitempty"`
	Date             string        `json:"date,omitempty" yaml:"date,omitempty"`
	Time             string        `json:"time,omitempty" yaml:"time,omitempty"`
	AmountLocal      float64       `json:"amountLocal,omitempty" yaml:"amountLocal,omitempty"`
	AmountSettlement float64       `json:"amountSettlement,omitempty" yaml:"amountSettlement,omitempty"`
	FXRate           float64       `json:"fxRate,omitempty" yaml:"fxRate,omitempty"`
	Currency         string        `json:"currency,omitempty" yaml:"currency,omitempty"`
	PaymentMethod    PaymentMethod `json:"paymentMethod,omitempty" yaml:"paymentMethod,omitempty"`
	Split            Split         `json:"split" yaml:"split"`
}

// PlanDay is one itinerary day.
type PlanDay struct {
	Date      string          `json:"date" yaml:"date"`
	Scheduled []ScheduledItem `json:"scheduled,omitempty" yaml:"scheduled,omitempty"`
}

// ScheduledItem is an itinerary activity. It only enters the ledger when it
// has both an amount and a split.
type ScheduledItem struct {
	ID               string        `json:"id" yaml:"id"`
	Time             string        `json:"time,omitempty" yaml:"time,omitempty"`
	Activity         string        `json:"activity" yaml:"activity"`
	Location         string        `json:"location,omitempty" yaml:"location,omitempty"`
	AmountLocal      float64       `json:"amountLocal,omitempty" yaml:"amountLocal,omitempty"`
	AmountSettlement float64       `json:"amountSettlement,omitempty" yaml:"amountSettlement,omitempty"`
	FXRate           float64       `json:"fxRate,omitempty" yaml:"fxRate,omitempty"`
	Currency         string        `json:"currency,omitempty" yaml:"currency,omitempty"`
	PaymentMethod    PaymentMethod `json:"paymentMethod,omitempty" yaml:"paymentMethod,omitempty"`
	Split            *Split        `json:"split,omitempty" yaml:"split,omitempty"`
}

// TripSummary is the list view of a trip.
type TripSummary struct {
	ID          string
	Title       string
	Destination string
	Members     []string
	Version     int64
	CreatedAt   int64
	UpdatedAt   int64
}

// Summary returns the list view of t.
func (t *Trip) Summary() TripSummary {
	return TripSummary{
		ID:          t.ID,
		Title:       t.Title,
		Destination: t.Destination,
		Members:     t.Members,
		Version:     t.Version,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// IsMember reports whether name is on the internal roster.
func (t *Trip) IsMember(name string) bool {
	for _, m := range t.Members {
		if m == name {
			return true
		}
	}
	return false
}

// IsKnown reports whether name is an internal member or an external name.
func (t *Trip) IsKnown(name string) bool {
	if t.IsMember(name) {
		return true
	}
	for _, n := range t.ExternalNames {
		if n == name {
			return true
		}
	}
	return false
}

// Transactions flattens every costed record of the trip into the unified
// view, in document order: expenses, bookings, then scheduled items by day.
// Scheduled items without an amount are skipped; costed items with no split
// are kept with a nil Policy so they still show up as missing a payer.
func (t *Trip) Transactions() []Transaction {
	txs := make([]Transaction, 0, len(t.Expenses)+len(t.Bookings))

	for _, e := range t.Expenses {
		category := "Expense"
		if e.IsSettlement {
			category = "Settlement"
		}
		split := e.Split
		txs = append(txs, Transaction{
			ID:            e.ID,
			Source:        SourceExpense,
			Description:   e.Description,
			Category:      category,
			Date:          e.Date,
			Amount:        t.amount(e.AmountLocal, e.FXRate, e.AmountSettlement),
			Policy:        split.Policy(),
			PaymentMethod: e.PaymentMethod,
			IsSettlement:  e.IsSettlement,
		})
	}

	for _, b := range t.Bookings {
		split := b.Split
		txs = append(txs, Transaction{
			ID:            b.ID,
			Source:        SourceBooking,
			Description:   b.Name,
			Category:      "Booking (" + string(b.Type) + ")",
			Date:          b.Date,
			Amount:        t.amount(b.AmountLocal, b.FXRate, b.AmountSettlement),
			Policy:        split.Policy(),
			PaymentMethod: b.PaymentMethod,
		})
	}

	for _, d := range t.PlanDays {
		for _, s := range d.Scheduled {
			if s.AmountSettlement == 0 {
				continue
			}
			txs = append(txs, Transaction{
				ID:            s.ID,
				Source:        SourceActivity,
				Description:   s.Activity,
				Category:      "Activity",
				Date:          d.Date,
				Amount:        t.amount(s.AmountLocal, s.FXRate, s.AmountSettlement),
				Policy:        s.Split.Policy(),
				PaymentMethod: s.PaymentMethod,
			})
		}
	}

	return txs
}

// amount rebuilds the conversion triple. The stored settlement amount is
// what the ledger uses; the rate falls back to the trip rate, then 1.
func (t *Trip) amount(local, rate, settlement float64) currency.Amount {
	return currency.Amount{
		Local:      currency.Sanitize(local),
		Rate:       currency.ResolveRate(rate, t.FXRate),
		Settlement: currency.Sanitize(settlement),
	}
}
