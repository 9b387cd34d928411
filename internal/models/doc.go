// Package models defines the trip ledger domain models.
//
// A Trip is a single JSON document owning every record the settlement
// engine reads:
//   - Expense: a direct group expense, or a recorded settlement transfer
//   - Booking: a reserved flight, hotel, ticket or service with a cost
//   - ScheduledItem: a costed activity inside a PlanDay
//
// Each record carries a Split describing who paid and how the cost is
// attributed. Transaction is the unified, read-only view the calculator
// folds over; Trip.Transactions builds it.
//
// People are identified by name. Trip.Members is the ordered internal
// roster used for equal splits; Trip.ExternalNames lists outsiders who may
// only appear in custom splits.
package models
