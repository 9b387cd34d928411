// Package currency keeps local-currency amounts, exchange rates and
// settlement-currency amounts consistent with each other.
package currency

import (
	"math"
	"strconv"
	"strings"
)

// Amount ties a local-currency amount to its settlement-currency value.
// The identity Settlement = Local × Rate holds after every Set* call,
// except when the rate cannot be back-solved (Local == 0).
type Amount struct {
	Local      float64 `json:"local" yaml:"local"`
	Rate       float64 `json:"rate" yaml:"rate"`
	Settlement float64 `json:"settlement" yaml:"settlement"`
}

// New builds an Amount from a local value and a rate.
func New(local, rate float64) Amount {
	a := Amount{Rate: Sanitize(rate)}
	a.SetLocal(local)
	return a
}

// SetLocal updates the local amount and recomputes the settlement amount.
func (a *Amount) SetLocal(v float64) {
	a.Local = Sanitize(v)
	a.Settlement = a.Local * a.Rate
}

// SetRate updates the exchange rate and recomputes the settlement amount.
func (a *Amount) SetRate(v float64) {
	a.Rate = Sanitize(v)
	a.Settlement = a.Local * a.Rate
}

// SetSettlement updates the settlement amount and back-solves the rate,
// holding the local amount fixed. With no local amount the rate is undefined
// and is left unchanged.
func (a *Amount) SetSettlement(v float64) {
	a.Settlement = Sanitize(v)
	if a.Local != 0 {
		a.Rate = a.Settlement / a.Local
	}
}

// Field names an editable part of an Amount.
type Field string

const (
	FieldLocal      Field = "local"
	FieldRate       Field = "rate"
	FieldSettlement Field = "settlement"
)

// Apply edits the named field. Unknown fields leave the amount untouched and
// report false.
func (a *Amount) Apply(field Field, v float64) bool {
	switch field {
	case FieldLocal:
		a.SetLocal(v)
	case FieldRate:
		a.SetRate(v)
	case FieldSettlement:
		a.SetSettlement(v)
	default:
		return false
	}
	return true
}

// Sanitize maps NaN and infinities to 0 so they never propagate.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseAmount parses user input, treating anything non-numeric as 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Sanitize(v)
}

// ResolveRate returns the first usable rate from candidates, most specific
// first (transaction rate, then trip rate). Falls back to 1.
func ResolveRate(candidates ...float64) float64 {
	for _, r := range candidates {
		if r > 0 && !math.IsInf(r, 0) {
			return r
		}
	}
	return 1
}

// ConvertShare converts a per-participant local share with its parent
// transaction's rate.
func ConvertShare(local, rate float64) float64 {
	return Sanitize(local) * Sanitize(rate)
}
