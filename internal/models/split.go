package models

import "github.com/mmynk/tripledger/internal/currency"

// SplitMethod is the persisted discriminator of a Split.
type SplitMethod string

const (
	SplitEqually SplitMethod = "Equally"
	SplitSolely  SplitMethod = "Solely"
	SplitCustom  SplitMethod = "Custom"
)

// PaymentMethod is informational and never affects balances.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentCreditCard PaymentMethod = "Credit Card"
)

// Split is the stored form of a split policy, as it appears in the trip
// document. Use Policy to get the typed variant.
type Split struct {
	// Method selects how the amount is attributed.
	Method SplitMethod `json:"method" yaml:"method"`

	// Payer is the person who fronted the money.
	Payer string `json:"payer" yaml:"payer"`

	// CustomShares maps participant name to owed share in settlement currency.
	// Only read when Method is Custom.
	CustomShares map[string]float64 `json:"customShares,omitempty" yaml:"customShares,omitempty"`

	// CustomLocalShares mirrors CustomShares in the transaction's local currency.
	CustomLocalShares map[string]float64 `json:"customLocalShares,omitempty" yaml:"customLocalShares,omitempty"`
}

// Policy converts the stored split into its typed variant. It returns nil
// when there is no payer or the method is unknown; such records contribute
// nothing to balances.
func (s *Split) Policy() SplitPolicy {
	if s == nil || s.Payer == "" {
		return nil
	}
	switch s.Method {
	case SplitEqually:
		return Equally{PaidBy: s.Payer}
	case SplitSolely:
		return Solely{PaidBy: s.Payer}
	case SplitCustom:
		shares := make(map[string]Share, len(s.CustomShares))
		for name, amt := range s.CustomShares {
			shares[name] = Share{
				Local:      s.CustomLocalShares[name],
				Settlement: currency.Sanitize(amt),
			}
		}
		return Custom{PaidBy: s.Payer, Shares: shares}
	default:
		return nil
	}
}

// SetLocalShare records a participant's custom share entered in local
// currency, converting it with the transaction's rate.
func (s *Split) SetLocalShare(name string, local, rate float64) {
	if s.CustomShares == nil {
		s.CustomShares = make(map[string]float64)
	}
	if s.CustomLocalShares == nil {
		s.CustomLocalShares = make(map[string]float64)
	}
	local = currency.Sanitize(local)
	s.CustomLocalShares[name] = local
	s.CustomShares[name] = currency.ConvertShare(local, rate)
}

// Reprice reconverts every custom share after the transaction's rate changed.
func (s *Split) Reprice(rate float64) {
	if len(s.CustomLocalShares) == 0 {
		return
	}
	if s.CustomShares == nil {
		s.CustomShares = make(map[string]float64, len(s.CustomLocalShares))
	}
	for name, local := range s.CustomLocalShares {
		s.CustomShares[name] = currency.ConvertShare(local, rate)
	}
}

// SplitPolicy is one of Equally, Solely or Custom.
type SplitPolicy interface {
	// Payer returns the person who paid.
	Payer() string
	isSplitPolicy()
}

// Equally divides the amount across every internal trip member.
type Equally struct {
	PaidBy string
}

// Solely attributes the whole amount to the payer.
type Solely struct {
	PaidBy string
}

// Custom attributes explicit shares; participants may be external names.
type Custom struct {
	PaidBy string
	Shares map[string]Share
}

// Share is one participant's portion of a custom split.
type Share struct {
	Local      float64
	Settlement float64
}

func (p Equally) Payer() string { return p.PaidBy }
func (p Solely) Payer() string  { return p.PaidBy }
func (p Custom) Payer() string  { return p.PaidBy }

func (Equally) isSplitPolicy() {}
func (Solely) isSplitPolicy()  {}
func (Custom) isSplitPolicy()  {}

// Total returns the sum of settlement-currency shares.
func (p Custom) Total() float64 {
	var sum float64
	for _, sh := range p.Shares {
		sum += sh.Settlement
	}
	return sum
}
