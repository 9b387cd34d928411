package calculator

import (
	"sort"

	"github.com/mmynk/tripledger/internal/models"
)

// MemberBalance represents the balance information for one person.
type MemberBalance struct {
	MemberName string  `json:"memberName"`
	NetBalance float64 `json:"netBalance"` // Positive = owed money, Negative = owes money
	TotalPaid  float64 `json:"totalPaid"`  // Total amount fronted as payer
	TotalOwed  float64 `json:"totalOwed"`  // Total shares attributed to this person
	Spending   float64 `json:"spending"`   // Consumption; internal members only
	External   bool    `json:"external"`
}

// Ledger is the fold of a transaction set.
type Ledger struct {
	// Balances is paid minus attributed shares, per person.
	Balances map[string]float64

	// Spending is consumption per internal member.
	Spending map[string]float64

	Paid map[string]float64
	Owed map[string]float64

	members []string
}

// Aggregate folds transactions into balances and spending.
//
// Algorithm:
//   - every internal member starts at 0; other names are added on first use
//   - payer's balance += settlement amount
//   - each share from Shares is subtracted from that person's balance and,
//     for internal members, added to their spending
//
// The result does not depend on transaction order, and the inputs are not
// modified. Records without a policy are skipped.
func Aggregate(transactions []models.Transaction, members []string) Ledger {
	l := Ledger{
		Balances: make(map[string]float64, len(members)),
		Spending: make(map[string]float64, len(members)),
		Paid:     make(map[string]float64, len(members)),
		Owed:     make(map[string]float64, len(members)),
		members:  append([]string(nil), members...),
	}

	internal := make(map[string]bool, len(members))
	for _, m := range members {
		internal[m] = true
		l.Balances[m] = 0
		l.Spending[m] = 0
	}

	for _, tx := range transactions {
		if tx.Policy == nil {
			continue
		}
		amount := tx.Amount.Settlement
		payer := tx.Policy.Payer()

		l.Balances[payer] += amount
		l.Paid[payer] += amount

		for person, share := range Shares(amount, tx.Policy, members) {
			l.Balances[person] -= share
			l.Owed[person] += share
			if internal[person] {
				l.Spending[person] += share
			}
		}
	}

	return l
}

// Total returns the sum of all balances; it stays near zero unless custom
// shares do not add up to their transaction totals.
func (l Ledger) Total() float64 {
	var sum float64
	for _, b := range l.Balances {
		sum += b
	}
	return sum
}

// MemberBalances lists every person in the ledger: internal members in
// roster order, then everyone else by name.
func (l Ledger) MemberBalances() []MemberBalance {
	seen := make(map[string]bool, len(l.Balances))
	out := make([]MemberBalance, 0, len(l.Balances))

	for _, m := range l.members {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, l.memberBalance(m, false))
	}

	var others []string
	for name := range l.Balances {
		if !seen[name] {
			others = append(others, name)
		}
	}
	sort.Strings(others)
	for _, name := range others {
		out = append(out, l.memberBalance(name, true))
	}

	return out
}

func (l Ledger) memberBalance(name string, external bool) MemberBalance {
	return MemberBalance{
		MemberName: name,
		NetBalance: l.Balances[name],
		TotalPaid:  l.Paid[name],
		TotalOwed:  l.Owed[name],
		Spending:   l.Spending[name],
		External:   external,
	}
}
