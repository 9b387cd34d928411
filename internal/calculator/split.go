package calculator

import "github.com/mmynk/tripledger/internal/models"

const (
	// BalanceEpsilon is the tolerance below which a balance or a transfer
	// counts as settled.
	BalanceEpsilon = 0.01

	// ShareMismatchWarning is how far custom shares may drift from the
	// transaction total before a warning is raised.
	ShareMismatchWarning = 0.5
)

// Shares computes how much of amount each person consumed under policy.
// members is the trip's internal roster and is only read for Equally.
//
// Rules:
//   - Equally: amount / len(members) for every internal member; with an
//     empty roster the payer bears the whole amount so balances still net to zero
//   - Solely: the payer consumes the whole amount
//   - Custom: each listed share as entered; the sum is not forced to match
//
// A nil policy yields no shares.
func Shares(amount float64, policy models.SplitPolicy, members []string) map[string]float64 {
	shares := make(map[string]float64)

	switch p := policy.(type) {
	case models.Equally:
		if len(members) == 0 {
			// Nobody to divide among: amount / 1, borne by the payer.
			shares[p.PaidBy] = amount
			return shares
		}
		per := amount / float64(len(members))
		for _, m := range members {
			shares[m] += per
		}
	case models.Solely:
		shares[p.PaidBy] = amount
	case models.Custom:
		for name, sh := range p.Shares {
			if name == "" {
				continue
			}
			shares[name] += sh.Settlement
		}
	}

	return shares
}
