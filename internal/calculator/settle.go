package calculator

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripledger/internal/models"
)

type party struct {
	name   string
	amount float64
}

// SimplifyDebts turns net balances into directed transfers using greedy
// matching: the largest debtor pays the largest creditor until one of them
// is settled, then the sweep moves on. Balances within BalanceEpsilon of
// zero are treated as settled. Ties are broken by name so the output is
// deterministic.
func SimplifyDebts(balances map[string]float64) []models.Transfer {
	var debtors, creditors []party
	for name, bal := range balances {
		if bal < -BalanceEpsilon {
			debtors = append(debtors, party{name, -bal})
		} else if bal > BalanceEpsilon {
			creditors = append(creditors, party{name, bal})
		}
	}
	sortParties(debtors)
	sortParties(creditors)

	var transfers []models.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := debtors[i].amount
		if creditors[j].amount < amount {
			amount = creditors[j].amount
		}

		if amount > BalanceEpsilon {
			transfers = append(transfers, models.Transfer{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: amount,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount < BalanceEpsilon {
			i++
		}
		if creditors[j].amount < BalanceEpsilon {
			j++
		}
	}

	return transfers
}

func sortParties(ps []party) {
	sort.Slice(ps, func(a, b int) bool {
		if ps[a].amount != ps[b].amount {
			return ps[a].amount > ps[b].amount
		}
		return ps[a].name < ps[b].name
	})
}

// RecordSettlement builds the synthetic expense that clears a transfer.
// Appending it to the trip moves both parties' balances toward zero by
// exactly amount. The transfer is not checked against current balances.
func RecordSettlement(from, to string, amount float64, when time.Time) models.Expense {
	return models.Expense{
		ID:               uuid.New().String(),
		Description:      "Settlement: " + from + " -> " + to,
		AmountSettlement: amount,
		AmountLocal:      amount,
		FXRate:           1,
		PaymentMethod:    models.PaymentCash,
		Split: models.Split{
			Method:            models.SplitCustom,
			Payer:             from,
			CustomShares:      map[string]float64{to: amount},
			CustomLocalShares: map[string]float64{to: amount},
		},
		IsSettlement: true,
		Date:         when.Format(time.DateOnly),
	}
}
