package calculator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mmynk/tripledger/internal/models"
)

// WarningKind classifies a data-quality warning.
type WarningKind string

const (
	WarningShareMismatch WarningKind = "share_mismatch"
	WarningMissingPayer  WarningKind = "missing_payer"
	WarningUnknownPerson WarningKind = "unknown_person"
)

// Warning is a non-blocking data-quality finding about one transaction.
// Computation always proceeds with the data as entered.
type Warning struct {
	TransactionID string      `json:"transactionId"`
	Kind          WarningKind `json:"kind"`
	Message       string      `json:"message"`

	// Suggestion is the closest known name for unknown people, if any.
	Suggestion string `json:"suggestion,omitempty"`
}

// maxSuggestDistance bounds how different a name may be and still be
// suggested as a typo fix.
const maxSuggestDistance = 2

// CheckTransactions reports custom splits whose shares drift more than
// ShareMismatchWarning from the total, records with no payer, and names
// that are neither internal members nor known external names.
func CheckTransactions(transactions []models.Transaction, members, externalNames []string) []Warning {
	known := make([]string, 0, len(members)+len(externalNames))
	known = append(known, members...)
	known = append(known, externalNames...)
	knownSet := make(map[string]bool, len(known))
	for _, n := range known {
		knownSet[n] = true
	}

	var warnings []Warning
	for _, tx := range transactions {
		if tx.Policy == nil {
			warnings = append(warnings, Warning{
				TransactionID: tx.ID,
				Kind:          WarningMissingPayer,
				Message:       fmt.Sprintf("%q has no payer and is ignored", tx.Description),
			})
			continue
		}

		names := []string{tx.Policy.Payer()}
		if c, ok := tx.Policy.(models.Custom); ok {
			if diff := math.Abs(tx.Amount.Settlement - c.Total()); diff > ShareMismatchWarning {
				warnings = append(warnings, Warning{
					TransactionID: tx.ID,
					Kind:          WarningShareMismatch,
					Message: fmt.Sprintf("%q: shares total %.2f but amount is %.2f",
						tx.Description, c.Total(), tx.Amount.Settlement),
				})
			}
			for name := range c.Shares {
				names = append(names, name)
			}
			sort.Strings(names[1:])
		}

		for _, name := range names {
			if knownSet[name] {
				continue
			}
			warnings = append(warnings, Warning{
				TransactionID: tx.ID,
				Kind:          WarningUnknownPerson,
				Message:       fmt.Sprintf("%q refers to unknown person %q", tx.Description, name),
				Suggestion:    closestName(name, known),
			})
		}
	}

	return warnings
}

func closestName(name string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
