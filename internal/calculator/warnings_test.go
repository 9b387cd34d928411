package calculator

import (
	"testing"

	"github.com/mmynk/tripledger/internal/models"
)

func TestCheckTransactions(t *testing.T) {
	members := []string{"Alice", "Bob"}
	externals := []string{"Guide"}

	tests := []struct {
		name           string
		tx             models.Transaction
		wantKinds      []WarningKind
		wantSuggestion string
	}{
		{
			name:      "balanced custom split",
			tx:        tx("t1", 100, custom("Alice", map[string]float64{"Bob": 50, "Guide": 50})),
			wantKinds: nil,
		},
		{
			name:      "mismatch within tolerance",
			tx:        tx("t1", 100, custom("Alice", map[string]float64{"Bob": 99.6})),
			wantKinds: nil,
		},
		{
			name:      "mismatch beyond tolerance",
			tx:        tx("t1", 100, custom("Alice", map[string]float64{"Bob": 90})),
			wantKinds: []WarningKind{WarningShareMismatch},
		},
		{
			name:      "missing payer",
			tx:        tx("t1", 100, nil),
			wantKinds: []WarningKind{WarningMissingPayer},
		},
		{
			name:           "typo in participant",
			tx:             tx("t1", 100, custom("Alice", map[string]float64{"Bobb": 100})),
			wantKinds:      []WarningKind{WarningUnknownPerson},
			wantSuggestion: "Bob",
		},
		{
			name:           "unknown payer without close match",
			tx:             tx("t1", 100, models.Solely{PaidBy: "Maximilian"}),
			wantKinds:      []WarningKind{WarningUnknownPerson},
			wantSuggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckTransactions([]models.Transaction{tt.tx}, members, externals)
			if len(got) != len(tt.wantKinds) {
				t.Fatalf("CheckTransactions() = %+v, want kinds %v", got, tt.wantKinds)
			}
			for i, w := range got {
				if w.Kind != tt.wantKinds[i] {
					t.Errorf("warning %d kind = %s, want %s", i, w.Kind, tt.wantKinds[i])
				}
				if w.TransactionID != "t1" {
					t.Errorf("warning %d transaction = %q", i, w.TransactionID)
				}
				if w.Kind == WarningUnknownPerson && w.Suggestion != tt.wantSuggestion {
					t.Errorf("suggestion = %q, want %q", w.Suggestion, tt.wantSuggestion)
				}
			}
		})
	}
}
