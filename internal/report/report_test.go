package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/models"
)

func testTrip() *models.Trip {
	return &models.Trip{
		Title:              "Osaka",
		Destination:        "Osaka",
		SettlementCurrency: "HKD",
		Members:            []string{"A", "B", "C"},
		Version:            4,
		Expenses: []models.Expense{
			{ID: "e1", Description: "Dinner", Date: "2025-05-01", AmountSettlement: 300, Split: models.Split{Method: models.SplitEqually, Payer: "A"}},
			{ID: "e2", Description: "Tickets", Date: "2025-05-02", AmountSettlement: 90, Split: models.Split{Method: models.SplitCustom, Payer: "B", CustomShares: map[string]float64{"C": 50}}},
		},
	}
}

func TestBuildTripXLSX(t *testing.T) {
	trip := testTrip()
	res := calculator.CalculateTripBalances(trip)

	data, err := BuildTripXLSX(trip, res)
	if err != nil {
		t.Fatalf("BuildTripXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	if title, _ := f.GetCellValue("summary", "A1"); title != "Osaka" {
		t.Errorf("summary title = %q", title)
	}
	if spent, _ := f.GetCellValue("summary", "B6"); spent != "390" {
		t.Errorf("total spent = %q, want 390", spent)
	}

	rows, err := f.GetRows("balances")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1+len(res.Members) {
		t.Errorf("balances rows = %d, want %d", len(rows), 1+len(res.Members))
	}
	if rows[1][0] != "A" {
		t.Errorf("first member = %q, want roster order", rows[1][0])
	}

	journalRows, err := f.GetRows("journal")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(journalRows) != 3 || journalRows[1][2] != "Tickets" {
		t.Errorf("journal = %v", journalRows)
	}

	transferRows, _ := f.GetRows("transfers")
	if len(transferRows) != 1+len(res.Transfers) {
		t.Errorf("transfers rows = %d", len(transferRows))
	}
}

func TestBuildSettlementPDF(t *testing.T) {
	trip := testTrip()
	res := calculator.CalculateTripBalances(trip)

	data, err := BuildSettlementPDF(trip, res, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildSettlementPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", data[:8])
	}
}

func TestContentType(t *testing.T) {
	if ContentType(FormatPDF) != "application/pdf" {
		t.Error("pdf content type")
	}
	if ContentType("csv") != "application/octet-stream" {
		t.Error("unknown formats fall back to octet-stream")
	}
}
