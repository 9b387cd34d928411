// Package report renders trip ledgers as downloadable files.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/journal"
	"github.com/mmynk/tripledger/internal/models"
)

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ContentType returns the MIME type for an export format.
func ContentType(format string) string {
	switch format {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func settlementCurrency(trip *models.Trip) string {
	if trip.SettlementCurrency != "" {
		return trip.SettlementCurrency
	}
	return "settlement"
}

// BuildTripXLSX renders a workbook with summary, balances, transfers and
// journal sheets.
func BuildTripXLSX(trip *models.Trip, res *calculator.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	balancesSheet := "balances"
	transfersSheet := "transfers"
	journalSheet := "journal"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{balancesSheet, transfersSheet, journalSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	txs := journal.Build(trip, journal.Filter{})
	spent, settled := journal.Totals(txs)

	_ = f.SetCellValue(summarySheet, "A1", trip.Title)
	_ = f.SetCellValue(summarySheet, "A3", "Destination")
	_ = f.SetCellValue(summarySheet, "B3", trip.Destination)
	_ = f.SetCellValue(summarySheet, "A4", "Members")
	_ = f.SetCellValue(summarySheet, "B4", len(trip.Members))
	_ = f.SetCellValue(summarySheet, "A5", "Currency")
	_ = f.SetCellValue(summarySheet, "B5", settlementCurrency(trip))
	_ = f.SetCellValue(summarySheet, "A6", "Total Spent")
	_ = f.SetCellValue(summarySheet, "B6", spent)
	_ = f.SetCellValue(summarySheet, "A7", "Total Settled")
	_ = f.SetCellValue(summarySheet, "B7", settled)
	_ = f.SetCellValue(summarySheet, "A8", "Version")
	_ = f.SetCellValue(summarySheet, "B8", trip.Version)

	header := []any{"Member", "Paid", "Owed", "Net Balance", "Spending", "External"}
	if err := f.SetSheetRow(balancesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write balances header: %w", err)
	}
	for i, mb := range res.Members {
		row := []any{mb.MemberName, mb.TotalPaid, mb.TotalOwed, mb.NetBalance, mb.Spending, mb.External}
		if err := f.SetSheetRow(balancesSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, fmt.Errorf("failed to write balance row: %w", err)
		}
	}

	_ = f.SetCellValue(transfersSheet, "A1", "From")
	_ = f.SetCellValue(transfersSheet, "B1", "To")
	_ = f.SetCellValue(transfersSheet, "C1", "Amount")
	for i, tr := range res.Transfers {
		row := i + 2
		_ = f.SetCellValue(transfersSheet, fmt.Sprintf("A%d", row), tr.From)
		_ = f.SetCellValue(transfersSheet, fmt.Sprintf("B%d", row), tr.To)
		_ = f.SetCellValue(transfersSheet, fmt.Sprintf("C%d", row), tr.Amount)
	}

	header = []any{"Date", "Category", "Description", "Payer", "Payment", "Local", "Rate", "Amount"}
	if err := f.SetSheetRow(journalSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write journal header: %w", err)
	}
	for i, tx := range txs {
		row := []any{
			tx.Date, tx.Category, tx.Description, tx.Payer(), string(tx.PaymentMethod),
			tx.Amount.Local, tx.Amount.Rate, tx.Amount.Settlement,
		}
		if err := f.SetSheetRow(journalSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, fmt.Errorf("failed to write journal row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildSettlementPDF renders a one-page settlement summary: balances,
// suggested transfers and any data warnings.
func BuildSettlementPDF(trip *models.Trip, res *calculator.Result, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	cur := settlementCurrency(trip)

	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()
	pdf.Cell(0, 8, tr(fmt.Sprintf("Settlement Summary: %s", trip.Title)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	if trip.Destination != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Destination: %s", trip.Destination)))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Currency: %s", cur))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Version: %d", trip.Version))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generated.Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Member", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Paid", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Spending", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Net", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, mb := range res.Members {
		name := mb.MemberName
		if mb.External {
			name += " (external)"
		}
		pdf.CellFormat(50, 6, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", mb.TotalPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", mb.Spending), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%+.2f", mb.NetBalance), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Suggested Transfers")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	if len(res.Transfers) == 0 {
		pdf.Cell(0, 6, "Everyone is settled up.")
		pdf.Ln(5)
	}
	for _, t := range res.Transfers {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s pays %s %.2f %s", t.From, t.To, t.Amount, cur)))
		pdf.Ln(5)
	}

	if len(res.Warnings) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		for _, w := range res.Warnings {
			pdf.MultiCell(0, 5, tr(w.Message), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
