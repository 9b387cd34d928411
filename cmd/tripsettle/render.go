package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/models"
)

const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtext lipgloss.Color = "#a6adc8"
	colorAccent  lipgloss.Color = "#f5c2e7"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorWarning lipgloss.Color = "#f9e2af"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorSubtext)
	creditStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	debitStyle   = lipgloss.NewStyle().Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
)

// loadTrip reads a trip document. JSON documents parse as YAML too.
func loadTrip(path string) (*models.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trip: %w", err)
	}
	var trip models.Trip
	if err := yaml.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("parse trip %s: %w", path, err)
	}
	return &trip, nil
}

func money(v float64, cur string) string {
	if cur == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, cur)
}

func signed(v float64) string {
	s := fmt.Sprintf("%+.2f", v)
	switch {
	case v > calculator.BalanceEpsilon:
		return creditStyle.Render(s)
	case v < -calculator.BalanceEpsilon:
		return debitStyle.Render(s)
	default:
		return mutedStyle.Render(fmt.Sprintf("%.2f", 0.0))
	}
}

// pad right-aligns s to width, measuring the rendered width.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// render writes the settlement report for a trip.
func render(w io.Writer, trip *models.Trip, res *calculator.Result) {
	cur := trip.SettlementCurrency

	title := trip.Title
	if title == "" {
		title = "Untitled trip"
	}
	fmt.Fprintln(w, titleStyle.Render(title))
	if trip.Destination != "" {
		fmt.Fprintln(w, mutedStyle.Render(trip.Destination))
	}
	fmt.Fprintln(w)

	names := make([]string, len(res.Members))
	nameWidth := len("Member")
	for i, mb := range res.Members {
		names[i] = mb.MemberName
		if mb.External {
			names[i] += " (x)"
		}
		nameWidth = max(nameWidth, lipgloss.Width(names[i]))
	}

	fmt.Fprintln(w, headerStyle.Render("Balances"))
	fmt.Fprintf(w, "%-*s %12s %12s %12s\n", nameWidth, "Member", "Paid", "Spending", "Net")
	for i, mb := range res.Members {
		fmt.Fprintf(w, "%-*s %12.2f %12.2f %s\n", nameWidth, names[i], mb.TotalPaid, mb.Spending, pad(signed(mb.NetBalance), 12))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerStyle.Render("Settle up"))
	if len(res.Transfers) == 0 {
		fmt.Fprintln(w, creditStyle.Render("Everyone is settled up."))
	}
	for _, t := range res.Transfers {
		fmt.Fprintf(w, "%s -> %s  %s\n", t.From, t.To, money(t.Amount, cur))
	}

	if len(res.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Warnings"))
		for _, warn := range res.Warnings {
			line := "! " + warn.Message
			if warn.Suggestion != "" {
				line += fmt.Sprintf(" (did you mean %q?)", warn.Suggestion)
			}
			fmt.Fprintln(w, warningStyle.Render(line))
		}
	}
}
