package service

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/mmynk/tripledger/internal/report"
	tripv1 "github.com/mmynk/tripledger/pkg/tripv1"
)

func TestExportHandler(t *testing.T) {
	s := setupTestServer(t)
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")
	trip := s.createTrip(t, alice, &tripv1.Trip{Members: []string{"A", "B"}})
	s.addExpense(t, alice, trip.Id, dinner("A", 80))

	get := func(url, token string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			t.Fatalf("NewRequest failed: %v", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	base := s.URL + ExportPath + trip.Id

	t.Run("pdf with header token", func(t *testing.T) {
		resp := get(base+".pdf", alice)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != report.ContentType(report.FormatPDF) {
			t.Errorf("unexpected content type %q", ct)
		}
		body, _ := io.ReadAll(resp.Body)
		if !bytes.HasPrefix(body, []byte("%PDF-")) {
			t.Error("expected a PDF body")
		}
	})

	t.Run("xlsx with query token", func(t *testing.T) {
		resp := get(base+".xlsx?token="+alice, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if cd := resp.Header.Get("Content-Disposition"); cd == "" {
			t.Error("expected attachment disposition")
		}
	})

	tests := []struct {
		name  string
		url   string
		token string
		want  int
	}{
		{"no token", base + ".pdf", "", http.StatusUnauthorized},
		{"other owner", base + ".pdf", bob, http.StatusForbidden},
		{"unknown format", base + ".csv", alice, http.StatusNotFound},
		{"unknown trip", s.URL + ExportPath + "missing.pdf", alice, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resp := get(tt.url, tt.token); resp.StatusCode != tt.want {
				t.Errorf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}
