package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/mmynk/tripledger/internal/auth"
	"github.com/mmynk/tripledger/internal/metrics"
	"github.com/mmynk/tripledger/internal/middleware"
	"github.com/mmynk/tripledger/internal/report"
	"github.com/mmynk/tripledger/internal/storage"
)

// ExportPath is the route prefix for file downloads, e.g.
// /export/{tripID}.xlsx.
const ExportPath = "/export/"

// ExportHandler serves trip ledgers as XLSX workbooks or PDF settlement
// summaries. Browsers cannot set headers on plain downloads, so the token
// may also come from the "token" query parameter.
type ExportHandler struct {
	trips      *TripService
	jwtManager *auth.JWTManager
}

// NewExportHandler creates an export handler backed by the trip service.
func NewExportHandler(trips *TripService, jwtManager *auth.JWTManager) *ExportHandler {
	return &ExportHandler{trips: trips, jwtManager: jwtManager}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file := strings.TrimPrefix(r.URL.Path, ExportPath)
	ext := path.Ext(file)
	tripID := strings.TrimSuffix(file, ext)
	format := strings.TrimPrefix(ext, ".")
	if tripID == "" || strings.Contains(tripID, "/") || (format != report.FormatXLSX && format != report.FormatPDF) {
		http.NotFound(w, r)
		return
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		if token := r.URL.Query().Get("token"); token != "" {
			header = "Bearer " + token
		}
	}
	ctx, err := middleware.Authenticate(r.Context(), h.jwtManager, header)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	trip, err := h.trips.loadTrip(ctx, tripID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, errNotOwner):
			http.Error(w, "forbidden", http.StatusForbidden)
		default:
			slog.Error("Export failed to load trip", "trip_id", tripID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	res := h.trips.computeBalances(ctx, trip)

	var data []byte
	switch format {
	case report.FormatXLSX:
		data, err = report.BuildTripXLSX(trip, res)
	case report.FormatPDF:
		data, err = report.BuildSettlementPDF(trip, res, h.trips.now())
	}
	metrics.ObserveExport(format, err)
	if err != nil {
		slog.Error("Export failed", "trip_id", tripID, "format", format, "error", err)
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("trip-%s-v%d.%s", tripID, trip.Version, format)
	w.Header().Set("Content-Type", report.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Last-Modified", time.Unix(trip.UpdatedAt, 0).UTC().Format(http.TimeFormat))
	if _, err := w.Write(data); err != nil {
		slog.Warn("Export write failed", "trip_id", tripID, "error", err)
	}
}
