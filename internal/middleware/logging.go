package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripledger/pkg/tripv1"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, user ID, trip ID when the call names one,
// duration, and any error codes/messages.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			userID := GetUserID(ctx) // empty if pre-auth
			trip := tripID(req.Any())

			resp, err := next(ctx, req)

			// CreateTrip only learns its ID from the response
			if trip == "" && err == nil && resp != nil {
				trip = tripID(resp.Any())
			}

			attrs := []any{"procedure", procedure, "user_id", userID}
			if trip != "" {
				attrs = append(attrs, "trip_id", trip)
			}
			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())

			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					slog.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
				} else {
					slog.Error("RPC error", append(attrs, "error", err)...)
				}
			} else {
				slog.Info("RPC ok", attrs...)
			}

			return resp, err
		}
	}
}

// tripID returns the trip a message refers to, or "".
func tripID(msg any) string {
	switch m := msg.(type) {
	case interface{ GetTripId() string }:
		return m.GetTripId()
	case interface{ GetTrip() *tripv1.Trip }:
		return m.GetTrip().GetId()
	}
	return ""
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming responses working through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// HTTPLogging logs every plain HTTP request with its status and duration.
func HTTPLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
