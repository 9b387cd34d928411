// Package metrics exposes Prometheus collectors for the trip ledger server.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "tripledger_"

var (
	registerOnce sync.Once

	rpcRequests *prometheus.CounterVec
	rpcLatency  *prometheus.HistogramVec

	balanceComputations prometheus.Counter
	transfersSuggested  prometheus.Histogram
	settlementsRecorded prometheus.Counter
	dataWarnings        *prometheus.CounterVec

	cacheLookups *prometheus.CounterVec

	exportTotal *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Calling it more
// than once is harmless.
func Init() {
	InitWith(prometheus.DefaultRegisterer)
}

// InitWith registers the collectors with reg.
func InitWith(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		rpcRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rpc_requests_total",
				Help: "Total RPC requests by procedure and code",
			},
			[]string{"procedure", "code"},
		)
		rpcLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "rpc_latency_seconds",
				Help:    "RPC latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"procedure"},
		)

		balanceComputations = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "balance_computations_total",
				Help: "Total ledger recomputations",
			},
		)
		transfersSuggested = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "transfers_suggested",
				Help:    "Number of transfers suggested per settlement plan",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
			},
		)
		settlementsRecorded = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "settlements_recorded_total",
				Help: "Total settlement transfers recorded",
			},
		)
		dataWarnings = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "data_warnings_total",
				Help: "Data-quality warnings raised by kind",
			},
			[]string{"kind"},
		)

		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "balance_cache_lookups_total",
				Help: "Balance cache lookups by result",
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Trip exports by format and result",
			},
			[]string{"format", "result"},
		)

		reg.MustRegister(
			rpcRequests,
			rpcLatency,
			balanceComputations,
			transfersSuggested,
			settlementsRecorded,
			dataWarnings,
			cacheLookups,
			exportTotal,
		)
	})
}

// ObserveRPC records one RPC outcome.
func ObserveRPC(procedure, code string, duration time.Duration) {
	if code == "" {
		code = "ok"
	}
	if rpcRequests != nil {
		rpcRequests.WithLabelValues(procedure, code).Inc()
	}
	if rpcLatency != nil {
		rpcLatency.WithLabelValues(procedure).Observe(duration.Seconds())
	}
}

// ObserveBalances records a ledger recomputation and its outputs.
func ObserveBalances(transfers int, warningKinds []string) {
	if balanceComputations != nil {
		balanceComputations.Inc()
	}
	if transfersSuggested != nil {
		transfersSuggested.Observe(float64(transfers))
	}
	if dataWarnings != nil {
		for _, kind := range warningKinds {
			dataWarnings.WithLabelValues(kind).Inc()
		}
	}
}

// IncSettlementRecorded counts a recorded settlement transfer.
func IncSettlementRecorded() {
	if settlementsRecorded != nil {
		settlementsRecorded.Inc()
	}
}

// ObserveCacheLookup counts a balance cache hit or miss.
func ObserveCacheLookup(hit bool) {
	if cacheLookups == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(result).Inc()
}

// ObserveExport counts a trip export.
func ObserveExport(format string, err error) {
	if exportTotal == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	exportTotal.WithLabelValues(format, result).Inc()
}
