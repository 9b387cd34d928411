package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	InitWith(reg)
	// second call must not panic on duplicate registration
	InitWith(reg)

	ObserveRPC("/tripledger.v1.TripService/GetBalances", "", 20*time.Millisecond)
	ObserveRPC("/tripledger.v1.TripService/GetBalances", "not_found", time.Millisecond)
	if got := testutil.ToFloat64(rpcRequests.WithLabelValues("/tripledger.v1.TripService/GetBalances", "ok")); got != 1 {
		t.Errorf("ok requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rpcRequests.WithLabelValues("/tripledger.v1.TripService/GetBalances", "not_found")); got != 1 {
		t.Errorf("not_found requests = %v, want 1", got)
	}

	ObserveBalances(2, []string{"share_mismatch", "share_mismatch"})
	if got := testutil.ToFloat64(balanceComputations); got != 1 {
		t.Errorf("computations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(dataWarnings.WithLabelValues("share_mismatch")); got != 2 {
		t.Errorf("warnings = %v, want 2", got)
	}

	IncSettlementRecorded()
	if got := testutil.ToFloat64(settlementsRecorded); got != 1 {
		t.Errorf("settlements = %v, want 1", got)
	}

	ObserveCacheLookup(true)
	ObserveCacheLookup(false)
	ObserveCacheLookup(false)
	if got := testutil.ToFloat64(cacheLookups.WithLabelValues("miss")); got != 2 {
		t.Errorf("cache misses = %v, want 2", got)
	}

	ObserveExport("xlsx", nil)
	ObserveExport("pdf", errors.New("boom"))
	if got := testutil.ToFloat64(exportTotal.WithLabelValues("pdf", "error")); got != 1 {
		t.Errorf("pdf errors = %v, want 1", got)
	}

	if n := testutil.CollectAndCount(rpcLatency); n != 1 {
		t.Errorf("latency series = %d, want 1", n)
	}
}
