// Package cache memoizes computed trip balances. Entries are keyed by trip
// ID and version, so any stored mutation makes older entries unreachable.
package cache

import (
	"context"
	"fmt"

	"github.com/mmynk/tripledger/internal/calculator"
)

// BalanceCache stores calculator results. Implementations treat backend
// failures as misses.
type BalanceCache interface {
	Get(ctx context.Context, tripID string, version int64) (*calculator.Result, bool)
	Set(ctx context.Context, tripID string, version int64, res *calculator.Result)
	Close() error
}

// Key returns the cache key for a trip version.
func Key(tripID string, version int64) string {
	return fmt.Sprintf("tripledger:balances:%s:%d", tripID, version)
}

// Nop is used when no cache backend is configured.
type Nop struct{}

func (Nop) Get(context.Context, string, int64) (*calculator.Result, bool) { return nil, false }
func (Nop) Set(context.Context, string, int64, *calculator.Result)        {}
func (Nop) Close() error                                                   { return nil }
