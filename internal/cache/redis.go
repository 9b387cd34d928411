package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/metrics"
)

// Redis is a BalanceCache backed by a Redis server.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to url (redis://...) and verifies the server answers.
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis not available: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, tripID string, version int64) (*calculator.Result, bool) {
	data, err := r.client.Get(ctx, Key(tripID, version)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Balance cache read failed", "trip_id", tripID, "error", err)
		}
		metrics.ObserveCacheLookup(false)
		return nil, false
	}

	res := &calculator.Result{}
	if err := json.Unmarshal(data, res); err != nil {
		slog.Warn("Balance cache entry corrupt", "trip_id", tripID, "error", err)
		metrics.ObserveCacheLookup(false)
		return nil, false
	}

	metrics.ObserveCacheLookup(true)
	return res, true
}

func (r *Redis) Set(ctx context.Context, tripID string, version int64, res *calculator.Result) {
	data, err := json.Marshal(res)
	if err != nil {
		slog.Warn("Balance cache encode failed", "trip_id", tripID, "error", err)
		return
	}
	if err := r.client.Set(ctx, Key(tripID, version), data, r.ttl).Err(); err != nil {
		slog.Warn("Balance cache write failed", "trip_id", tripID, "error", err)
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
