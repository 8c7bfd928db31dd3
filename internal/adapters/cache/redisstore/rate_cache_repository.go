// Package redisstore persists the currency session's durable state (the last
// refresh result and the selected-currency preference) in Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/apperrors"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const rateSnapshotKey = "arabianvibes:currency:rates"

// RateCacheRepository stores the last refresh result as a single JSON record.
// Records older than the freshness window are treated as a miss; the record
// itself also carries the capture timestamp so staleness survives a Redis
// restart with persistence enabled.
type RateCacheRepository struct {
	client   *redis.Client
	freshFor time.Duration
	logger   *slog.Logger
}

// NewRateCacheRepository creates a rate cache with the given freshness window.
func NewRateCacheRepository(client *redis.Client, freshFor time.Duration, logger *slog.Logger) *RateCacheRepository {
	return &RateCacheRepository{client: client, freshFor: freshFor, logger: logger}
}

// LoadSnapshot reads the persisted record. It returns apperrors.ErrNotFound
// when the record is absent or stale. A record that cannot be decoded, or
// whose table fails validation, is deleted and reported as a miss rather
// than propagated as an error.
func (r *RateCacheRepository) LoadSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	raw, err := r.client.Get(ctx, rateSnapshotKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rate snapshot: %w", err)
	}

	var snap domain.RateSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		r.discardCorrupted(ctx, err)
		return nil, apperrors.ErrNotFound
	}
	if err := snap.Rates.Validate(); err != nil {
		r.discardCorrupted(ctx, err)
		return nil, apperrors.ErrNotFound
	}

	if time.Since(snap.CapturedAt()) >= r.freshFor {
		return nil, apperrors.ErrNotFound
	}
	return &snap, nil
}

// SaveSnapshot overwrites the record with a freshly stamped timestamp. The
// Redis TTL mirrors the freshness window so expired records also age out of
// storage on their own.
func (r *RateCacheRepository) SaveSnapshot(ctx context.Context, rates domain.RateTable, usingFallback bool) error {
	if err := rates.Validate(); err != nil {
		return err
	}
	snap := domain.RateSnapshot{
		Rates:           rates,
		Timestamp:       time.Now().UnixMilli(),
		IsUsingFallback: usingFallback,
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode rate snapshot: %w", err)
	}
	if err := r.client.Set(ctx, rateSnapshotKey, string(payload), r.freshFor).Err(); err != nil {
		return fmt.Errorf("failed to write rate snapshot: %w", err)
	}
	return nil
}

func (r *RateCacheRepository) discardCorrupted(ctx context.Context, cause error) {
	r.logger.Warn("discarding corrupted rate snapshot", slog.String("error", cause.Error()))
	if err := r.client.Del(ctx, rateSnapshotKey).Err(); err != nil {
		r.logger.Warn("failed to delete corrupted rate snapshot", slog.String("error", err.Error()))
	}
}
