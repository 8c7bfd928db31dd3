package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeforlifeee/arabian-vibes/internal/apperrors"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const selectedCurrencyKey = "arabianvibes:currency:selected"

// PreferenceRepository stores the selected display currency as a raw code
// string so the choice survives session restarts.
type PreferenceRepository struct {
	client *redis.Client
}

// NewPreferenceRepository creates a preference store.
func NewPreferenceRepository(client *redis.Client) *PreferenceRepository {
	return &PreferenceRepository{client: client}
}

// LoadCurrency returns the saved preference. A missing key or a persisted
// value that is no longer a supported code is reported as
// apperrors.ErrNotFound so bad stored data never reaches the session.
func (r *PreferenceRepository) LoadCurrency(ctx context.Context) (domain.Currency, error) {
	raw, err := r.client.Get(ctx, selectedCurrencyKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read currency preference: %w", err)
	}

	code := domain.Currency(raw)
	if !code.IsSupported() {
		return "", apperrors.ErrNotFound
	}
	return code, nil
}

// SaveCurrency persists the preference with no expiry.
func (r *PreferenceRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	if !currency.IsSupported() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, currency)
	}
	if err := r.client.Set(ctx, selectedCurrencyKey, string(currency), 0).Err(); err != nil {
		return fmt.Errorf("failed to write currency preference: %w", err)
	}
	return nil
}
