package ports

import (
	"context"

	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
)

// RateCacheRepository persists the last refresh result. The currency session
// is its sole writer; every other component reads rates through the session.
type RateCacheRepository interface {
	// LoadSnapshot returns the persisted record, or apperrors.ErrNotFound when
	// the record is absent, older than the freshness window, or was discarded
	// because it could not be decoded.
	LoadSnapshot(ctx context.Context) (*domain.RateSnapshot, error)

	// SaveSnapshot overwrites the record with a freshly stamped timestamp.
	SaveSnapshot(ctx context.Context, rates domain.RateTable, usingFallback bool) error
}

// PreferenceRepository persists the user's selected display currency across
// sessions.
type PreferenceRepository interface {
	// LoadCurrency returns the saved preference, or apperrors.ErrNotFound when
	// none is saved or the saved value is not a supported code.
	LoadCurrency(ctx context.Context) (domain.Currency, error)

	// SaveCurrency persists the preference.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// RateSource fetches the current exchange rates for the supported currency
// universe.
type RateSource interface {
	// FetchRates never fails outward: transport and payload errors are
	// converted into the fallback table with Fallback set, so callers can
	// rely on always receiving a usable table.
	FetchRates(ctx context.Context) domain.RateFetchResult
}

// CatalogSource is the narrow read interface over the headless CMS card API.
type CatalogSource interface {
	FetchCards(ctx context.Context, section domain.CatalogSection) ([]domain.CatalogItem, error)
}
