package domain

import (
	"fmt"
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateTable maps each supported currency to its multiplier relative to
// BaseCurrency. A valid table has exactly one entry per supported currency,
// every multiplier strictly positive and the base entry exactly 1.
type RateTable map[Currency]decimal.Decimal

// Validate checks the RateTable invariants. Conversions silently corrupt if
// the base entry drifts from 1, so every adapter and cache boundary calls
// this before handing a table to the session.
func (rt RateTable) Validate() error {
	if len(rt) != len(SupportedCurrencies()) {
		return fmt.Errorf("%w: rate table must contain exactly %d currencies, got %d", apperrors.ErrValidation, len(SupportedCurrencies()), len(rt))
	}
	for _, code := range SupportedCurrencies() {
		rate, ok := rt[code]
		if !ok {
			return fmt.Errorf("%w: rate table missing entry for %s", apperrors.ErrValidation, code)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: rate for %s must be positive, got %s", apperrors.ErrValidation, code, rate)
		}
	}
	if !rt[BaseCurrency].Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: base currency %s rate must be exactly 1, got %s", apperrors.ErrValidation, BaseCurrency, rt[BaseCurrency])
	}
	return nil
}

// Clone returns an independent copy of the table.
func (rt RateTable) Clone() RateTable {
	out := make(RateTable, len(rt))
	for code, rate := range rt {
		out[code] = rate
	}
	return out
}

// FallbackRates returns the hardcoded table used when the live rate source
// is unreachable or returns invalid data.
func FallbackRates() RateTable {
	return RateTable{
		CurrencyAED: decimal.NewFromInt(1),
		CurrencyUSD: decimal.NewFromFloat(0.272),
		CurrencyINR: decimal.NewFromFloat(22.65),
	}
}

// RateFetchResult is what a rate source hands back. Fetching never fails
// outward: on any transport or payload problem the source substitutes the
// fallback table and sets Fallback.
type RateFetchResult struct {
	Rates    RateTable
	Fallback bool
}

// RateSnapshot is the persisted cache record for a refresh attempt.
type RateSnapshot struct {
	Rates           RateTable `json:"rates"`
	Timestamp       int64     `json:"timestamp"` // epoch millis at capture
	IsUsingFallback bool      `json:"isUsingFallback"`
}

// CapturedAt returns the capture time of the snapshot.
func (s RateSnapshot) CapturedAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// SessionSnapshot is the read-only view of the currency session exposed to
// consumers.
type SessionSnapshot struct {
	CurrentCurrency Currency
	Rates           RateTable
	IsLoading       bool
	IsUsingFallback bool
	LastUpdated     time.Time // zero until the first commit
}
