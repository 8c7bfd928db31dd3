package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/apperrors"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/codeforlifeee/arabian-vibes/internal/core/ports"
	"github.com/codeforlifeee/arabian-vibes/internal/utils/fx"
	"github.com/shopspring/decimal"
)

// CurrencySession owns the in-memory, consumer-visible view of the current
// rate table and the selected display currency. It is the sole writer of the
// rate cache; everything else reads through the session's conversion and
// formatting operations.
//
// Lifecycle: constructed with hardcoded default rates, Init once at startup,
// then any number of RefreshRates/SetCurrency calls for the lifetime of the
// process.
type CurrencySession struct {
	cache  ports.RateCacheRepository
	prefs  ports.PreferenceRepository
	source ports.RateSource
	logger *slog.Logger

	// refreshSeq hands out request ids; only the most recently issued refresh
	// may commit, so a slow response can never overwrite a newer one.
	refreshSeq atomic.Int64

	mu            sync.RWMutex
	current       domain.Currency
	rates         domain.RateTable
	loading       bool
	usingFallback bool
	lastUpdated   time.Time
	committedSeq  int64
}

// NewCurrencySession creates a session in its uninitialized state: default
// currency, fallback rates, nothing loaded yet.
func NewCurrencySession(cache ports.RateCacheRepository, prefs ports.PreferenceRepository, source ports.RateSource, logger *slog.Logger) *CurrencySession {
	return &CurrencySession{
		cache:         cache,
		prefs:         prefs,
		source:        source,
		logger:        logger,
		current:       domain.DefaultCurrency,
		rates:         domain.FallbackRates(),
		usingFallback: true,
	}
}

// Init restores the persisted currency preference, then tries the rate cache.
// A fresh cached record moves the session straight to ready with no network
// access; a miss triggers a refresh through the rate source.
func (s *CurrencySession) Init(ctx context.Context) error {
	if saved, err := s.prefs.LoadCurrency(ctx); err == nil {
		s.mu.Lock()
		s.current = saved
		s.mu.Unlock()
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("failed to load currency preference", slog.String("error", err.Error()))
	}

	snap, err := s.cache.LoadSnapshot(ctx)
	if err == nil {
		s.mu.Lock()
		s.rates = snap.Rates.Clone()
		s.usingFallback = snap.IsUsingFallback
		s.lastUpdated = snap.CapturedAt()
		s.mu.Unlock()
		s.logger.Info("loaded cached currency rates",
			slog.Time("captured_at", snap.CapturedAt()),
			slog.Bool("fallback", snap.IsUsingFallback))
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("failed to load cached currency rates", slog.String("error", err.Error()))
	}

	s.RefreshRates(ctx)
	return nil
}

// RefreshRates fetches rates from the source, persists the result (live or
// fallback, so a dead provider is not re-polled on every load within the
// freshness window) and commits it into the session. Reentrant: when calls
// overlap, only the most recently issued one commits and responses arriving
// after a newer commit are discarded.
func (s *CurrencySession) RefreshRates(ctx context.Context) domain.SessionSnapshot {
	seq := s.refreshSeq.Add(1)

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	res := s.source.FetchRates(ctx)

	if !s.commitRefresh(seq, res) {
		s.logger.Debug("discarded stale rate refresh response", slog.Int64("seq", seq))
		return s.Snapshot()
	}

	if err := s.cache.SaveSnapshot(ctx, res.Rates, res.Fallback); err != nil {
		// Degraded but not fatal: rates are live in memory, only the cache write failed.
		s.logger.Warn("failed to persist rate snapshot", slog.String("error", err.Error()))
	}
	return s.Snapshot()
}

// commitRefresh installs a fetch result unless a newer refresh already
// committed. The loading flag is cleared only by the latest outstanding
// request so overlapping refreshes don't flicker it.
func (s *CurrencySession) commitRefresh(seq int64, res domain.RateFetchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.committedSeq {
		return false
	}
	s.committedSeq = seq
	s.rates = res.Rates.Clone()
	s.usingFallback = res.Fallback
	s.lastUpdated = time.Now()
	if seq == s.refreshSeq.Load() {
		s.loading = false
	}
	return true
}

// SetCurrency changes the display currency and persists the choice. An
// unsupported code returns apperrors.ErrUnsupportedCurrency and leaves the
// session unchanged, so callers can tell "no-op because invalid" from
// "succeeded".
func (s *CurrencySession) SetCurrency(ctx context.Context, code domain.Currency) error {
	if !code.IsSupported() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, code)
	}

	s.mu.Lock()
	s.current = code
	s.mu.Unlock()

	if err := s.prefs.SaveCurrency(ctx, code); err != nil {
		// The in-memory selection stands; only persistence across restarts is lost.
		s.logger.Warn("failed to persist currency preference", slog.String("error", err.Error()))
	}
	return nil
}

// Snapshot returns the current session view.
func (s *CurrencySession) Snapshot() domain.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SessionSnapshot{
		CurrentCurrency: s.current,
		Rates:           s.rates.Clone(),
		IsLoading:       s.loading,
		IsUsingFallback: s.usingFallback,
		LastUpdated:     s.lastUpdated,
	}
}

// ConvertAmount converts through the base currency using the session's
// current rate table. An empty `to` defaults to the current display currency.
func (s *CurrencySession) ConvertAmount(amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error) {
	s.mu.RLock()
	rates := s.rates
	if to == "" {
		to = s.current
	}
	s.mu.RUnlock()
	return fx.Convert(amount, from, to, rates)
}

// FormatAmount renders the amount with the currency's symbol. An empty
// currency defaults to the current display currency.
func (s *CurrencySession) FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	if currency == "" {
		s.mu.RLock()
		currency = s.current
		s.mu.RUnlock()
	}
	return fx.Format(amount, currency)
}

// CurrencySymbol returns the display symbol for a code.
func (s *CurrencySession) CurrencySymbol(code domain.Currency) string {
	return code.Symbol()
}

// SupportedCurrencies lists the supported codes in stable order.
func (s *CurrencySession) SupportedCurrencies() []domain.Currency {
	return domain.SupportedCurrencies()
}
