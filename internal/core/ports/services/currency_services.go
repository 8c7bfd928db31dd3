package services

import (
	"context"

	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines the read-only operations of the currency session.
// All of them are safe to call from any number of concurrent consumers.
type CurrencyReaderSvc interface {
	// Snapshot returns the current session view (selected currency, rates,
	// loading/fallback flags, last update time).
	Snapshot() domain.SessionSnapshot

	// ConvertAmount converts amount from one currency to another through the
	// base currency. An empty `to` means the session's current currency.
	ConvertAmount(amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error)

	// FormatAmount renders the amount with the currency's symbol, rounded to
	// whole units. An empty currency means the session's current currency.
	FormatAmount(amount decimal.Decimal, currency domain.Currency) string

	// CurrencySymbol returns the display symbol for a code.
	CurrencySymbol(code domain.Currency) string

	// SupportedCurrencies lists the supported codes in stable order.
	SupportedCurrencies() []domain.Currency
}

// CurrencyWriterSvc defines the imperative session operations.
type CurrencyWriterSvc interface {
	// Init loads the persisted preference and a fresh cached rate table if one
	// exists; on a cache miss it refreshes from the rate source.
	Init(ctx context.Context) error

	// SetCurrency changes the display currency and persists the preference.
	// Returns apperrors.ErrUnsupportedCurrency (state unchanged) on a bad code.
	SetCurrency(ctx context.Context, code domain.Currency) error

	// RefreshRates fetches rates, persists the result and returns the
	// resulting session view. Safe to call concurrently; only the most
	// recently issued refresh is allowed to commit.
	RefreshRates(ctx context.Context) domain.SessionSnapshot
}

// CurrencySessionSvcFacade combines all currency session interfaces.
type CurrencySessionSvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
