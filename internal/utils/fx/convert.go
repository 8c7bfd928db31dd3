package fx

import (
	"fmt"

	"github.com/codeforlifeee/arabian-vibes/internal/apperrors"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Convert converts amount from one currency to another through the base
// currency: normalize into base units, then scale into the target. The
// formula requires rates[base] == 1, which RateTable.Validate enforces at
// every table boundary.
//
// A from == to conversion returns amount unchanged, with no rate lookup, so
// no-op conversions never accumulate rounding drift.
func Convert(amount decimal.Decimal, from, to domain.Currency, rates domain.RateTable) (decimal.Decimal, error) {
	if from == to {
		if !from.IsSupported() {
			return decimal.Decimal{}, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, from)
		}
		return amount, nil
	}

	fromRate, ok := rates[from]
	if !ok || !from.IsSupported() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok || !to.IsSupported() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, to)
	}

	return amount.Div(fromRate).Mul(toRate), nil
}

// Format renders the amount as "<symbol> <whole units>", e.g. "$ 1235".
// Fractional currency units are not meaningful in travel pricing, so the
// amount is rounded to zero decimal places.
func Format(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol() + " " + amount.Round(0).String()
}
