package domain

// Currency is a supported ISO-4217 style currency code.
type Currency string

const (
	CurrencyAED Currency = "AED"
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
)

// BaseCurrency is the currency all exchange rates are expressed against.
// Its rate in every valid RateTable is exactly 1.
const BaseCurrency = CurrencyAED

// DefaultCurrency is the display currency used before a preference is saved.
const DefaultCurrency = CurrencyAED

var currencySymbols = map[Currency]string{
	CurrencyAED: "﷼",
	CurrencyUSD: "$",
	CurrencyINR: "₹",
}

// supportedOrder keeps listing output stable.
var supportedOrder = []Currency{CurrencyAED, CurrencyUSD, CurrencyINR}

// IsSupported reports whether c is one of the supported currency codes.
func (c Currency) IsSupported() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol for the currency, or "?" for an
// unsupported code.
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return "?"
}

// SupportedCurrencies returns the supported codes in a stable order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedOrder))
	copy(out, supportedOrder)
	return out
}
