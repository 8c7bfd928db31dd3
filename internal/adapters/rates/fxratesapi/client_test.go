package fxratesapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/adapters/rates/fxratesapi"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *fxratesapi.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return fxratesapi.NewClient(serverURL, 2*time.Second, logger)
}

func TestFetchRates_Live(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "AED", r.URL.Query().Get("base"))
		assert.Equal(t, "USD,INR", r.URL.Query().Get("currencies"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "rates": {"USD": 0.27, "INR": 22.7}}`))
	}))
	defer server.Close()

	res := newTestClient(server.URL).FetchRates(context.Background())

	assert.False(t, res.Fallback)
	require.NoError(t, res.Rates.Validate())
	assert.True(t, res.Rates[domain.CurrencyAED].Equal(decimal.NewFromInt(1)))
	assert.True(t, res.Rates[domain.CurrencyUSD].Equal(decimal.NewFromFloat(0.27)))
	assert.True(t, res.Rates[domain.CurrencyINR].Equal(decimal.NewFromFloat(22.7)))
}

func TestFetchRates_MissingFieldSubstitutedFromFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "rates": {"USD": 0.27}}`))
	}))
	defer server.Close()

	res := newTestClient(server.URL).FetchRates(context.Background())

	// One missing field is patched from the fallback table; the fetch still counts as live.
	assert.False(t, res.Fallback)
	require.NoError(t, res.Rates.Validate())
	assert.True(t, res.Rates[domain.CurrencyUSD].Equal(decimal.NewFromFloat(0.27)))
	assert.True(t, res.Rates[domain.CurrencyINR].Equal(domain.FallbackRates()[domain.CurrencyINR]))
}

func TestFetchRates_FallbackPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-2xx status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": tru`))
		}},
		{"success false", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "error": "quota exceeded"}`))
		}},
		{"rates missing", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": true}`))
		}},
		{"negative rate", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": true, "rates": {"USD": -1, "INR": 0}}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			res := newTestClient(server.URL).FetchRates(context.Background())

			if tt.name == "negative rate" {
				// Invalid individual fields are substituted, so the fetch is still live.
				assert.False(t, res.Fallback)
				assert.True(t, res.Rates[domain.CurrencyUSD].Equal(domain.FallbackRates()[domain.CurrencyUSD]))
			} else {
				assert.True(t, res.Fallback)
				assert.Equal(t, domain.FallbackRates(), res.Rates)
			}
			require.NoError(t, res.Rates.Validate())
		})
	}
}

func TestFetchRates_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	res := newTestClient(server.URL).FetchRates(context.Background())

	assert.True(t, res.Fallback)
	assert.Equal(t, domain.FallbackRates(), res.Rates)
	require.NoError(t, res.Rates.Validate())
}
