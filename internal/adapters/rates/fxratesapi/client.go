// Package fxratesapi fetches live exchange rates from the fxratesapi.com
// pricing endpoint and normalizes them into the application's rate table.
package fxratesapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Client fetches rates for the fixed currency universe. It implements
// ports.RateSource: FetchRates never fails outward, so downstream conversion
// code never has to handle fetch failure itself.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a rate source client. baseURL is the provider root
// without a trailing slash, e.g. "https://api.fxratesapi.com".
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// FetchRates fetches the current rate table. Any network error, non-success
// HTTP status or malformed payload is logged as a non-fatal event and
// converted into the fallback table with Fallback set. A payload that is
// merely missing one currency field gets that single field substituted from
// the fallback table and still counts as live.
func (c *Client) FetchRates(ctx context.Context) domain.RateFetchResult {
	targets := make([]string, 0, len(domain.SupportedCurrencies())-1)
	for _, code := range domain.SupportedCurrencies() {
		if code != domain.BaseCurrency {
			targets = append(targets, string(code))
		}
	}
	url := fmt.Sprintf("%s/latest?base=%s&currencies=%s", c.baseURL, domain.BaseCurrency, strings.Join(targets, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.fallback("failed to build rate request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fallback("rate request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fallback(fmt.Sprintf("rate provider returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return c.fallback("failed to read rate response", err)
	}
	if !gjson.ValidBytes(body) {
		return c.fallback("rate response is not valid JSON", nil)
	}

	doc := gjson.ParseBytes(body)
	if !doc.Get("success").Bool() || !doc.Get("rates").Exists() {
		return c.fallback("rate response has unexpected format", nil)
	}

	fallbackRates := domain.FallbackRates()
	table := domain.RateTable{domain.BaseCurrency: decimal.NewFromInt(1)}
	for _, code := range domain.SupportedCurrencies() {
		if code == domain.BaseCurrency {
			continue
		}
		field := doc.Get("rates." + string(code))
		if field.Exists() && field.Float() > 0 {
			table[code] = decimal.NewFromFloat(field.Float())
			continue
		}
		// One missing field doesn't fail the whole table.
		c.logger.Warn("rate missing from provider response, substituting fallback",
			slog.String("currency", string(code)))
		table[code] = fallbackRates[code]
	}

	if err := table.Validate(); err != nil {
		return c.fallback("fetched rate table failed validation", err)
	}

	c.logger.Info("fetched live currency rates", slog.Int("currencies", len(table)))
	return domain.RateFetchResult{Rates: table, Fallback: false}
}

func (c *Client) fallback(msg string, err error) domain.RateFetchResult {
	attrs := []any{slog.String("base", string(domain.BaseCurrency))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	c.logger.Warn(msg+", using fallback rates", attrs...)
	return domain.RateFetchResult{Rates: domain.FallbackRates(), Fallback: true}
}
