package dto

import (
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetCurrencyRequest selects the display currency for the session.
type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,len=3,supportedcurrency"`
}

// SessionResponse is the consumer-visible currency session state.
type SessionResponse struct {
	CurrentCurrency string                     `json:"currentCurrency"`
	ExchangeRates   map[string]decimal.Decimal `json:"exchangeRates"`
	IsLoading       bool                       `json:"isLoading"`
	IsUsingFallback bool                       `json:"isUsingFallback"`
	LastUpdated     *time.Time                 `json:"lastUpdated"`
}

// SupportedCurrencyResponse describes one supported currency.
type SupportedCurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// ConvertResponse is the result of a conversion request.
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted decimal.Decimal `json:"converted"`
	Formatted string          `json:"formatted"`
}

// ToSessionResponse converts a domain.SessionSnapshot to a SessionResponse DTO.
func ToSessionResponse(snap domain.SessionSnapshot) SessionResponse {
	rates := make(map[string]decimal.Decimal, len(snap.Rates))
	for code, rate := range snap.Rates {
		rates[string(code)] = rate
	}
	resp := SessionResponse{
		CurrentCurrency: string(snap.CurrentCurrency),
		ExchangeRates:   rates,
		IsLoading:       snap.IsLoading,
		IsUsingFallback: snap.IsUsingFallback,
	}
	if !snap.LastUpdated.IsZero() {
		t := snap.LastUpdated
		resp.LastUpdated = &t
	}
	return resp
}

// ToSupportedCurrencyResponses converts supported codes to response DTOs.
func ToSupportedCurrencyResponses(codes []domain.Currency) []SupportedCurrencyResponse {
	res := make([]SupportedCurrencyResponse, len(codes))
	for i, code := range codes {
		res[i] = SupportedCurrencyResponse{Code: string(code), Symbol: code.Symbol()}
	}
	return res
}
