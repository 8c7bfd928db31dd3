package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/codeforlifeee/arabian-vibes/internal/apperrors"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	portssvc "github.com/codeforlifeee/arabian-vibes/internal/core/ports/services"
	"github.com/codeforlifeee/arabian-vibes/internal/dto"
	"github.com/codeforlifeee/arabian-vibes/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to the currency session.
type currencyHandler struct {
	currencyService portssvc.CurrencySessionSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySessionSvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to the currency session.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySessionSvcFacade) {
	h := newCurrencyHandler(currencyService)

	currency := rg.Group("/currency")
	{
		currency.GET("", h.getSession)
		currency.PUT("", h.setCurrency)
		currency.POST("/refresh", h.refreshRates)
		currency.GET("/supported", h.listSupported)
		currency.GET("/convert", h.convert)
	}
}

// getSession godoc
// @Summary Get currency session state
// @Description Returns the selected display currency, current rate table and the loading/fallback flags
// @Tags currency
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /currency [get]
func (h *currencyHandler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSessionResponse(h.currencyService.Snapshot()))
}

// setCurrency godoc
// @Summary Select the display currency
// @Description Changes the session's display currency and persists the preference
// @Tags currency
// @Accept json
// @Produce json
// @Param selection body dto.SetCurrencyRequest true "Currency code"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Invalid or unsupported currency code"
// @Router /currency [put]
func (h *currencyHandler) setCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.currencyService.SetCurrency(c.Request.Context(), domain.Currency(req.Currency)); err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			logger.Warn("Rejected unsupported currency", slog.String("currency", req.Currency))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to set currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(h.currencyService.Snapshot()))
}

// refreshRates godoc
// @Summary Refresh exchange rates
// @Description Fetches fresh rates from the rate source (fallback rates on provider failure) and caches the result
// @Tags currency
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /currency/refresh [post]
func (h *currencyHandler) refreshRates(c *gin.Context) {
	snap := h.currencyService.RefreshRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

// listSupported godoc
// @Summary List supported currencies
// @Tags currency
// @Produce json
// @Success 200 {array} dto.SupportedCurrencyResponse
// @Router /currency/supported [get]
func (h *currencyHandler) listSupported(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSupportedCurrencyResponses(h.currencyService.SupportedCurrencies()))
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts through the base currency using the session's current rate table. `to` defaults to the display currency.
// @Tags currency
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string false "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid amount or unsupported currency"
// @Router /currency/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + c.Query("amount")})
		return
	}
	if amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must not be negative"})
		return
	}

	from := domain.Currency(c.Query("from"))
	to := domain.Currency(c.Query("to"))

	converted, err := h.currencyService.ConvertAmount(amount, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion failed"})
		return
	}

	if to == "" {
		to = h.currencyService.Snapshot().CurrentCurrency
	}
	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    amount,
		From:      string(from),
		To:        string(to),
		Converted: converted,
		Formatted: h.currencyService.FormatAmount(converted, to),
	})
}
