package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/codeforlifeee/arabian-vibes/internal/apperrors"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	portssvc "github.com/codeforlifeee/arabian-vibes/internal/core/ports/services"
	"github.com/codeforlifeee/arabian-vibes/internal/dto"
	"github.com/codeforlifeee/arabian-vibes/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// catalogHandler serves priced catalog listings.
type catalogHandler struct {
	catalogService  portssvc.CatalogSvcFacade
	currencyService portssvc.CurrencySessionSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade, curr portssvc.CurrencySessionSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs, currencyService: curr}
}

// registerCatalogRoutes registers routes related to catalog listings.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade, currencyService portssvc.CurrencySessionSvcFacade) {
	h := newCatalogHandler(catalogService, currencyService)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/:section", h.listSection)
	}
}

// listSection godoc
// @Summary List priced items for a catalog section
// @Description Returns the section's cards with prices converted into the requested (or session display) currency
// @Tags catalog
// @Produce json
// @Param section path string true "Catalog section" Enums(activities, hotels, holidays, cruise, visa)
// @Param q query string false "Free-text search over name and description"
// @Param category query string false "Category filter"
// @Param minPrice query number false "Minimum price in base currency"
// @Param maxPrice query number false "Maximum price in base currency"
// @Param minRating query int false "Minimum rating"
// @Param currency query string false "Display currency code"
// @Success 200 {object} dto.CatalogListResponse
// @Failure 400 {object} map[string]string "Unknown section or unsupported currency"
// @Router /catalog/{section} [get]
func (h *catalogHandler) listSection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	section := domain.CatalogSection(c.Param("section"))
	if !section.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown catalog section: " + c.Param("section")})
		return
	}

	filter := portssvc.CatalogFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}
	if v := c.Query("minPrice"); v != "" {
		if p, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = p
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = p
		}
	}
	if v := c.Query("minRating"); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			filter.MinRating = r
		}
	}

	display := domain.Currency(c.Query("currency"))
	if display == "" {
		display = h.currencyService.Snapshot().CurrentCurrency
	}

	items, err := h.catalogService.ListItems(c.Request.Context(), section, filter)
	if err != nil {
		logger.Error("Failed to list catalog items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list catalog items"})
		return
	}

	responses := make([]dto.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		price, err := h.currencyService.ConvertAmount(item.Price, domain.BaseCurrency, display)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Price conversion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Price conversion failed"})
			return
		}
		discounted, _ := h.currencyService.ConvertAmount(item.DiscountedPrice, domain.BaseCurrency, display)
		responses = append(responses, dto.ToCatalogItemResponse(item, display, price, discounted, h.currencyService.FormatAmount(price, display)))
	}

	c.JSON(http.StatusOK, dto.CatalogListResponse{Items: responses, Total: len(responses)})
}
