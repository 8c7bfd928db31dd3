package dto

import (
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogItemResponse is a priced catalog item with its price fields
// converted into the requested display currency.
type CatalogItemResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Section         string          `json:"section"`
	Description     string          `json:"description,omitempty"`
	Currency        string          `json:"currency"`
	Price           decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	FormattedPrice  string          `json:"formattedPrice"`
	Rating          int             `json:"rating"`
	Image           string          `json:"image,omitempty"`
	Images          []string        `json:"images,omitempty"`
	IsFlashSale     bool            `json:"isFlashSale"`
	FlashSaleText   string          `json:"flashSaleText,omitempty"`
}

// CatalogListResponse wraps a filtered item listing.
type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Total int                   `json:"total"`
}

// ToCatalogItemResponse converts a domain item, with its prices already
// converted to `currency`, into the response DTO.
func ToCatalogItemResponse(item domain.CatalogItem, currency domain.Currency, price, discounted decimal.Decimal, formatted string) CatalogItemResponse {
	return CatalogItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Section:         string(item.Section),
		Description:     item.Description,
		Currency:        string(currency),
		Price:           price,
		DiscountedPrice: discounted,
		FormattedPrice:  formatted,
		Rating:          item.Rating,
		Image:           item.Image,
		Images:          item.Images,
		IsFlashSale:     item.IsFlashSale,
		FlashSaleText:   item.FlashSaleText,
	}
}
