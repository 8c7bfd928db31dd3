package domain

import "github.com/shopspring/decimal"

// CatalogSection identifies a card listing served by the CMS.
type CatalogSection string

const (
	SectionActivities CatalogSection = "activities"
	SectionHotels     CatalogSection = "hotels"
	SectionHolidays   CatalogSection = "holidays"
	SectionCruise     CatalogSection = "cruise"
	SectionVisa       CatalogSection = "visa"
)

var catalogSections = map[CatalogSection]bool{
	SectionActivities: true,
	SectionHotels:     true,
	SectionHolidays:   true,
	SectionCruise:     true,
	SectionVisa:       true,
}

// IsValid reports whether s names a known catalog section.
func (s CatalogSection) IsValid() bool {
	return catalogSections[s]
}

// CatalogItem is the narrow priced-item shape the pricing surface needs from
// a CMS card. All price fields are denominated in BaseCurrency.
type CatalogItem struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Section         CatalogSection  `json:"section"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	AgentPrice      decimal.Decimal `json:"agentPrice"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	Rating          int             `json:"rating"`
	Image           string          `json:"image,omitempty"`
	Images          []string        `json:"images,omitempty"`
	IsFlashSale     bool            `json:"isFlashSale"`
	FlashSaleText   string          `json:"flashSaleText,omitempty"`
}
