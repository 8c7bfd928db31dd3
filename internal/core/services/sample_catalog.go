package services

import (
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sampleItems returns the bundled items served when the CMS is unreachable.
// Prices are in the base currency.
func sampleItems(section domain.CatalogSection) []domain.CatalogItem {
	switch section {
	case domain.SectionActivities:
		return []domain.CatalogItem{
			{
				ID:              1,
				Name:            "Burj Khalifa Observatory",
				Section:         domain.SectionActivities,
				Description:     "Skip-the-line access to the observation decks of the world's tallest building.",
				Price:           decimal.NewFromInt(149),
				DiscountedPrice: decimal.NewFromInt(129),
				AgentPrice:      decimal.NewFromInt(119),
				Rating:          5,
			},
			{
				ID:            2,
				Name:          "Desert Safari Adventure",
				Section:       domain.SectionActivities,
				Description:   "Dune bashing, camel rides and a BBQ dinner under the stars.",
				Price:         decimal.NewFromInt(250),
				AgentPrice:    decimal.NewFromInt(199),
				Rating:        5,
				IsFlashSale:   true,
				FlashSaleText: "Limited time offer",
			},
		}
	case domain.SectionHolidays:
		return []domain.CatalogItem{
			{
				ID:          3,
				Name:        "Maldives Paradise Package",
				Section:     domain.SectionHolidays,
				Description: "Five nights in an overwater villa with flights from Dubai.",
				Price:       decimal.NewFromInt(3500),
				AgentPrice:  decimal.NewFromInt(3150),
				Rating:      5,
			},
		}
	case domain.SectionCruise:
		return []domain.CatalogItem{
			{
				ID:          4,
				Name:        "Dubai Marina Dinner Cruise",
				Section:     domain.SectionCruise,
				Description: "Two-hour dhow cruise along the Marina with international buffet.",
				Price:       decimal.NewFromInt(180),
				AgentPrice:  decimal.NewFromInt(150),
				Rating:      5,
			},
		}
	default:
		return nil
	}
}
