package services

import (
	"context"

	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogFilter holds the in-memory filters applied to a card listing.
type CatalogFilter struct {
	Query     string
	Category  string
	MinPrice  decimal.Decimal
	MaxPrice  decimal.Decimal
	MinRating int
}

// CatalogReaderSvc serves priced catalog items for a section.
type CatalogReaderSvc interface {
	// ListItems fetches the section's cards from the CMS and applies filter.
	// When the CMS is unreachable it serves the built-in sample items instead
	// of failing.
	ListItems(ctx context.Context, section domain.CatalogSection, filter CatalogFilter) ([]domain.CatalogItem, error)
}

// CatalogSvcFacade combines all catalog service interfaces.
type CatalogSvcFacade interface {
	CatalogReaderSvc
}
