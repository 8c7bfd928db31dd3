package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/codeforlifeee/arabian-vibes/internal/core/ports"
	portssvc "github.com/codeforlifeee/arabian-vibes/internal/core/ports/services"
)

// catalogService serves priced catalog items. It is a read-only consumer of
// catalog data; price conversion happens at the presentation layer through
// the currency session.
type catalogService struct {
	source ports.CatalogSource
	logger *slog.Logger
}

// NewCatalogService creates a catalog service over the given CMS source.
func NewCatalogService(source ports.CatalogSource, logger *slog.Logger) portssvc.CatalogSvcFacade {
	return &catalogService{source: source, logger: logger}
}

// ListItems fetches the section's cards and applies the filters in memory.
// A CMS failure degrades to the built-in sample items for the section, the
// same way the site falls back to bundled data when the CMS is down.
func (s *catalogService) ListItems(ctx context.Context, section domain.CatalogSection, filter portssvc.CatalogFilter) ([]domain.CatalogItem, error) {
	items, err := s.source.FetchCards(ctx, section)
	if err != nil {
		s.logger.Warn("cms fetch failed, serving sample items",
			slog.String("section", string(section)),
			slog.String("error", err.Error()))
		items = sampleItems(section)
	}
	return applyFilter(items, filter), nil
}

func applyFilter(items []domain.CatalogItem, filter portssvc.CatalogFilter) []domain.CatalogItem {
	out := make([]domain.CatalogItem, 0, len(items))
	query := strings.ToLower(filter.Query)
	category := strings.ToLower(filter.Category)
	for _, item := range items {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(string(item.Section)), category) {
			continue
		}
		if filter.MinRating > 0 && item.Rating < filter.MinRating {
			continue
		}
		if filter.MinPrice.IsPositive() && item.Price.LessThan(filter.MinPrice) {
			continue
		}
		if filter.MaxPrice.IsPositive() && item.Price.GreaterThan(filter.MaxPrice) {
			continue
		}
		out = append(out, item)
	}
	return out
}
