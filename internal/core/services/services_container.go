package services

import (
	"log/slog"

	"github.com/codeforlifeee/arabian-vibes/internal/core/ports"
	portssvc "github.com/codeforlifeee/arabian-vibes/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(
	rateCache ports.RateCacheRepository,
	prefs ports.PreferenceRepository,
	rateSource ports.RateSource,
	catalogSource ports.CatalogSource,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency: NewCurrencySession(rateCache, prefs, rateSource, logger),
		Catalog:  NewCatalogService(catalogSource, logger),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.CurrencySessionSvcFacade = (*CurrencySession)(nil)
	_ portssvc.CatalogSvcFacade         = (*catalogService)(nil)
)
