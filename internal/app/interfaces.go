package app

import (
	"github.com/asaskevich/EventBus"

	"github.com/artistry-gallery/artistry/config"
	"github.com/artistry-gallery/artistry/internal/cart"
	"github.com/artistry-gallery/artistry/internal/catalog"
	"github.com/artistry-gallery/artistry/internal/domain"
	"github.com/artistry-gallery/artistry/internal/identity"
	"github.com/artistry-gallery/artistry/internal/portfolio"
	"github.com/artistry-gallery/artistry/internal/session"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// IdentityProvider provides the fixture account store
type IdentityProvider interface {
	Identity() *identity.Store
}

// SessionProvider provides the per-device session manager
type SessionProvider interface {
	Sessions() *session.Manager
}

// CartProvider provides the per-device cart ledger service
type CartProvider interface {
	Carts() *cart.Service
}

// CatalogProvider provides the shared product catalog
type CatalogProvider interface {
	Catalog() *catalog.Catalog
}

// PortfolioProvider provides the artist overlay service
type PortfolioProvider interface {
	Portfolio() *portfolio.Service
}

// OrdersProvider provides the read-only order history fixture
type OrdersProvider interface {
	Orders() []domain.Order
	OrdersByUser(userID int64) []domain.Order
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// WebContext combines the provider interfaces the web layer depends on.
// Handlers should depend on specific providers or this combined interface.
type WebContext interface {
	ConfigProvider
	IdentityProvider
	SessionProvider
	CartProvider
	CatalogProvider
	PortfolioProvider
	OrdersProvider
	BusProvider
}
