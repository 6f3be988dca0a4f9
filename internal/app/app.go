package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/artistry-gallery/artistry/config"
	"github.com/artistry-gallery/artistry/internal/cart"
	"github.com/artistry-gallery/artistry/internal/catalog"
	"github.com/artistry-gallery/artistry/internal/domain"
	"github.com/artistry-gallery/artistry/internal/fixture"
	"github.com/artistry-gallery/artistry/internal/identity"
	"github.com/artistry-gallery/artistry/internal/portfolio"
	"github.com/artistry-gallery/artistry/internal/session"
	"github.com/artistry-gallery/artistry/internal/store"
)

type Application struct {
	appConfig *config.AppConfig
	kvstore   *store.Store
	fixtures  *fixture.Fixtures
	identity  *identity.Store
	sessions  *session.Manager
	carts     *cart.Service
	gallery   *catalog.Catalog
	artworks  *portfolio.Service
	bus       EventBus.Bus
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ IdentityProvider  = (*Application)(nil)
	_ SessionProvider   = (*Application)(nil)
	_ CartProvider      = (*Application)(nil)
	_ CatalogProvider   = (*Application)(nil)
	_ PortfolioProvider = (*Application)(nil)
	_ OrdersProvider    = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ WebContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig      { return a.appConfig }
func (a *Application) Identity() *identity.Store      { return a.identity }
func (a *Application) Sessions() *session.Manager     { return a.sessions }
func (a *Application) Carts() *cart.Service           { return a.carts }
func (a *Application) Catalog() *catalog.Catalog      { return a.gallery }
func (a *Application) Portfolio() *portfolio.Service  { return a.artworks }
func (a *Application) Bus() EventBus.Bus              { return a.bus }

// Orders returns the full order history fixture.
func (a *Application) Orders() []domain.Order {
	return a.fixtures.Orders
}

// OrdersByUser returns the fixture orders belonging to one account.
func (a *Application) OrdersByUser(userID int64) []domain.Order {
	return lo.Filter(a.fixtures.Orders, func(o domain.Order, _ int) bool {
		return o.UserID == userID
	})
}

// Init brings the application up: logger, timezone, local store, fixtures
// and the domain services on top of them.
func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	a.kvstore, err = store.Open(cfg.System.Workdir)
	if err != nil {
		return err
	}
	zap.S().Infof("local store opened under %s", cfg.System.Workdir)

	a.fixtures, err = fixture.Load(cfg.Fixture.Dir)
	if err != nil {
		return err
	}

	a.identity = identity.NewStore(a.fixtures.Accounts)
	a.gallery = catalog.New(a.fixtures.Products)
	a.artworks = portfolio.NewService(a.gallery)
	a.carts = cart.NewService(a.kvstore)
	a.sessions, err = session.NewManager(a.kvstore)
	if err != nil {
		return err
	}

	a.bus = EventBus.New()
	a.initAudit()
	return nil
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// Release releases application resources.
func (a *Application) Release() {
	if a.kvstore != nil {
		_ = a.kvstore.Close()
	}
	_ = zap.L().Sync()
}
