package storefront

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	cartapp "github.com/dwikikusuma/pizzeria-storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/pizzeria-storefront/internal/cart/domain"
	cartsqlite "github.com/dwikikusuma/pizzeria-storefront/internal/cart/infra/sqlite"
	catalogapp "github.com/dwikikusuma/pizzeria-storefront/internal/catalog/app"
	cataloghttp "github.com/dwikikusuma/pizzeria-storefront/internal/catalog/infra/httpapi"
	checkoutapp "github.com/dwikikusuma/pizzeria-storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/pizzeria-storefront/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/pizzeria-storefront/internal/order/app"
	orderhttp "github.com/dwikikusuma/pizzeria-storefront/internal/order/infra/httpapi"
	sessionapp "github.com/dwikikusuma/pizzeria-storefront/internal/session/app"
	sessionhttp "github.com/dwikikusuma/pizzeria-storefront/internal/session/infra/httpapi"
	sessionsqlite "github.com/dwikikusuma/pizzeria-storefront/internal/session/infra/sqlite"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/config"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/httpx"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/sqlite"
)

// App is the storefront's explicit shared state: every component is
// injected, nothing is a process-wide singleton.
type App struct {
	Catalog  *catalogapp.Cache
	Cart     *cartapp.Engine
	Session  *sessionapp.Service
	Checkout *checkoutapp.Gate
	Orders   *orderapp.Service

	db  *sql.DB
	log *slog.Logger
}

// New wires the whole storefront. opener may be nil when no UI wants
// the cart-visible signal.
func New(cfg config.Config, opener cartapp.CartOpener, log *slog.Logger) (*App, error) {
	db, err := sqlite.Open(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	tokens, err := sessionsqlite.NewTokenStore(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	snapshots, err := cartsqlite.NewSnapshotStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	api := httpx.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sessionhttp.AuthCookie, tokens)

	cart := cartapp.NewEngine(snapshots, opener, cartdomain.Cents(cfg.DeliveryFeeCents), log)
	catalog := catalogapp.NewCache(cataloghttp.NewClient(api), log)
	session := sessionapp.NewService(sessionhttp.NewClient(api), tokens, log)
	orders := orderapp.NewService(orderhttp.NewClient(api))

	gate := checkoutapp.NewGate(
		checkoutadapter.NewOrderServicePlacer(orders),
		checkoutadapter.NewSessionServiceReader(session),
		checkoutadapter.NewCartEngineAccess(cart),
		log,
	)

	return &App{
		Catalog:  catalog,
		Cart:     cart,
		Session:  session,
		Checkout: gate,
		Orders:   orders,
		db:       db,
		log:      log,
	}, nil
}

// Bootstrap runs the one-shot startup effects concurrently: cart
// hydration, session resolution and the menu fetch. Each degrades to
// its safe state on failure (empty cart, unknown session, empty
// catalog); none is fatal.
func (a *App) Bootstrap(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Cart.Hydrate(ctx)
		return nil
	})
	g.Go(func() error {
		a.Session.Resolve(ctx)
		return nil
	})
	g.Go(func() error {
		// failure already logged by the cache
		_ = a.Catalog.Refresh(ctx)
		return nil
	})

	_ = g.Wait()
}

// Logout clears the server session best-effort, then the local session,
// the cart and its persisted snapshot.
func (a *App) Logout(ctx context.Context) {
	a.Session.Logout(ctx)
	a.Cart.Clear(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}
