package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dwikikusuma/pizzeria-storefront/internal/checkout/domain"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/httpx"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("checkout already in progress")
)

const (
	msgOrderPlaced     = "order placed successfully"
	msgLoginRequired   = "log in to finish your order"
	msgConnectionError = "error connecting to the server"
)

// Gate decides whether a checkout proceeds to order submission. At most
// one submission is in flight at a time; the guard lives here, not in
// whatever UI happens to disable its button.
type Gate struct {
	orders  OrderPlacer
	session SessionReader
	cart    CartAccess
	log     *slog.Logger

	mu    sync.Mutex
	state domain.State
}

func NewGate(orders OrderPlacer, session SessionReader, cart CartAccess, log *slog.Logger) *Gate {
	return &Gate{
		orders:  orders,
		session: session,
		cart:    cart,
		log:     log,
		state:   domain.StateIdle,
	}
}

func (g *Gate) State() domain.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Checkout runs one submission attempt.
//
// Without an authenticated session it lands in RequiresAuth with the
// cart untouched and no network call made. On success the cart (and its
// snapshot) is cleared; on failure the cart is left exactly as it was
// so the user can retry.
func (g *Gate) Checkout(ctx context.Context) (domain.Outcome, error) {
	g.mu.Lock()
	if g.state == domain.StateSubmitting {
		g.mu.Unlock()
		return domain.Outcome{}, ErrCheckoutInFlight
	}

	if !g.session.LoggedIn() {
		g.state = domain.StateRequiresAuth
		out := domain.Outcome{State: domain.StateRequiresAuth, Message: msgLoginRequired}
		g.mu.Unlock()
		return out, nil
	}

	lines := g.cart.Lines()
	if len(lines) == 0 {
		g.state = domain.StateIdle
		g.mu.Unlock()
		return domain.Outcome{}, ErrEmptyCart
	}

	g.state = domain.StateSubmitting
	g.mu.Unlock()

	attemptID := uuid.NewString()
	orderID, err := g.orders.Place(ctx, attemptID, lines)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.log.Warn("order submission failed",
			slog.String("attempt_id", attemptID),
			slog.Any("err", err),
		)
		g.state = domain.StateFailed
		return domain.Outcome{State: domain.StateFailed, Message: failureMessage(err)}, nil
	}

	g.cart.Clear(ctx)
	g.state = domain.StateSucceeded
	return domain.Outcome{
		State:   domain.StateSucceeded,
		OrderID: orderID,
		Message: msgOrderPlaced,
	}, nil
}

// failureMessage surfaces the server's message verbatim when it sent
// one, else the generic fallback.
func failureMessage(err error) string {
	var apiErr *httpx.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return msgConnectionError
}
