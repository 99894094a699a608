package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dwikikusuma/pizzeria-storefront/internal/checkout/domain"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/httpx"
)

type fakeSession struct {
	loggedIn bool
}

func (f *fakeSession) LoggedIn() bool { return f.loggedIn }

type fakeCart struct {
	lines  []CartLine
	clears int
}

func (c *fakeCart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *fakeCart) Clear(ctx context.Context) {
	c.lines = nil
	c.clears++
}

type fakeOrders struct {
	orderID     int64
	err         error
	placed      int
	lastAttempt string
	lastLines   []CartLine

	started chan struct{}
	release chan struct{}
}

func (o *fakeOrders) Place(ctx context.Context, attemptID string, lines []CartLine) (int64, error) {
	o.placed++
	o.lastAttempt = attemptID
	o.lastLines = lines
	if o.started != nil {
		close(o.started)
	}
	if o.release != nil {
		<-o.release
	}
	return o.orderID, o.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func twoLines() []CartLine {
	return []CartLine{
		{PizzaID: 1, Quantity: 2},
		{PizzaID: 3, Quantity: 1},
	}
}

func TestCheckoutAnonymousRequiresAuth(t *testing.T) {
	orders := &fakeOrders{}
	cart := &fakeCart{lines: twoLines()}
	g := NewGate(orders, &fakeSession{loggedIn: false}, cart, discardLogger())

	out, err := g.Checkout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.State != domain.StateRequiresAuth {
		t.Fatalf("expected RequiresAuth, got %s", out.State)
	}
	if orders.placed != 0 {
		t.Fatalf("expected no order call, got %d", orders.placed)
	}
	if cart.clears != 0 || len(cart.lines) != 2 {
		t.Fatalf("expected cart untouched, clears=%d lines=%d", cart.clears, len(cart.lines))
	}
	if g.State() != domain.StateRequiresAuth {
		t.Fatalf("expected gate state RequiresAuth, got %s", g.State())
	}
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	orders := &fakeOrders{orderID: 42}
	cart := &fakeCart{lines: twoLines()}
	g := NewGate(orders, &fakeSession{loggedIn: true}, cart, discardLogger())

	out, err := g.Checkout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.State != domain.StateSucceeded {
		t.Fatalf("expected Succeeded, got %s", out.State)
	}
	if out.OrderID != 42 {
		t.Fatalf("expected order id 42, got %d", out.OrderID)
	}
	if cart.clears != 1 {
		t.Fatalf("expected cart cleared once, got %d", cart.clears)
	}
	if orders.lastAttempt == "" {
		t.Fatal("expected an idempotency key on the attempt")
	}
	if len(orders.lastLines) != 2 {
		t.Fatalf("expected 2 submitted lines, got %d", len(orders.lastLines))
	}
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	t.Run("500 with no body -> generic message", func(t *testing.T) {
		orders := &fakeOrders{err: &httpx.APIError{Status: 500}}
		cart := &fakeCart{lines: twoLines()}
		g := NewGate(orders, &fakeSession{loggedIn: true}, cart, discardLogger())

		out, err := g.Checkout(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.State != domain.StateFailed {
			t.Fatalf("expected Failed, got %s", out.State)
		}
		if out.Message != msgConnectionError {
			t.Fatalf("expected generic fallback, got %q", out.Message)
		}
		if cart.clears != 0 || len(cart.lines) != 2 {
			t.Fatalf("expected cart untouched, clears=%d lines=%d", cart.clears, len(cart.lines))
		}
	})

	t.Run("server message surfaced verbatim", func(t *testing.T) {
		orders := &fakeOrders{err: &httpx.APIError{Status: 400, Message: "pizza sold out"}}
		cart := &fakeCart{lines: twoLines()}
		g := NewGate(orders, &fakeSession{loggedIn: true}, cart, discardLogger())

		out, err := g.Checkout(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "pizza sold out" {
			t.Fatalf("expected server message, got %q", out.Message)
		}
	})

	t.Run("plain network error -> generic message", func(t *testing.T) {
		orders := &fakeOrders{err: errors.New("dial tcp: connection refused")}
		cart := &fakeCart{lines: twoLines()}
		g := NewGate(orders, &fakeSession{loggedIn: true}, cart, discardLogger())

		out, _ := g.Checkout(context.Background())
		if out.Message != msgConnectionError {
			t.Fatalf("expected generic fallback, got %q", out.Message)
		}
	})
}

func TestCheckoutEmptyCart(t *testing.T) {
	orders := &fakeOrders{}
	g := NewGate(orders, &fakeSession{loggedIn: true}, &fakeCart{}, discardLogger())

	_, err := g.Checkout(context.Background())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if orders.placed != 0 {
		t.Fatalf("expected no order call, got %d", orders.placed)
	}
}

func TestCheckoutSingleFlight(t *testing.T) {
	orders := &fakeOrders{
		orderID: 7,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	cart := &fakeCart{lines: twoLines()}
	g := NewGate(orders, &fakeSession{loggedIn: true}, cart, discardLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := g.Checkout(context.Background()); err != nil {
			t.Errorf("first checkout failed: %v", err)
		}
	}()

	<-orders.started
	if g.State() != domain.StateSubmitting {
		t.Fatalf("expected Submitting while in flight, got %s", g.State())
	}

	_, err := g.Checkout(context.Background())
	if !errors.Is(err, ErrCheckoutInFlight) {
		t.Fatalf("expected ErrCheckoutInFlight, got %v", err)
	}

	close(orders.release)
	<-done

	if orders.placed != 1 {
		t.Fatalf("expected exactly 1 submission, got %d", orders.placed)
	}
}

func TestCheckoutRetryAfterFailure(t *testing.T) {
	orders := &fakeOrders{err: &httpx.APIError{Status: 503}}
	cart := &fakeCart{lines: twoLines()}
	g := NewGate(orders, &fakeSession{loggedIn: true}, cart, discardLogger())

	if out, _ := g.Checkout(context.Background()); out.State != domain.StateFailed {
		t.Fatalf("expected first attempt to fail, got %s", out.State)
	}

	orders.err = nil
	orders.orderID = 9
	first := orders.lastAttempt

	out, err := g.Checkout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != domain.StateSucceeded {
		t.Fatalf("expected retry to succeed, got %s", out.State)
	}
	if orders.lastAttempt == first {
		t.Fatal("expected a fresh idempotency key per attempt")
	}
}
