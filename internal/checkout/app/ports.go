package app

import "context"

// CartLine is the slice of cart state checkout is allowed to see:
// identity and quantity only. Prices are never sent; the server is the
// source of truth for pricing.
type CartLine struct {
	PizzaID  int64
	Quantity int
}

type CartAccess interface {
	Lines() []CartLine
	Clear(ctx context.Context)
}

type SessionReader interface {
	LoggedIn() bool
}

type OrderPlacer interface {
	Place(ctx context.Context, attemptID string, lines []CartLine) (orderID int64, err error)
}
