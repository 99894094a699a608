package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/pizzeria-storefront/internal/cart/domain"
)

// Item is what the engine needs from a catalog entry to build a line.
type Item struct {
	PizzaID  int64
	Name     string
	Price    domain.Cents
	ImageURL string
}

// Engine owns the live cart. All mutations go through it; every
// mutation is mirrored to the snapshot store as a write-behind effect,
// so a store failure never fails the mutation itself.
type Engine struct {
	store  SnapshotStore
	opener CartOpener
	fee    domain.Cents
	log    *slog.Logger

	mu   sync.Mutex
	cart domain.Cart
}

// NewEngine builds an engine. opener may be nil.
func NewEngine(store SnapshotStore, opener CartOpener, fee domain.Cents, log *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		opener: opener,
		fee:    fee,
		log:    log,
	}
}

// Hydrate loads the persisted snapshot once at startup. A missing or
// corrupt snapshot leaves the cart empty; neither is fatal.
func (e *Engine) Hydrate(ctx context.Context) {
	raw, err := e.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			e.log.Warn("cart snapshot load failed", slog.Any("err", err))
		}
		return
	}

	lines, err := decodeSnapshot(raw)
	if err != nil {
		e.log.Warn("discarding corrupt cart snapshot", slog.Any("err", err))
		return
	}

	e.mu.Lock()
	e.cart.Lines = lines
	e.mu.Unlock()
}

// AddItem increments the matching line's quantity, or appends a new
// line with quantity 1. It always succeeds and signals that the cart
// should become visible.
func (e *Engine) AddItem(ctx context.Context, item Item) {
	e.mu.Lock()
	if idx, ok := e.find(item.PizzaID); ok {
		e.cart.Lines[idx].Quantity++
	} else {
		e.cart.Lines = append(e.cart.Lines, domain.Line{
			PizzaID:  item.PizzaID,
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
			Quantity: 1,
		})
	}
	e.persistLocked(ctx)
	e.mu.Unlock()

	if e.opener != nil {
		e.opener.OpenCart()
	}
}

// UpdateQuantity adds delta to the matching line's quantity. A result
// of 0 or less removes the line; an unknown id is a no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, pizzaID int64, delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.find(pizzaID)
	if !ok {
		return
	}

	if e.cart.Lines[idx].Quantity+delta <= 0 {
		e.cart.Lines = append(e.cart.Lines[:idx], e.cart.Lines[idx+1:]...)
	} else {
		e.cart.Lines[idx].Quantity += delta
	}
	e.persistLocked(ctx)
}

// RemoveItem drops the line unconditionally if present.
func (e *Engine) RemoveItem(ctx context.Context, pizzaID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.find(pizzaID)
	if !ok {
		return
	}
	e.cart.Lines = append(e.cart.Lines[:idx], e.cart.Lines[idx+1:]...)
	e.persistLocked(ctx)
}

// Clear empties the cart and forgets the persisted snapshot.
func (e *Engine) Clear(ctx context.Context) {
	e.mu.Lock()
	e.cart.Lines = nil
	e.mu.Unlock()

	if err := e.store.Clear(ctx); err != nil {
		e.log.Warn("cart snapshot clear failed", slog.Any("err", err))
	}
}

// Lines returns a copy of the current lines in insertion order.
func (e *Engine) Lines() []domain.Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Line, len(e.cart.Lines))
	copy(out, e.cart.Lines)
	return out
}

// Totals recomputes subtotal, delivery fee and total from the current
// lines.
func (e *Engine) Totals() domain.Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Totals(e.fee)
}

func (e *Engine) find(pizzaID int64) (int, bool) {
	for i, l := range e.cart.Lines {
		if l.PizzaID == pizzaID {
			return i, true
		}
	}
	return 0, false
}

func (e *Engine) persistLocked(ctx context.Context) {
	raw, err := encodeSnapshot(e.cart.Lines)
	if err != nil {
		e.log.Warn("cart snapshot encode failed", slog.Any("err", err))
		return
	}
	if err := e.store.Save(ctx, raw); err != nil {
		e.log.Warn("cart snapshot save failed", slog.Any("err", err))
	}
}
