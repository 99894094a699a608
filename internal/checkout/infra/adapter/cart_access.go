package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/pizzeria-storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/pizzeria-storefront/internal/checkout/app"
)

// CartEngineAccess exposes the cart engine to checkout, narrowed to
// identities and quantities.
type CartEngineAccess struct {
	engine *cartapp.Engine
}

func NewCartEngineAccess(engine *cartapp.Engine) *CartEngineAccess {
	return &CartEngineAccess{engine: engine}
}

func (a *CartEngineAccess) Lines() []checkoutapp.CartLine {
	lines := a.engine.Lines()
	out := make([]checkoutapp.CartLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, checkoutapp.CartLine{
			PizzaID:  l.PizzaID,
			Quantity: l.Quantity,
		})
	}
	return out
}

func (a *CartEngineAccess) Clear(ctx context.Context) {
	a.engine.Clear(ctx)
}
