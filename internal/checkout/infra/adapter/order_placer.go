package adapter

import (
	"context"

	checkoutapp "github.com/dwikikusuma/pizzeria-storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/pizzeria-storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/pizzeria-storefront/internal/order/domain"
)

type OrderServicePlacer struct {
	svc *orderapp.Service
}

func NewOrderServicePlacer(svc *orderapp.Service) *OrderServicePlacer {
	return &OrderServicePlacer{svc: svc}
}

func (p *OrderServicePlacer) Place(ctx context.Context, attemptID string, lines []checkoutapp.CartLine) (int64, error) {
	items := make([]orderdomain.OrderItemRequest, 0, len(lines))
	for _, l := range lines {
		items = append(items, orderdomain.OrderItemRequest{
			PizzaID:  l.PizzaID,
			Quantity: l.Quantity,
		})
	}

	receipt, err := p.svc.Place(ctx, attemptID, items)
	if err != nil {
		return 0, err
	}
	return receipt.ID, nil
}
