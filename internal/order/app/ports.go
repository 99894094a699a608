package app

import (
	"context"

	"github.com/dwikikusuma/pizzeria-storefront/internal/order/domain"
)

type OrderClient interface {
	Place(ctx context.Context, attemptID string, items []domain.OrderItemRequest) (domain.Receipt, error)
	ListMine(ctx context.Context) ([]domain.Order, error)
}
