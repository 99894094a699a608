package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/pizzeria-storefront/internal/order/domain"
)

var ErrNoItems = errors.New("order must have at least one item")

type Service struct {
	client OrderClient
}

func NewService(client OrderClient) *Service {
	return &Service{client: client}
}

func (s *Service) Place(ctx context.Context, attemptID string, items []domain.OrderItemRequest) (domain.Receipt, error) {
	if len(items) == 0 {
		return domain.Receipt{}, ErrNoItems
	}
	for i, item := range items {
		if item.Quantity <= 0 {
			return domain.Receipt{}, fmt.Errorf("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
	}
	return s.client.Place(ctx, attemptID, items)
}

func (s *Service) History(ctx context.Context) ([]domain.Order, error) {
	return s.client.ListMine(ctx)
}
