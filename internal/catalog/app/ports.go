package app

import (
	"context"

	"github.com/dwikikusuma/pizzeria-storefront/internal/catalog/domain"
)

type MenuClient interface {
	FetchMenu(ctx context.Context) ([]domain.Pizza, error)
}
