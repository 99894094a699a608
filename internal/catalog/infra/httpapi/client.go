package httpapi

import (
	"context"
	"fmt"
	"math"

	"github.com/dwikikusuma/pizzeria-storefront/internal/catalog/domain"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/httpx"
)

type Client struct {
	api *httpx.Client
}

func NewClient(api *httpx.Client) *Client {
	return &Client{api: api}
}

type pizzaDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

func (c *Client) FetchMenu(ctx context.Context) ([]domain.Pizza, error) {
	var dtos []pizzaDTO
	if err := c.api.Get(ctx, "/pizzas", &dtos); err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}

	pizzas := make([]domain.Pizza, 0, len(dtos))
	for _, d := range dtos {
		pizzas = append(pizzas, domain.Pizza{
			ID:          d.ID,
			Name:        d.Name,
			Price:       toCents(d.Price),
			Description: d.Description,
			ImageURL:    d.ImageURL,
		})
	}
	return pizzas, nil
}

func toCents(dollars float64) domain.Cents {
	return domain.Cents(math.Round(dollars * 100))
}
