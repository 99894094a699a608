package httpapi

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dwikikusuma/pizzeria-storefront/internal/order/domain"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/httpx"
)

type Client struct {
	api *httpx.Client
}

func NewClient(api *httpx.Client) *Client {
	return &Client{api: api}
}

type orderItemRequestDTO struct {
	PizzaID  int64 `json:"pizzaId"`
	Quantity int   `json:"quantity"`
}

type orderRequestDTO struct {
	Items []orderItemRequestDTO `json:"items"`
}

type receiptDTO struct {
	ID          int64   `json:"id"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`
	CreatedAt   string  `json:"createdAt"`
}

type orderItemDTO struct {
	PizzaName  string  `json:"pizzaName"`
	PizzaImage string  `json:"pizzaImage"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
}

type orderDTO struct {
	ID          int64          `json:"id"`
	TotalAmount float64        `json:"totalAmount"`
	Status      string         `json:"status"`
	CreatedAt   string         `json:"createdAt"`
	Items       []orderItemDTO `json:"items"`
}

func (c *Client) Place(ctx context.Context, attemptID string, items []domain.OrderItemRequest) (domain.Receipt, error) {
	req := orderRequestDTO{Items: make([]orderItemRequestDTO, 0, len(items))}
	for _, item := range items {
		req.Items = append(req.Items, orderItemRequestDTO{
			PizzaID:  item.PizzaID,
			Quantity: item.Quantity,
		})
	}

	headers := map[string]string{"X-Idempotency-Key": attemptID}

	var dto receiptDTO
	if err := c.api.PostWithHeaders(ctx, "/orders", headers, req, &dto); err != nil {
		return domain.Receipt{}, fmt.Errorf("place order: %w", err)
	}

	return domain.Receipt{
		ID:          dto.ID,
		Status:      dto.Status,
		TotalAmount: toCents(dto.TotalAmount),
		CreatedAt:   parseTime(dto.CreatedAt),
	}, nil
}

func (c *Client) ListMine(ctx context.Context) ([]domain.Order, error) {
	var dtos []orderDTO
	if err := c.api.Get(ctx, "/orders/my-orders", &dtos); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(dtos))
	for _, d := range dtos {
		items := make([]domain.OrderItem, 0, len(d.Items))
		for _, it := range d.Items {
			items = append(items, domain.OrderItem{
				PizzaName:  it.PizzaName,
				PizzaImage: it.PizzaImage,
				UnitPrice:  toCents(it.UnitPrice),
				Quantity:   it.Quantity,
			})
		}
		orders = append(orders, domain.Order{
			ID:          d.ID,
			TotalAmount: toCents(d.TotalAmount),
			Status:      d.Status,
			CreatedAt:   parseTime(d.CreatedAt),
			Items:       items,
		})
	}
	return orders, nil
}

func toCents(dollars float64) domain.Cents {
	return domain.Cents(math.Round(dollars * 100))
}

// The server serializes timestamps without a zone. Accept both that and
// RFC 3339; a timestamp that parses as neither is left zero rather than
// failing the whole read.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
