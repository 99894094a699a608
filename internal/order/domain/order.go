package domain

import (
	"fmt"
	"time"
)

type Cents int64

func (c Cents) String() string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// OrderItemRequest is one line of an order submission: identity and
// quantity only. Prices are the server's to decide.
type OrderItemRequest struct {
	PizzaID  int64
	Quantity int
}

// Receipt is the server's acknowledgement of a placed order.
type Receipt struct {
	ID          int64
	Status      string
	TotalAmount Cents
	CreatedAt   time.Time
}

// Order is one entry of the user's order history.
type Order struct {
	ID          int64
	TotalAmount Cents
	Status      string
	CreatedAt   time.Time
	Items       []OrderItem
}

type OrderItem struct {
	PizzaName  string
	PizzaImage string
	UnitPrice  Cents
	Quantity   int
}
