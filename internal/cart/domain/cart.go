package domain

import "fmt"

// Cents is a money amount in minor units.
type Cents int64

func (c Cents) String() string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// Line is one pizza's quantity entry. Name, price and image are copied
// from the catalog at add time so the cart survives catalog changes.
// Quantity is always >= 1; a line that would reach 0 is removed instead.
type Line struct {
	PizzaID  int64
	Name     string
	Price    Cents
	ImageURL string
	Quantity int
}

// Totals are derived from the lines on every read, never stored.
type Totals struct {
	Subtotal    Cents
	DeliveryFee Cents
	Total       Cents
}

// Cart is an ordered sequence of lines; insertion order is display
// order. At most one line exists per pizza identity.
type Cart struct {
	Lines []Line
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Totals computes subtotal and total. The delivery fee is waived when
// the cart is empty.
func (c Cart) Totals(fee Cents) Totals {
	var subtotal Cents
	for _, l := range c.Lines {
		subtotal += l.Price * Cents(l.Quantity)
	}
	if subtotal == 0 {
		return Totals{}
	}
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}
