package domain

import "fmt"

// Cents is a money amount in minor units. The API speaks decimal
// dollars; conversion happens at the HTTP boundary.
type Cents int64

func (c Cents) String() string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// Pizza is one orderable menu item. Immutable once fetched; the whole
// list is replaced on re-fetch.
type Pizza struct {
	ID          int64
	Name        string
	Price       Cents
	Description string
	ImageURL    string
}
