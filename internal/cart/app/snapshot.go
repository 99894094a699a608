package app

import (
	"encoding/json"
	"fmt"

	"github.com/dwikikusuma/pizzeria-storefront/internal/cart/domain"
)

// snapshotLine is the persisted form of a cart line. Prices are stored
// in cents. The format is unversioned; anything unreadable is dropped.
type snapshotLine struct {
	PizzaID  int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`
	Quantity int    `json:"quantity"`
}

func encodeSnapshot(lines []domain.Line) ([]byte, error) {
	out := make([]snapshotLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, snapshotLine{
			PizzaID:  l.PizzaID,
			Name:     l.Name,
			Price:    int64(l.Price),
			ImageURL: l.ImageURL,
			Quantity: l.Quantity,
		})
	}
	return json.Marshal(out)
}

// decodeSnapshot rebuilds lines from a snapshot, skipping entries that
// would break the cart invariants (quantity < 1, duplicate identity).
func decodeSnapshot(raw []byte) ([]domain.Line, error) {
	var stored []snapshotLine
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal cart snapshot: %w", err)
	}

	seen := make(map[int64]bool, len(stored))
	var lines []domain.Line
	for _, s := range stored {
		if s.Quantity < 1 || seen[s.PizzaID] {
			continue
		}
		seen[s.PizzaID] = true
		lines = append(lines, domain.Line{
			PizzaID:  s.PizzaID,
			Name:     s.Name,
			Price:    domain.Cents(s.Price),
			ImageURL: s.ImageURL,
			Quantity: s.Quantity,
		})
	}
	return lines, nil
}
