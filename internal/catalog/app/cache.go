package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/pizzeria-storefront/internal/catalog/domain"
)

// Cache holds the fetched pizza list. It is read-only for everything
// downstream: adding to cart and recommendation matching only read it.
type Cache struct {
	client MenuClient
	log    *slog.Logger

	mu      sync.Mutex
	pizzas  []domain.Pizza
	loading bool
}

func NewCache(client MenuClient, log *slog.Logger) *Cache {
	return &Cache{
		client: client,
		log:    log,
	}
}

// Refresh fetches the menu and replaces the cached list wholesale.
// On failure the cache keeps whatever it had (empty on first load).
// A refresh already in flight makes this a no-op.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	c.mu.Unlock()

	pizzas, err := c.client.FetchMenu(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.log.Warn("menu fetch failed", slog.Any("err", err))
		return err
	}

	c.pizzas = pizzas
	return nil
}

func (c *Cache) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Pizzas returns a copy of the cached list in menu order.
func (c *Cache) Pizzas() []domain.Pizza {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Pizza, len(c.pizzas))
	copy(out, c.pizzas)
	return out
}

func (c *Cache) Get(id int64) (domain.Pizza, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.pizzas {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Pizza{}, false
}

// Match finds the first pizza whose name occurs in the given text,
// case-insensitively. The recommendation collaborator uses it to map
// free-form text back to a menu item.
func (c *Cache) Match(text string) (domain.Pizza, bool) {
	lowered := strings.ToLower(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.pizzas {
		if p.Name == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	return domain.Pizza{}, false
}
