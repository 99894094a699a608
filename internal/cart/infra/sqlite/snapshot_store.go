package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/pizzeria-storefront/internal/cart/app"
)

// slot name kept from the original storefront's storage key.
const cartSlot = "pizzeria-cart"

// SnapshotStore keeps the serialized cart in a single named slot of the
// local storefront database.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) (*SnapshotStore, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS cart_snapshots (
		slot TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create cart_snapshots table: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM cart_snapshots WHERE slot = ?`, cartSlot,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, app.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}
	return data, nil
}

func (s *SnapshotStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cart_snapshots (slot, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		cartSlot, data, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM cart_snapshots WHERE slot = ?`, cartSlot,
	)
	if err != nil {
		return fmt.Errorf("clear cart snapshot: %w", err)
	}
	return nil
}
