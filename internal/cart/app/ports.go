package app

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by SnapshotStore.Load when nothing has been
// persisted yet.
var ErrNoSnapshot = errors.New("no cart snapshot")

// SnapshotStore mirrors the serialized cart into durable storage. It
// never mutates the snapshot on its own.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// CartOpener is signalled when a mutation should make the cart visible.
type CartOpener interface {
	OpenCart()
}
