// Package storage is the persistence port behind the record stores. Each
// store serializes its whole collection as one JSON blob under a fixed key,
// mirroring the in-memory record shape exactly.
package storage

import "context"

const (
	KeyProducts = "glow_products"
	KeyComments = "glow_comments"
	KeyCarts    = "glow_carts"
)

type Port interface {
	// Load returns the blob for key, with ok=false when the key has never
	// been written. A missing key is not an error.
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
}
