// Package kvstore implements the durable key/value store backing all
// persistent state: registered users, the post ledger, the current session
// and the presentation theme each live under their own key as an opaque
// byte payload (JSON-encoded in practice).
package kvstore

import (
	"context"
)

// Repository is the durable store. Get returns (nil, nil) when the key is
// absent; Set overwrites unconditionally (last writer wins).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
