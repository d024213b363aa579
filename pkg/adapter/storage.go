package adapter

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// ErrKeyNotFound is returned by Storage.Get for a key that was never set
var ErrKeyNotFound = goerr.New("key not found in storage")

// Storage is a key-value store holding one serialized blob per key. The
// history store persists its whole session collection through this
// interface; it never depends on a particular backend.
type Storage interface {
	// Get loads the blob stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the blob stored under key
	Set(ctx context.Context, key string, data []byte) error
}
