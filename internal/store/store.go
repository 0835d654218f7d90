package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// KV is an opaque string blob store. Get returns ErrNotFound for a key that
// was never set; Set overwrites any previous value.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
