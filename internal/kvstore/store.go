package kvstore

import (
	"context"
	"errors"
)

var ErrUnsupportedStore = errors.New("unsupported store type")

// Store is a string-keyed, string-valued durable store. A missing key is
// reported as ok=false with a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Backend is a Store that owns a connection or file handle.
type Backend interface {
	Store
	Close() error
}

// Prefixed namespaces every key of an underlying store.
type Prefixed struct {
	store  Store
	prefix string
}

func WithPrefix(store Store, prefix string) *Prefixed {
	return &Prefixed{store: store, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key, value string) error {
	return p.store.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Remove(ctx context.Context, key string) error {
	return p.store.Remove(ctx, p.prefix+key)
}
