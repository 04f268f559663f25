package kvstore

import (
	"context"
	"fmt"
	"strings"
)

type Options struct {
	Type  string
	Path  string
	URL   string
	Redis RedisConfig
	Mongo MongoConfig
}

// Open connects the backend named by opts.Type. An empty type means sqlite.
func Open(ctx context.Context, opts Options) (Backend, error) {
	storeType := strings.ToLower(strings.TrimSpace(opts.Type))
	if storeType == "" {
		storeType = "sqlite"
	}

	switch storeType {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		store, err := NewRedisStore(ctx, opts.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "mongo", "mongodb":
		store, err := NewMongoStore(ctx, opts.Mongo)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	dialect, ok := DialectFor(storeType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStore, opts.Type)
	}
	store, err := NewSQLStore(ctx, dialect, DialectConfig{Path: opts.Path, URL: opts.URL})
	if err != nil {
		return nil, err
	}
	return store, nil
}
