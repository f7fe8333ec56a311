package config

import (
	"context"

	"github.com/matzehuels/mazegen/pkg/cache"
	"github.com/matzehuels/mazegen/pkg/store"
)

// OpenCache builds the configured cache backend. Redis is pinged before use.
func (c Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case CacheNone:
		return cache.NewNullCache(), nil
	case CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
			Prefix:   c.Cache.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	if c.Cache.Dir == "" {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(c.Cache.Dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// OpenStore builds the maze archive: MongoDB when a URI is set, memory otherwise.
func (c Config) OpenStore(ctx context.Context) (store.Store, error) {
	if c.Server.MongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	ms, err := store.NewMongoStore(ctx, store.MongoOptions{
		URI:        c.Server.MongoURI,
		Database:   c.Server.MongoDatabase,
		Collection: c.Server.MongoCollection,
		Timeout:    c.Server.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}
	return ms, nil
}
