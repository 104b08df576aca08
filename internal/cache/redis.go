// Package cache is a redis read-through cache for catalog listings. All
// methods are safe to call on a nil *RedisCache, which disables caching.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"travelgoals/internal/domain"
)

const (
	destinationsKey = "catalog:destinations"
	packagesKey     = "catalog:packages"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr, password string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetDestinations(ctx context.Context) ([]domain.Destination, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, destinationsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var out []domain.Destination
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RedisCache) SetDestinations(ctx context.Context, destinations []domain.Destination) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, destinationsKey, data, c.ttl).Err()
}

func (c *RedisCache) GetPackages(ctx context.Context) ([]domain.Package, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, packagesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var out []domain.Package
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RedisCache) SetPackages(ctx context.Context, packages []domain.Package) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(packages)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, packagesKey, data, c.ttl).Err()
}

// Invalidate drops the cached listings, called after an approval changes
// the live catalog.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, destinationsKey, packagesKey).Err()
}
