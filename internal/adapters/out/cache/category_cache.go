// Package cache provides the Redis-backed category cache used by the
// category listing query. The category set changes only on deployment, so a
// short TTL keeps the cache honest without an invalidation protocol.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	categoriesKey = "finder:categories"
	categoriesTTL = 12 * time.Hour
)

// RedisCategoryCache implements queries.CategoryCache on a Redis client.
type RedisCategoryCache struct {
	client *redis.Client
}

// NewRedisCategoryCache wraps an existing Redis client.
func NewRedisCategoryCache(client *redis.Client) *RedisCategoryCache {
	return &RedisCategoryCache{client: client}
}

// Get returns the cached category list, or (nil, nil) on a cache miss.
func (c *RedisCategoryCache) Get(ctx context.Context) ([]string, error) {
	raw, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// Set stores the category list with the cache TTL.
func (c *RedisCategoryCache) Set(ctx context.Context, categories []string) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, categoriesKey, raw, categoriesTTL).Err()
}
