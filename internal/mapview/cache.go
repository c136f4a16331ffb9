package mapview

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "mapview:v1"

// Cache keeps the serialized map view in Redis for a short TTL. Map data
// tolerates staleness, so invalidation is TTL-only. A nil *Cache disables
// caching entirely.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached view, or nil on miss. Backend errors surface so the
// caller can log and fall through to recomputation.
func (c *Cache) Get(ctx context.Context) (*MapView, error) {
	if c == nil {
		return nil, nil
	}
	payload, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var view MapView
	if err := json.Unmarshal(payload, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Set stores the view with the configured TTL.
func (c *Cache) Set(ctx context.Context, view *MapView) error {
	if c == nil {
		return nil
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey, payload, c.ttl).Err()
}
