package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	resultKeyPrefix = "archverify:result:" // archverify:result:{fingerprint}:{pass}
	passSetPrefix   = "archverify:passes:" // set of cached passes: archverify:passes:{fingerprint}
	DefaultCacheTTL = 24 * time.Hour
)

// ResultCache stores pass results keyed by architecture fingerprint.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{client: client, ttl: ttl}
}

func (c *ResultCache) resultKey(fingerprint, pass string) string {
	return resultKeyPrefix + fingerprint + ":" + pass
}

func (c *ResultCache) passSetKey(fingerprint string) string {
	return passSetPrefix + fingerprint
}

// Get decodes a cached value into v. A miss returns false and no error.
func (c *ResultCache) Get(ctx context.Context, fingerprint, pass string, v any) (bool, error) {
	data, err := c.client.Get(ctx, c.resultKey(fingerprint, pass)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get cached result: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}
	return true, nil
}

func (c *ResultCache) Set(ctx context.Context, fingerprint, pass string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	setKey := c.passSetKey(fingerprint)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.resultKey(fingerprint, pass), data, c.ttl)
	pipe.SAdd(ctx, setKey, pass)
	pipe.Expire(ctx, setKey, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache result: %w", err)
	}
	return nil
}

// Invalidate drops every cached pass for the fingerprint.
func (c *ResultCache) Invalidate(ctx context.Context, fingerprint string) error {
	setKey := c.passSetKey(fingerprint)
	passes, err := c.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list cached passes: %w", err)
	}

	keys := make([]string, 0, len(passes)+1)
	for _, p := range passes {
		keys = append(keys, c.resultKey(fingerprint, p))
	}
	keys = append(keys, setKey)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}
