package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deenanswers/qa-system/internal/core/ports"
)

const (
	aggregateTTL  = 5 * time.Minute
	keyStats      = "qa:aggregate:stats"
	keyCategories = "qa:aggregate:categories"
)

// AggregateCache stores the full-collection aggregations (admin stats,
// category counts) as JSON with a short TTL. A miss is (nil, nil); the
// service layer treats any error as a miss too.
type AggregateCache struct {
	client *redis.Client
}

func NewAggregateCache(client *redis.Client) *AggregateCache {
	return &AggregateCache{client: client}
}

func (c *AggregateCache) GetStats(ctx context.Context) (*ports.AdminStats, error) {
	var stats ports.AdminStats
	ok, err := c.get(ctx, keyStats, &stats)
	if err != nil || !ok {
		return nil, err
	}
	return &stats, nil
}

func (c *AggregateCache) SetStats(ctx context.Context, stats *ports.AdminStats) error {
	return c.set(ctx, keyStats, stats)
}

func (c *AggregateCache) GetCategories(ctx context.Context) ([]ports.CategoryCount, error) {
	var counts []ports.CategoryCount
	ok, err := c.get(ctx, keyCategories, &counts)
	if err != nil || !ok {
		return nil, err
	}
	return counts, nil
}

func (c *AggregateCache) SetCategories(ctx context.Context, counts []ports.CategoryCount) error {
	return c.set(ctx, keyCategories, counts)
}

// Invalidate drops every cached aggregate. Called after any question
// mutation so admins never act on stale numbers.
func (c *AggregateCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, keyStats, keyCategories).Err()
}

func (c *AggregateCache) get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *AggregateCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, payload, aggregateTTL).Err()
}
