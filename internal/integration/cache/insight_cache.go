// Package cache implements the insight cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
)

// insightCacheKey holds the latest provider insights as a JSON array.
const insightCacheKey = "fintrack:insights"

// insightCache implements adapter.InsightCache. Redis failures are logged
// and swallowed: a broken cache degrades to a cold one.
type insightCache struct {
	client *redis.Client
}

// NewInsightCache creates an insight cache backed by client.
func NewInsightCache(client *redis.Client) adapter.InsightCache {
	return &insightCache{client: client}
}

// Get returns the cached insights, if any.
func (c *insightCache) Get(ctx context.Context) ([]string, bool) {
	value, err := c.client.Get(ctx, insightCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Insight cache read failed", "error", err)
		}
		return nil, false
	}

	var insights []string
	if err := json.Unmarshal([]byte(value), &insights); err != nil {
		slog.Warn("Insight cache holds a corrupt document, ignoring", "error", err)
		return nil, false
	}
	if len(insights) == 0 {
		return nil, false
	}
	return insights, true
}

// Set stores insights for ttl.
func (c *insightCache) Set(ctx context.Context, insights []string, ttl time.Duration) {
	value, err := json.Marshal(insights)
	if err != nil {
		slog.Warn("Failed to serialize insights for cache", "error", err)
		return
	}
	if err := c.client.Set(ctx, insightCacheKey, value, ttl).Err(); err != nil {
		slog.Warn("Insight cache write failed", "error", err)
	}
}
