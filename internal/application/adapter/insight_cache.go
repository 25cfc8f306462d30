// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// InsightCache stores the most recent insight response. Insights are advisory,
// so cache failures must degrade silently on both reads and writes.
type InsightCache interface {
	// Get returns the cached insights and whether a cached value was found.
	Get(ctx context.Context) ([]string, bool)

	// Set stores insights with the given TTL.
	Set(ctx context.Context, insights []string, ttl time.Duration)
}
