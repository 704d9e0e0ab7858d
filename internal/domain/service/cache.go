package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CacheStore is the tenant-scoped read-through cache primitive. Contents are
// never authoritative; the alert pipeline only deletes keys it knows are
// stale and treats every failure as best-effort.
type CacheStore interface {
	// Get retrieves a cached value. The second return is false on a miss.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// DashboardOverviewKey is the cache key for a farm's dashboard aggregate.
func DashboardOverviewKey(farmID uuid.UUID) string {
	return fmt.Sprintf("dashboard:overview:%s", farmID)
}

// ReturnsKey is the cache key for a farm's per-day return summary.
func ReturnsKey(farmID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("returns:%s:%s", farmID, day.Format("2006-01-02"))
}
