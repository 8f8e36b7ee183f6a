// Package cache holds the per-source result cache: the last successfully
// normalized batch for each source, kept for a fixed TTL and replaced
// wholesale on every refresh.
package cache

import (
	"context"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

// DefaultTTL bounds how long a cached batch is served before a source is
// fetched again.
const DefaultTTL = 5 * time.Minute

// Store is a time-bounded key-value store keyed one-to-one with a source.
// The TTL is fixed at construction; there is no per-entry override. A Store
// failure never fails a read path: backends degrade to a miss instead.
type Store interface {
	// Get returns the batch for key when present and unexpired.
	Get(ctx context.Context, key string) ([]activity.Activity, bool)
	// Set replaces the batch stored under key with a fresh TTL.
	Set(ctx context.Context, key string, items []activity.Activity)
}
