package source

import (
	"context"
	"log/slog"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/cache"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/metrics"
)

// Cached wraps a Source with read-through caching. A fresh cached batch is
// returned as-is; otherwise the upstream is fetched and, on success, the
// whole batch replaces whatever the cache held. Fetch errors are returned
// without touching the cache, so a stale-but-expired entry is never
// resurrected.
type Cached struct {
	src   Source
	store cache.Store
}

// NewCached wraps src with store. The cache key is src.Name().
func NewCached(src Source, store cache.Store) *Cached {
	return &Cached{src: src, store: store}
}

func (c *Cached) Name() string { return c.src.Name() }

func (c *Cached) Fetch(ctx context.Context) ([]activity.Activity, error) {
	name := c.src.Name()
	if items, ok := c.store.Get(ctx, name); ok {
		metrics.CacheHitsTotal.WithLabelValues(name).Inc()
		slog.Debug("source: cache hit", "source", name, "items", len(items))
		return items, nil
	}
	metrics.CacheMissesTotal.WithLabelValues(name).Inc()

	items, err := c.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.store.Set(ctx, name, items)
	return items, nil
}
