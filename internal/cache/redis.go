package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

// Redis is a Store backed by a shared redis instance, for deployments where
// several processes should reuse one fetch window. Batches are stored as
// JSON under a per-source key; redis expiry enforces the TTL.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis returns a Redis store with the given TTL. A non-positive TTL
// falls back to DefaultTTL.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{rdb: rdb, ttl: ttl}
}

// ResultKeyPrefix namespaces cached batches in redis, one key per source.
const ResultKeyPrefix = "activity:result:"

func resultKey(key string) string {
	return ResultKeyPrefix + key
}

func (r *Redis) Get(ctx context.Context, key string) ([]activity.Activity, bool) {
	b, err := r.rdb.Get(ctx, resultKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("cache: redis get failed", "key", key, "error", err)
		return nil, false
	}
	var items []activity.Activity
	if err := json.Unmarshal(b, &items); err != nil {
		slog.Warn("cache: corrupt batch dropped", "key", key, "error", err)
		return nil, false
	}
	return items, true
}

func (r *Redis) Set(ctx context.Context, key string, items []activity.Activity) {
	b, err := json.Marshal(items)
	if err != nil {
		slog.Error("cache: marshal batch", "key", key, "error", err)
		return
	}
	if err := r.rdb.Set(ctx, resultKey(key), b, r.ttl).Err(); err != nil {
		slog.Warn("cache: redis set failed", "key", key, "error", err)
	}
}
