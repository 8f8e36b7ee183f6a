package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/aggregate"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/cache"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/config"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/github"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/redisclient"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/source"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/stackoverflow"
)

// buildCache constructs the configured result cache backend. The cleanup
// func releases backend connections and is safe to call once.
func buildCache(cfg config.Config) (cache.Store, func(), error) {
	ttl, err := time.ParseDuration(cfg.Cache.TTL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid cache.ttl: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Backend)) {
	case "", "memory":
		return cache.NewMemory(ttl), func() {}, nil
	case "redis":
		rdb := redisclient.New(cfg.Redis)
		return cache.NewRedis(rdb, ttl), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache.backend %q", cfg.Cache.Backend)
	}
}

// buildSources constructs one cached source per enabled upstream. A
// partially configured upstream is reported and left out rather than
// failing the whole command.
func buildSources(cfg config.Config, store cache.Store) []source.Source {
	var sources []source.Source

	if cfg.Sources.GitHub.Username != "" || cfg.Sources.GitHub.Token != "" {
		gh, err := github.NewClient(cfg.Sources.GitHub)
		if err != nil {
			slog.Warn("sources: github disabled", "error", err)
		} else {
			sources = append(sources, source.NewCached(gh, store))
		}
	}

	if cfg.Sources.StackOverflow.UserID != 0 {
		so, err := stackoverflow.NewClient(cfg.Sources.StackOverflow)
		if err != nil {
			slog.Warn("sources: stackoverflow disabled", "error", err)
		} else {
			sources = append(sources, source.NewCached(so, store))
		}
	}

	if len(sources) == 0 {
		slog.Warn("sources: no upstream configured; queries will be empty")
	}
	return sources
}

func buildOrchestrator(cfg config.Config, store cache.Store) *aggregate.Orchestrator {
	return aggregate.NewOrchestrator(buildSources(cfg, store)...)
}
