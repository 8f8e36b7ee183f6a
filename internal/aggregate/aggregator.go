// Package aggregate fans fetches out across sources and serves filtered,
// ordered views of the combined activity set.
package aggregate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/metrics"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/source"
)

// SourceResult is the outcome of one source's fetch within a collection
// round. Exactly one of Activities and Err is meaningful.
type SourceResult struct {
	Source     string
	Activities []activity.Activity
	Err        error
}

// Orchestrator fetches from a fixed set of sources concurrently. A source
// failing affects only its own slot in the results.
type Orchestrator struct {
	sources []source.Source
}

func NewOrchestrator(sources ...source.Source) *Orchestrator {
	return &Orchestrator{sources: sources}
}

// Collect fans out to every source and joins once all have settled. The
// returned slice is ordered like the configured sources, one entry each,
// with per-source errors preserved for callers that report them.
func (o *Orchestrator) Collect(ctx context.Context) []SourceResult {
	results := make([]SourceResult, len(o.sources))
	var wg sync.WaitGroup
	wg.Add(len(o.sources))
	for i, src := range o.sources {
		i, src := i, src
		go func() {
			defer wg.Done()
			items, err := src.Fetch(ctx)
			results[i] = SourceResult{Source: src.Name(), Activities: items, Err: err}
		}()
	}
	wg.Wait()
	return results
}

// Aggregate collapses a collection round into the combined activity set.
// Failed sources are logged and counted but contribute nothing; every
// source failing yields an empty set. Aggregate itself never fails.
func (o *Orchestrator) Aggregate(ctx context.Context) []activity.Activity {
	results := o.Collect(ctx)
	combined := make([]activity.Activity, 0, 64)
	for _, r := range results {
		if r.Err != nil {
			metrics.FetchesTotal.WithLabelValues(r.Source, "error").Inc()
			slog.Error("aggregate: source failed", "source", r.Source, "error", r.Err)
			continue
		}
		metrics.FetchesTotal.WithLabelValues(r.Source, "ok").Inc()
		combined = append(combined, r.Activities...)
	}
	return combined
}
