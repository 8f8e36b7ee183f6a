package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

// Aggregator re-runs the source fan-out; a round repopulates the result
// cache as a side effect.
type Aggregator interface {
	Aggregate(ctx context.Context) []activity.Activity
}

// Refresher periodically re-runs aggregation so cached batches are renewed
// around the time they expire instead of on the next caller's request.
type Refresher struct {
	Agg      Aggregator
	Interval time.Duration
}

func (w *Refresher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 5 * time.Minute
	}

	// initial run
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Refresher) runOnce(ctx context.Context) {
	items := w.Agg.Aggregate(ctx)
	slog.Info("refresher: cache warmed", "items", len(items))
}
