package aggregate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

type stubSource struct {
	name  string
	items []activity.Activity
	err   error
	hook  func()
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(context.Context) ([]activity.Activity, error) {
	if s.hook != nil {
		s.hook()
	}
	return s.items, s.err
}

func TestAggregateCombinesSources(t *testing.T) {
	o := NewOrchestrator(
		&stubSource{name: "github", items: []activity.Activity{{ID: "g1"}, {ID: "g2"}}},
		&stubSource{name: "stackoverflow", items: []activity.Activity{{ID: "s1"}}},
	)
	got := o.Aggregate(context.Background())
	if len(got) != 3 {
		t.Fatalf("got %d activities, want 3", len(got))
	}
}

func TestAggregateToleratesOneFailure(t *testing.T) {
	o := NewOrchestrator(
		&stubSource{name: "github", err: errors.New("rate limited")},
		&stubSource{name: "stackoverflow", items: []activity.Activity{{ID: "s1"}}},
	)
	got := o.Aggregate(context.Background())
	if len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("got %+v, want only the surviving source's items", got)
	}
}

func TestAggregateAllFailedYieldsEmpty(t *testing.T) {
	o := NewOrchestrator(
		&stubSource{name: "github", err: errors.New("down")},
		&stubSource{name: "stackoverflow", err: errors.New("down")},
	)
	got := o.Aggregate(context.Background())
	if got == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("got %d activities, want 0", len(got))
	}
}

func TestCollectReportsPerSourceOutcomes(t *testing.T) {
	fetchErr := errors.New("boom")
	o := NewOrchestrator(
		&stubSource{name: "github", items: []activity.Activity{{ID: "g1"}}},
		&stubSource{name: "stackoverflow", err: fetchErr},
	)
	results := o.Collect(context.Background())
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Source != "github" || results[0].Err != nil || len(results[0].Activities) != 1 {
		t.Errorf("github result = %+v", results[0])
	}
	if results[1].Source != "stackoverflow" || !errors.Is(results[1].Err, fetchErr) {
		t.Errorf("stackoverflow result = %+v", results[1])
	}
}

func TestCollectFansOutConcurrently(t *testing.T) {
	// Both fetches block on a shared barrier; the round can only finish if
	// they run at the same time.
	var barrier sync.WaitGroup
	barrier.Add(2)
	rendezvous := func() {
		barrier.Done()
		barrier.Wait()
	}
	o := NewOrchestrator(
		&stubSource{name: "github", hook: rendezvous},
		&stubSource{name: "stackoverflow", hook: rendezvous},
	)

	done := make(chan struct{})
	go func() {
		o.Collect(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("collect did not finish; sources appear to run sequentially")
	}
}
