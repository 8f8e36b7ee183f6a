package cache

import (
	"context"
	"testing"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	if _, ok := m.Get(ctx, "github"); ok {
		t.Fatal("expected miss on empty store")
	}

	items := []activity.Activity{
		{ID: "1", Source: activity.SourceGitHub, Type: activity.TypeCommit, Title: "Pushed 1 commit to a/b"},
	}
	m.Set(ctx, "github", items)

	got, ok := m.Get(ctx, "github")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("got %+v, want the stored batch", got)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(time.Minute)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	m.now = func() time.Time { return current }

	ctx := context.Background()
	m.Set(ctx, "github", []activity.Activity{{ID: "1"}})

	current = base.Add(59 * time.Second)
	if _, ok := m.Get(ctx, "github"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	current = base.Add(61 * time.Second)
	if _, ok := m.Get(ctx, "github"); ok {
		t.Fatal("entry still served after its TTL")
	}
}

func TestMemoryReplacesWholeBatch(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	m.Set(ctx, "github", []activity.Activity{{ID: "1"}, {ID: "2"}})
	m.Set(ctx, "github", []activity.Activity{{ID: "3"}})

	got, ok := m.Get(ctx, "github")
	if !ok {
		t.Fatal("expected hit")
	}
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("got %+v, want only the replacement batch", got)
	}
}

func TestMemoryDefaultTTL(t *testing.T) {
	m := NewMemory(0)
	if m.ttl != DefaultTTL {
		t.Fatalf("ttl = %v, want %v", m.ttl, DefaultTTL)
	}
}
