package github

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

func event(t *testing.T, kind, createdAt, repo string, payload any) Event {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	e := Event{ID: "100", Type: kind, CreatedAt: createdAt, Payload: b}
	e.Repo.Name = repo
	return e
}

func TestNormalizePushEvent(t *testing.T) {
	e := event(t, "PushEvent", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{
		"size": 2,
		"commits": []map[string]string{
			{"message": "fix flaky retry"},
			{"message": "bump deps"},
		},
	})
	act, ok := Normalize(e)
	if !ok {
		t.Fatal("expected event to normalize")
	}
	if act.Source != activity.SourceGitHub {
		t.Errorf("source = %q, want github", act.Source)
	}
	if act.Type != activity.TypeCommit {
		t.Errorf("type = %q, want commit", act.Type)
	}
	if act.Title != "Pushed 2 commits to alice/widgets" {
		t.Errorf("title = %q", act.Title)
	}
	if act.Description != "fix flaky retry" {
		t.Errorf("description = %q", act.Description)
	}
	if act.URL != "https://github.com/alice/widgets" {
		t.Errorf("url = %q", act.URL)
	}
	if act.RepoName != "alice/widgets" {
		t.Errorf("repo = %q", act.RepoName)
	}
	want := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	if !act.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", act.Timestamp, want)
	}
}

func TestNormalizePushEventSingleCommit(t *testing.T) {
	e := event(t, "PushEvent", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{
		"commits": []map[string]string{{"message": "one"}},
	})
	act, _ := Normalize(e)
	if act.Title != "Pushed 1 commit to alice/widgets" {
		t.Errorf("title = %q, want singular form", act.Title)
	}
}

func TestNormalizeCreateEvent(t *testing.T) {
	branch := event(t, "CreateEvent", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{
		"ref": "feature/x", "ref_type": "branch",
	})
	act, _ := Normalize(branch)
	if act.Type != activity.TypeCreate {
		t.Errorf("type = %q, want create", act.Type)
	}
	if act.Title != "Created branch feature/x in alice/widgets" {
		t.Errorf("branch title = %q", act.Title)
	}

	repo := event(t, "CreateEvent", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{
		"ref_type": "repository",
	})
	act, _ = Normalize(repo)
	if act.Title != "Created repository alice/widgets" {
		t.Errorf("repository title = %q", act.Title)
	}
}

func TestNormalizeIssuesEvent(t *testing.T) {
	e := event(t, "IssuesEvent", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{
		"action": "opened",
		"issue":  map[string]string{"title": "Crash on empty input", "html_url": "https://github.com/alice/widgets/issues/7"},
	})
	act, _ := Normalize(e)
	if act.Type != activity.TypeIssue {
		t.Errorf("type = %q, want issue", act.Type)
	}
	if act.Title != "Opened issue: Crash on empty input" {
		t.Errorf("title = %q", act.Title)
	}
	if act.URL != "https://github.com/alice/widgets/issues/7" {
		t.Errorf("url = %q", act.URL)
	}
}

func TestNormalizePullRequestEvent(t *testing.T) {
	e := event(t, "PullRequestEvent", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{
		"action":       "closed",
		"pull_request": map[string]string{"title": "Add retry", "html_url": "https://github.com/alice/widgets/pull/9"},
	})
	act, _ := Normalize(e)
	if act.Type != activity.TypePullRequest {
		t.Errorf("type = %q, want pull_request", act.Type)
	}
	if act.Title != "Closed pull request: Add retry" {
		t.Errorf("title = %q", act.Title)
	}
}

func TestNormalizeUnmappedKindKeepsName(t *testing.T) {
	e := event(t, "WatchEvent", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{})
	act, ok := Normalize(e)
	if !ok {
		t.Fatal("expected event to normalize")
	}
	if act.Type != activity.Type("WatchEvent") {
		t.Errorf("type = %q, want the raw kind preserved", act.Type)
	}
	if act.Title != "WatchEvent in alice/widgets" {
		t.Errorf("title = %q", act.Title)
	}
}

func TestNormalizeEmptyKindFallsBack(t *testing.T) {
	e := event(t, "", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{})
	act, _ := Normalize(e)
	if act.Type != activity.TypeGeneric {
		t.Errorf("type = %q, want %q", act.Type, activity.TypeGeneric)
	}
	if act.Title != "Activity in alice/widgets" {
		t.Errorf("title = %q", act.Title)
	}
}

func TestNormalizeDropsBadTimestamp(t *testing.T) {
	for _, createdAt := range []string{"", "yesterday", "2024-13-99T00:00:00Z"} {
		e := event(t, "PushEvent", createdAt, "alice/widgets", map[string]any{})
		if _, ok := Normalize(e); ok {
			t.Errorf("created_at %q: expected drop", createdAt)
		}
	}
}

func TestNormalizeSynthesizesMissingID(t *testing.T) {
	e := event(t, "PushEvent", "2024-01-02T15:04:05Z", "alice/widgets", map[string]any{})
	e.ID = ""
	act, _ := Normalize(e)
	if act.ID == "" {
		t.Fatal("expected a synthesized ID")
	}
	if !strings.HasPrefix(act.ID, "1704207845-") {
		t.Errorf("id = %q, want unix-second prefix", act.ID)
	}
}
