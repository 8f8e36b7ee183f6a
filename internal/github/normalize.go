package github

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/idgen"
)

// Event mirrors the subset of GitHub event fields this service reads.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
	} `json:"repo"`
	Payload json.RawMessage `json:"payload"`
}

// payload is the union of the per-kind payload fields the rules below read.
// Unknown kinds leave it zero.
type payload struct {
	Ref     string `json:"ref"`
	RefType string `json:"ref_type"`
	Action  string `json:"action"`
	Size    int    `json:"size"`
	Commits []struct {
		Message string `json:"message"`
	} `json:"commits"`
	Issue struct {
		Title   string `json:"title"`
		HTMLURL string `json:"html_url"`
	} `json:"issue"`
	PullRequest struct {
		Title   string `json:"title"`
		HTMLURL string `json:"html_url"`
	} `json:"pull_request"`
}

type rule struct {
	typ    activity.Type
	render func(e Event, p payload) (title, desc, link string)
}

// rules is the closed mapping from GitHub event kinds to activity types.
// Kinds absent here keep their raw name as the type and fall back to a
// generic rendering.
var rules = map[string]rule{
	"PushEvent": {
		typ: activity.TypeCommit,
		render: func(e Event, p payload) (string, string, string) {
			n := p.Size
			if n == 0 {
				n = len(p.Commits)
			}
			title := fmt.Sprintf("Pushed %d %s to %s", n, plural("commit", n), e.Repo.Name)
			desc := ""
			if len(p.Commits) > 0 {
				desc = strings.TrimSpace(p.Commits[0].Message)
			}
			return title, desc, repoURL(e.Repo.Name)
		},
	},
	"CreateEvent": {
		typ: activity.TypeCreate,
		render: func(e Event, p payload) (string, string, string) {
			if p.RefType == "repository" || p.RefType == "" {
				return "Created repository " + e.Repo.Name, "", repoURL(e.Repo.Name)
			}
			title := fmt.Sprintf("Created %s %s in %s", p.RefType, p.Ref, e.Repo.Name)
			return title, "", repoURL(e.Repo.Name)
		},
	},
	"IssuesEvent": {
		typ: activity.TypeIssue,
		render: func(e Event, p payload) (string, string, string) {
			title := fmt.Sprintf("%s issue: %s", titleCase(p.Action), p.Issue.Title)
			return title, "", p.Issue.HTMLURL
		},
	},
	"PullRequestEvent": {
		typ: activity.TypePullRequest,
		render: func(e Event, p payload) (string, string, string) {
			title := fmt.Sprintf("%s pull request: %s", titleCase(p.Action), p.PullRequest.Title)
			return title, "", p.PullRequest.HTMLURL
		},
	},
}

// Normalize converts one raw event into an Activity. It reports ok=false
// when the event has no parseable created_at; such events carry no position
// on the timeline and are dropped rather than backdated.
func Normalize(e Event) (activity.Activity, bool) {
	ts, err := time.Parse(time.RFC3339, e.CreatedAt)
	if err != nil {
		return activity.Activity{}, false
	}
	ts = ts.UTC()

	var p payload
	if len(e.Payload) > 0 {
		_ = json.Unmarshal(e.Payload, &p)
	}

	act := activity.Activity{
		ID:        e.ID,
		Source:    activity.SourceGitHub,
		Timestamp: ts,
		RepoName:  e.Repo.Name,
	}
	if act.ID == "" {
		act.ID = idgen.FromTimestamp(ts)
	}

	if r, ok := rules[e.Type]; ok {
		act.Type = r.typ
		act.Title, act.Description, act.URL = r.render(e, p)
		return act, true
	}

	// Unmapped kinds keep their upstream name so nothing is silently
	// reclassified; an empty kind degrades to the generic type.
	if e.Type != "" {
		act.Type = activity.Type(e.Type)
	} else {
		act.Type = activity.TypeGeneric
	}
	if e.Repo.Name != "" {
		act.Title = fmt.Sprintf("%s in %s", eventLabel(e.Type), e.Repo.Name)
		act.URL = repoURL(e.Repo.Name)
	} else {
		act.Title = eventLabel(e.Type)
	}
	return act, true
}

func repoURL(name string) string {
	if name == "" {
		return ""
	}
	return "https://github.com/" + name
}

func eventLabel(kind string) string {
	if kind == "" {
		return "Activity"
	}
	return kind
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Updated"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
