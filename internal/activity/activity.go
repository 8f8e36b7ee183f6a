package activity

import "time"

// Source identifies one upstream feed the dashboard aggregates from.
type Source string

const (
	SourceGitHub        Source = "github"
	SourceStackOverflow Source = "stackoverflow"
)

// Type classifies a normalized activity. Event kinds without a dedicated
// mapping keep their upstream tag verbatim, so values outside this set are
// valid; TypeGeneric is the fallback when the upstream tag itself is empty.
type Type string

const (
	TypeCommit      Type = "commit"
	TypeCreate      Type = "create"
	TypeIssue       Type = "issue"
	TypePullRequest Type = "pull_request"
	TypeQuestion    Type = "question"
	TypeAnswer      Type = "answer"
	TypeGeneric     Type = "activity"
)

// Activity is the unified record representing one normalized event from any
// source. ID is unique within a source only; (Source, ID) identifies a
// record globally.
type Activity struct {
	ID          string    `json:"id" yaml:"id"`
	Source      Source    `json:"source" yaml:"source"`
	Type        Type      `json:"type" yaml:"type"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string    `json:"url,omitempty" yaml:"url,omitempty"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	RepoName    string    `json:"repoName,omitempty" yaml:"repoName,omitempty"`
	Tags        []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
}
