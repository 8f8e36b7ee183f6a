package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

// DefaultLimit is the page size callers use when none was requested.
const DefaultLimit = 20

// Options narrows and pages a combined activity set. The zero Limit is
// honored as-is and yields an empty page; callers wanting the customary
// default apply DefaultLimit where they build Options (HTTP binding, CLI
// flag defaults).
type Options struct {
	// Source keeps only activities from the named source; empty keeps all.
	Source string
	// From and To bound the timestamp inclusively; zero values are open ends.
	From time.Time
	To   time.Time
	// Limit caps the page size. Offset skips that many matches first.
	Limit  int
	Offset int
}

// Query applies source filter, date-range filter, newest-first ordering and
// pagination, in that order. It never modifies items; repeated calls with
// equal inputs return equal pages. Negative limit or offset is the only
// rejected input.
func Query(items []activity.Activity, opts Options) ([]activity.Activity, error) {
	if opts.Limit < 0 {
		return nil, fmt.Errorf("query: negative limit %d", opts.Limit)
	}
	if opts.Offset < 0 {
		return nil, fmt.Errorf("query: negative offset %d", opts.Offset)
	}

	filtered := make([]activity.Activity, 0, len(items))
	for _, it := range items {
		if opts.Source != "" && string(it.Source) != opts.Source {
			continue
		}
		if !opts.From.IsZero() && it.Timestamp.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && it.Timestamp.After(opts.To) {
			continue
		}
		filtered = append(filtered, it)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	if opts.Offset >= len(filtered) {
		return []activity.Activity{}, nil
	}
	filtered = filtered[opts.Offset:]
	if opts.Limit < len(filtered) {
		filtered = filtered[:opts.Limit]
	}
	return filtered, nil
}

// ParseInstant reads a query date parameter: an RFC 3339 instant, or a bare
// YYYY-MM-DD date taken as midnight UTC. Empty input is the open bound.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want RFC 3339 or YYYY-MM-DD", s)
}
