// Package source defines the contract activity providers implement and the
// read-through cache wrapper the aggregator composes them with.
package source

import (
	"context"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

// Source fetches a user's recent activity from one upstream service and
// returns it already normalized. Implementations are safe for concurrent
// use; Fetch honors ctx cancellation.
type Source interface {
	// Name returns the stable identifier used for cache keys, metrics
	// labels and query filtering. It matches the Source value stamped on
	// the activities the fetch returns.
	Name() string
	Fetch(ctx context.Context) ([]activity.Activity, error)
}
