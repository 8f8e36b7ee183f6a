// Package idgen synthesizes activity IDs for upstream records that carry no
// deterministic identifier of their own.
package idgen

import (
	"fmt"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet defines the character set used for the random portion of the ID.
var Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of random characters appended to the timestamp.
var Length = 8

// FromTimestamp returns an ID combining the event instant with a random
// suffix, e.g. "1704205445-x3k9q0pa". Uniqueness holds within a source even
// when several ID-less events share one timestamp.
func FromTimestamp(ts time.Time) string {
	suffix, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		// nanoid fails only when the entropy source does; nanoseconds keep
		// the ID usable in that case.
		return fmt.Sprintf("%d", ts.UnixNano())
	}
	return fmt.Sprintf("%d-%s", ts.Unix(), suffix)
}
