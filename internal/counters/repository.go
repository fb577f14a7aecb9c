// Package counters issues monotonically increasing integers from named,
// persisted sequence counters. Cards get their human-meaningful numeric ids
// from here.
package counters

import "context"

// CardSequence is the counter backing uploadedCards ids.
const CardSequence = "uploadedCards"

// Repository is a named sequence counter store.
type Repository interface {
	// Next atomically increments the counter with the given name (creating
	// it at zero first if absent) and returns the post-increment value.
	// Concurrent callers never observe the same value for the same name.
	Next(ctx context.Context, name string) (int64, error)
}
