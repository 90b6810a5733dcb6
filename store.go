package urlcontent

import "context"

// ProgressStore persists the full progress map as a single durable record.
// The snapshot is rewritten wholesale on every change; there is no
// incremental diff format.
//
// Store failures never block the in-memory state machine: callers log the
// error and continue with memory as the authority for the session.
type ProgressStore interface {
	// Load returns the persisted snapshot in its stored order.
	// Returns ENOTFOUND if no snapshot has been saved yet.
	Load(ctx context.Context) ([]Entry, error)

	// Save replaces the persisted snapshot.
	Save(ctx context.Context, entries []Entry) error

	// Clear removes the persisted snapshot.
	Clear(ctx context.Context) error
}
