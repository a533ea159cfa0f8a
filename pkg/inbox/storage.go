package inbox

import "context"

// Storage persists the capped, newest-first inbox list. Implementations are
// expected to keep newest-first as the canonical stored order, but readers
// must tolerate out-of-band writes; the Inbox re-sorts defensively.
//
// Mutations on unknown ids are no-ops, not errors.
type Storage interface {
	// Append inserts a record at the head of the list and trims the list
	// to at most limit entries, discarding the oldest. Implementations
	// should make the append-and-trim as atomic as the backend allows.
	Append(ctx context.Context, item Stored, limit int) error

	// All returns every stored record.
	All(ctx context.Context) ([]Stored, error)

	// MarkRead flips is_read on the given ids.
	MarkRead(ctx context.Context, ids ...string) error

	// MarkAllRead flips is_read on every record.
	MarkAllRead(ctx context.Context) error

	// Delete removes the given ids.
	Delete(ctx context.Context, ids ...string) error

	// Clear removes the entire collection.
	Clear(ctx context.Context) error

	// CountUnread returns the number of records with is_read == false.
	CountUnread(ctx context.Context) (int, error)
}
