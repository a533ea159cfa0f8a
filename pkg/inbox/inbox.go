package inbox

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/wanderlabs/pushkit/pkg/richpush"
)

// DefaultCap is the retained-record limit applied when no option overrides
// it.
const DefaultCap = 100

// Inbox is the device-local notification store: a capped, newest-first,
// read-tracked list over a pluggable Storage backend.
//
// Storage failures never propagate to the caller as errors from reads or
// Save; they are logged and the operation degrades (see the per-method
// comments). Mutations return the backend error so callers that care can
// inspect it, but unknown ids are always silent no-ops.
type Inbox struct {
	storage Storage
	limit   int
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures an Inbox.
type Option func(*Inbox)

// WithCap overrides the retained-record limit. Values below 1 are ignored.
func WithCap(limit int) Option {
	return func(i *Inbox) {
		if limit > 0 {
			i.limit = limit
		}
	}
}

// WithLogger sets the logger used for degraded-operation reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Inbox) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Inbox) {
		if now != nil {
			i.now = now
		}
	}
}

// New creates an inbox over the given storage backend.
func New(storage Storage, opts ...Option) *Inbox {
	i := &Inbox{
		storage: storage,
		limit:   DefaultCap,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Cap returns the configured retained-record limit.
func (i *Inbox) Cap() int {
	return i.limit
}

// Save stamps the notification with a fresh id, the current timestamp, and
// unread state, then appends it to storage, trimming beyond the cap. The
// constructed record is returned even when persistence fails; the failure
// is only logged.
func (i *Inbox) Save(ctx context.Context, n richpush.Notification) Stored {
	item := newStored(n, i.now())

	if err := i.storage.Append(ctx, item, i.limit); err != nil {
		i.logger.LogAttrs(ctx, slog.LevelError, "failed to persist notification, returning unpersisted record",
			slog.String("id", item.ID),
			slog.String("type", string(n.Type)),
			slog.Any("error", err),
		)
	}
	return item
}

// All returns every stored record sorted descending by timestamp. The sort
// is applied even though storage order should already satisfy it, to
// tolerate out-of-band writes. Storage failures degrade to an empty slice.
func (i *Inbox) All(ctx context.Context) []Stored {
	items, err := i.storage.All(ctx)
	if err != nil {
		i.logger.LogAttrs(ctx, slog.LevelError, "failed to read inbox, returning empty list",
			slog.Any("error", err),
		)
		return []Stored{}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Timestamp > items[b].Timestamp
	})
	return items
}

// UnreadCount returns the number of unread records, degrading to zero on
// storage failure.
func (i *Inbox) UnreadCount(ctx context.Context) int {
	count, err := i.storage.CountUnread(ctx)
	if err != nil {
		i.logger.LogAttrs(ctx, slog.LevelError, "failed to count unread notifications",
			slog.Any("error", err),
		)
		return 0
	}
	return count
}

// MarkRead marks a single record as read. Marking an already-read or
// unknown id is a no-op.
func (i *Inbox) MarkRead(ctx context.Context, id string) error {
	return i.storage.MarkRead(ctx, id)
}

// MarkAllRead marks every record as read.
func (i *Inbox) MarkAllRead(ctx context.Context) error {
	return i.storage.MarkAllRead(ctx)
}

// Delete removes a single record. Unknown ids are a no-op.
func (i *Inbox) Delete(ctx context.Context, id string) error {
	return i.storage.Delete(ctx, id)
}

// Clear removes the entire stored collection.
func (i *Inbox) Clear(ctx context.Context) error {
	return i.storage.Clear(ctx)
}

// Today returns records received since local midnight, newest first.
func (i *Inbox) Today(ctx context.Context) []Stored {
	start := startOfDay(i.now()).UnixMilli()
	return i.since(ctx, start)
}

// Week returns records received in the last seven days, newest first.
func (i *Inbox) Week(ctx context.Context) []Stored {
	start := i.now().Add(-7 * 24 * time.Hour).UnixMilli()
	return i.since(ctx, start)
}

func (i *Inbox) since(ctx context.Context, startMilli int64) []Stored {
	all := i.All(ctx)
	filtered := make([]Stored, 0, len(all))
	for _, item := range all {
		if item.Timestamp >= startMilli {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
