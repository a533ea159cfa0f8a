// Package inbox is the device-local notification store: a capped,
// newest-first, read-tracked list of received rich notifications with
// date grouping and relative-time formatting helpers.
//
// # Architecture
//
//   - Storage: pluggable persistence of the capped list. MemoryStorage is
//     for tests and single-process use; RedisStorage keeps the list under
//     one namespaced key with an atomic LPUSH+LTRIM append; PGStorage
//     keeps rows in a table with the append-and-trim inside a transaction.
//
//   - Inbox: the service callers use. It stamps records (id, timestamp,
//     unread, received-at), enforces the cap on every insert (oldest
//     evicted first, default 100), re-sorts reads defensively, and
//     recovers locally from storage failures: Save still returns the
//     constructed record, reads degrade to an empty list, and everything
//     is logged rather than surfaced to the UI layer.
//
// # Usage
//
//	box := inbox.New(inbox.NewMemoryStorage(), inbox.WithCap(100))
//
//	stored := box.Save(ctx, notif)
//	groups := inbox.GroupByDate(box.All(ctx), time.Now())
//	badge := box.UnreadCount(ctx)
//	_ = box.MarkRead(ctx, stored.ID)
//
// The memory backend shares the read-modify-write weakness of the original
// key-value rendition of this store: a trim racing another writer is
// last-writer-wins. The Redis and Postgres backends close that race; prefer
// them whenever two execution contexts feed the same inbox.
package inbox
