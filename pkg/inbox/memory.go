package inbox

import (
	"context"
	"sync"
)

// MemoryStorage keeps the inbox list in process memory behind a mutex.
// Suitable for tests and single-process use; nothing survives a restart.
type MemoryStorage struct {
	items []Stored
	mu    sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory inbox backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Append(ctx context.Context, item Stored, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]Stored{item}, s.items...)
	if limit > 0 && len(s.items) > limit {
		s.items = s.items[:limit]
	}
	return nil
}

func (s *MemoryStorage) All(ctx context.Context) ([]Stored, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Stored, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStorage) MarkRead(ctx context.Context, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idSet := toSet(ids)
	for i := range s.items {
		if idSet[s.items[i].ID] {
			s.items[i].IsRead = true
		}
	}
	return nil
}

func (s *MemoryStorage) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].IsRead = true
	}
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idSet := toSet(ids)
	filtered := s.items[:0]
	for _, item := range s.items {
		if !idSet[item.ID] {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
	return nil
}

func (s *MemoryStorage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return nil
}

func (s *MemoryStorage) CountUnread(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		if !item.IsRead {
			count++
		}
	}
	return count, nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
