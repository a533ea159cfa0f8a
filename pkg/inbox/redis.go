package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the namespaced list key holding the inbox.
const DefaultRedisKey = "pushkit:inbox"

// RedisStorage keeps the inbox as a single Redis list, newest first.
//
// Append is an LPUSH plus LTRIM inside one pipeline, which gives the
// atomic append-and-trim the in-memory and file-backed renditions of this
// store lack: two producers appending concurrently cannot lose each
// other's record.
type RedisStorage struct {
	client *redis.Client
	key    string
}

// RedisOption configures a RedisStorage.
type RedisOption func(*RedisStorage)

// WithRedisKey overrides the list key, e.g. to namespace per device.
func WithRedisKey(key string) RedisOption {
	return func(s *RedisStorage) {
		if key != "" {
			s.key = key
		}
	}
}

// NewRedisStorage creates a Redis-backed inbox over an existing client.
func NewRedisStorage(client *redis.Client, opts ...RedisOption) *RedisStorage {
	s := &RedisStorage{
		client: client,
		key:    DefaultRedisKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRedisStorageFromURL connects to the given redis:// URL, verifies the
// connection with a ping, and returns a storage over it.
func NewRedisStorageFromURL(ctx context.Context, url string, opts ...RedisOption) (*RedisStorage, error) {
	connOpt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	client := redis.NewClient(connOpt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return NewRedisStorage(client, opts...), nil
}

func (s *RedisStorage) Append(ctx context.Context, item Stored, limit int) error {
	data, err := json.Marshal(item)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, data)
	if limit > 0 {
		pipe.LTrim(ctx, s.key, 0, int64(limit-1))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *RedisStorage) All(ctx context.Context) ([]Stored, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	items := make([]Stored, 0, len(raw))
	for _, entry := range raw {
		var item Stored
		if err := json.Unmarshal([]byte(entry), &item); err != nil {
			return nil, errors.Join(ErrCorruptRecord, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *RedisStorage) MarkRead(ctx context.Context, ids ...string) error {
	return s.rewrite(ctx, func(items []Stored) []Stored {
		idSet := toSet(ids)
		for i := range items {
			if idSet[items[i].ID] {
				items[i].IsRead = true
			}
		}
		return items
	})
}

func (s *RedisStorage) MarkAllRead(ctx context.Context) error {
	return s.rewrite(ctx, func(items []Stored) []Stored {
		for i := range items {
			items[i].IsRead = true
		}
		return items
	})
}

func (s *RedisStorage) Delete(ctx context.Context, ids ...string) error {
	return s.rewrite(ctx, func(items []Stored) []Stored {
		idSet := toSet(ids)
		filtered := items[:0]
		for _, item := range items {
			if !idSet[item.ID] {
				filtered = append(filtered, item)
			}
		}
		return filtered
	})
}

func (s *RedisStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *RedisStorage) CountUnread(ctx context.Context) (int, error) {
	items, err := s.All(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, item := range items {
		if !item.IsRead {
			count++
		}
	}
	return count, nil
}

// rewrite replaces the whole list with a transformed copy inside a watch
// transaction, retrying on concurrent modification. Appends racing with a
// rewrite therefore cannot be lost.
func (s *RedisStorage) rewrite(ctx context.Context, transform func([]Stored) []Stored) error {
	const attempts = 3

	for range attempts {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			raw, err := tx.LRange(ctx, s.key, 0, -1).Result()
			if err != nil {
				return err
			}

			items := make([]Stored, 0, len(raw))
			for _, entry := range raw {
				var item Stored
				if err := json.Unmarshal([]byte(entry), &item); err != nil {
					return errors.Join(ErrCorruptRecord, err)
				}
				items = append(items, item)
			}

			items = transform(items)

			encoded := make([]any, 0, len(items))
			// RPUSH preserves slice order, so newest-first stays canonical.
			for _, item := range items {
				data, err := json.Marshal(item)
				if err != nil {
					return err
				}
				encoded = append(encoded, data)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, s.key)
				if len(encoded) > 0 {
					pipe.RPush(ctx, s.key, encoded...)
				}
				return nil
			})
			return err
		}, s.key)

		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return errors.Join(ErrStorageFailure, err)
		}
	}
	return errors.Join(ErrStorageFailure, fmt.Errorf("list %q kept changing during rewrite", s.key))
}
