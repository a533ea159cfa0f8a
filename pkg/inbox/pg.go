package inbox

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/wanderlabs/pushkit/pkg/richpush"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PGStorage keeps the inbox in a PostgreSQL table. Append inserts the new
// row and deletes rows beyond the cap inside one transaction, so the
// append-and-trim is atomic even with concurrent producers.
type PGStorage struct {
	pool *pgxpool.Pool
}

// NewPGStorage creates a Postgres-backed inbox over an existing pool. Run
// Migrate once at startup before using it.
func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

// Migrate applies the embedded schema migrations. goose only speaks
// database/sql, so the pgx pool is bridged through stdlib.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *PGStorage) Append(ctx context.Context, item Stored, limit int) error {
	payload, err := json.Marshal(item.Notification)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}

	receivedAt, err := time.Parse(time.RFC3339, item.ReceivedAt)
	if err != nil {
		receivedAt = time.UnixMilli(item.Timestamp)
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.Exec(ctx,
		`INSERT INTO inbox_notifications (id, payload, timestamp_ms, is_read, received_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID, payload, item.Timestamp, item.IsRead, receivedAt,
	)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}

	if limit > 0 {
		_, err = tx.Exec(ctx,
			`DELETE FROM inbox_notifications
			 WHERE id NOT IN (
			     SELECT id FROM inbox_notifications
			     ORDER BY timestamp_ms DESC, id DESC
			     LIMIT $1
			 )`,
			limit,
		)
		if err != nil {
			return errors.Join(ErrStorageFailure, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *PGStorage) All(ctx context.Context) ([]Stored, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, payload, timestamp_ms, is_read, received_at
		 FROM inbox_notifications
		 ORDER BY timestamp_ms DESC, id DESC`,
	)
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}
	defer rows.Close()

	var items []Stored
	for rows.Next() {
		var (
			item       Stored
			payload    []byte
			receivedAt time.Time
		)
		if err := rows.Scan(&item.ID, &payload, &item.Timestamp, &item.IsRead, &receivedAt); err != nil {
			return nil, errors.Join(ErrStorageFailure, err)
		}

		var n richpush.Notification
		if err := json.Unmarshal(payload, &n); err != nil {
			return nil, errors.Join(ErrCorruptRecord, err)
		}
		n.Timestamp = item.Timestamp
		item.Notification = n
		item.ReceivedAt = receivedAt.Format(time.RFC3339)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return items, nil
}

func (s *PGStorage) MarkRead(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.pool.Exec(ctx,
		`UPDATE inbox_notifications SET is_read = TRUE WHERE id = ANY($1)`, ids)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *PGStorage) MarkAllRead(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE inbox_notifications SET is_read = TRUE WHERE NOT is_read`)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *PGStorage) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.pool.Exec(ctx,
		`DELETE FROM inbox_notifications WHERE id = ANY($1)`, ids)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *PGStorage) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM inbox_notifications`)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *PGStorage) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inbox_notifications WHERE NOT is_read`).Scan(&count)
	if err != nil {
		return 0, errors.Join(ErrStorageFailure, err)
	}
	return count, nil
}
