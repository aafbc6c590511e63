package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/paykit/checkout-gateway/pkg/postgres"
)

const kvTable = "kv_store"

// PgKVStore persists key-value pairs in postgres, surviving gateway restarts.
type PgKVStore struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgKVStore(pg *postgres.Postgres) *PgKVStore {
	return &PgKVStore{db: pg.Pool, builder: pg.Builder}
}

func (s *PgKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	sql, args, err := s.builder.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build get query: %w", err)
	}

	var value string
	err = s.db.QueryRow(ctx, sql, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *PgKVStore) Set(ctx context.Context, key, value string) error {
	sql, args, err := s.builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *PgKVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	sql, args, err := s.builder.
		Delete(kvTable).
		Where(squirrel.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}
