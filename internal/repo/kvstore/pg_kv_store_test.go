package kvstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*PgKVStore, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	store := &PgKVStore{
		db:      mock,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
	return store, mock
}

func TestPgKVStore_Get(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		store, mock := newTestStore(t)
		mock.ExpectQuery(query).
			WithArgs("session:s1:wallet_token").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("tok"))

		value, ok, err := store.Get(context.Background(), "session:s1:wallet_token")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "tok", value)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		store, mock := newTestStore(t)
		mock.ExpectQuery(query).
			WithArgs("nope").
			WillReturnRows(pgxmock.NewRows([]string{"value"}))

		_, ok, err := store.Get(context.Background(), "nope")

		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()

		store, mock := newTestStore(t)
		mock.ExpectQuery(query).
			WithArgs("k").
			WillReturnError(errors.New("connection closed"))

		_, _, err := store.Get(context.Background(), "k")

		require.Error(t, err)
	})
}

func TestPgKVStore_Set(t *testing.T) {
	t.Parallel()

	store, mock := newTestStore(t)
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO kv_store (key,value,updated_at) VALUES ($1,$2,$3) ` +
			`ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
	)).
		WithArgs("k", "v", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.Set(context.Background(), "k", "v"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgKVStore_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes all given keys", func(t *testing.T) {
		t.Parallel()

		store, mock := newTestStore(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_store WHERE key IN ($1,$2)`)).
			WithArgs("a", "b").
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		require.NoError(t, store.Delete(context.Background(), "a", "b"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no keys is a no-op", func(t *testing.T) {
		t.Parallel()

		store, mock := newTestStore(t)

		require.NoError(t, store.Delete(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", "v"))
	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, m.Delete(ctx, "k"))
	_, ok, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
