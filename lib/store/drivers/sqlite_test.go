package drivers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litestore/lib/store/interfaces"
)

func newTestDB(t *testing.T) interfaces.Database {
	t.Helper()

	db, err := NewSQLiteDB(interfaces.Config{
		FilePath:    filepath.Join(t.TempDir(), "driver.db"),
		ForeignKeys: true,
	})
	require.NoError(t, err)
	return db
}

func TestSQLiteDB_StatementsRequireOpenHandle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Every statement method on a closed handle reports ErrNotConnected
	// instead of panicking on the nil inner connection.
	assert.NotPanics(t, func() {
		_, err := db.Exec(ctx, "CREATE TABLE t (id INTEGER)")
		assert.ErrorIs(t, err, ErrNotConnected)

		_, err = db.Query(ctx, "SELECT 1")
		assert.ErrorIs(t, err, ErrNotConnected)

		assert.ErrorIs(t, db.Ping(ctx), ErrNotConnected)
	})
}

func TestSQLiteDB_ConnectIsIdempotentAndCloseable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Connect(ctx))
	require.NoError(t, db.Connect(ctx))
	require.NoError(t, db.Ping(ctx))

	require.NoError(t, db.Close())
	// Close on an already closed handle is a no-op.
	require.NoError(t, db.Close())

	// The handle can be reopened after a close.
	require.NoError(t, db.Connect(ctx))
	defer db.Close()

	result, err := db.Exec(ctx, "CREATE TABLE t (id INTEGER)")
	require.NoError(t, err)

	affected, err := result.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestSQLiteDB_ForeignKeysEnforced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Connect(ctx))
	defer db.Close()

	_, err := db.Exec(ctx, "CREATE TABLE parents (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "CREATE TABLE children (id INTEGER PRIMARY KEY, parent_id INTEGER REFERENCES parents(id))")
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO children (id, parent_id) VALUES (1, 99)")
	assert.Error(t, err, "orphan insert should violate the foreign key")
}
