package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litestore/lib/store"
)

func TestNewFactory_RequiresDataRoot(t *testing.T) {
	_, err := store.NewFactory(store.Config{})
	require.Error(t, err)
}

func TestConnect_CreateIfMissingCreatesEmptyFile(t *testing.T) {
	root := t.TempDir()
	factory, err := store.NewFactory(store.Config{DataRoot: root, ForeignKeys: true})
	require.NoError(t, err)

	_, err = factory.Connect("app.db", true)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "app.db"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestConnect_CreateIfMissingIsIdempotent(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()

	conn, err := factory.Connect("app.db", true)
	require.NoError(t, err)

	_, err = store.ExecuteNonQuery(ctx, conn, "CREATE TABLE t (id INTEGER)", nil)
	require.NoError(t, err)
	_, err = store.ExecuteNonQuery(ctx, conn, "INSERT INTO t (id) VALUES (1)", nil)
	require.NoError(t, err)

	// A second create-if-missing connect must not raise and must not
	// erase existing data.
	conn, err = factory.Connect("app.db", true)
	require.NoError(t, err)

	rows, err := store.ExecuteQuery(ctx, conn, "SELECT * FROM t", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestConnect_ReturnsClosedHandle(t *testing.T) {
	factory := newTestFactory(t)

	conn, err := factory.Connect("app.db", true)
	require.NoError(t, err)

	// No connection is established by Connect itself.
	require.Error(t, conn.Ping(context.Background()))
}

func TestConnect_ConnectionStringCarriesResolvedPath(t *testing.T) {
	root := t.TempDir()
	factory, err := store.NewFactory(store.Config{DataRoot: root, ForeignKeys: true})
	require.NoError(t, err)

	conn, err := factory.Connect("app.db", false)
	require.NoError(t, err)

	assert.Contains(t, conn.GetConnectionString(), filepath.Join(root, "app.db"))
}

func TestConnect_RejectsInvalidFileNames(t *testing.T) {
	factory := newTestFactory(t)

	for _, name := range []string{
		"",
		".",
		"..",
		"sub/app.db",
		`sub\app.db`,
		"../escape.db",
		"../../etc/passwd",
	} {
		_, err := factory.Connect(name, false)
		assert.Error(t, err, "file name %q", name)
	}
}

func TestConnect_FreshDatabaseAcceptsStatements(t *testing.T) {
	factory := newTestFactory(t)

	conn, err := factory.Connect("fresh.db", true)
	require.NoError(t, err)

	rows, err := store.ExecuteQuery(context.Background(), conn,
		"SELECT name FROM sqlite_master WHERE type='table'", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
