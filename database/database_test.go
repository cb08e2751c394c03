package database

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assets.db")

	db, err := Initialize(ctx, path, testLogger())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Initialize(ctx, path, testLogger())
	require.NoError(t, err)
	defer db.Close()

	var applied int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&applied))
	assert.Equal(t, 2, applied)

	var foreignKeys int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)
}

func TestRunMigrationsInVersionOrder(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "order.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"m/002_add_column.sql":   {Data: []byte("ALTER TABLE widgets ADD COLUMN colour TEXT;")},
		"m/001_create_table.sql": {Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);")},
		"m/README.md":            {Data: []byte("ignored")},
	}

	require.NoError(t, runMigrationsFrom(ctx, db, fsys, "m", testLogger()))
	require.NoError(t, runMigrationsFrom(ctx, db, fsys, "m", testLogger()))

	_, err = db.ExecContext(ctx, "INSERT INTO widgets (id, colour) VALUES ('w1', 'red')")
	assert.NoError(t, err)
}

func TestDataSourceName(t *testing.T) {
	assert.Equal(t, "file:assets.db?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dataSourceName("assets.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dataSourceName("file::memory:?cache=shared"))
}

func TestRunMigrationsErrors(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "broken.db"))
	require.NoError(t, err)
	defer db.Close()

	err = runMigrationsFrom(ctx, db, fstest.MapFS{"m/README.md": {Data: []byte("nothing here")}}, "m", testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load migrations: no migration files found in m")

	fsys := fstest.MapFS{
		"m/001_create_table.sql": {Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);")},
		"m/002_bad.sql":          {Data: []byte("ALTER TABLE gadgets ADD COLUMN colour TEXT;")},
	}
	err = runMigrationsFrom(ctx, db, fsys, "m", testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migration 002_bad.sql")

	var applied int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&applied))
	assert.Equal(t, 1, applied)
}
