package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_FileAppliesPragmas(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dict.db")

	db, err := Open(ctx, path, WithMkdirAll(), WithBusyTimeout(5000))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var journal string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journal))
	assert.Equal(t, "wal", journal)

	var timeout int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := Open(ctx, MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	n, err := Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = Migrate(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, n)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ecdict").Scan(&count))
	assert.Zero(t, count)
}

func TestOpen_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "a", "b", "c.db"))
	assert.Error(t, err)
}
