package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// createDB writes a SQLite file with the given tables.
func createDB(t *testing.T, path string, tables ...string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	for _, table := range tables {
		require.NoError(t, db.Exec("CREATE TABLE "+table+" (id INTEGER PRIMARY KEY, name TEXT)").Error)
	}
	require.NoError(t, Close(db))
}

func TestOpen(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "master.db")

		db, err := Open(path, Config{TimeoutSeconds: 1})
		assert.Error(t, err)
		assert.Nil(t, db)

		// Read-only open must not create the file
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Existing File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "character.db")
		createDB(t, path, "character")

		db, err := Open(path, Config{})
		require.NoError(t, err)
		assert.NoError(t, Close(db))
	})

	t.Run("Path With Spaces", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "Program Files")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		path := filepath.Join(dir, "world.db")
		createDB(t, path, "zone")

		db, err := Open(path, Config{})
		require.NoError(t, err)
		assert.NoError(t, Close(db))
	})
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
