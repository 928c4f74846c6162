package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.db")
	createDB(t, path, "zone", "account", "world")

	db, err := Open(path, Config{})
	require.NoError(t, err)
	defer Close(db)

	tables, err := ListTables(db)
	assert.NoError(t, err)
	assert.Equal(t, []string{"account", "world", "zone"}, tables)
}

func TestListTables_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	createDB(t, path)

	db, err := Open(path, Config{})
	require.NoError(t, err)
	defer Close(db)

	tables, err := ListTables(db)
	assert.NoError(t, err)
	assert.Empty(t, tables)
}

func TestListTables_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	require.NoError(t, os.WriteFile(path, []byte("this is definitely not sqlite, just some text padding it out"), 0o644))

	db, err := Open(path, Config{})
	if err != nil {
		// Some sqlite builds reject the header on ping already
		assert.Contains(t, err.Error(), "database")
		return
	}
	defer Close(db)

	_, err = ListTables(db)
	assert.Error(t, err)
}

func TestListTables_NilDB(t *testing.T) {
	_, err := ListTables(nil)
	assert.Error(t, err)
}
