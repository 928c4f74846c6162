package checks

import (
	"path/filepath"
	"testing"

	"mom-toolkit/feature/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEnvironment(t *testing.T) {
	env := map[string]string{"MOM_INSTALL": "/opt/mom", "PYTHONPATH": ""}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	entries := []manifest.Entry{
		{Name: "MOM_INSTALL", Critical: true},
		{Name: "PYTHONPATH", Critical: true},
		{Name: "MOM_EXTRA"},
	}

	results := CheckEnvironment(entries, lookup)
	require.Len(t, results, 3)

	assert.True(t, results[0].Status)
	assert.Equal(t, "/opt/mom", results[0].Detail)
	assert.True(t, results[1].Status, "set but empty still counts as set")
	assert.False(t, results[2].Status)
	assert.Equal(t, "NOT SET", results[2].Detail)
	for _, r := range results {
		assert.Equal(t, CategoryEnvironment, r.Category)
	}
}

func TestCheckEnvironment_ProcessEnv(t *testing.T) {
	t.Setenv("MOM_INSTALL", "/srv/mom")

	results := CheckEnvironment([]manifest.Entry{{Name: "MOM_INSTALL"}}, nil)
	assert.True(t, results[0].Status)
	assert.Equal(t, "/srv/mom", results[0].Detail)
}

func TestCheckDirectoriesAndFiles(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "common")
	touch(t, root, "mud")
	touch(t, root, "projects/mom.cfg")
	mkdir(t, root, "main.cs.dso")

	dirs := CheckDirectories(root, []manifest.Entry{
		{Name: "common", Path: "common", Critical: true, Source: "$MOM_INSTALL/common/"},
		{Name: "mud", Path: "mud", Critical: true},
		{Name: "serverconfig", Path: "serverconfig"},
	})
	require.Len(t, dirs, 3)
	assert.True(t, dirs[0].Status)
	assert.Equal(t, filepath.Join(root, "common"), dirs[0].Path)
	assert.Contains(t, dirs[0].Detail, "Source: $MOM_INSTALL/common/")
	assert.False(t, dirs[1].Status, "a file is not a directory")
	assert.False(t, dirs[2].Status)
	assert.False(t, dirs[2].Critical)

	files := CheckFiles(root, []manifest.Entry{
		{Name: "projects/mom.cfg", Path: "projects/mom.cfg", Critical: true},
		{Name: "main.cs.dso", Path: "main.cs.dso", Critical: true},
	})
	assert.True(t, files[0].Status)
	assert.False(t, files[1].Status, "a directory is not a file")
	assert.True(t, files[1].Blocking())
}

func TestCheckPaths_MissingEntriesNeverStop(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	root := filepath.Join(t.TempDir(), "does-not-exist")

	dirs := CheckDirectories(root, m.Directories)
	files := CheckFiles(root, m.Files)

	assert.Len(t, dirs, len(m.Directories))
	assert.Len(t, files, len(m.Files))
	for _, r := range append(dirs, files...) {
		assert.False(t, r.Status, r.Name)
	}
}
