package client

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScript_Unix(t *testing.T) {
	base := t.TempDir()
	dest := filepath.Join(base, "mom_extracted")
	require.NoError(t, os.Mkdir(dest, 0755))

	path, err := WriteScript(dest, "unix", ScriptData{InstallPath: dest, ArchBits: "32-bit", ArchPlatform: "Windows", HostBits: 64})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "launch_server.sh"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	script := string(data)
	assert.Contains(t, script, "#!/bin/bash")
	assert.Contains(t, script, `export MOM_INSTALL="`+dest+`"`)
	assert.Contains(t, script, "# pytge: 32-bit Windows")
	assert.Contains(t, script, "# Python: 64-bit")
	assert.Contains(t, script, "LD_LIBRARY_PATH")

	if runtime.GOOS != "windows" {
		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), st.Mode().Perm())
	}
}

func TestWriteScript_Windows(t *testing.T) {
	base := t.TempDir()
	dest := filepath.Join(base, "mom_extracted")

	path, err := WriteScript(dest, "windows", ScriptData{InstallPath: `C:\mom\mom_extracted`, ArchBits: "unknown", ArchPlatform: "unknown", HostBits: 32})
	require.NoError(t, err)
	assert.Equal(t, "launch_server.bat", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `set MOM_INSTALL=C:\mom\mom_extracted`)
	assert.Contains(t, string(data), `%MOM_INSTALL%\library.zip`)
	assert.Contains(t, string(data), "pause")
}

func TestWriteScript_UnwritableLocation(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "mom_extracted")

	_, err := WriteScript(dest, "unix", ScriptData{})
	assert.Error(t, err)
}
