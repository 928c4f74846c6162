package client

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("data:"+rel), 0644))
	return path
}

// peBinary returns a minimal PE image header for the given machine type.
func peBinary(machine uint16) []byte {
	buf := make([]byte, 0x80+8)
	copy(buf, "MZ")
	binary.LittleEndian.PutUint32(buf[0x3c:], 0x80)
	copy(buf[0x80:], "PE\x00\x00")
	binary.LittleEndian.PutUint16(buf[0x84:], machine)
	return buf
}

func writeZip(t *testing.T, path string, names ...string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if name[len(name)-1] != '/' {
			_, err = w.Write([]byte("# " + name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
}

// fakeClient builds a client installation with a 32-bit Windows pytge.
func fakeClient(t *testing.T, missions int) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pytge.pyd"), peBinary(0x14c), 0644))
	touch(t, root, "tgenative.pyd")
	touch(t, root, "main.cs.dso")
	touch(t, root, "common/server/missionLoad.cs")
	for i := 0; i < missions; i++ {
		touch(t, root, filepath.Join("minions.of.mirth", "testgame", "zones", "zone"+string(rune('a'+i))+".mis"))
	}
	writeZip(t, filepath.Join(root, "library.zip"),
		"mud/",
		"mud/__init__.pyo",
		"mud/world/zone.pyo",
		"sqlobject/__init__.pyo",
		"encodings/__init__.pyo",
	)
	return root
}
