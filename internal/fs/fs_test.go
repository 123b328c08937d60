package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ReadWrite(t *testing.T) {
	m := NewMemory()
	m.AddFile("/project/src/a.js", "debugger;")

	data, err := m.ReadFile("/project/src/a.js")
	require.NoError(t, err)
	assert.Equal(t, "debugger;", string(data))

	require.NoError(t, m.WriteFile("/project/src/a.js", []byte("ok"), 0o644))
	got, ok := m.Content("/project/src/a.js")
	require.True(t, ok)
	assert.Equal(t, "ok", got)

	_, err = m.ReadFile("/project/missing.js")
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestMemory_ReadOnly(t *testing.T) {
	m := NewMemory()
	m.AddFile("/a.js", "x")
	m.SetReadOnly(true)

	err := m.WriteFile("/a.js", []byte("y"), 0o644)
	assert.ErrorIs(t, err, ErrReadOnly)
	got, _ := m.Content("/a.js")
	assert.Equal(t, "x", got)
}

func TestMemory_ImplicitDirectories(t *testing.T) {
	m := NewMemory()
	m.AddFile("/p/b.js", "")
	m.AddFile("/p/a.js", "")
	m.AddFile("/p/lib/c.ts", "")
	m.AddDir("/p/empty")

	info, err := m.Stat("/p/lib")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := m.ReadDir("/p")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.js", "b.js", "empty", "lib"}, names)
}

func TestMemory_Symlinks(t *testing.T) {
	m := NewMemory()
	m.AddFile("/p/real/a.js", "x")
	m.AddSymlink("/p/link", "real")
	m.AddSymlink("/p/loop1", "loop2")
	m.AddSymlink("/p/loop2", "loop1")

	data, err := m.ReadFile("/p/link/a.js")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	info, err := m.Lstat("/p/link")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&iofs.ModeSymlink)

	target, err := m.Readlink("/p/link")
	require.NoError(t, err)
	assert.Equal(t, "real", target)

	k1, err := m.FileKey("/p/link/a.js")
	require.NoError(t, err)
	k2, err := m.FileKey("/p/real/a.js")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	_, err = m.Stat("/p/loop1")
	assert.Error(t, err)
}

func TestOS_WriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	osfs := NewOS()
	require.NoError(t, osfs.WriteFile(path, []byte("new"), 0o644))

	data, err := osfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := osfs.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestOS_FileKeyFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.js")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	link := filepath.Join(dir, "link.js")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	osfs := NewOS()
	k1, err := osfs.FileKey(target)
	require.NoError(t, err)
	k2, err := osfs.FileKey(link)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}
