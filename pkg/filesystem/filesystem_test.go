package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fsys types.FS, name, content string) {
	t.Helper()
	w, err := fsys.Create(name, 0644)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func readFile(t *testing.T, fsys types.FS, name string) string {
	t.Helper()
	r, err := fsys.Open(name)
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")

	writeFile(t, fsys, testFile, "hello world")
	assert.Equal(t, "hello world", readFile(t, fsys, testFile))

	// Create truncates
	writeFile(t, fsys, testFile, "hi")
	assert.Equal(t, "hi", readFile(t, fsys, testFile))

	require.NoError(t, fsys.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))
	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, fsys.Symlink(testFile, link))
	target, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, testFile, target)

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	hard := filepath.Join(tmpDir, "hard")
	require.NoError(t, fsys.Link(testFile, hard))
	a, err := fsys.Stat(testFile)
	require.NoError(t, err)
	b, err := fsys.Stat(hard)
	require.NoError(t, err)
	assert.True(t, os.SameFile(a, b))

	require.NoError(t, fsys.Remove(link))
	_, err = fsys.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.RemoveAll(filepath.Join(tmpDir, "sub")))
	_, err = fsys.Stat(filepath.Join(tmpDir, "sub"))
	assert.True(t, os.IsNotExist(err))
}

func TestAferoFS_MemMap(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/repo/nvim", 0755))
	writeFile(t, fsys, "/repo/nvim/init.lua", "-- init")
	assert.Equal(t, "-- init", readFile(t, fsys, "/repo/nvim/init.lua"))

	entries, err := fsys.ReadDir("/repo/nvim")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "init.lua", entries[0].Name())

	_, err = fsys.Open("/repo/nvim")
	assert.Error(t, err, "opening a directory for reading should fail")

	info, err := fsys.Lstat("/repo/nvim/init.lua")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	assert.Error(t, fsys.Symlink("/repo/nvim", "/home/nvim"))
	assert.Error(t, fsys.Link("/repo/nvim/init.lua", "/home/init.lua"))
	_, err = fsys.Readlink("/repo/nvim/init.lua")
	assert.Error(t, err)
}

func TestAferoFS_OsBacked(t *testing.T) {
	fsys := NewAferoFS(afero.NewOsFs())
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src")
	writeFile(t, fsys, src, "x")

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, fsys.Symlink(src, link))

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	target, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, src, target)
}
