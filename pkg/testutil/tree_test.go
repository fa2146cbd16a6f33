package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadTree(t *testing.T) {
	files := map[string]string{
		"a.txt":        "a",
		"nested/b.txt": "b",
		"nested/d/e/f": "f",
		"nested/empty": "",
	}

	t.Run("os", func(t *testing.T) {
		root := t.TempDir()
		WriteTree(t, root, files)
		assert.Equal(t, files, ReadTree(t, root))
	})

	t.Run("memory", func(t *testing.T) {
		fsys := NewMemoryFS()
		WriteTreeFS(t, fsys, "/root", files)
		assert.Equal(t, files, ReadTreeFS(t, fsys, "/root"))
	})
}

func TestNewTestEnvironment(t *testing.T) {
	env := NewTestEnvironment(t)

	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.DirExists(t, env.HomeDir)
	assert.DirExists(t, env.DotfilesRoot)

	home, err := env.Home()()
	require.NoError(t, err)
	assert.Equal(t, env.HomeDir, home)

	env.WriteRepo(map[string]string{"zshrc": "export X=1"})
	assert.FileExists(t, env.RepoPath("zshrc"))
	assert.Equal(t, filepath.Join(env.HomeDir, ".zshrc"), env.HomePath(".zshrc"))
	assert.False(t, IsSymlink(t, env.RepoPath("zshrc")))
}
