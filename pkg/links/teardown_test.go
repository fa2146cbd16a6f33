package links

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/testutil"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeardown_SymlinkToDirectoryKeepsReferent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteRepo(map[string]string{
		"nvim/init.lua":        "-- init",
		"nvim/lua/plugins.lua": "return {}",
	})
	l := newLinker(env)

	target := env.HomePath(".config", "nvim")
	_, err := l.Apply(env.RepoPath("nvim"), target, types.LinkModeSoft)
	require.NoError(t, err)

	outcome, err := l.Teardown(target)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, outcome)

	_, err = os.Lstat(target)
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, env.RepoPath("nvim", "init.lua"))
	assert.FileExists(t, env.RepoPath("nvim", "lua", "plugins.lua"))
}

func TestTeardown_DanglingSymlink(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	target := env.HomePath(".dangling")
	require.NoError(t, os.Symlink(env.RepoPath("gone"), target))

	_, err := newLinker(env).Teardown(target)
	require.NoError(t, err)
	_, err = os.Lstat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestTeardown_Directory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	testutil.WriteTree(t, env.HomeDir, map[string]string{
		".config/tmux/tmux.conf": "x",
		".config/tmux/a/b/c":     "y",
	})

	_, err := newLinker(env).Teardown(env.HomePath(".config", "tmux"))
	require.NoError(t, err)
	assert.NoDirExists(t, env.HomePath(".config", "tmux"))
	assert.DirExists(t, env.HomePath(".config"))
}

func TestTeardown_File(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteRepo(map[string]string{"gitconfig": "[user]"})
	l := newLinker(env)

	_, err := l.Apply(env.RepoPath("gitconfig"), env.HomePath(".gitconfig"), types.LinkModeHard)
	require.NoError(t, err)

	_, err = l.Teardown(env.HomePath(".gitconfig"))
	require.NoError(t, err)
	assert.NoFileExists(t, env.HomePath(".gitconfig"))
	assert.FileExists(t, env.RepoPath("gitconfig"))
}

func TestTeardown_TargetNotFound(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := newLinker(env).Teardown(env.HomePath(".nothing"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetNotFound))
	assert.Equal(t, env.HomePath(".nothing"), errors.GetErrorDetails(err)["target"])
}

func TestTeardown_InMemory(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTreeFS(t, fsys, "/home/u", map[string]string{
		".tmux/tmux.conf": "x",
		".vimrc":          "y",
	})
	l := New(Options{FS: fsys})

	_, err := l.Teardown("/home/u/.tmux")
	require.NoError(t, err)
	_, err = l.Teardown("/home/u/.vimrc")
	require.NoError(t, err)

	entries, err := fsys.ReadDir("/home/u")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTeardown_DryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	testutil.WriteTree(t, env.HomeDir, map[string]string{".vimrc": "x"})
	l := New(Options{FS: env.FS, DryRun: true})

	outcome, err := l.Teardown(env.HomePath(".vimrc"))
	require.NoError(t, err)
	assert.Equal(t, OutcomePlanned, outcome)
	assert.FileExists(t, filepath.Join(env.HomeDir, ".vimrc"))
}
