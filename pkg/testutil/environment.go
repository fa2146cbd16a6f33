// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolated home/repository layouts for tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// TestEnvironment is a temp directory holding a fake home directory and a
// dotfiles repository
type TestEnvironment struct {
	Root         string
	HomeDir      string
	DotfilesRoot string
	FS           types.FS

	t *testing.T
}

// NewTestEnvironment creates the layout and points HOME, XDG_STATE_HOME and
// XDG_CONFIG_HOME inside it for the duration of the test
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	// macOS temp dirs live behind a /var -> /private/var symlink; resolve it
	// so paths compare equal to what the OS reports back.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	env := &TestEnvironment{
		Root:         root,
		HomeDir:      filepath.Join(root, "home"),
		DotfilesRoot: filepath.Join(root, "dotfiles"),
		FS:           filesystem.NewOS(),
		t:            t,
	}

	for _, dir := range []string{env.HomeDir, env.DotfilesRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
	t.Setenv(paths.EnvConfig, "")

	return env
}

// Home returns a paths.HomeFunc bound to the environment's home directory
func (env *TestEnvironment) Home() paths.HomeFunc {
	return func() (string, error) { return env.HomeDir, nil }
}

// HomePath joins elements onto the home directory
func (env *TestEnvironment) HomePath(elem ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, elem...)...)
}

// RepoPath joins elements onto the dotfiles repository
func (env *TestEnvironment) RepoPath(elem ...string) string {
	return filepath.Join(append([]string{env.DotfilesRoot}, elem...)...)
}

// WriteRepo creates files in the dotfiles repository
func (env *TestEnvironment) WriteRepo(files map[string]string) {
	env.t.Helper()
	WriteTree(env.t, env.DotfilesRoot, files)
}
