package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/config"
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/testutil"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocument writes a configuration with a shell entry for the running
// platform, a git entry for another platform and an unused vim entry
func writeDocument(t *testing.T, env *testutil.TestEnvironment) string {
	t.Helper()
	env.WriteRepo(map[string]string{"zshrc": "export EDITOR=vim\n", "gitconfig": "[user]\n", "vimrc": "set nu\n"})

	other := types.SystemWindows
	if types.CurrentSystem() == types.SystemWindows {
		other = types.SystemLinux
	}

	doc := fmt.Sprintf(`
configurations:
  - name: shell
    os: %[1]s
    status: READY
    links:
      - source: zshrc
        target: ~/.zshrc
        mode: SOFTLINK
    hooks:
      - when: POSTSETUP
        commands:
          - printf linked
  - name: git
    os: %[2]s
    status: READY
    links:
      - {source: gitconfig, target: ~/.gitconfig, mode: SOFTLINK}
  - name: vim
    os: %[1]s
    status: UNUSED
    links:
      - {source: vimrc, target: ~/.vimrc, mode: COPY}
options:
  repository: %[3]s
`, types.CurrentSystem(), other, env.DotfilesRoot)

	path := env.HomePath(".dotctl")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSetupStatusTeardown(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	writeDocument(t, env)

	out, err := execute(t, "--format", "text", "setup", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "setup shell")
	assert.Contains(t, out, "linked")

	dest, err := os.Readlink(env.HomePath(".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, env.RepoPath("zshrc"), dest)

	out, err = execute(t, "--format", "json", "status", "shell")
	require.NoError(t, err)
	var statuses []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &statuses))
	require.Len(t, statuses, 1)
	link := statuses[0]["links"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "linked", link["state"])

	_, err = execute(t, "--format", "text", "teardown", "shell")
	require.NoError(t, err)
	_, err = os.Lstat(env.HomePath(".zshrc"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, env.RepoPath("zshrc"))
}

func TestSetup_EntrySelectionErrors(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	writeDocument(t, env)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"unknown entry", []string{"setup", "emacs"}, errors.ErrEntryNotFound},
		{"other platform", []string{"setup", "git"}, errors.ErrEntryUnavailable},
		{"unused entry", []string{"setup", "vim"}, errors.ErrEntryUnavailable},
		{"no entries", []string{"setup"}, errors.ErrInvalidInput},
		{"all with names", []string{"setup", "--all", "shell"}, errors.ErrInvalidInput},
		{"bad format", []string{"--format", "xml", "list"}, errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestSetup_AllDryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	writeDocument(t, env)

	out, err := execute(t, "--format", "text", "--dry-run", "setup", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "setup shell")
	assert.NotContains(t, out, "setup git")
	assert.Contains(t, out, "dry run: 1 planned")

	_, err = os.Lstat(env.HomePath(".zshrc"))
	assert.True(t, os.IsNotExist(err))
}

func TestAll_DuplicateNameRunsNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteRepo(map[string]string{"zshrc": "x", "bashrc": "y"})

	doc := fmt.Sprintf(`
configurations:
  - name: shell
    os: %[1]s
    links:
      - {source: zshrc, target: ~/.zshrc, mode: SOFTLINK}
  - name: shell
    os: %[1]s
    links:
      - {source: bashrc, target: ~/.bashrc, mode: SOFTLINK}
options:
  repository: %[2]s
`, types.CurrentSystem(), env.DotfilesRoot)
	require.NoError(t, os.WriteFile(env.HomePath(".dotctl"), []byte(doc), 0644))

	for _, action := range []string{"setup", "teardown"} {
		t.Run(action, func(t *testing.T) {
			_, err := execute(t, "--format", "text", action, "--all")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateEntry), "got %v", err)
		})
	}

	for _, name := range []string{".zshrc", ".bashrc"} {
		_, err := os.Lstat(env.HomePath(name))
		assert.True(t, os.IsNotExist(err), "%s must not be linked", name)
	}
}

func TestTeardown_IgnoreMissing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	writeDocument(t, env)

	_, err := execute(t, "--format", "text", "teardown", "shell")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetNotFound))

	out, err := execute(t, "--format", "text", "teardown", "shell", "--ignore-missing")
	require.NoError(t, err)
	assert.Contains(t, out, "skipped")
}

func TestConfigFlagAndEnv(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := writeDocument(t, env)
	moved := filepath.Join(env.Root, "elsewhere.yaml")
	require.NoError(t, os.Rename(path, moved))

	_, err := execute(t, "list")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	out, err := execute(t, "--config", moved, "--format", "text", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "3 entries, 1 eligible")

	t.Setenv("DOTCTL_CONFIG", moved)
	_, err = execute(t, "list")
	assert.NoError(t, err)
}

func TestUse(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := writeDocument(t, env)

	out, err := execute(t, "--format", "text", "use", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration "+path)
	assert.Contains(t, out, "shell")
	assert.Contains(t, out, env.DotfilesRoot)

	out, err = execute(t, "--format", "yaml", "use", path)
	require.NoError(t, err)
	assert.Contains(t, out, "eligible: true")

	bad := filepath.Join(env.Root, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("configurations:\n  - name: x\n    os: LINUX\n    links:\n      - {source: a, target: ~/a, mode: junction}\n"), 0644))
	_, err = execute(t, "use", bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))

	_, err = execute(t, "use")
	assert.Error(t, err)
}

func TestGenConfig(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "genconfig")
	require.NoError(t, err)
	_, err = config.Parse([]byte(out), config.FormatYAML)
	require.NoError(t, err)

	out, err = execute(t, "genconfig", "--format", "toml")
	require.NoError(t, err)
	cfg, err := config.Parse([]byte(out), config.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "shell", cfg.Configurations[0].Name)

	target := filepath.Join(t.TempDir(), "dotctl.toml")
	_, err = execute(t, "genconfig", "--format", "toml", "-o", target)
	require.NoError(t, err)
	assert.FileExists(t, target)

	_, err = execute(t, "genconfig", "-o", target)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	_, err = execute(t, "genconfig", "-o", target, "--force")
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotctl version dev")
}

func TestNoCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t)
	assert.Error(t, err)
}
