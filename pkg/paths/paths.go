package paths

import (
	"os"

	"github.com/arthur-debert/dotctl/pkg/errors"
)

// Environment variable names
const (
	// EnvConfig points at the configuration document to use
	EnvConfig = "DOTCTL_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// HomePrefix is the token that marks a home relative path
	HomePrefix = "~"

	// DefaultConfigPath is where the configuration document lives unless
	// overridden by flag or environment
	DefaultConfigPath = "~/.dotctl"
)

// HomeFunc returns the current user's home directory
type HomeFunc func() (string, error)

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}
	// Try the HOME environment variable as a fallback
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	if err == nil {
		return "", errors.New(errors.ErrNoHomeDirectory, "home directory is not set").WithDetail("env", EnvHome)
	}
	return "", errors.Wrap(err, errors.ErrNoHomeDirectory, "failed to get home directory").
		WithDetail("env", EnvHome)
}

// ConfigPath picks the configuration document location: an explicit value
// (usually the --config flag) wins over DOTCTL_CONFIG, which wins over
// DefaultConfigPath. Relative values resolve against workDir.
func (r *Resolver) ConfigPath(explicit, workDir string) (string, error) {
	raw := explicit
	if raw == "" {
		raw = os.Getenv(EnvConfig)
	}
	if raw == "" {
		raw = DefaultConfigPath
	}
	return r.Resolve(raw, workDir)
}
