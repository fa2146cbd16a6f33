package types

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// SystemName identifies the platform a configuration entry targets
type SystemName string

const (
	SystemLinux   SystemName = "LINUX"
	SystemMacOS   SystemName = "MACOS"
	SystemWindows SystemName = "WINDOWS"
)

// ParseSystemName accepts the canonical names plus Go's GOOS spellings
func ParseSystemName(s string) (SystemName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linux":
		return SystemLinux, nil
	case "macos", "darwin", "osx":
		return SystemMacOS, nil
	case "windows":
		return SystemWindows, nil
	default:
		return "", fmt.Errorf("unknown system: %q", s)
	}
}

// SystemFromGOOS maps a GOOS value to a SystemName. Unknown platforms map
// to their upper-cased GOOS so they never match a configured entry by accident.
func SystemFromGOOS(goos string) SystemName {
	if name, err := ParseSystemName(goos); err == nil {
		return name
	}
	return SystemName(strings.ToUpper(goos))
}

// CurrentSystem returns the SystemName of the running platform
func CurrentSystem() SystemName {
	return SystemFromGOOS(runtime.GOOS)
}

// ConfigStatus filters which entries are eligible to run
type ConfigStatus string

const (
	StatusReady  ConfigStatus = "READY"
	StatusUnused ConfigStatus = "UNUSED"
)

// ParseConfigStatus parses a status case-insensitively
func ParseConfigStatus(s string) (ConfigStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ready":
		return StatusReady, nil
	case "unused":
		return StatusUnused, nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// ConfigSpec is a named, OS-scoped bundle of links and hooks.
// Name uniqueness is enforced by lookup, not here.
type ConfigSpec struct {
	Name   string       `koanf:"name" yaml:"name" toml:"name" json:"name"`
	OS     SystemName   `koanf:"os" yaml:"os" toml:"os" json:"os"`
	Status ConfigStatus `koanf:"status" yaml:"status" toml:"status" json:"status"`
	Links  []LinkSpec   `koanf:"links" yaml:"links" toml:"links" json:"links"`
	Hooks  []HookSpec   `koanf:"hooks" yaml:"hooks,omitempty" toml:"hooks,omitempty" json:"hooks,omitempty"`
}

// Options holds document-wide settings
type Options struct {
	// Repository is the dotfiles repository root; repo-relative sources
	// resolve against it
	Repository string `koanf:"repository" yaml:"repository" toml:"repository" json:"repository"`

	// HookTimeout bounds each hook command. Zero waits forever.
	HookTimeout time.Duration `koanf:"hook_timeout" yaml:"hook_timeout,omitempty" toml:"hook_timeout,omitempty" json:"hook_timeout,omitempty"`

	// EnvFile is an optional dotenv file whose values are added to every
	// hook's environment
	EnvFile string `koanf:"env_file" yaml:"env_file,omitempty" toml:"env_file,omitempty" json:"env_file,omitempty"`
}

// DotfileConfiguration is the whole configuration document
type DotfileConfiguration struct {
	Configurations []ConfigSpec `koanf:"configurations" yaml:"configurations" toml:"configurations" json:"configurations"`
	Options        Options      `koanf:"options" yaml:"options" toml:"options" json:"options"`
}
