package config

import (
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// Validate checks the fields every operation relies on. Duplicate names
// are legal here; Select rejects them at lookup time.
func Validate(cfg *types.DotfileConfiguration) error {
	if cfg == nil {
		return errors.New(errors.ErrConfigInvalid, "configuration is empty")
	}
	if cfg.Options.HookTimeout < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "options.hook_timeout must not be negative, got %s", cfg.Options.HookTimeout)
	}

	for i, entry := range cfg.Configurations {
		invalid := func(format string, args ...interface{}) error {
			return errors.Newf(errors.ErrConfigInvalid, format, args...).
				WithDetail("entry", entry.Name).
				WithDetail("index", i)
		}

		if strings.TrimSpace(entry.Name) == "" {
			return invalid("configuration %d has no name", i)
		}
		if entry.OS == "" {
			return invalid("configuration %q has no os", entry.Name)
		}
		if entry.Status != types.StatusReady && entry.Status != types.StatusUnused {
			return invalid("configuration %q has invalid status %q", entry.Name, entry.Status)
		}
		for j, link := range entry.Links {
			if link.Source == "" || link.Target == "" {
				return invalid("link %d of %q needs both source and target", j, entry.Name)
			}
			if !link.Mode.IsValid() {
				return invalid("link %d of %q has invalid mode %q", j, entry.Name, link.Mode)
			}
		}
		for j, hook := range entry.Hooks {
			if !hook.When.IsValid() {
				return invalid("hook %d of %q has invalid phase %q", j, entry.Name, hook.When)
			}
		}
	}
	return nil
}
