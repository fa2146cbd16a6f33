package config

import (
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// Select returns the single entry called name, provided it targets system
// and is READY
func Select(cfg *types.DotfileConfiguration, name string, system types.SystemName) (*types.ConfigSpec, error) {
	var found []int
	for i := range cfg.Configurations {
		if cfg.Configurations[i].Name == name {
			found = append(found, i)
		}
	}

	switch len(found) {
	case 0:
		return nil, errors.Newf(errors.ErrEntryNotFound, "no configuration named %q", name).
			WithDetail("entry", name)
	case 1:
	default:
		return nil, errors.Newf(errors.ErrDuplicateEntry, "%d configurations are named %q", len(found), name).
			WithDetail("entry", name)
	}

	entry := &cfg.Configurations[found[0]]
	if entry.OS != system {
		return nil, errors.Newf(errors.ErrEntryUnavailable, "configuration %q targets %s, not %s", name, entry.OS, system).
			WithDetail("entry", name)
	}
	if entry.Status != types.StatusReady {
		return nil, errors.Newf(errors.ErrEntryUnavailable, "configuration %q is %s", name, entry.Status).
			WithDetail("entry", name)
	}
	return entry, nil
}

// SelectAll resolves names in order, stopping at the first that fails
func SelectAll(cfg *types.DotfileConfiguration, names []string, system types.SystemName) ([]types.ConfigSpec, error) {
	entries := make([]types.ConfigSpec, 0, len(names))
	for _, name := range names {
		entry, err := Select(cfg, name, system)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// Eligible returns every READY entry for system, in document order. An
// eligible name used by more than one entry fails the whole lookup, the same
// way Select does.
func Eligible(cfg *types.DotfileConfiguration, system types.SystemName) ([]types.ConfigSpec, error) {
	seen := make(map[string]int, len(cfg.Configurations))
	for _, entry := range cfg.Configurations {
		seen[entry.Name]++
	}

	var entries []types.ConfigSpec
	for _, entry := range cfg.Configurations {
		if entry.OS != system || entry.Status != types.StatusReady {
			continue
		}
		if n := seen[entry.Name]; n > 1 {
			return nil, errors.Newf(errors.ErrDuplicateEntry, "%d configurations are named %q", n, entry.Name).
				WithDetail("entry", entry.Name)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
