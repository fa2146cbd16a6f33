package config

import (
	"testing"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectionFixture() *types.DotfileConfiguration {
	return &types.DotfileConfiguration{
		Configurations: []types.ConfigSpec{
			{Name: "shell", OS: types.SystemLinux, Status: types.StatusReady},
			{Name: "mac-only", OS: types.SystemMacOS, Status: types.StatusReady},
			{Name: "retired", OS: types.SystemLinux, Status: types.StatusUnused},
			{Name: "twice", OS: types.SystemLinux, Status: types.StatusReady},
			{Name: "twice", OS: types.SystemLinux, Status: types.StatusReady},
			{Name: "git", OS: types.SystemLinux, Status: types.StatusReady},
		},
	}
}

func TestSelect(t *testing.T) {
	cfg := selectionFixture()

	entry, err := Select(cfg, "shell", types.SystemLinux)
	require.NoError(t, err)
	assert.Equal(t, "shell", entry.Name)

	tests := []struct {
		name  string
		entry string
		code  errors.ErrorCode
	}{
		{"not found", "emacs", errors.ErrEntryNotFound},
		{"duplicate", "twice", errors.ErrDuplicateEntry},
		{"other os", "mac-only", errors.ErrEntryUnavailable},
		{"unused", "retired", errors.ErrEntryUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(cfg, tt.entry, types.SystemLinux)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code))
			assert.Equal(t, tt.entry, errors.GetErrorDetails(err)["entry"])
		})
	}
}

func TestSelectAll(t *testing.T) {
	cfg := selectionFixture()

	entries, err := SelectAll(cfg, []string{"git", "shell"}, types.SystemLinux)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "git", entries[0].Name)
	assert.Equal(t, "shell", entries[1].Name)

	_, err = SelectAll(cfg, []string{"git", "emacs", "shell"}, types.SystemLinux)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEntryNotFound))
}

func TestEligible(t *testing.T) {
	cfg := selectionFixture()
	cfg.Configurations = append(cfg.Configurations[:3], cfg.Configurations[5])

	entries, err := Eligible(cfg, types.SystemLinux)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"shell", "git"}, names)

	entries, err = Eligible(cfg, types.SystemWindows)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEligible_DuplicateName(t *testing.T) {
	_, err := Eligible(selectionFixture(), types.SystemLinux)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateEntry))
	assert.Equal(t, "twice", errors.GetErrorDetails(err)["entry"])

	// The other platform has no eligible duplicate
	_, err = Eligible(selectionFixture(), types.SystemMacOS)
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *types.DotfileConfiguration {
		return &types.DotfileConfiguration{
			Configurations: []types.ConfigSpec{{
				Name:   "shell",
				OS:     types.SystemLinux,
				Status: types.StatusReady,
				Links:  []types.LinkSpec{{Source: "zshrc", Target: "~/.zshrc", Mode: types.LinkModeSoft}},
				Hooks:  []types.HookSpec{{Commands: []string{"true"}, When: types.PhasePostsetup}},
			}},
		}
	}
	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(cfg *types.DotfileConfiguration)
	}{
		{"empty name", func(cfg *types.DotfileConfiguration) { cfg.Configurations[0].Name = " " }},
		{"no os", func(cfg *types.DotfileConfiguration) { cfg.Configurations[0].OS = "" }},
		{"bad status", func(cfg *types.DotfileConfiguration) { cfg.Configurations[0].Status = "MAYBE" }},
		{"empty source", func(cfg *types.DotfileConfiguration) { cfg.Configurations[0].Links[0].Source = "" }},
		{"bad mode", func(cfg *types.DotfileConfiguration) { cfg.Configurations[0].Links[0].Mode = "JUNCTION" }},
		{"bad phase", func(cfg *types.DotfileConfiguration) { cfg.Configurations[0].Hooks[0].When = "SOMETIME" }},
		{"negative timeout", func(cfg *types.DotfileConfiguration) { cfg.Options.HookTimeout = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.True(t, errors.IsErrorCode(Validate(cfg), errors.ErrConfigInvalid))
		})
	}

	assert.True(t, errors.IsErrorCode(Validate(nil), errors.ErrConfigInvalid))
}
