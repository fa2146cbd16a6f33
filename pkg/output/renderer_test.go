package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/lifecycle"
	"github.com/arthur-debert/dotctl/pkg/links"
	"github.com/arthur-debert/dotctl/pkg/status"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRun() *lifecycle.RunReport {
	return &lifecycle.RunReport{
		Action: lifecycle.ActionSetup,
		Entries: []*lifecycle.Report{
			{
				Entry: "shell",
				Stage: lifecycle.StageDone,
				Links: []lifecycle.LinkResult{
					{Source: "/repo/zshrc", Target: "/home/u/.zshrc", Mode: "soft", Outcome: links.OutcomeCreated},
					{Source: "/repo/vimrc", Target: "/home/u/.vimrc", Mode: "soft", Outcome: links.OutcomeSkipped},
				},
				Hooks: []lifecycle.HookResult{
					{Phase: types.PhasePostsetup, Command: "echo done", Output: "done\n"},
				},
			},
			{
				Entry: "git",
				Stage: lifecycle.StageHooksPre,
				Links: []lifecycle.LinkResult{},
				Error: "[SOURCE_NOT_FOUND] link source does not exist: /repo/gitconfig",
			},
		},
	}
}

func TestRenderRun_Text(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatText)
	require.NoError(t, r.RenderRun(sampleRun()))

	out := buf.String()
	assert.Contains(t, out, "setup shell")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "/home/u/.zshrc <- /repo/zshrc")
	assert.Contains(t, out, "postsetup echo done")
	assert.Contains(t, out, "    done")
	assert.Contains(t, out, "failed [SOURCE_NOT_FOUND]")
	assert.Contains(t, out, "Stopped at git")
	assert.Contains(t, out, "1 created, 0 removed, 1 skipped")
	assert.NotContains(t, out, "\x1b[", "text output carries no escape sequences")
}

func TestRenderRun_DryRun(t *testing.T) {
	run := &lifecycle.RunReport{
		Action: lifecycle.ActionTeardown,
		DryRun: true,
		Entries: []*lifecycle.Report{{
			Entry: "shell",
			Links: []lifecycle.LinkResult{{Target: "/home/u/.zshrc", Mode: "soft", Outcome: links.OutcomePlanned}},
			Hooks: []lifecycle.HookResult{{Phase: types.PhasePreteardown, Command: "rm cache", Planned: true}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatText).RenderRun(run))
	assert.Contains(t, buf.String(), "preteardown (dry run) rm cache")
	assert.Contains(t, buf.String(), "dry run: 1 planned")
}

func TestRenderRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatJSON).RenderRun(sampleRun()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "setup", decoded["action"])
	entries := decoded["entries"].([]interface{})
	require.Len(t, entries, 2)
	assert.Equal(t, "shell", entries[0].(map[string]interface{})["entry"])
}

func TestRenderStatus_YAML(t *testing.T) {
	entries := []status.EntryStatus{{
		Entry: "shell",
		Links: []*status.LinkStatus{{Source: "/r/zshrc", Target: "/h/.zshrc", Mode: "soft", State: status.StateLinked}},
	}}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatYAML).RenderStatus(entries))

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "shell", decoded[0]["entry"])
}

func TestRenderStatus_Text(t *testing.T) {
	entries := []status.EntryStatus{
		{
			Entry: "nvim",
			Links: []*status.LinkStatus{{
				Target:  "/h/.config/nvim",
				Mode:    "copy",
				State:   status.StateDrifted,
				Message: "copy differs from source",
				Drift:   []string{"init.lua"},
			}},
		},
		{Entry: "empty", Links: []*status.LinkStatus{}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatText).RenderStatus(entries))
	out := buf.String()
	assert.Contains(t, out, "drifted")
	assert.Contains(t, out, "(copy differs from source)")
	assert.Contains(t, out, "~ init.lua")
	assert.Contains(t, out, "no links")
}

func TestRenderSummary(t *testing.T) {
	cfg := &types.DotfileConfiguration{
		Configurations: []types.ConfigSpec{
			{Name: "shell", OS: types.SystemLinux, Status: types.StatusReady,
				Links: []types.LinkSpec{{}, {}},
				Hooks: []types.HookSpec{{Commands: []string{"a", "b"}}, {Commands: []string{"c"}}}},
			{Name: "brew", OS: types.SystemMacOS, Status: types.StatusReady},
		},
	}
	summary := NewConfigSummary("/h/.dotctl", "/h/dotfiles", cfg, types.SystemLinux)
	assert.Equal(t, 1, summary.EligibleCount())
	assert.Equal(t, 3, summary.Entries[0].Hooks)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatText).RenderSummary(summary))
	out := buf.String()
	assert.Contains(t, out, "Configuration /h/.dotctl")
	assert.Contains(t, out, "2 links, 3 hooks")
	assert.Contains(t, out, "2 entries, 1 eligible")
}
