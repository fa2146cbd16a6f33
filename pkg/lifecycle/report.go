package lifecycle

import (
	"time"

	"github.com/arthur-debert/dotctl/pkg/links"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// RunReport tracks every entry processed by one invocation
type RunReport struct {
	// Action is setup or teardown
	Action Action `json:"action" yaml:"action"`

	// Entries holds one report per attempted entry, including the one
	// that failed
	Entries []*Report `json:"entries" yaml:"entries"`

	StartTime time.Time `json:"start_time" yaml:"start_time"`
	EndTime   time.Time `json:"end_time" yaml:"end_time"`

	// DryRun indicates nothing was changed
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// Report is the outcome of one entry
type Report struct {
	Entry string `json:"entry" yaml:"entry"`
	Stage Stage  `json:"stage" yaml:"stage"`
	// Stages lists every stage entered, starting at not-started
	Stages []Stage      `json:"stages" yaml:"stages"`
	Links  []LinkResult `json:"links" yaml:"links"`
	Hooks  []HookResult `json:"hooks,omitempty" yaml:"hooks,omitempty"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// LinkResult records what happened to one resolved link
type LinkResult struct {
	Source  string        `json:"source,omitempty" yaml:"source,omitempty"`
	Target  string        `json:"target" yaml:"target"`
	Mode    string        `json:"mode" yaml:"mode"`
	Outcome links.Outcome `json:"outcome" yaml:"outcome"`
}

// HookResult records one hook command
type HookResult struct {
	Phase   types.HookPhase `json:"phase" yaml:"phase"`
	Command string          `json:"command" yaml:"command"`
	Output  string          `json:"output,omitempty" yaml:"output,omitempty"`
	Skipped bool            `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Planned bool            `json:"planned,omitempty" yaml:"planned,omitempty"`
}

// Counts tallies link outcomes across every entry
func (r *RunReport) Counts() map[links.Outcome]int {
	counts := make(map[links.Outcome]int)
	for _, entry := range r.Entries {
		for _, link := range entry.Links {
			counts[link.Outcome]++
		}
	}
	return counts
}

// Failed returns the entry that stopped the run, if any
func (r *RunReport) Failed() *Report {
	for _, entry := range r.Entries {
		if entry.Error != "" {
			return entry
		}
	}
	return nil
}
