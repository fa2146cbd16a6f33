package output

import (
	"github.com/arthur-debert/dotctl/pkg/types"
)

// ConfigSummary describes a loaded document for list and use
type ConfigSummary struct {
	Path       string           `json:"path,omitempty" yaml:"path,omitempty"`
	Repository string           `json:"repository" yaml:"repository"`
	System     types.SystemName `json:"system" yaml:"system"`
	Entries    []ListItem       `json:"entries" yaml:"entries"`
}

// ListItem is one configuration entry in a summary
type ListItem struct {
	Name     string             `json:"name" yaml:"name"`
	OS       types.SystemName   `json:"os" yaml:"os"`
	Status   types.ConfigStatus `json:"status" yaml:"status"`
	Links    int                `json:"links" yaml:"links"`
	Hooks    int                `json:"hooks" yaml:"hooks"`
	Eligible bool               `json:"eligible" yaml:"eligible"`
}

// NewConfigSummary summarizes cfg as seen from system
func NewConfigSummary(path, repository string, cfg *types.DotfileConfiguration, system types.SystemName) *ConfigSummary {
	summary := &ConfigSummary{
		Path:       path,
		Repository: repository,
		System:     system,
		Entries:    make([]ListItem, 0, len(cfg.Configurations)),
	}
	for _, entry := range cfg.Configurations {
		hooks := 0
		for _, h := range entry.Hooks {
			hooks += len(h.Commands)
		}
		summary.Entries = append(summary.Entries, ListItem{
			Name:     entry.Name,
			OS:       entry.OS,
			Status:   entry.Status,
			Links:    len(entry.Links),
			Hooks:    hooks,
			Eligible: entry.OS == system && entry.Status == types.StatusReady,
		})
	}
	return summary
}

// EligibleCount returns how many entries can run on the summary's system
func (s *ConfigSummary) EligibleCount() int {
	n := 0
	for _, item := range s.Entries {
		if item.Eligible {
			n++
		}
	}
	return n
}
