package types

import (
	"fmt"
	"strings"
)

// HookPhase determines when a hook's commands run relative to link
// application or removal
type HookPhase string

const (
	PhasePresetup     HookPhase = "PRESETUP"
	PhasePostsetup    HookPhase = "POSTSETUP"
	PhasePreteardown  HookPhase = "PRETEARDOWN"
	PhasePostteardown HookPhase = "POSTTEARDOWN"
)

// ParseHookPhase parses a phase name case-insensitively. Dashes and
// underscores are ignored so "pre-setup" and "pre_setup" are accepted.
func ParseHookPhase(s string) (HookPhase, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "presetup":
		return PhasePresetup, nil
	case "postsetup":
		return PhasePostsetup, nil
	case "preteardown":
		return PhasePreteardown, nil
	case "postteardown":
		return PhasePostteardown, nil
	default:
		return "", fmt.Errorf("unknown hook phase: %q", s)
	}
}

// IsValid reports whether p is one of the known phases
func (p HookPhase) IsValid() bool {
	switch p {
	case PhasePresetup, PhasePostsetup, PhasePreteardown, PhasePostteardown:
		return true
	}
	return false
}

func (p HookPhase) String() string {
	return strings.ToLower(string(p))
}

// HookSpec is an ordered list of shell command lines bound to a phase.
// Order within Commands is execution order.
type HookSpec struct {
	Commands []string  `koanf:"commands" yaml:"commands" toml:"commands" json:"commands"`
	When     HookPhase `koanf:"when" yaml:"when" toml:"when" json:"when"`
}

// CommandsFor flattens the commands of every hook declared for phase,
// preserving declaration order.
func CommandsFor(hooks []HookSpec, phase HookPhase) []string {
	var cmds []string
	for _, h := range hooks {
		if h.When != phase {
			continue
		}
		cmds = append(cmds, h.Commands...)
	}
	return cmds
}
