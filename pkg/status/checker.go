package status

import (
	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// State summarizes how a target relates to its source
type State string

const (
	// StateLinked means the target is the artifact its mode would create
	StateLinked State = "linked"
	// StateMissing means nothing exists at the target
	StateMissing State = "missing"
	// StateConflict means something unrelated occupies the target
	StateConflict State = "conflict"
	// StateDrifted means a copy no longer matches its source
	StateDrifted State = "drifted"
	// StateBroken means the source itself is gone
	StateBroken State = "broken"
	// StateError means the paths could not be inspected
	StateError State = "error"
)

// LinkStatus is the derived state of one link
type LinkStatus struct {
	Source  string   `json:"source" yaml:"source"`
	Target  string   `json:"target" yaml:"target"`
	Mode    string   `json:"mode" yaml:"mode"`
	State   State    `json:"state" yaml:"state"`
	Message string   `json:"message,omitempty" yaml:"message,omitempty"`
	Drift   []string `json:"drift,omitempty" yaml:"drift,omitempty"`
}

// Checker inspects a target for one link mode. source is known to exist.
type Checker interface {
	CheckStatus(source, target string, fs types.FS) *LinkStatus
}

// ModeChecker dispatches to the checker registered for a link mode
type ModeChecker struct {
	checkers map[types.LinkMode]Checker
	fs       types.FS
}

// NewModeChecker creates a ModeChecker over fs; nil means the OS filesystem
func NewModeChecker(fs types.FS) *ModeChecker {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	mc := &ModeChecker{
		checkers: make(map[types.LinkMode]Checker),
		fs:       fs,
	}

	mc.checkers[types.LinkModeSoft] = NewSymlinkChecker()
	mc.checkers[types.LinkModeHard] = NewHardlinkChecker()
	mc.checkers[types.LinkModeCopy] = NewCopyChecker()

	return mc
}

// Check reports the state of a resolved link
func (mc *ModeChecker) Check(source, target string, mode types.LinkMode) *LinkStatus {
	base := &BaseChecker{Mode: mode}

	checker, exists := mc.checkers[mode]
	if !exists {
		status := base.InitializeStatus(source, target, "")
		status.State = StateError
		status.Message = "unknown link mode " + string(mode)
		return status
	}

	if _, err := mc.fs.Stat(source); err != nil {
		status := base.InitializeStatus(source, target, "")
		if isNotExist(err) {
			status.State = StateBroken
			status.Message = "source does not exist"
			return status
		}
		base.SetError(status, "inspect source", err)
		return status
	}

	return checker.CheckStatus(source, target, mc.fs)
}

// EntryStatus groups the link states of one configuration entry
type EntryStatus struct {
	Entry string        `json:"entry" yaml:"entry"`
	Links []*LinkStatus `json:"links" yaml:"links"`
}

// Counts tallies links by state
func (e EntryStatus) Counts() map[State]int {
	counts := make(map[State]int)
	for _, link := range e.Links {
		counts[link.State]++
	}
	return counts
}
