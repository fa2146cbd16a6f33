package status

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/dotctl/pkg/types"
)

// BaseChecker provides common functionality for all status checkers
type BaseChecker struct {
	Mode types.LinkMode
}

// InitializeStatus creates a LinkStatus in the linked state
func (bc *BaseChecker) InitializeStatus(source, target, message string) *LinkStatus {
	return &LinkStatus{
		Source:  source,
		Target:  target,
		Mode:    bc.Mode.String(),
		State:   StateLinked,
		Message: message,
	}
}

// InspectTarget lstats target. It returns nil info when the status has
// already been settled as missing or errored.
func (bc *BaseChecker) InspectTarget(status *LinkStatus, fsys types.FS, target string) fs.FileInfo {
	info, err := fsys.Lstat(target)
	if err == nil {
		return info
	}
	if isNotExist(err) {
		status.State = StateMissing
		status.Message = "target does not exist"
		return nil
	}
	bc.SetError(status, "inspect target", err)
	return nil
}

// SetConflict marks the status as a conflict
func (bc *BaseChecker) SetConflict(status *LinkStatus, format string, args ...interface{}) {
	status.State = StateConflict
	status.Message = fmt.Sprintf(format, args...)
}

// SetError sets the status to error with a formatted message
func (bc *BaseChecker) SetError(status *LinkStatus, action string, err error) {
	status.State = StateError
	status.Message = fmt.Sprintf("failed to %s: %v", action, err)
}

func isSymlink(info fs.FileInfo) bool {
	return info.Mode()&fs.ModeSymlink != 0
}
