package status

import (
	"github.com/arthur-debert/dotctl/pkg/types"
)

// SymlinkChecker checks SOFTLINK targets
type SymlinkChecker struct {
	BaseChecker
}

// NewSymlinkChecker creates a new SymlinkChecker
func NewSymlinkChecker() *SymlinkChecker {
	return &SymlinkChecker{BaseChecker{Mode: types.LinkModeSoft}}
}

// CheckStatus compares the link's destination with source
func (c *SymlinkChecker) CheckStatus(source, target string, fsys types.FS) *LinkStatus {
	status := c.InitializeStatus(source, target, "symlink points at source")

	info := c.InspectTarget(status, fsys, target)
	if info == nil {
		return status
	}
	if !isSymlink(info) {
		c.SetConflict(status, "target exists and is not a symlink")
		return status
	}

	dest, err := fsys.Readlink(target)
	if err != nil {
		c.SetError(status, "read symlink", err)
		return status
	}
	if dest != source {
		c.SetConflict(status, "symlink points at %s", dest)
	}
	return status
}
