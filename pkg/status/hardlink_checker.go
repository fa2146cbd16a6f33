package status

import (
	"os"

	"github.com/arthur-debert/dotctl/pkg/types"
)

// HardlinkChecker checks HARDLINK targets
type HardlinkChecker struct {
	BaseChecker
}

// NewHardlinkChecker creates a new HardlinkChecker
func NewHardlinkChecker() *HardlinkChecker {
	return &HardlinkChecker{BaseChecker{Mode: types.LinkModeHard}}
}

// CheckStatus reports linked when target and source are the same file
func (c *HardlinkChecker) CheckStatus(source, target string, fsys types.FS) *LinkStatus {
	status := c.InitializeStatus(source, target, "target shares the source's inode")

	info := c.InspectTarget(status, fsys, target)
	if info == nil {
		return status
	}
	if isSymlink(info) {
		c.SetConflict(status, "target is a symlink, not a hard link")
		return status
	}

	srcInfo, err := fsys.Stat(source)
	if err != nil {
		c.SetError(status, "inspect source", err)
		return status
	}
	if !os.SameFile(srcInfo, info) {
		c.SetConflict(status, "target is a different file")
	}
	return status
}
