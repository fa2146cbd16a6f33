package status

import (
	"path/filepath"

	"github.com/arthur-debert/dotctl/pkg/internal/hashutil"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// CopyChecker checks COPY targets by content. Files present in the target
// but not in the source are ignored, since a copy merges into what exists.
type CopyChecker struct {
	BaseChecker
}

// NewCopyChecker creates a new CopyChecker
func NewCopyChecker() *CopyChecker {
	return &CopyChecker{BaseChecker{Mode: types.LinkModeCopy}}
}

// CheckStatus hashes every source file and its counterpart under target
func (c *CopyChecker) CheckStatus(source, target string, fsys types.FS) *LinkStatus {
	status := c.InitializeStatus(source, target, "copy matches source")

	info := c.InspectTarget(status, fsys, target)
	if info == nil {
		return status
	}
	if isSymlink(info) {
		c.SetConflict(status, "target is a symlink, not a copy")
		return status
	}

	srcInfo, err := fsys.Stat(source)
	if err != nil {
		c.SetError(status, "inspect source", err)
		return status
	}
	if srcInfo.IsDir() != info.IsDir() {
		c.SetConflict(status, "target is not the same kind of entry as the source")
		return status
	}

	drift, err := c.compare(fsys, source, target, srcInfo.IsDir(), "")
	if err != nil {
		c.SetError(status, "compare copy", err)
		return status
	}
	if len(drift) > 0 {
		status.State = StateDrifted
		status.Message = "copy differs from source"
		status.Drift = drift
	}
	return status
}

// compare returns the relative paths under source whose copy is missing
// or different
func (c *CopyChecker) compare(fsys types.FS, source, target string, isDir bool, rel string) ([]string, error) {
	if !isDir {
		same, err := sameContent(fsys, source, target)
		if err != nil {
			return nil, err
		}
		if !same {
			return []string{displayPath(rel, source)}, nil
		}
		return nil, nil
	}

	entries, err := fsys.ReadDir(source)
	if err != nil {
		return nil, err
	}

	var drift []string
	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		childSrc := filepath.Join(source, entry.Name())
		childTgt := filepath.Join(target, entry.Name())

		srcInfo, err := fsys.Stat(childSrc)
		if err != nil {
			return nil, err
		}
		tgtInfo, err := fsys.Lstat(childTgt)
		if err != nil {
			if isNotExist(err) {
				drift = append(drift, childRel)
				continue
			}
			return nil, err
		}
		if srcInfo.IsDir() != tgtInfo.IsDir() {
			drift = append(drift, childRel)
			continue
		}

		sub, err := c.compare(fsys, childSrc, childTgt, srcInfo.IsDir(), childRel)
		if err != nil {
			return nil, err
		}
		drift = append(drift, sub...)
	}
	return drift, nil
}

func displayPath(rel, source string) string {
	if rel == "" {
		return filepath.Base(source)
	}
	return rel
}

func sameContent(fsys types.FS, a, b string) (bool, error) {
	ha, err := hashutil.FileChecksum(fsys, a)
	if err != nil {
		return false, err
	}
	hb, err := hashutil.FileChecksum(fsys, b)
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}
