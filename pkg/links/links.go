package links

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/rs/zerolog"
)

// Outcome describes what Apply or Teardown did
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeRemoved Outcome = "removed"
	// OutcomeSkipped means the artifact was already in place
	OutcomeSkipped Outcome = "skipped"
	// OutcomePlanned is returned in dry run mode
	OutcomePlanned Outcome = "planned"
	// OutcomeFailed is never returned by the linker; callers record it for
	// the link whose Apply or Teardown returned an error
	OutcomeFailed Outcome = "failed"
)

// Options contains configuration for the linker
type Options struct {
	FS     types.FS
	DryRun bool
	Logger zerolog.Logger
}

// Linker applies and tears down links on a filesystem
type Linker struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger
}

// New creates a new linker instance
func New(opts Options) *Linker {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("links")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	return &Linker{
		fs:     fsys,
		dryRun: opts.DryRun,
		logger: logger,
	}
}

// Apply creates the artifact for mode at target. source must exist; it is
// checked before anything is touched.
func (l *Linker) Apply(source, target string, mode types.LinkMode) (Outcome, error) {
	logger := l.logger.With().
		Str("source", source).
		Str("target", target).
		Str("mode", mode.String()).
		Logger()

	if !mode.IsValid() {
		return "", linkErr(errors.Newf(errors.ErrInvalidInput, "unknown link mode %q", string(mode)), source, target, mode)
	}

	srcInfo, err := l.fs.Stat(source)
	if err != nil {
		if isNotExist(err) {
			return "", linkErr(errors.Wrapf(err, errors.ErrSourceNotFound, "link source does not exist: %s", source), source, target, mode)
		}
		return "", linkErr(errors.Wrapf(err, errors.ErrLinkCreate, "cannot inspect link source: %s", source), source, target, mode)
	}

	if l.dryRun {
		logger.Info().Msg("Would link")
		return OutcomePlanned, nil
	}

	if err := l.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", linkErr(errors.Wrapf(err, errors.ErrLinkCreate, "cannot create parent directory of %s", target), source, target, mode)
	}

	logger.Info().Msg("Linking")

	switch mode {
	case types.LinkModeSoft:
		return l.applySoft(source, target, srcInfo, logger)
	case types.LinkModeHard:
		return l.applyHard(source, target, srcInfo, logger)
	default:
		return l.applyCopy(source, target, srcInfo, logger)
	}
}

func (l *Linker) applySoft(source, target string, srcInfo fs.FileInfo, logger zerolog.Logger) (Outcome, error) {
	if current, err := l.fs.Readlink(target); err == nil && current == source {
		logger.Debug().Msg("Symlink already points at source")
		return OutcomeSkipped, nil
	}

	kind := "file"
	if srcInfo.IsDir() {
		kind = "dir"
	}
	if err := l.fs.Symlink(source, target); err != nil {
		return "", linkErr(errors.Wrapf(err, errors.ErrLinkCreate, "cannot create %s symlink %s", kind, target), source, target, types.LinkModeSoft)
	}
	return OutcomeCreated, nil
}

// applyHard leaves directory sources to the platform, which rejects them
func (l *Linker) applyHard(source, target string, srcInfo fs.FileInfo, logger zerolog.Logger) (Outcome, error) {
	if tgtInfo, err := l.fs.Lstat(target); err == nil && os.SameFile(srcInfo, tgtInfo) {
		logger.Debug().Msg("Target is already a hard link to source")
		return OutcomeSkipped, nil
	}

	if err := l.fs.Link(source, target); err != nil {
		return "", linkErr(errors.Wrapf(err, errors.ErrLinkCreate, "cannot create hard link %s", target), source, target, types.LinkModeHard)
	}
	return OutcomeCreated, nil
}

func (l *Linker) applyCopy(source, target string, srcInfo fs.FileInfo, logger zerolog.Logger) (Outcome, error) {
	// Writing through an existing symlink would overwrite whatever it points
	// at, typically the source itself.
	if tgtInfo, err := l.fs.Lstat(target); err == nil && tgtInfo.Mode()&fs.ModeSymlink != 0 {
		return "", linkErr(errors.Newf(errors.ErrLinkCreate, "copy target %s is a symlink; tear it down first", target), source, target, types.LinkModeCopy)
	}

	if !srcInfo.IsDir() {
		if err := l.copyFile(source, target, srcInfo.Mode().Perm()); err != nil {
			return "", linkErr(errors.Wrapf(err, errors.ErrLinkCreate, "cannot copy %s", source), source, target, types.LinkModeCopy)
		}
		return OutcomeCreated, nil
	}

	if isWithin(source, target) {
		return "", linkErr(errors.Newf(errors.ErrInvalidInput, "cannot copy %s into itself", source), source, target, types.LinkModeCopy)
	}

	copied := 0
	if err := l.copyTree(source, target, srcInfo, &copied); err != nil {
		logger.Warn().Int("copied", copied).Msg("Copy aborted, target left partially populated")
		return "", linkErr(errors.Wrapf(err, errors.ErrCopyPartial, "copy of %s aborted after %d entries", source, copied), source, target, types.LinkModeCopy)
	}
	logger.Debug().Int("copied", copied).Msg("Copied directory tree")
	return OutcomeCreated, nil
}

// copyTree mirrors src at dst, following symlinks inside the source tree
func (l *Linker) copyTree(src, dst string, info fs.FileInfo, copied *int) error {
	if !info.IsDir() {
		if err := l.copyFile(src, dst, info.Mode().Perm()); err != nil {
			return err
		}
		*copied++
		return nil
	}

	if err := l.fs.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return err
	}
	*copied++

	entries, err := l.fs.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		childSrc := filepath.Join(src, entry.Name())
		childInfo, err := l.fs.Stat(childSrc)
		if err != nil {
			return err
		}
		if err := l.copyTree(childSrc, filepath.Join(dst, entry.Name()), childInfo, copied); err != nil {
			return err
		}
	}
	return nil
}

func (l *Linker) copyFile(src, dst string, perm fs.FileMode) (err error) {
	in, err := l.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := l.fs.Create(dst, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// Teardown removes the artifact at target. A symlink is removed itself,
// never its referent; a real directory is removed recursively.
func (l *Linker) Teardown(target string) (Outcome, error) {
	logger := l.logger.With().Str("target", target).Logger()

	info, err := l.fs.Lstat(target)
	if err != nil {
		if isNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrTargetNotFound, "nothing to remove at %s", target).
				WithDetail("target", target)
		}
		return "", errors.Wrapf(err, errors.ErrRemove, "cannot inspect %s", target).
			WithDetail("target", target)
	}

	kind := "file"
	remove := l.fs.Remove
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		kind = "symlink"
	case info.IsDir():
		kind = "dir"
		remove = l.fs.RemoveAll
	}
	logger = logger.With().Str("kind", kind).Logger()

	if l.dryRun {
		logger.Info().Msg("Would remove")
		return OutcomePlanned, nil
	}

	logger.Info().Msg("Removing")
	if err := remove(target); err != nil {
		return "", errors.Wrapf(err, errors.ErrRemove, "cannot remove %s %s", kind, target).
			WithDetail("target", target)
	}
	return OutcomeRemoved, nil
}

func linkErr(err *errors.DotctlError, source, target string, mode types.LinkMode) *errors.DotctlError {
	return err.WithDetails(map[string]interface{}{
		"source": source,
		"target": target,
		"mode":   mode.String(),
	})
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !hasParentPrefix(rel))
}

func hasParentPrefix(rel string) bool {
	return len(rel) > 2 && rel[:2] == ".." && os.IsPathSeparator(rel[2])
}
