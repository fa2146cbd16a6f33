package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
)

// Condition tags a raw path with the resolution rule that applies to it
type Condition int

const (
	IsAbsolute Condition = iota
	HasTilde
	IsRelative
)

func (c Condition) String() string {
	switch c {
	case IsAbsolute:
		return "absolute"
	case HasTilde:
		return "tilde"
	case IsRelative:
		return "relative"
	default:
		return "unknown"
	}
}

// Classify returns the Condition of a raw path. Only "~" and "~/..." are
// home relative; "~user/..." is an ordinary relative path.
func Classify(path string) Condition {
	switch {
	case filepath.IsAbs(path):
		return IsAbsolute
	case path == HomePrefix,
		strings.HasPrefix(path, HomePrefix+"/"),
		strings.HasPrefix(path, HomePrefix+string(filepath.Separator)):
		return HasTilde
	default:
		return IsRelative
	}
}

// resolution is the in-flight state of one Resolve call
type resolution struct {
	path         string
	parent       string
	homeExpanded bool
}

// rule rewrites the path for one Condition. done reports that the path is
// final.
type rule struct {
	when  Condition
	apply func(r *Resolver, s *resolution) (done bool, err *errors.DotctlError)
}

// rules is tried in order against the path's Condition on every pass.
var rules = []rule{
	{when: IsAbsolute, apply: keepAbsolute},
	{when: HasTilde, apply: expandTilde},
	{when: IsRelative, apply: joinParent},
}

// Resolver turns raw configuration paths into absolute paths
type Resolver struct {
	home HomeFunc
}

// NewResolver creates a resolver. A nil home uses GetHomeDirectory.
func NewResolver(home HomeFunc) *Resolver {
	if home == nil {
		home = GetHomeDirectory
	}
	return &Resolver{home: home}
}

// Resolve converts raw into an absolute path. parent is optional; when
// empty a relative raw path fails with ErrNoParent. Each pass either
// finishes, expands the home prefix once, or consumes the parent, so the
// loop runs at most three times.
func (r *Resolver) Resolve(raw, parent string) (string, error) {
	if raw == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	s := &resolution{path: raw, parent: parent}
	for {
		cond := Classify(s.path)
		for _, rl := range rules {
			if rl.when != cond {
				continue
			}
			done, err := rl.apply(r, s)
			if err != nil {
				return "", err.WithDetail("path", raw)
			}
			if done {
				return s.path, nil
			}
			break
		}
	}
}

// ResolveSource resolves a link source against the repository root
func (r *Resolver) ResolveSource(raw, repository string) (string, error) {
	return r.Resolve(raw, repository)
}

// ResolveTarget resolves a link target. Targets have no implicit parent.
func (r *Resolver) ResolveTarget(raw string) (string, error) {
	return r.Resolve(raw, "")
}

func keepAbsolute(_ *Resolver, _ *resolution) (bool, *errors.DotctlError) {
	return true, nil
}

func expandTilde(r *Resolver, s *resolution) (bool, *errors.DotctlError) {
	if s.homeExpanded {
		return false, errors.New(errors.ErrInternal, "home directory expanded twice")
	}

	home, err := r.home()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrNoHomeDirectory, "cannot determine home directory")
	}
	if home == "" {
		return false, errors.New(errors.ErrNoHomeDirectory, "home directory is empty")
	}
	if !filepath.IsAbs(home) {
		return false, errors.Newf(errors.ErrNoHomeDirectory, "home directory is not absolute: %s", home)
	}

	rest := strings.TrimPrefix(s.path, HomePrefix)
	rest = strings.TrimLeft(rest, "/"+string(filepath.Separator))
	s.path = filepath.Join(home, rest)
	s.homeExpanded = true
	return false, nil
}

func joinParent(_ *Resolver, s *resolution) (bool, *errors.DotctlError) {
	if s.parent == "" {
		return false, errors.Newf(errors.ErrNoParent, "relative path %q has no parent to resolve against", s.path)
	}
	s.path = filepath.Join(s.parent, s.path)
	s.parent = ""
	return false, nil
}
