package types

import (
	"fmt"
	"strings"
)

// LinkMode is the strategy used to materialize a link on disk
type LinkMode string

const (
	// LinkModeSoft creates a symbolic link at the target pointing to the source
	LinkModeSoft LinkMode = "SOFTLINK"

	// LinkModeHard creates a hard link at the target; regular files only
	LinkModeHard LinkMode = "HARDLINK"

	// LinkModeCopy recursively duplicates the source into the target
	LinkModeCopy LinkMode = "COPY"
)

// ParseLinkMode parses a link mode, accepting the canonical spelling as well
// as the short forms used in hand-written documents.
func ParseLinkMode(s string) (LinkMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "softlink", "soft", "symlink", "link":
		return LinkModeSoft, nil
	case "hardlink", "hard":
		return LinkModeHard, nil
	case "copy":
		return LinkModeCopy, nil
	default:
		return "", fmt.Errorf("unknown link mode: %q", s)
	}
}

// String returns the lower case name used in output
func (m LinkMode) String() string {
	switch m {
	case LinkModeSoft:
		return "soft"
	case LinkModeHard:
		return "hard"
	case LinkModeCopy:
		return "copy"
	default:
		return string(m)
	}
}

// IsValid reports whether m is one of the known modes
func (m LinkMode) IsValid() bool {
	return m == LinkModeSoft || m == LinkModeHard || m == LinkModeCopy
}

// LinkSpec is a single source -> target entry as authored in the
// configuration document. Paths are kept raw; they are resolved per operation.
type LinkSpec struct {
	Source string   `koanf:"source" yaml:"source" toml:"source" json:"source"`
	Target string   `koanf:"target" yaml:"target" toml:"target" json:"target"`
	Mode   LinkMode `koanf:"mode" yaml:"mode" toml:"mode" json:"mode"`
}

// String renders the link the way it is traced in logs
func (l LinkSpec) String() string {
	return fmt.Sprintf("%s -> %s (%s)", l.Source, l.Target, l.Mode)
}
