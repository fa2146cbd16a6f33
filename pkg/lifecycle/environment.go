package lifecycle

import (
	"os"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// Environment is the host state the orchestrator depends on
type Environment struct {
	// OS is the running platform, compared against entry OS fields
	OS types.SystemName
	// WorkDir anchors a relative repository path
	WorkDir string
	// Home looks up the home directory for ~ expansion
	Home paths.HomeFunc
}

// CurrentEnvironment reads the Environment of the running process
func CurrentEnvironment() (Environment, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Environment{}, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
	}
	return Environment{
		OS:      types.CurrentSystem(),
		WorkDir: wd,
		Home:    paths.GetHomeDirectory,
	}, nil
}
