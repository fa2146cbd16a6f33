package lifecycle

import (
	"github.com/arthur-debert/dotctl/pkg/hooks"
	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// FromConfig builds an orchestrator from the document's options. Values
// already set in opts win over the document. A relative env_file is read
// from the repository.
func FromConfig(cfg *types.DotfileConfiguration, opts Options) (*Orchestrator, error) {
	if opts.Repository == "" {
		opts.Repository = cfg.Options.Repository
	}
	if opts.HookTimeout == 0 {
		opts.HookTimeout = cfg.Options.HookTimeout
	}

	if cfg.Options.EnvFile != "" {
		resolver := paths.NewResolver(opts.Env.Home)
		repository, err := RepositoryRoot(resolver, opts.Repository, opts.Env.WorkDir)
		if err != nil {
			return nil, err
		}
		path, err := resolver.Resolve(cfg.Options.EnvFile, repository)
		if err != nil {
			return nil, err
		}
		fileEnv, err := hooks.LoadEnvFile(path)
		if err != nil {
			return nil, err
		}
		opts.HookEnv = append(fileEnv, opts.HookEnv...)
	}

	return New(opts)
}
