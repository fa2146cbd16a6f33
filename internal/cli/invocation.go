package cli

import (
	"github.com/arthur-debert/dotctl/pkg/config"
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/lifecycle"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/output"
	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// invocation is the state every config-driven command starts from
type invocation struct {
	opts       *globalOptions
	env        lifecycle.Environment
	resolver   *paths.Resolver
	configPath string
	cfg        *types.DotfileConfiguration
	renderer   *output.Renderer
}

// newInvocation reads the host environment and prepares the renderer.
// The configuration is not loaded yet.
func newInvocation(cmd *cobra.Command, opts *globalOptions) (*invocation, error) {
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	env, err := lifecycle.CurrentEnvironment()
	if err != nil {
		return nil, err
	}

	return &invocation{
		opts:     opts,
		env:      env,
		resolver: paths.NewResolver(env.Home),
		renderer: output.NewRenderer(cmd.OutOrStdout(), format),
	}, nil
}

// load reads the document at raw, or at the default location when raw is empty
func (inv *invocation) load(raw string) error {
	path, err := inv.resolver.ConfigPath(raw, inv.env.WorkDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	log.Debug().
		Str("config", path).
		Int("entries", len(cfg.Configurations)).
		Str("system", string(inv.env.OS)).
		Msg("Configuration loaded")

	inv.configPath = path
	inv.cfg = cfg
	return nil
}

// loadInvocation combines newInvocation and load for the --config document
func loadInvocation(cmd *cobra.Command, opts *globalOptions) (*invocation, error) {
	inv, err := newInvocation(cmd, opts)
	if err != nil {
		return nil, err
	}
	if err := inv.load(opts.configPath); err != nil {
		return nil, err
	}
	return inv, nil
}

// selectEntries maps command arguments to entries: explicit names in the
// order given, or every eligible entry with --all
func (inv *invocation) selectEntries(names []string, all bool) ([]types.ConfigSpec, error) {
	switch {
	case all && len(names) > 0:
		return nil, errors.New(errors.ErrInvalidInput, MsgErrAllAndArgs)
	case all:
		return config.Eligible(inv.cfg, inv.env.OS)
	case len(names) == 0:
		return nil, errors.New(errors.ErrInvalidInput, MsgErrNoEntries)
	default:
		return config.SelectAll(inv.cfg, names, inv.env.OS)
	}
}

func (inv *invocation) orchestrator(ignoreMissing bool) (*lifecycle.Orchestrator, error) {
	return lifecycle.FromConfig(inv.cfg, lifecycle.Options{
		Env:           inv.env,
		DryRun:        inv.opts.dryRun,
		IgnoreMissing: ignoreMissing,
		Logger: logging.WithFields(map[string]interface{}{
			"component": "lifecycle",
			"dry_run":   inv.opts.dryRun,
		}),
	})
}

// entryNames completes entry names from the default configuration
func entryNames(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		inv, err := loadInvocation(cmd, opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, entry := range inv.cfg.Configurations {
			if entry.OS == inv.env.OS && entry.Status == types.StatusReady {
				names = append(names, entry.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
