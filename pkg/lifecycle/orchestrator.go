package lifecycle

import (
	"context"
	"io"
	"time"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/hooks"
	"github.com/arthur-debert/dotctl/pkg/links"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/arthur-debert/dotctl/pkg/status"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/rs/zerolog"
)

// Environment variables exported to every hook
const (
	EnvRepository = "DOTCTL_REPOSITORY"
	EnvEntry      = "DOTCTL_ENTRY"
	EnvPhase      = "DOTCTL_PHASE"
)

// HookRunner runs one phase's commands in order, stopping at the first failure
type HookRunner interface {
	RunAll(ctx context.Context, commands []string, env ...string) ([]hooks.Result, error)
}

// Options contains configuration for the orchestrator
type Options struct {
	Env Environment

	// Repository is the raw repository path from the document; it is
	// resolved against Env.WorkDir
	Repository string

	FS     types.FS
	DryRun bool

	// IgnoreMissing turns a missing teardown target into a skip
	IgnoreMissing bool

	// HookTimeout bounds each hook command; zero waits forever
	HookTimeout time.Duration
	// HookEnv is added to every hook's environment
	HookEnv []string
	// Stdout receives hook output as it is produced
	Stdout io.Writer
	// Hooks replaces the process runner, mostly for tests
	Hooks HookRunner

	Logger zerolog.Logger
}

// Orchestrator runs configuration entries through their lifecycle
type Orchestrator struct {
	env           Environment
	repository    string
	resolver      *paths.Resolver
	linker        *links.Linker
	checker       *status.ModeChecker
	hooks         HookRunner
	dryRun        bool
	ignoreMissing bool
	logger        zerolog.Logger
}

// New creates an orchestrator. It fails when the repository cannot be
// resolved, e.g. a ~ path without a home directory.
func New(opts Options) (*Orchestrator, error) {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("lifecycle")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	resolver := paths.NewResolver(opts.Env.Home)
	repository, err := RepositoryRoot(resolver, opts.Repository, opts.Env.WorkDir)
	if err != nil {
		return nil, err
	}

	runner := opts.Hooks
	if runner == nil {
		runner = hooks.New(hooks.Options{
			WorkDir: repository,
			Env:     opts.HookEnv,
			Timeout: opts.HookTimeout,
			Stdout:  opts.Stdout,
			DryRun:  opts.DryRun,
			Logger:  logger.With().Str("component", "hooks").Logger(),
		})
	}

	return &Orchestrator{
		env:        opts.Env,
		repository: repository,
		resolver:   resolver,
		linker: links.New(links.Options{
			FS:     fsys,
			DryRun: opts.DryRun,
			Logger: logger.With().Str("component", "links").Logger(),
		}),
		checker:       status.NewModeChecker(fsys),
		hooks:         runner,
		dryRun:        opts.DryRun,
		ignoreMissing: opts.IgnoreMissing,
		logger:        logger,
	}, nil
}

// RepositoryRoot resolves the document's repository path. A relative
// path is taken relative to workDir.
func RepositoryRoot(resolver *paths.Resolver, raw, workDir string) (string, error) {
	root, err := resolver.Resolve(raw, workDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.GetErrorCode(err), "cannot resolve repository %q", raw).
			WithDetails(errors.GetErrorDetails(err))
	}
	return root, nil
}

// Repository returns the resolved repository root
func (o *Orchestrator) Repository() string {
	return o.repository
}

// ApplyLink resolves link against repositoryRoot and materializes it
func (o *Orchestrator) ApplyLink(link types.LinkSpec, repositoryRoot string) (LinkResult, error) {
	result := LinkResult{Mode: link.Mode.String()}

	source, err := o.resolver.ResolveSource(link.Source, repositoryRoot)
	if err != nil {
		return result, err
	}
	result.Source = source

	target, err := o.resolver.ResolveTarget(link.Target)
	if err != nil {
		return result, err
	}
	result.Target = target

	outcome, err := o.linker.Apply(source, target, link.Mode)
	if err != nil {
		return result, err
	}
	result.Outcome = outcome
	return result, nil
}

// TeardownLink resolves link's target and removes whatever is there
func (o *Orchestrator) TeardownLink(link types.LinkSpec) (LinkResult, error) {
	result := LinkResult{Mode: link.Mode.String()}

	target, err := o.resolver.ResolveTarget(link.Target)
	if err != nil {
		return result, err
	}
	result.Target = target

	outcome, err := o.linker.Teardown(target)
	if err != nil {
		if o.ignoreMissing && errors.IsErrorCode(err, errors.ErrTargetNotFound) {
			o.logger.Debug().Str("target", target).Msg("Target already absent")
			result.Outcome = links.OutcomeSkipped
			return result, nil
		}
		return result, err
	}
	result.Outcome = outcome
	return result, nil
}

// RunHooks runs the commands of every hook declared for phase, in
// declaration order
func (o *Orchestrator) RunHooks(ctx context.Context, specs []types.HookSpec, phase types.HookPhase, env ...string) ([]HookResult, error) {
	commands := types.CommandsFor(specs, phase)
	if len(commands) == 0 {
		return nil, nil
	}

	hookEnv := append([]string{
		EnvRepository + "=" + o.repository,
		EnvPhase + "=" + string(phase),
	}, env...)

	o.logger.Debug().Str("phase", phase.String()).Int("count", len(commands)).Msg("Running hooks")
	results, err := o.hooks.RunAll(ctx, commands, hookEnv...)

	out := make([]HookResult, 0, len(results))
	for i, r := range results {
		out = append(out, HookResult{
			Phase:   phase,
			Command: commands[i],
			Output:  r.Output,
			Skipped: r.Skipped,
			Planned: r.Planned,
		})
	}
	if err != nil {
		return out, errors.Wrapf(err, errors.GetErrorCode(err), "%s hook failed", phase.String()).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail("phase", string(phase))
	}
	return out, nil
}
