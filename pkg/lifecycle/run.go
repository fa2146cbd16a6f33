package lifecycle

import (
	"context"
	"time"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/links"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// Setup runs PRESETUP hooks, applies every link, then runs POSTSETUP
// hooks. The report is returned even on failure; its Stage is the last
// step that completed.
func (o *Orchestrator) Setup(ctx context.Context, entry types.ConfigSpec) (*Report, error) {
	return o.run(ctx, entry, ActionSetup)
}

// Teardown runs PRETEARDOWN hooks, removes every link target, then runs
// POSTTEARDOWN hooks
func (o *Orchestrator) Teardown(ctx context.Context, entry types.ConfigSpec) (*Report, error) {
	return o.run(ctx, entry, ActionTeardown)
}

// SetupAll sets up entries in order and stops at the first failure
func (o *Orchestrator) SetupAll(ctx context.Context, entries []types.ConfigSpec) (*RunReport, error) {
	return o.runAll(ctx, entries, ActionSetup)
}

// TeardownAll tears down entries in order and stops at the first failure
func (o *Orchestrator) TeardownAll(ctx context.Context, entries []types.ConfigSpec) (*RunReport, error) {
	return o.runAll(ctx, entries, ActionTeardown)
}

func (o *Orchestrator) runAll(ctx context.Context, entries []types.ConfigSpec, action Action) (*RunReport, error) {
	run := &RunReport{
		Action:    action,
		StartTime: time.Now(),
		DryRun:    o.dryRun,
	}
	defer func() { run.EndTime = time.Now() }()

	for _, entry := range entries {
		report, err := o.run(ctx, entry, action)
		run.Entries = append(run.Entries, report)
		if err != nil {
			return run, err
		}
	}
	return run, nil
}

func (o *Orchestrator) run(ctx context.Context, entry types.ConfigSpec, action Action) (*Report, error) {
	logger := o.logger.With().Str("entry", entry.Name).Str("action", string(action)).Logger()
	done := logging.LogOperationStart(logger, string(action))
	defer done()

	pre, post := types.PhasePresetup, types.PhasePostsetup
	if action == ActionTeardown {
		pre, post = types.PhasePreteardown, types.PhasePostteardown
	}

	report := &Report{Entry: entry.Name, Stage: StageNotStarted, Stages: []Stage{StageNotStarted}, Links: []LinkResult{}}
	fail := func(err error) (*Report, error) {
		report.Error = err.Error()
		logger.Error().Err(err).Str("stage", string(report.Stage)).Msg("Entry aborted")
		return report, errors.Wrapf(err, errors.GetErrorCode(err), "%s of %q failed", action, entry.Name).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail("entry", entry.Name).
			WithDetail("stage", string(report.Stage))
	}
	advance := func(stage Stage) {
		report.Stage = stage
		report.Stages = append(report.Stages, stage)
		logger.Debug().Str("stage", string(stage)).Msg("Stage complete")
	}
	entryEnv := EnvEntry + "=" + entry.Name

	// Setup always walks both hook stages. Teardown only enters a hook
	// stage when the entry declares commands for that phase.
	hookStage := func(phase types.HookPhase) bool {
		return action == ActionSetup || len(types.CommandsFor(entry.Hooks, phase)) > 0
	}

	results, err := o.RunHooks(ctx, entry.Hooks, pre, entryEnv)
	report.Hooks = append(report.Hooks, results...)
	if err != nil {
		return fail(err)
	}
	if hookStage(pre) {
		advance(StageHooksPre)
	}

	for _, link := range entry.Links {
		if err := ctx.Err(); err != nil {
			return fail(errors.Wrap(err, errors.ErrInternal, "cancelled"))
		}

		var result LinkResult
		if action == ActionTeardown {
			result, err = o.TeardownLink(link)
		} else {
			result, err = o.ApplyLink(link, o.repository)
		}
		if err != nil {
			result.Outcome = links.OutcomeFailed
			report.Links = append(report.Links, result)
			return fail(err)
		}
		report.Links = append(report.Links, result)
	}
	advance(action.linkStage())

	results, err = o.RunHooks(ctx, entry.Hooks, post, entryEnv)
	report.Hooks = append(report.Hooks, results...)
	if err != nil {
		return fail(err)
	}
	if hookStage(post) {
		advance(StageHooksPost)
	}

	advance(StageDone)
	logger.Info().Int("links", len(report.Links)).Msg("Entry complete")
	return report, nil
}
