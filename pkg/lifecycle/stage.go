package lifecycle

// Stage is the last step an entry completed
type Stage string

const (
	StageNotStarted   Stage = "not-started"
	StageHooksPre     Stage = "hooks-pre"
	StageLinksApplied Stage = "links-applied"
	StageLinksRemoved Stage = "links-removed"
	StageHooksPost    Stage = "hooks-post"
	StageDone         Stage = "done"
)

// Action names the lifecycle being run
type Action string

const (
	ActionSetup    Action = "setup"
	ActionTeardown Action = "teardown"
)

// linkStage is the stage reached once every link of action is processed
func (a Action) linkStage() Stage {
	if a == ActionTeardown {
		return StageLinksRemoved
	}
	return StageLinksApplied
}
