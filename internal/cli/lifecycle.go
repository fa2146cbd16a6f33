package cli

import (
	"github.com/spf13/cobra"
)

func newSetupCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:               "setup [entries...]",
		Short:             MsgSetupShort,
		Long:              MsgSetupLong,
		Example:           MsgSetupExample,
		GroupID:           "core",
		ValidArgsFunction: entryNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInvocation(cmd, opts)
			if err != nil {
				return err
			}
			entries, err := inv.selectEntries(args, all)
			if err != nil {
				return err
			}
			o, err := inv.orchestrator(false)
			if err != nil {
				return err
			}

			run, runErr := o.SetupAll(cmd.Context(), entries)
			if err := inv.renderer.RenderRun(run); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	return cmd
}

func newTeardownCmd(opts *globalOptions) *cobra.Command {
	var (
		all           bool
		ignoreMissing bool
	)

	cmd := &cobra.Command{
		Use:               "teardown [entries...]",
		Short:             MsgTeardownShort,
		Long:              MsgTeardownLong,
		Example:           MsgTeardownExample,
		GroupID:           "core",
		ValidArgsFunction: entryNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInvocation(cmd, opts)
			if err != nil {
				return err
			}
			entries, err := inv.selectEntries(args, all)
			if err != nil {
				return err
			}
			o, err := inv.orchestrator(ignoreMissing)
			if err != nil {
				return err
			}

			run, runErr := o.TeardownAll(cmd.Context(), entries)
			if err := inv.renderer.RenderRun(run); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, MsgFlagIgnoreMissing)
	return cmd
}
