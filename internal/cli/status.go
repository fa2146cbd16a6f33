package cli

import (
	"github.com/arthur-debert/dotctl/pkg/status"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "status [entries...]",
		Short:             MsgStatusShort,
		GroupID:           "core",
		ValidArgsFunction: entryNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInvocation(cmd, opts)
			if err != nil {
				return err
			}
			entries, err := inv.selectEntries(args, len(args) == 0)
			if err != nil {
				return err
			}
			o, err := inv.orchestrator(false)
			if err != nil {
				return err
			}

			results := make([]status.EntryStatus, 0, len(entries))
			for _, entry := range entries {
				results = append(results, o.Status(entry))
			}
			return inv.renderer.RenderStatus(results)
		},
	}
}
