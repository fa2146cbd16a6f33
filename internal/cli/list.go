package cli

import (
	"os"

	"github.com/arthur-debert/dotctl/pkg/lifecycle"
	"github.com/arthur-debert/dotctl/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInvocation(cmd, opts)
			if err != nil {
				return err
			}
			return inv.renderSummary("")
		},
	}
}

func newUseCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "use <config_path>",
		Short:   MsgUseShort,
		GroupID: "config",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := newInvocation(cmd, opts)
			if err != nil {
				return err
			}
			if err := inv.load(args[0]); err != nil {
				return err
			}
			return inv.renderSummary(inv.configPath)
		},
	}
}

func (inv *invocation) renderSummary(path string) error {
	repository, err := lifecycle.RepositoryRoot(inv.resolver, inv.cfg.Options.Repository, inv.env.WorkDir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(repository); err != nil {
		log.Warn().Err(err).Str("repository", repository).Msg("Repository is not accessible")
	}
	return inv.renderer.RenderSummary(output.NewConfigSummary(path, repository, inv.cfg, inv.env.OS))
}
