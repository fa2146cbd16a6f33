package cli

import (
	"os"

	"github.com/arthur-debert/dotctl/pkg/config"
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		syntax string
		target string
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Example: MsgGenConfigExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(syntax)
			if err != nil {
				return err
			}
			content, err := config.GenerateStarter(format)
			if err != nil {
				return err
			}

			if target == "" {
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}

			if _, err := os.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrFileExists, target)
			}
			if err := os.WriteFile(target, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "cannot write %s", target)
			}
			log.Info().Str("path", target).Str("format", string(format)).Msg("Wrote starter configuration")
			return nil
		},
	}

	// Shadows the global --format, which selects report rendering
	cmd.Flags().StringVar(&syntax, "format", string(config.FormatYAML), MsgFlagSyntax)
	cmd.Flags().StringVarP(&target, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
