package cli

import (
	"github.com/spf13/cobra"

	"github.com/wallacegibbon/skillkit/internal/terminal"
	"github.com/wallacegibbon/skillkit/internal/wizard"
)

func newNewCommand(rt *runtime) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new skill interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			answers, err := wizard.Run(path, cmd.InOrStdin(), out)
			if err != nil {
				terminal.Failure(out, "%v", err)
				return exitCode(err)
			}
			if answers.Cancelled {
				terminal.Info(out, "Cancelled")
				return nil
			}
			rt.app.Logger.Debug("wizard answers", "name", answers.Name, "path", answers.Path)
			return runInit(out, answers.Name, answers.Path)
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "default destination directory")
	return cmd
}
