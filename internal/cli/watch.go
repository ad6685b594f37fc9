package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wallacegibbon/skillkit/internal/terminal"
	"github.com/wallacegibbon/skillkit/internal/watch"
)

func newWatchCommand(rt *runtime) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <skill-directory>",
		Short: "Re-validate a skill whenever its files change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dir := args[0]

			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				terminal.Failure(out, "Not a directory: %s", dir)
				return exitCode(err)
			}

			check := func() {
				fmt.Fprintln(out, terminal.Dim(time.Now().Format("15:04:05")+" validating "+dir))
				printResult(out, rt.app.Validator.Validate(dir))
				fmt.Fprintln(out)
			}

			check()
			terminal.Info(out, "Watching for changes, press Ctrl+C to stop")
			return watch.Run(cmd.Context(), dir, debounce, rt.app.Logger, check)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "wait this long after the last change before validating")
	return cmd
}
