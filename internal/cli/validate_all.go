package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wallacegibbon/skillkit/internal/skills"
	"github.com/wallacegibbon/skillkit/internal/terminal"
)

func newValidateAllCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-all <skills-root>",
		Short: "Validate every skill directory directly under a root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := args[0]

			found, err := skills.Discover(root)
			if err != nil {
				terminal.Failure(out, "Error reading %s: %v", root, err)
				return exitCode(err)
			}
			if len(found) == 0 {
				terminal.Info(out, "No skills found in %s", root)
				return nil
			}

			invalid := 0
			for _, s := range found {
				res := rt.app.Validator.Validate(s.Path)
				if res.Valid {
					terminal.Success(out, "%s: %s", s.Name, res.Message)
				} else {
					invalid++
					terminal.Failure(out, "%s: %s", s.Name, res.Message)
				}
				for _, w := range res.Warnings {
					fmt.Fprintf(out, "    %s\n", terminal.Yellow(terminal.WarningIcon+" "+w))
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "%d/%d skills valid\n", len(found)-invalid, len(found))
			if invalid > 0 {
				return exitCode(nil)
			}
			return nil
		},
	}
}
