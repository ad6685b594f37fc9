package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wallacegibbon/skillkit/internal/skills"
	"github.com/wallacegibbon/skillkit/internal/terminal"
)

const validateUsage = `Usage: skillkit validate <skill_directory>

Example:
  skillkit validate .agent/skills/my-skill
`

func newValidateCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <skill-directory>",
		Short: "Check a skill's structure and SKILL.md frontmatter",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) != 1 {
				fmt.Fprint(out, validateUsage)
				return exitCode(nil)
			}

			fmt.Fprintln(out, terminal.Title("Validating skill: "+args[0]))
			fmt.Fprintln(out)
			res := rt.app.Validator.Validate(args[0])
			printResult(out, res)
			if !res.Valid {
				return exitCode(nil)
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.OutOrStdout(), validateUsage)
		return exitCode(err)
	})
	return cmd
}

func printResult(out io.Writer, res skills.Result) {
	for _, w := range res.Warnings {
		terminal.Warning(out, "%s", w)
	}
	if res.Valid {
		terminal.Success(out, "%s", res.Message)
	} else {
		terminal.Failure(out, "%s", res.Message)
	}
}
