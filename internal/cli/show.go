package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wallacegibbon/skillkit/internal/terminal"
)

func newShowCommand(rt *runtime) *cobra.Command {
	var (
		width int
		style string
	)

	cmd := &cobra.Command{
		Use:   "show <skill-directory>",
		Short: "Validate a skill and render its SKILL.md body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dir := args[0]

			res := rt.app.Validator.Validate(dir)
			if !res.Valid {
				terminal.Failure(out, "%s", res.Message)
				return exitCode(nil)
			}

			header, body, err := rt.app.Validator.Load(dir)
			if err != nil {
				terminal.Failure(out, "%v", err)
				return exitCode(err)
			}
			name, _ := header.Get("name")
			desc, _ := header.Get("description")
			fmt.Fprintln(out, terminal.Title(fmt.Sprint(name)))
			fmt.Fprintln(out, terminal.Dim(fmt.Sprint(desc)))

			rendered, err := terminal.RenderMarkdown(body, width, style)
			if err != nil {
				terminal.Failure(out, "Error rendering SKILL.md: %v", err)
				return exitCode(err)
			}
			fmt.Fprint(out, rendered)

			for _, w := range res.Warnings {
				terminal.Warning(out, "%s", w)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "wrap the rendered body at this width")
	cmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, notty, ...); detected when empty")
	return cmd
}
