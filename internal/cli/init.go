package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wallacegibbon/skillkit/internal/scaffold"
	"github.com/wallacegibbon/skillkit/internal/terminal"
)

const initUsage = `Usage: skillkit init <skill-name> --path <path>

Skill name requirements:
  - Kebab-case (e.g., 'my-data-analyzer')
  - Lowercase letters, digits, and hyphens only
  - Max 64 characters

Examples:
  skillkit init my-new-skill --path .agent/skills
  skillkit init my-api-helper --path /custom/location
`

func newInitCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "init <skill-name> --path <path>",
		Short: "Create a new skill from the template",
		Long: `Create a new skill directory <path>/<skill-name> containing a templated
SKILL.md and example files in scripts/, references/ and assets/.

The arguments must be given in exactly this form.`,
		// The argument form is checked literally in RunE, after the root
		// flags are taken out
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			args = rt.takeRootFlags(args)
			if len(args) != 3 || args[1] != "--path" {
				fmt.Fprint(out, initUsage)
				return exitCode(nil)
			}
			rt.app.Logger.Debug("init", "name", args[0], "path", args[2])
			return runInit(out, args[0], args[2])
		},
	}
}

func runInit(out io.Writer, name, path string) error {
	fmt.Fprintln(out, terminal.Title("Initializing skill: "+name))
	fmt.Fprintf(out, "   Location: %s\n\n", terminal.Path(path))

	skillDir, err := scaffold.Create(scaffold.CreateOptions{
		Name:      name,
		ParentDir: path,
		OnCreated: func(rel string) {
			if rel == "." {
				abs, _ := filepath.Abs(filepath.Join(path, name))
				terminal.Success(out, "Created skill directory: %s", abs)
				return
			}
			terminal.Success(out, "Created %s", rel)
		},
	})
	if err != nil {
		var stepErr *scaffold.StepError
		switch {
		case errors.Is(err, scaffold.ErrAlreadyExists):
			terminal.Failure(out, "Error: %v", err)
		case errors.As(err, &stepErr):
			terminal.Failure(out, "Error creating %s: %v", stepErr.Step, stepErr.Err)
		default:
			terminal.Failure(out, "Error: %v", err)
		}
		return exitCode(err)
	}

	fmt.Fprintln(out)
	terminal.Success(out, "Skill '%s' initialized at %s", name, terminal.Path(skillDir))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "1. Edit SKILL.md to complete the TODO items")
	fmt.Fprintln(out, "2. Customize or delete example files in scripts/, references/, assets/")
	fmt.Fprintf(out, "3. Run %s when ready to check structure\n", terminal.Path("skillkit validate "+skillDir))
	return nil
}
