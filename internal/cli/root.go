// Package cli contains the skillkit commands.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/wallacegibbon/skillkit/internal/app"
	"github.com/wallacegibbon/skillkit/internal/config"
	"github.com/wallacegibbon/skillkit/internal/terminal"
)

// runtime is the state shared by the commands of one invocation
type runtime struct {
	configFile string
	verbose    bool
	app        *app.App
}

func (rt *runtime) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(rt.configFile)
	if err != nil {
		return err
	}
	rt.app, err = app.Setup(cfg, cmd.ErrOrStderr(), rt.verbose)
	return err
}

// takeRootFlags applies the root flags found in args and returns the rest.
// Commands with DisableFlagParsing see the root flags as plain arguments.
func (rt *runtime) takeRootFlags(args []string) []string {
	var rest []string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-v" || a == "--verbose":
			rt.verbose = true
		case a == "--config" && i+1 < len(args):
			rt.configFile = args[i+1]
			i++
		case strings.HasPrefix(a, "--config="):
			rt.configFile = strings.TrimPrefix(a, "--config=")
		default:
			rest = append(rest, a)
		}
	}
	return rest
}

func newRootCommand() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "skillkit",
		Short: "Scaffold and validate agent skills",
		Long: terminal.Title("skillkit") + terminal.Dim(" - scaffold and validate agent skills") + `

A skill is a directory with a SKILL.md (YAML frontmatter plus a Markdown
body) and optional scripts/, references/ and assets/ folders.`,
		Example: `  skillkit init my-new-skill --path .agent/skills
  skillkit validate .agent/skills/my-new-skill
  skillkit validate-all .agent/skills`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.DisableFlagParsing {
				rt.takeRootFlags(args)
			}
			return rt.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&rt.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/skillkit/config.yaml)")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newInitCommand(rt),
		newValidateCommand(rt),
		newValidateAllCommand(rt),
		newWatchCommand(rt),
		newShowCommand(rt),
		newNewCommand(rt),
	)
	return root
}

// errorHandler prints errors that commands have not already reported
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(config.Version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	)
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
