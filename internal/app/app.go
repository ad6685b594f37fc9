package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/wallacegibbon/skillkit/internal/config"
	"github.com/wallacegibbon/skillkit/internal/skills"
)

// App holds the components shared by all commands
type App struct {
	Cfg       *config.Settings
	Logger    *log.Logger
	Validator *skills.Validator
}

// Setup initializes the common app components. Logs go to logOut.
func Setup(cfg *config.Settings, logOut io.Writer, verbose bool) (*App, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(logOut, log.Options{
		Level:  level,
		Prefix: config.AppName,
	})

	parser, err := skills.ParserByName(cfg.Parser)
	if err != nil {
		return nil, err
	}
	logger.Debug("frontmatter parser selected", "configured", cfg.Parser, "parser", parser.Name())
	if cfg.ConfigFile != "" {
		logger.Debug("config loaded", "file", cfg.ConfigFile)
	}

	return &App{
		Cfg:       cfg,
		Logger:    logger,
		Validator: skills.NewValidator(parser, logger),
	}, nil
}
