package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	Version = "0.1.0"

	// AppName names the config directory and environment prefix
	AppName = "skillkit"
)

// Settings holds all CLI configuration
type Settings struct {
	Parser   string `mapstructure:"parser"`
	LogLevel string `mapstructure:"log_level"`

	// ConfigFile is the file the settings were read from, empty for defaults only
	ConfigFile string `mapstructure:"-"`
}

// Default returns the settings used when nothing is configured
func Default() *Settings {
	return &Settings{
		Parser:   "auto",
		LogLevel: "warn",
	}
}

// Dir returns the skillkit config directory ($XDG_CONFIG_HOME/skillkit)
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// Load reads settings from defaults, the config file and SKILLKIT_* variables.
// An explicit configFile must exist; the default location is optional.
func Load(configFile string) (*Settings, error) {
	defaults := Default()

	v := viper.New()
	v.SetDefault("parser", defaults.Parser)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	s.ConfigFile = v.ConfigFileUsed()
	return s, nil
}
