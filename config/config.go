// Package config loads the ercheck configuration from file, environment
// and defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the ercheck tool.
type Config struct {
	// LogLevel controls the minimum level emitted by the logger:
	// debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`

	// NoColor disables colored CLI output.
	NoColor bool `mapstructure:"no_color"`

	// WarningsAsErrors makes warning-severity violations fail the run.
	WarningsAsErrors bool `mapstructure:"warnings_as_errors"`

	// RuleFiles lists rule-set files loaded before every check run, in
	// addition to any passed on the command line.
	RuleFiles []string `mapstructure:"rule_files"`
}

func setDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("no_color", false)
	viper.SetDefault("warnings_as_errors", false)
	viper.SetDefault("rule_files", []string{})
}

// LoadConfig reads configuration from ercheck.yaml (working directory or
// ./config), ERCHECK_* environment variables, and built-in defaults, in
// that order of precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("ercheck")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.SetEnvPrefix("ERCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, will use defaults and env vars
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log_level %q", config.LogLevel)
	}

	return &config, nil
}
