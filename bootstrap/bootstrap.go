// Package bootstrap wires the logger and configuration for the CLI.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ercheck/config"
)

// InitLogger initializes the zap logger with colored console output.
func InitLogger(level string) (*zap.Logger, *zap.SugaredLogger, error) {
	// Create a colored console encoder config
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder // Colored levels
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder        // Readable timestamps
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder      // Short file paths

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	// Create console encoder with colors
	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)

	// Write to stderr so report output on stdout stays machine-readable
	core := zapcore.NewCore(
		consoleEncoder,
		zapcore.AddSync(os.Stderr),
		zapLevel,
	)

	logger := zap.New(core, zap.AddCaller())
	return logger, logger.Sugar(), nil
}

// InitConfig loads the application configuration.
func InitConfig(sugar *zap.SugaredLogger) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load config: %v\n", err)
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if viper.ConfigFileUsed() == "" {
		sugar.Debug("No config file found, using defaults and env vars")
	} else {
		sugar.Debugw("Config loaded", "file", viper.ConfigFileUsed())
	}

	return cfg, nil
}
