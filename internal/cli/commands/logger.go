package commands

import (
	"context"

	"github.com/hernantz/jay/internal/config"
	"github.com/hernantz/jay/internal/core/logger"
	"github.com/spf13/cobra"
)

const (
	flagLogLevelName  = "log-level"
	flagLogFormatName = "log-format"
)

// RegisterLoggerFlags registers the logging flags. They override the
// configuration only when given explicitly.
func RegisterLoggerFlags(cmd *cobra.Command, level, format *string) {
	cmd.PersistentFlags().StringVar(level, flagLogLevelName, "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(format, flagLogFormatName, "text", "Log format (text, json)")
}

// CreateLogger creates a logger writing to the command's stderr
func CreateLogger(cmd *cobra.Command, cfg *config.Config) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
	), nil
}

// withLogger creates the logger and stores it in the command context
func withLogger(cmd *cobra.Command, cfg *config.Config) (context.Context, logger.Logger, error) {
	log, err := CreateLogger(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithContext(ctx, log), log, nil
}
