// Package config provides configuration for jay.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hernantz/jay/internal/core/index"
	"github.com/hernantz/jay/internal/core/logger"
	"github.com/hernantz/jay/internal/fuzzy"
)

const (
	// AppDir is the directory name used under the XDG data and config homes
	AppDir = "jay"
	// ConfigFile is the filename of the optional configuration file
	ConfigFile = "config.yaml"

	indexFile  = "index"
	recentFile = "recent"
	scriptFile = "jay.bash"
)

// Config holds the settings of one invocation
type Config struct {
	// DataDir holds the index, the recent directory file and the shell script
	DataDir string `yaml:"data_dir" env:"JAY_DATA_DIR"`
	// IndexMaxSize is how many directories the index keeps
	IndexMaxSize int `yaml:"index_max_size" env:"JAY_INDEX_MAX_SIZE"`
	// MatchThreshold is the score a fuzzy match must exceed, 0-99
	MatchThreshold int `yaml:"match_threshold" env:"JAY_MATCH_THRESHOLD"`
	// LogLevel is debug, info, warn or error
	LogLevel string `yaml:"log_level" env:"JAY_LOG_LEVEL"`
	// LogFormat is text or json
	LogFormat string `yaml:"log_format" env:"JAY_LOG_FORMAT"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		DataDir:        filepath.Join(xdg.DataHome, AppDir),
		IndexMaxSize:   index.DefaultMaxSize,
		MatchThreshold: fuzzy.DefaultThreshold,
		LogLevel:       "warn",
		LogFormat:      string(logger.FormatText),
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/jay/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDir, ConfigFile)
}

// IndexPath returns the frecency index file
func (c *Config) IndexPath() string {
	return filepath.Join(c.DataDir, indexFile)
}

// RecentPath returns the recent directory file
func (c *Config) RecentPath() string {
	return filepath.Join(c.DataDir, recentFile)
}

// ScriptPath returns where the bash integration script is installed
func (c *Config) ScriptPath() string {
	return filepath.Join(c.DataDir, scriptFile)
}

// Validate checks the configuration for values jay cannot work with
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.IndexMaxSize < 1 {
		return fmt.Errorf("index_max_size must be at least 1, got %d", c.IndexMaxSize)
	}
	if c.MatchThreshold < 0 || c.MatchThreshold >= 100 {
		return fmt.Errorf("match_threshold must be between 0 and 99, got %d", c.MatchThreshold)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("log_format: %w", err)
	}
	return nil
}
