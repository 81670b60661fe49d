package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Loader builds a Config from defaults, the config file and the environment,
// each overriding the one before.
type Loader struct {
	configPath string
	homeDir    func() (string, error)
}

// NewLoader creates a loader reading the config file at configPath. An empty
// path skips the file.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
		homeDir:    os.UserHomeDir,
	}
}

// Load returns the validated configuration
func (l *Loader) Load() (*Config, error) {
	cfg := Defaults()

	if l.configPath != "" {
		if err := l.loadFile(l.configPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	dataDir, err := l.expandHome(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFile overlays the keys present in the yaml file onto cfg
func (l *Loader) loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (l *Loader) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := l.homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ParseEnv overlays JAY_* environment variables onto target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
