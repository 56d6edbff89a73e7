// Package config provides configuration management for Theme Toggle.
// Configuration is read-only: the application never writes the file back.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yllada/theme-toggle/common"
)

// Config represents the application configuration.
type Config struct {
	// Tooltip is shown when hovering the tray icon.
	Tooltip string `yaml:"tooltip"`
	// Backend selects the theme store: "auto", "registry" or "file".
	Backend string `yaml:"backend"`
	// StateFile is the YAML file used by the file backend.
	StateFile string `yaml:"state_file"`
	// LightIcon and DarkIcon optionally replace the built-in glyphs with PNG files.
	LightIcon string `yaml:"light_icon"`
	DarkIcon  string `yaml:"dark_icon"`
	// WatchExternalChanges re-syncs the icon when another program changes the theme.
	WatchExternalChanges bool `yaml:"watch_external_changes"`
	// BroadcastChange notifies running applications after each write.
	BroadcastChange bool `yaml:"broadcast_change"`
	// NotifyWriteFailures shows a desktop notification when persisting the theme fails.
	NotifyWriteFailures bool `yaml:"notify_write_failures"`
	// LogToFile enables the rotated log file in the config directory.
	LogToFile bool `yaml:"log_to_file"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tooltip:              common.DefaultTooltip,
		Backend:              common.BackendAuto,
		WatchExternalChanges: true,
		BroadcastChange:      true,
		NotifyWriteFailures:  false,
		LogToFile:            false,
		LogLevel:             "info",
	}
}

// Load loads the configuration from the default location.
// If the file doesn't exist, the defaults are returned.
func Load() (*Config, error) {
	path, err := common.DefaultConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	if !common.FileExists(path) {
		return DefaultConfig(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", common.ErrConfigLoad, path, err)
	}
	defer file.Close()

	cfg, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", common.ErrConfigLoad, path, err)
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	config.validate()
	return config, nil
}

// validate replaces invalid values with their defaults.
func (c *Config) validate() {
	switch c.Backend {
	case common.BackendAuto, common.BackendRegistry, common.BackendFile:
	default:
		common.LogWarn("Unknown backend %q, using %q", c.Backend, common.BackendAuto)
		c.Backend = common.BackendAuto
	}

	if _, ok := common.ParseLogLevel(c.LogLevel); !ok {
		common.LogWarn("Unknown log level %q, using info", c.LogLevel)
		c.LogLevel = "info"
	}

	if c.Tooltip == "" {
		c.Tooltip = common.DefaultTooltip
	}
}

// StatePath returns the file backing the file store, falling back to the
// default location in the config directory.
func (c *Config) StatePath() (string, error) {
	if c.StateFile != "" {
		return c.StateFile, nil
	}
	return common.DefaultStatePath()
}

// Level returns the configured log level.
func (c *Config) Level() common.LogLevel {
	level, _ := common.ParseLogLevel(c.LogLevel)
	return level
}
