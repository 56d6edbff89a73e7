// Package cli provides command-line interface functionality for Theme Toggle.
// This allows users to query and switch the theme from the terminal or a
// script without starting the tray icon.
package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/yllada/theme-toggle/common"
	"github.com/yllada/theme-toggle/config"
	"github.com/yllada/theme-toggle/theme"
)

// CLI represents the command-line interface.
type CLI struct {
	store       *theme.Store
	broadcaster theme.Broadcaster
	backend     string
	out         io.Writer
}

// Option configures a CLI.
type Option func(*CLI)

// WithKeyStore replaces the key store selected by the config backend.
func WithKeyStore(kv theme.KeyStore) Option {
	return func(c *CLI) {
		c.store = theme.NewStore(kv, theme.WithStoreLogger(common.GetLogger()))
	}
}

// WithOutput redirects command output, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(c *CLI) {
		c.out = w
	}
}

// New creates a new CLI instance.
func New(cfg *config.Config, opts ...Option) (*CLI, error) {
	c := &CLI{
		backend: cfg.Backend,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		statePath, _ := cfg.StatePath()
		kv, err := theme.OpenKeyStore(cfg.Backend, statePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open theme store: %w", err)
		}
		if fs, ok := kv.(*theme.FileStore); ok {
			c.backend = fmt.Sprintf("file (%s)", fs.Path())
		}
		c.store = theme.NewStore(kv, theme.WithStoreLogger(common.GetLogger()))
	}

	if cfg.BroadcastChange {
		c.broadcaster = theme.NewSettingsBroadcaster()
	}
	return c, nil
}

// Status shows the active theme.
func (c *CLI) Status() error {
	mode := theme.ModeOf(c.store.ReadIsLight())

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Theme:\t%s\n", mode)
	fmt.Fprintf(w, "Next click:\t%s\n", mode.Opposite())
	fmt.Fprintf(w, "Backend:\t%s\n", c.backend)
	return w.Flush()
}

// Toggle switches to the theme opposite the stored one.
func (c *CLI) Toggle() error {
	next := theme.ModeOf(!c.store.ReadIsLight())
	if err := c.apply(next); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "✓ Switched to %s theme\n", next)
	return nil
}

// Set switches to the named theme ("light" or "dark"). Both flags are
// written even if the theme is already active.
func (c *CLI) Set(name string) error {
	mode, err := theme.ParseMode(name)
	if err != nil {
		return err
	}
	if err := c.apply(mode); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "✓ Theme set to %s\n", mode)
	return nil
}

func (c *CLI) apply(mode theme.Mode) error {
	if err := c.store.WriteIsLight(mode.IsLight()); err != nil {
		return fmt.Errorf("failed to switch to %s theme: %w", mode, err)
	}
	common.LogInfo("Theme set to %s from command line", mode)

	if c.broadcaster != nil {
		if err := c.broadcaster.Broadcast(); err != nil {
			common.LogWarn("Settings broadcast failed: %v", err)
		}
	}
	return nil
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Theme Toggle - Command Line Interface

Usage:
  theme-toggle [OPTIONS]

Options:
  --version         Show version and exit
  --verbose         Enable verbose logging
  --config PATH     Read configuration from PATH
  --status          Show the active theme
  --toggle          Switch to the opposite theme
  --set MODE        Switch to "light" or "dark"
  --help            Show this help message

Examples:
  theme-toggle --status
  theme-toggle --toggle
  theme-toggle --set dark

Notes:
  - Run without options to show the tray icon
  - Click the icon to switch between light and dark`)
}
