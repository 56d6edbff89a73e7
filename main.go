// Package main provides the entry point for Theme Toggle.
// Theme Toggle is a notification-area utility that switches the desktop
// between its light and dark appearance with a single click.
//
// Features:
//   - One-click switching of the app and system light/dark flags
//   - Tray glyph that always shows the theme a click switches to
//   - Icon re-sync when another program changes the theme
//   - Command-line interface for scripting and automation
//
// Usage:
//
//	theme-toggle [options]
//
// Environment:
//
//	On Windows the theme is stored in the current user's registry. Other
//	systems use a YAML state file, which is useful for development.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yllada/theme-toggle/cli"
	"github.com/yllada/theme-toggle/common"
	"github.com/yllada/theme-toggle/config"
	"github.com/yllada/theme-toggle/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")
	configPath  = flag.String("config", "", "Path to the configuration file")

	// CLI flags
	showStatus  = flag.Bool("status", false, "Show the active theme")
	toggleTheme = flag.Bool("toggle", false, "Switch to the opposite theme")
	setTheme    = flag.String("set", "", "Switch to a theme (light or dark)")
)

func main() {
	flag.Parse()

	// Handle help flag
	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if *showVersion {
		fmt.Printf("Theme Toggle v%s\n", appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		common.LogError("Could not load configuration: %v", err)
		os.Exit(1)
	}

	// Initialize logger; -verbose overrides the configured level
	logLevel := cfg.Level()
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  cfg.LogToFile,
		MaxFileSize: 5, // MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}

	// Check if any CLI mode flag is set
	if *showStatus || *toggleTheme || *setTheme != "" {
		code := runCLI(cfg)
		common.CloseLogger()
		os.Exit(code)
	}

	// Start the tray (GUI mode)
	app, err := ui.NewApplication(cfg, appVersion)
	if err != nil {
		common.LogError("Could not start: %v", err)
		common.CloseLogger()
		os.Exit(1)
	}

	exitCode := app.Run()
	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	common.CloseLogger()
	os.Exit(exitCode)
}

func loadConfig() (*config.Config, error) {
	if *configPath != "" {
		return config.LoadFrom(*configPath)
	}
	return config.Load()
}

// runCLI handles command-line interface operations and returns the exit code.
func runCLI(cfg *config.Config) int {
	cliApp, err := cli.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var cliErr error

	switch {
	case *setTheme != "":
		cliErr = cliApp.Set(*setTheme)
	case *toggleTheme:
		cliErr = cliApp.Toggle()
	case *showStatus:
		cliErr = cliApp.Status()
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		return 1
	}
	return 0
}
