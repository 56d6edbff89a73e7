// Package common provides shared constants, types, and utilities
// used across Theme Toggle.
package common

import "time"

// Application metadata.
const (
	// AppName is the display name of the application.
	AppName = "Theme Toggle"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "theme-toggle"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	StateFileName  = "personalize.yaml"
	LogFileName    = "theme-toggle.log"
)

// Appearance settings location. The path is relative to the current user's
// hive on Windows and is reused as the section name by the file store.
const (
	// PersonalizePath holds the light/dark appearance flags.
	PersonalizePath = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	// AppsUseLightTheme controls application appearance. It is the flag read
	// back as the current theme.
	AppsUseLightTheme = "AppsUseLightTheme"
	// SystemUsesLightTheme controls taskbar, start menu and tray appearance.
	SystemUsesLightTheme = "SystemUsesLightTheme"
)

// Store backends.
const (
	BackendAuto     = "auto"
	BackendRegistry = "registry"
	BackendFile     = "file"
)

// Defaults.
const (
	// DefaultTooltip is shown when hovering the tray icon.
	DefaultTooltip = "Theme toggle"
	// TrayIconSize is the edge length of the generated glyphs.
	TrayIconSize = 32
	// BroadcastTimeout bounds the settings-change broadcast to other windows.
	BroadcastTimeout = 1 * time.Second
)
