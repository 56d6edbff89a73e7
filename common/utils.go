// Package common provides shared constants, types, and utilities
// used across Theme Toggle.
package common

import (
	"os"
	"path/filepath"
)

// configBaseDir resolves the per-user configuration directory without
// creating it.
func configBaseDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", WrapError(err, "failed to get user config directory")
	}
	return filepath.Join(base, ConfigDirName), nil
}

// DefaultConfigPath returns where the configuration file is looked up when
// no explicit path is given.
func DefaultConfigPath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// DefaultStatePath returns the file used by the file-backed theme store.
func DefaultStatePath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StateFileName), nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
