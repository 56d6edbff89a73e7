// Package common provides shared constants, types, utilities, and interfaces
// used throughout Theme Toggle.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application name, file names and the appearance settings location
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: Logger and Notifier abstractions injected into components
//   - Logger: Leveled logging to stdout and an optional rotated log file
//   - Utils: Config directory helpers
//
// # Usage
//
//	common.LogInfo("Theme switched to %s", mode)
//
//	if errors.Is(err, common.ErrKeyNotFound) {
//	    // Value absent, treat as dark
//	}
package common
