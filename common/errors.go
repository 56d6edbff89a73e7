// Package common provides shared constants, types, and utilities
// used across Theme Toggle.
package common

import "errors"

// Sentinel errors.
// These can be checked with errors.Is() for proper error handling.
var (
	// Configuration store errors.
	ErrKeyNotFound        = errors.New("configuration value not found")
	ErrAccessDenied       = errors.New("configuration store access denied")
	ErrMalformedValue     = errors.New("configuration value is not an integer")
	ErrBackendUnsupported = errors.New("store backend not supported on this platform")

	// Tray errors.
	ErrIconDecode      = errors.New("failed to decode tray icon")
	ErrTrayUnavailable = errors.New("tray icon is not available")
	ErrIconUpdate      = errors.New("failed to update tray icon")

	// Configuration errors.
	ErrConfigLoad  = errors.New("failed to load configuration")
	ErrInvalidMode = errors.New("invalid theme mode")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
