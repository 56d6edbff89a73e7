package theme

import (
	"errors"
	"fmt"

	"github.com/yllada/theme-toggle/common"
)

// Store reads and writes the light-theme flags through a KeyStore.
type Store struct {
	kv     KeyStore
	path   string
	logger common.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used for access failures.
func WithStoreLogger(logger common.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store on top of kv.
func NewStore(kv KeyStore, opts ...StoreOption) *Store {
	s := &Store{
		kv:     kv,
		path:   common.PersonalizePath,
		logger: common.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadIsLight reports whether the light theme is active, judged by
// AppsUseLightTheme. It fails closed: any failure reads as dark.
func (s *Store) ReadIsLight() bool {
	key, err := s.kv.Open(s.path, AccessRead)
	if err != nil {
		s.logger.Debug("Opening %s for read failed, assuming dark: %v", s.path, err)
		return false
	}
	defer key.Close()

	value, err := key.GetInteger(common.AppsUseLightTheme)
	if err != nil {
		s.logger.Debug("Reading %s failed, assuming dark: %v", common.AppsUseLightTheme, err)
		return false
	}
	return value == 1
}

// WriteIsLight sets both AppsUseLightTheme and SystemUsesLightTheme to the
// same value. Both values are attempted even if the first fails. The
// returned error only describes what went wrong; the write is best-effort.
func (s *Store) WriteIsLight(isLight bool) error {
	key, err := s.kv.Open(s.path, AccessWrite)
	if err != nil {
		err = fmt.Errorf("opening %s for write: %w", s.path, err)
		s.logger.Warn("Theme not persisted: %v", err)
		return err
	}
	defer key.Close()

	value := flagValue(isLight)
	var errs []error
	for _, name := range []string{common.AppsUseLightTheme, common.SystemUsesLightTheme} {
		if err := key.SetInteger(name, value); err != nil {
			s.logger.Warn("Setting %s=%d failed: %v", name, value, err)
			errs = append(errs, fmt.Errorf("setting %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
