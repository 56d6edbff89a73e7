package theme

import (
	"fmt"
	"strings"

	"github.com/yllada/theme-toggle/common"
)

// Mode is an appearance mode.
type Mode int

const (
	ModeDark Mode = iota
	ModeLight
)

// ModeOf converts the stored light-theme flag into a Mode.
func ModeOf(isLight bool) Mode {
	if isLight {
		return ModeLight
	}
	return ModeDark
}

// IsLight reports whether m is the light mode.
func (m Mode) IsLight() bool {
	return m == ModeLight
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// String returns "light" or "dark".
func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// ParseMode parses "light" or "dark", ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeDark, fmt.Errorf("%w: %q", common.ErrInvalidMode, s)
	}
}

// flagValue is the integer encoding written for a light-theme flag.
func flagValue(isLight bool) uint32 {
	if isLight {
		return 1
	}
	return 0
}

// ActionMode returns the mode a click switches to when the light theme is
// (or is not) active. The tray always shows the glyph for this mode.
func ActionMode(isLight bool) Mode {
	return ModeOf(isLight).Opposite()
}
