package ui

import (
	"sync"

	"github.com/yllada/theme-toggle/common"
	"github.com/yllada/theme-toggle/theme"
)

// Glyph identifies one of the two tray images.
type Glyph int

const (
	// GlyphDark is the moon, depicting the dark theme.
	GlyphDark Glyph = iota
	// GlyphLight is the sun, depicting the light theme.
	GlyphLight
)

// String returns the name of the pictured symbol.
func (g Glyph) String() string {
	if g == GlyphLight {
		return "sun"
	}
	return "moon"
}

// GlyphFor returns the glyph depicting m.
func GlyphFor(m theme.Mode) Glyph {
	if m.IsLight() {
		return GlyphLight
	}
	return GlyphDark
}

// ActionGlyph returns the glyph to show while the given theme is active:
// the one for the mode a click would switch to.
func ActionGlyph(isLight bool) Glyph {
	return GlyphFor(theme.ActionMode(isLight))
}

// TrayController owns the notification-area icon.
type TrayController struct {
	mu      sync.Mutex
	sys     Systray
	icons   Icons
	tooltip string
	started bool
	stopped bool
	current Glyph
}

// NewTrayController creates a controller. Nothing is shown until Start.
func NewTrayController(sys Systray, icons Icons, tooltip string) *TrayController {
	if tooltip == "" {
		tooltip = common.DefaultTooltip
	}
	return &TrayController{
		sys:     sys,
		icons:   icons,
		tooltip: tooltip,
	}
}

// Start shows the icon for the current theme and registers onClick as the
// only interaction. It must be called from the tray's ready callback.
func (t *TrayController) Start(isLight bool, onClick func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return common.ErrTrayUnavailable
	}

	g := ActionGlyph(isLight)
	t.sys.SetIcon(t.icons.For(g))
	t.sys.SetTitle(common.AppName)
	t.sys.SetTooltip(t.tooltip)
	t.sys.SetOnTapped(onClick)

	t.current = g
	t.started = true
	return nil
}

// SetGlyph replaces the displayed image. It is safe to call from any
// goroutine once Start has returned.
func (t *TrayController) SetGlyph(g Glyph) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.stopped {
		return common.ErrTrayUnavailable
	}
	if g == t.current {
		return nil
	}

	t.sys.SetIcon(t.icons.For(g))
	t.current = g
	return nil
}

// ShowGlyph displays the glyph depicting m.
func (t *TrayController) ShowGlyph(m theme.Mode) error {
	return t.SetGlyph(GlyphFor(m))
}

// Glyph returns the glyph currently displayed.
func (t *TrayController) Glyph() Glyph {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Stop marks the icon as gone. Later updates fail with
// common.ErrTrayUnavailable. The tray library removes the icon itself when
// its loop quits.
func (t *TrayController) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}
