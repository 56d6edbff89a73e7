package ui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/theme-toggle/common"
	"github.com/yllada/theme-toggle/theme"
)

// fakeSystray records every call and runs its loop until Quit.
type fakeSystray struct {
	mu       sync.Mutex
	icons    [][]byte
	title    string
	tooltip  string
	onTapped func()
	onExit   func()
	ready    chan struct{}
	quit     chan struct{}
	quitOnce sync.Once

	// exitOnQuit runs onExit inside Quit on the caller's goroutine, the
	// way fyne.io/systray does on Windows. Otherwise Run calls it after
	// its loop ends.
	exitOnQuit bool
	exited     chan struct{}
}

func newFakeSystray() *fakeSystray {
	return &fakeSystray{
		ready:  make(chan struct{}),
		quit:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

func newWindowsFakeSystray() *fakeSystray {
	f := newFakeSystray()
	f.exitOnQuit = true
	return f
}

func (f *fakeSystray) Run(onReady, onExit func()) {
	f.mu.Lock()
	f.onExit = onExit
	f.mu.Unlock()

	onReady()
	close(f.ready)
	<-f.quit
	if !f.exitOnQuit {
		onExit()
		close(f.exited)
	}
}

func (f *fakeSystray) SetIcon(icon []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.icons = append(f.icons, icon)
}

func (f *fakeSystray) SetTitle(title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title = title
}

func (f *fakeSystray) SetTooltip(tooltip string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tooltip = tooltip
}

func (f *fakeSystray) SetOnTapped(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onTapped = fn
}

func (f *fakeSystray) Quit() {
	f.quitOnce.Do(func() {
		close(f.quit)
		if f.exitOnQuit {
			f.mu.Lock()
			onExit := f.onExit
			f.mu.Unlock()
			if onExit != nil {
				onExit()
			}
			close(f.exited)
		}
	})
}

func (f *fakeSystray) tap() {
	f.mu.Lock()
	fn := f.onTapped
	f.mu.Unlock()
	fn()
}

func (f *fakeSystray) lastIcon() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.icons) == 0 {
		return nil
	}
	return f.icons[len(f.icons)-1]
}

func (f *fakeSystray) iconCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.icons)
}

var testIcons = Icons{Light: []byte("sun"), Dark: []byte("moon")}

func TestActionGlyph(t *testing.T) {
	tests := []struct {
		name    string
		isLight bool
		want    Glyph
	}{
		{"light active shows moon", true, GlyphDark},
		{"dark active shows sun", false, GlyphLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionGlyph(tt.isLight))
		})
	}
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, GlyphLight, GlyphFor(theme.ModeLight))
	assert.Equal(t, GlyphDark, GlyphFor(theme.ModeDark))
	assert.Equal(t, "sun", GlyphLight.String())
	assert.Equal(t, "moon", GlyphDark.String())
	assert.Equal(t, []byte("sun"), testIcons.For(GlyphLight))
	assert.Equal(t, []byte("moon"), testIcons.For(GlyphDark))
}

func TestTrayController_Start(t *testing.T) {
	sys := newFakeSystray()
	tray := NewTrayController(sys, testIcons, "Switch theme")

	clicks := 0
	require.NoError(t, tray.Start(true, func() { clicks++ }))

	assert.Equal(t, []byte("moon"), sys.lastIcon())
	assert.Equal(t, GlyphDark, tray.Glyph())
	assert.Equal(t, "Switch theme", sys.tooltip)
	assert.Equal(t, common.AppName, sys.title)

	sys.tap()
	assert.Equal(t, 1, clicks)
}

func TestTrayController_DefaultTooltip(t *testing.T) {
	sys := newFakeSystray()
	tray := NewTrayController(sys, testIcons, "")

	require.NoError(t, tray.Start(false, func() {}))

	assert.Equal(t, common.DefaultTooltip, sys.tooltip)
	assert.Equal(t, []byte("sun"), sys.lastIcon())
}

func TestTrayController_SetGlyph(t *testing.T) {
	sys := newFakeSystray()
	tray := NewTrayController(sys, testIcons, "")
	require.NoError(t, tray.Start(false, func() {}))

	require.NoError(t, tray.SetGlyph(GlyphDark))
	assert.Equal(t, []byte("moon"), sys.lastIcon())

	require.NoError(t, tray.ShowGlyph(theme.ModeLight))
	assert.Equal(t, []byte("sun"), sys.lastIcon())
	assert.Equal(t, GlyphLight, tray.Glyph())

	// Showing the glyph already displayed does not touch the tray.
	count := sys.iconCount()
	require.NoError(t, tray.SetGlyph(GlyphLight))
	assert.Equal(t, count, sys.iconCount())
}

func TestTrayController_Unavailable(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		sys := newFakeSystray()
		tray := NewTrayController(sys, testIcons, "")

		assert.ErrorIs(t, tray.SetGlyph(GlyphLight), common.ErrTrayUnavailable)
		assert.Zero(t, sys.iconCount())
	})

	t.Run("after stop", func(t *testing.T) {
		sys := newFakeSystray()
		tray := NewTrayController(sys, testIcons, "")
		require.NoError(t, tray.Start(true, func() {}))

		tray.Stop()

		assert.ErrorIs(t, tray.SetGlyph(GlyphLight), common.ErrTrayUnavailable)
		assert.ErrorIs(t, tray.Start(true, func() {}), common.ErrTrayUnavailable)
		assert.Equal(t, 1, sys.iconCount())
	})
}
