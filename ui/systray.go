package ui

import "fyne.io/systray"

// Systray is the subset of the tray library used by the application.
type Systray interface {
	// Run blocks, pumping native messages, until Quit is called.
	Run(onReady, onExit func())
	SetIcon(icon []byte)
	SetTitle(title string)
	SetTooltip(tooltip string)
	// SetOnTapped registers the primary-click callback.
	SetOnTapped(fn func())
	Quit()
}

// fyneSystray implements Systray using fyne.io/systray.
type fyneSystray struct{}

// NewSystray returns the native tray implementation.
func NewSystray() Systray {
	return fyneSystray{}
}

func (fyneSystray) Run(onReady, onExit func()) { systray.Run(onReady, onExit) }
func (fyneSystray) SetIcon(icon []byte)        { systray.SetIcon(icon) }
func (fyneSystray) SetTitle(title string)      { systray.SetTitle(title) }
func (fyneSystray) SetTooltip(tooltip string)  { systray.SetTooltip(tooltip) }
func (fyneSystray) SetOnTapped(fn func())      { systray.SetOnTapped(fn) }
func (fyneSystray) Quit()                      { systray.Quit() }
