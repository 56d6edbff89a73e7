// Package ui provides the tray user interface for Theme Toggle.
//
// The interface is a single notification-area icon. Its glyph always shows
// the mode a click switches to: a moon while the light theme is active, a
// sun while the dark theme is active. There are no menus and no windows.
//
// # Architecture
//
//   - Systray: seam over fyne.io/systray, replaced by a fake in tests
//   - TrayController: owns the icon, its tooltip and the tap callback
//   - RunMessageLoop: pumps native tray messages on the locked main thread
//   - Application: wires config, theme store, dispatcher and worker together
//
// # Thread Safety
//
// The tap callback runs on the message-loop thread and only enqueues an
// event. Icon updates come from the toggle worker goroutine; fyne.io/systray
// marshals them to the tray thread, and TrayController serializes them.
//
// # File Organization
//
//   - app.go: Application lifecycle and signal handling
//   - tray.go: TrayController and glyph selection
//   - systray.go: Systray seam and its fyne.io/systray implementation
//   - loop.go: message loop
//   - icons.go: glyph generation and custom icon loading
//   - notifications.go: desktop notifications for write failures
package ui
