// Package toggle moves tray clicks off the UI thread and applies them to the
// stored theme.
//
// The tray's click callback runs on the thread that pumps OS messages, so it
// only calls Dispatcher.Send and returns. A single Worker goroutine drains the
// Dispatcher in order and runs one cycle per event:
//
//	EventToggle:  read stored theme -> invert -> write both flags -> set icon
//	EventRefresh: read stored theme -> set icon
//
// The stored theme is re-read for every event rather than cached, so changes
// made by other programs between clicks never cause drift. All store writes
// and icon updates happen on the Worker goroutine, which is the only
// consumer.
package toggle
