package toggle

// Event is a payload-free UI signal.
type Event int

const (
	// EventToggle asks for the theme to be flipped.
	EventToggle Event = iota
	// EventRefresh asks for the icon to be re-synced with the stored theme.
	EventRefresh
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventToggle:
		return "toggle"
	case EventRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}
