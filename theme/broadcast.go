package theme

// Broadcaster tells running applications that the appearance setting
// changed so they re-read it without waiting for their own polling.
type Broadcaster interface {
	Broadcast() error
}

// BroadcasterFunc adapts a function to Broadcaster.
type BroadcasterFunc func() error

// Broadcast calls f.
func (f BroadcasterFunc) Broadcast() error {
	return f()
}
