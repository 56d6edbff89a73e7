//go:build !windows

package theme

// NewSettingsBroadcaster returns the platform broadcaster. Outside Windows
// there is nobody to tell, so it does nothing.
func NewSettingsBroadcaster() Broadcaster {
	return BroadcasterFunc(func() error { return nil })
}
