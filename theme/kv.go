package theme

// Access selects how a key is opened.
type Access int

const (
	AccessRead Access = iota
	AccessWrite
	// AccessNotify opens a key for change notification; only meaningful for
	// the registry.
	AccessNotify
)

// KeyStore is a hierarchical configuration store of integer values.
type KeyStore interface {
	// Open opens the key at path.
	Open(path string, access Access) (Key, error)
}

// Key is an open configuration key.
type Key interface {
	// GetInteger returns the named value. Missing values report
	// common.ErrKeyNotFound and non-integer values common.ErrMalformedValue.
	GetInteger(name string) (uint64, error)
	// SetInteger stores value under name.
	SetInteger(name string, value uint32) error
	// Close releases the key.
	Close() error
}
