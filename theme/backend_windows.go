//go:build windows

package theme

func openRegistry() (KeyStore, error) {
	return NewRegistryStore(), nil
}
