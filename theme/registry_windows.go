//go:build windows

package theme

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/yllada/theme-toggle/common"
)

// RegistryStore is a KeyStore over HKEY_CURRENT_USER.
type RegistryStore struct {
	root registry.Key
}

// NewRegistryStore creates a RegistryStore rooted at HKEY_CURRENT_USER.
func NewRegistryStore() *RegistryStore {
	return &RegistryStore{root: registry.CURRENT_USER}
}

// Open implements KeyStore.
func (r *RegistryStore) Open(path string, access Access) (Key, error) {
	var mode uint32
	switch access {
	case AccessWrite:
		mode = registry.SET_VALUE
	case AccessNotify:
		mode = registry.NOTIFY | registry.QUERY_VALUE
	default:
		mode = registry.QUERY_VALUE
	}

	k, err := registry.OpenKey(r.root, path, mode)
	if err != nil {
		return nil, mapRegistryError(err, path)
	}
	return &registryKey{key: k}, nil
}

type registryKey struct {
	key registry.Key
}

func (k *registryKey) GetInteger(name string) (uint64, error) {
	val, _, err := k.key.GetIntegerValue(name)
	if err != nil {
		return 0, mapRegistryError(err, name)
	}
	return val, nil
}

func (k *registryKey) SetInteger(name string, value uint32) error {
	if err := k.key.SetDWordValue(name, value); err != nil {
		return mapRegistryError(err, name)
	}
	return nil
}

func (k *registryKey) Close() error {
	return k.key.Close()
}

// handle exposes the raw key for change notification.
func (k *registryKey) handle() windows.Handle {
	return windows.Handle(k.key)
}

func mapRegistryError(err error, name string) error {
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return fmt.Errorf("%w: %s", common.ErrKeyNotFound, name)
	case errors.Is(err, registry.ErrUnexpectedType):
		return fmt.Errorf("%w: %s", common.ErrMalformedValue, name)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return fmt.Errorf("%w: %s", common.ErrAccessDenied, name)
	default:
		return fmt.Errorf("%s: %w", name, err)
	}
}
