package theme

import (
	"fmt"
	"runtime"

	"github.com/yllada/theme-toggle/common"
)

// OpenKeyStore returns the KeyStore for backend. stateFile is only used by
// the file backend. "auto" picks the registry on Windows and the file
// store elsewhere.
func OpenKeyStore(backend, stateFile string) (KeyStore, error) {
	if backend == common.BackendAuto || backend == "" {
		backend = common.BackendFile
		if runtime.GOOS == "windows" {
			backend = common.BackendRegistry
		}
	}

	switch backend {
	case common.BackendRegistry:
		return openRegistry()
	case common.BackendFile:
		if stateFile == "" {
			return nil, fmt.Errorf("file backend needs a state file")
		}
		return NewFileStore(stateFile), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrBackendUnsupported, backend)
	}
}
