//go:build !windows

package theme

import (
	"fmt"
	"runtime"

	"github.com/yllada/theme-toggle/common"
)

func openRegistry() (KeyStore, error) {
	return nil, fmt.Errorf("%w: registry on %s", common.ErrBackendUnsupported, runtime.GOOS)
}
