//go:build !windows

package theme

import (
	"fmt"

	"github.com/yllada/theme-toggle/common"
)

func newPlatformWatcher(kv KeyStore, _ common.Logger) (ChangeWatcher, error) {
	return nil, fmt.Errorf("%w: no watcher for %T", common.ErrBackendUnsupported, kv)
}
