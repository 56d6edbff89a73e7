//go:build windows

package theme

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"

	"github.com/yllada/theme-toggle/common"
)

// pollInterval bounds how long Watch takes to notice cancellation.
const pollInterval = 500 // milliseconds

// notifyFilter asks for value changes. The registration is not tied to the
// registering thread.
const notifyFilter = windows.REG_NOTIFY_CHANGE_LAST_SET | windows.REG_NOTIFY_THREAD_AGNOSTIC

// RegistryWatcher waits on RegNotifyChangeKeyValue for the Personalize key.
type RegistryWatcher struct {
	store  *RegistryStore
	path   string
	logger common.Logger
}

func newPlatformWatcher(kv KeyStore, logger common.Logger) (ChangeWatcher, error) {
	rs, ok := kv.(*RegistryStore)
	if !ok {
		return nil, fmt.Errorf("%w: no watcher for %T", common.ErrBackendUnsupported, kv)
	}
	return &RegistryWatcher{store: rs, path: common.PersonalizePath, logger: logger}, nil
}

// Watch implements ChangeWatcher.
func (w *RegistryWatcher) Watch(ctx context.Context, onChange func()) error {
	// Before Windows 8 an asynchronous registration is dropped when the
	// registering thread exits.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	key, err := w.store.Open(w.path, AccessNotify)
	if err != nil {
		return err
	}
	defer key.Close()
	handle := key.(*registryKey).handle()

	event, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		return fmt.Errorf("creating notification event: %w", err)
	}
	defer windows.CloseHandle(event)

	for {
		if err := windows.RegNotifyChangeKeyValue(handle, false, notifyFilter, event, true); err != nil {
			return fmt.Errorf("registering for %s changes: %w", w.path, err)
		}

	wait:
		for {
			if ctx.Err() != nil {
				return nil
			}
			status, err := windows.WaitForSingleObject(event, pollInterval)
			switch {
			case err != nil:
				return err
			case status == windows.WAIT_OBJECT_0:
				w.logger.Debug("Registry key %s changed", w.path)
				onChange()
				break wait
			}
		}
	}
}
