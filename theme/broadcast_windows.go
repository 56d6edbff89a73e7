//go:build windows

package theme

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yllada/theme-toggle/common"
)

const (
	hwndBroadcast     = 0xffff
	wmSettingChange   = 0x001a
	smtoAbortIfHung   = 0x0002
	immersiveColorSet = "ImmersiveColorSet"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeout = user32.NewProc("SendMessageTimeoutW")
)

// SettingsBroadcaster sends WM_SETTINGCHANGE with "ImmersiveColorSet" to all
// top-level windows, which is what Explorer does after a theme change.
type SettingsBroadcaster struct{}

// NewSettingsBroadcaster returns the platform broadcaster.
func NewSettingsBroadcaster() Broadcaster {
	return SettingsBroadcaster{}
}

// Broadcast implements Broadcaster.
func (SettingsBroadcaster) Broadcast() error {
	if err := procSendMessageTimeout.Find(); err != nil {
		return err
	}

	param, err := windows.UTF16PtrFromString(immersiveColorSet)
	if err != nil {
		return err
	}

	var result uintptr
	r, _, callErr := procSendMessageTimeout.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		uintptr(common.BroadcastTimeout.Milliseconds()),
		uintptr(unsafe.Pointer(&result)),
	)
	if r == 0 {
		return callErr
	}
	return nil
}
