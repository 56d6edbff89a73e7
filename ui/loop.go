package ui

import "runtime"

// RunMessageLoop pumps the tray's native message queue until the tray is
// told to quit. It must be called from the main goroutine: the thread that
// creates the notification icon owns its window and must keep servicing it.
func RunMessageLoop(sys Systray, onReady, onExit func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	sys.Run(onReady, onExit)
}
