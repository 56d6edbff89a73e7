package ui

import (
	"github.com/gen2brain/beeep"

	"github.com/yllada/theme-toggle/common"
)

// DesktopNotifier shows notifications through the platform's notification
// service.
type DesktopNotifier struct {
	icon []byte
}

// NewDesktopNotifier creates a DesktopNotifier. Notifications are attributed
// to common.AppName and carry the sun glyph.
func NewDesktopNotifier(logger common.Logger) *DesktopNotifier {
	beeep.AppName = common.AppName

	icon, err := NewIconGenerator(DefaultLightIconConfig()).Generate()
	if err != nil {
		logger.Debug("Notifications will have no icon: %v", err)
	}
	return &DesktopNotifier{icon: icon}
}

// Notify implements common.Notifier.
func (n *DesktopNotifier) Notify(title, message string) error {
	if len(n.icon) == 0 {
		return beeep.Notify(title, message, "")
	}
	return beeep.Notify(title, message, n.icon)
}

// NotifyWriteFailure tells the user the theme could not be saved.
func NotifyWriteFailure(n common.Notifier, err error) error {
	return n.Notify("Theme not saved", "The appearance setting could not be written: "+err.Error())
}
