// Package theme reads and writes the operating system's light/dark
// appearance flags.
//
// The flags live in an opaque key-value configuration store reached through
// the KeyStore interface. On Windows this is the registry under
// HKEY_CURRENT_USER; elsewhere a YAML file with the same layout stands in
// for it.
//
// Store applies the persistence policy on top of a KeyStore:
//
//   - ReadIsLight never fails. Any access failure, a missing value or a
//     non-integer value reads as dark.
//   - WriteIsLight always writes AppsUseLightTheme and SystemUsesLightTheme
//     together with the same value. Failures are logged and returned for
//     diagnostics only; callers never retry.
//
// Watchers report changes made by other programs so the tray icon can be
// re-synced, and Broadcaster tells running applications to re-read the
// setting after a write.
package theme
