// Package autostart manages the OS "start at login" registration for the
// tray application.
//
// Each platform persists the registration differently: a registry value on
// Windows, a freedesktop .desktop file on Linux, and a launchd property
// list on macOS. One Manager implementation per platform is selected at
// build time; callers work against the interface only.
package autostart

import (
	"path/filepath"

	"github.com/calweek/calweek/internal/logging"
)

// AppName keys the registry value and names the artifact files.
const AppName = "CalWeek"

// Manager reads and writes the platform startup registration. All failures
// are converted to zero values or errors at this boundary; nothing here
// panics or retries.
type Manager interface {
	// IsRegistered reports whether a startup entry exists.
	IsRegistered() bool

	// RegisteredPath returns the executable path the entry points at, or
	// "" when not registered or unreadable.
	RegisteredPath() string

	// Register writes a startup entry launching execPath at login.
	Register(execPath string) error

	// Unregister removes the startup entry.
	Unregister() error
}

// New returns the manager for the platform this binary was built for.
func New(logger *logging.Logger) Manager {
	return newManager(logger)
}

// CheckPath verifies that the registered startup entry still points at the
// running executable. It returns ok=true when nothing is registered or the
// paths match, and the registered path for the mismatch prompt otherwise.
// Detects the executable having been moved after registration.
func CheckPath(m Manager, execPath string) (ok bool, registered string) {
	if !m.IsRegistered() {
		return true, ""
	}
	registered = m.RegisteredPath()
	if registered == "" {
		return true, ""
	}
	if filepath.Clean(registered) != filepath.Clean(execPath) {
		return false, registered
	}
	return true, registered
}

// Repair rewrites the startup entry to point at execPath. The stale entry is
// removed first; its removal failure is irrelevant as long as the rewrite
// succeeds.
func Repair(m Manager, execPath string) error {
	_ = m.Unregister()
	return m.Register(execPath)
}

// Toggle flips the registration state, registering execPath when no entry
// exists and removing the entry otherwise.
func Toggle(m Manager, execPath string) error {
	if m.IsRegistered() {
		return m.Unregister()
	}
	return m.Register(execPath)
}
