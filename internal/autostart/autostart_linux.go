//go:build linux

package autostart

import (
	"os"
	"path/filepath"

	"github.com/calweek/calweek/internal/logging"
)

// entryPath returns ~/.config/autostart/CalWeek.desktop, honoring
// XDG_CONFIG_HOME via os.UserConfigDir.
func entryPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(os.TempDir(), "autostart", AppName+".desktop")
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "autostart", AppName+".desktop")
}

func newManager(logger *logging.Logger) Manager {
	return &fileArtifact{
		path:   entryPath(),
		render: desktopEntry,
		parse:  parseDesktopExec,
		logger: logger,
	}
}
