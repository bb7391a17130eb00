//go:build darwin

package autostart

import (
	"os"
	"path/filepath"

	"github.com/calweek/calweek/internal/logging"
)

// entryPath returns ~/Library/LaunchAgents/com.CalWeek.plist.
func entryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "LaunchAgents", "com."+AppName+".plist")
	}
	return filepath.Join(home, "Library", "LaunchAgents", "com."+AppName+".plist")
}

func newManager(logger *logging.Logger) Manager {
	return &fileArtifact{
		path:   entryPath(),
		render: launchdPlist,
		parse:  parsePlistProgram,
		logger: logger,
	}
}
