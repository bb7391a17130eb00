package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calweek/calweek/internal/logging"
)

// fileArtifact implements Manager for the platforms where the startup entry
// is a single file in a per-user directory (Linux and macOS). The file
// format is injected so the read/write mechanics stay shared and testable.
type fileArtifact struct {
	path   string
	render func(execPath string) string
	parse  func(content string) string
	logger *logging.Logger
}

func (f *fileArtifact) IsRegistered() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

func (f *fileArtifact) RegisteredPath() string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}
	return f.parse(string(data))
}

func (f *fileArtifact) Register(execPath string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(f.render(execPath)), 0o644); err != nil {
		return fmt.Errorf("failed to write startup entry: %w", err)
	}
	f.logger.Debug().Str("path", f.path).Msg("startup entry written")
	return nil
}

func (f *fileArtifact) Unregister() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove startup entry: %w", err)
	}
	return nil
}

// desktopEntry renders the freedesktop autostart entry.
func desktopEntry(execPath string) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
Hidden=false
NoDisplay=false
X-GNOME-Autostart-enabled=true
`, AppName, execPath)
}

// parseDesktopExec extracts the Exec= command from a .desktop entry.
func parseDesktopExec(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if rest, found := strings.CutPrefix(line, "Exec="); found {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// launchdPlist renders the launchd agent property list.
func launchdPlist(execPath string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>com.%s</string>
    <key>ProgramArguments</key>
    <array>
        <string>%s</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
</dict>
</plist>
`, AppName, execPath)
}

// parsePlistProgram extracts the first absolute program path from a launchd
// property list: the first <string> element whose value starts with "/".
func parsePlistProgram(content string) string {
	rest := content
	for {
		start := strings.Index(rest, "<string>")
		if start < 0 {
			return ""
		}
		rest = rest[start+len("<string>"):]
		end := strings.Index(rest, "</string>")
		if end < 0 {
			return ""
		}
		value := rest[:end]
		if strings.HasPrefix(value, "/") {
			return value
		}
		rest = rest[end:]
	}
}
