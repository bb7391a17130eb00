package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calweek/calweek/internal/logging"
)

func TestDesktopEntryRoundTrip(t *testing.T) {
	exec := "/opt/calweek/calweek"
	content := desktopEntry(exec)

	if !strings.HasPrefix(content, "[Desktop Entry]") {
		t.Error("desktop entry must start with the [Desktop Entry] group header")
	}
	if !strings.Contains(content, "Name="+AppName) {
		t.Error("desktop entry is missing the Name key")
	}
	if got := parseDesktopExec(content); got != exec {
		t.Errorf("parseDesktopExec = %q, want %q", got, exec)
	}
}

func TestParseDesktopExec(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", "[Desktop Entry]\nExec=/usr/bin/app\n", "/usr/bin/app"},
		{"trailing spaces", "Exec=/usr/bin/app   \n", "/usr/bin/app"},
		{"missing", "[Desktop Entry]\nName=x\n", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDesktopExec(tt.content); got != tt.want {
				t.Errorf("parseDesktopExec = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLaunchdPlistRoundTrip(t *testing.T) {
	exec := "/Applications/CalWeek.app/Contents/MacOS/calweek"
	content := launchdPlist(exec)

	if !strings.Contains(content, "<key>RunAtLoad</key>") {
		t.Error("plist is missing RunAtLoad")
	}
	if !strings.Contains(content, "com."+AppName) {
		t.Error("plist is missing the agent label")
	}
	if got := parsePlistProgram(content); got != exec {
		t.Errorf("parsePlistProgram = %q, want %q", got, exec)
	}
}

func TestParsePlistProgramSkipsLabel(t *testing.T) {
	// The label <string> precedes ProgramArguments; only absolute paths count.
	content := "<string>com.CalWeek</string><string>/usr/local/bin/calweek</string>"
	if got := parsePlistProgram(content); got != "/usr/local/bin/calweek" {
		t.Errorf("parsePlistProgram = %q, want the absolute path", got)
	}

	if got := parsePlistProgram("<string>no-path</string>"); got != "" {
		t.Errorf("parsePlistProgram = %q, want empty for no absolute path", got)
	}
}

func newTestArtifact(t *testing.T) *fileArtifact {
	t.Helper()
	return &fileArtifact{
		path:   filepath.Join(t.TempDir(), "autostart", AppName+".desktop"),
		render: desktopEntry,
		parse:  parseDesktopExec,
		logger: logging.New(),
	}
}

func TestFileArtifactLifecycle(t *testing.T) {
	m := newTestArtifact(t)
	exec := "/home/user/bin/calweek"

	if m.IsRegistered() {
		t.Fatal("fresh artifact should not be registered")
	}
	if got := m.RegisteredPath(); got != "" {
		t.Fatalf("RegisteredPath = %q, want empty", got)
	}

	if err := m.Register(exec); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !m.IsRegistered() {
		t.Fatal("artifact should be registered after Register")
	}
	if got := m.RegisteredPath(); got != exec {
		t.Errorf("RegisteredPath = %q, want %q", got, exec)
	}

	if err := m.Unregister(); err != nil {
		t.Fatalf("Unregister failed: %v", err)
	}
	if m.IsRegistered() {
		t.Error("artifact should not be registered after Unregister")
	}

	// Removing an absent entry is not an error.
	if err := m.Unregister(); err != nil {
		t.Errorf("Unregister of absent entry failed: %v", err)
	}
}

func TestFileArtifactRegisterOverwrites(t *testing.T) {
	m := newTestArtifact(t)

	if err := m.Register("/old/path"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := m.Register("/new/path"); err != nil {
		t.Fatalf("second Register failed: %v", err)
	}
	if got := m.RegisteredPath(); got != "/new/path" {
		t.Errorf("RegisteredPath = %q, want the rewritten path", got)
	}
}

func TestFileArtifactUnreadableContent(t *testing.T) {
	m := newTestArtifact(t)
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(m.path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !m.IsRegistered() {
		t.Error("artifact file exists, IsRegistered should be true")
	}
	if got := m.RegisteredPath(); got != "" {
		t.Errorf("RegisteredPath = %q, want empty for unparseable content", got)
	}
}
