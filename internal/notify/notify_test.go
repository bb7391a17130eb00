package notify

import (
	"errors"
	"testing"

	"github.com/calweek/calweek/internal/logging"
)

func TestNotifierEnabledByDefault(t *testing.T) {
	n := New(logging.New())
	if !n.IsEnabled() {
		t.Error("notifier should be enabled by default")
	}

	n.SetEnabled(false)
	if n.IsEnabled() {
		t.Error("SetEnabled(false) should disable the notifier")
	}
}

func TestNotifierDisabledNoSend(t *testing.T) {
	// When disabled, notification methods are no-ops and must not panic.
	n := New(logging.New())
	n.SetEnabled(false)

	n.AlreadyRunning()
	n.StartupChanged(true)
	n.StartupChanged(false)
	n.StartupError(errors.New("registry locked"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10c", 10, "exactly10c"},
		{"this is a long string", 10, "this is..."},
		{"", 10, ""},
		{"abc", 3, "abc"},
		{"abcd", 3, "..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}
