package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/calweek/calweek/internal/version"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"version"})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	if err := root.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestRootCommandMetadata(t *testing.T) {
	root := NewRootCmd()

	if root.Use != "calweek" {
		t.Errorf("Use = %q, want calweek", root.Use)
	}
	if !strings.Contains(root.Long, version.Version) {
		t.Error("long help should mention the version")
	}

	// The tray run is the implicit default; no functional flags exist.
	if root.Flags().Lookup("config") != nil {
		t.Error("root command should define no functional flags")
	}
}
