// CalWeek - system tray utility showing the current ISO calendar week.
//
// Build:
//
//	go build ./cmd/calweek
//
// On Windows, build with -ldflags "-H=windowsgui" so no console window
// appears behind the tray icon.
package main

import (
	"os"

	"github.com/calweek/calweek/internal/cli"
	"github.com/calweek/calweek/internal/version"
)

// Version information, overridable via ldflags:
//
//	go build -ldflags "-X main.Version=v1.2.0 -X main.BuildTime=..." ./cmd/calweek
var (
	Version   = "v1.0.0-dev"
	BuildTime = "unknown"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
