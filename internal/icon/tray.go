package icon

import (
	"bytes"
	"fmt"
	"runtime"

	ico "github.com/sergeymakinen/go-ico"
)

// ForTray renders the week icon in the format the platform tray expects:
// ICO on Windows, PNG everywhere else.
func ForTray(week int) ([]byte, error) {
	if runtime.GOOS != "windows" {
		return RenderPNG(week)
	}

	img, err := Render(week)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode tray icon: %w", err)
	}
	return buf.Bytes(), nil
}
