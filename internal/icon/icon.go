// Package icon rasterizes the tray and window icons.
//
// The tray icon is a white square with a black border and the zero-padded
// week number centered in it, drawn with the embedded Go Bold face so the
// result is identical on every platform.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// Size is the edge length of the square tray icon in pixels.
	Size = 64

	borderWidth = 2
	fontSize    = 46
)

var (
	faceOnce sync.Once
	faceErr  error
	boldFace font.Face
)

func weekFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			faceErr = fmt.Errorf("failed to parse embedded font: %w", err)
			return
		}
		boldFace, faceErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return boldFace, faceErr
}

// Render draws the tray icon for the given week number.
func Render(week int) (image.Image, error) {
	face, err := weekFace()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}

	text := fmt.Sprintf("%02d", week)

	// Center horizontally by advance width and vertically by the glyph
	// bounding box, so the digits sit optically centered in the square.
	bounds, advance := d.BoundString(text)
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	d.Dot = fixed.Point26_6{
		X: fixed.I((Size - advance.Ceil()) / 2),
		Y: fixed.I((Size-textHeight)/2) - bounds.Min.Y,
	}
	d.DrawString(text)

	drawBorder(img, color.Black, borderWidth)

	return img, nil
}

// RenderPNG renders the tray icon and encodes it as PNG.
func RenderPNG(week int) ([]byte, error) {
	img, err := Render(week)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBorder(img *image.RGBA, c color.Color, width int) {
	b := img.Bounds()
	for i := 0; i < width; i++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, b.Min.Y+i, c)
			img.Set(x, b.Max.Y-1-i, c)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.Set(b.Min.X+i, y, c)
			img.Set(b.Max.X-1-i, y, c)
		}
	}
}
