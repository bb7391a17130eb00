package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// badgeSize is the edge length of the calendar window badge.
const badgeSize = 32

var (
	inkColor    = color.RGBA{R: 0x37, G: 0x35, B: 0x2f, A: 0xff}
	headerColor = color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
)

// Badge draws the stylized calendar glyph used as the calendar window icon:
// a white sheet with a red header bar, two hanging rings, and a small day
// grid.
func Badge() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, badgeSize, badgeSize))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// Sheet outline.
	fillRect(img, 2, 6, badgeSize-3, badgeSize-3, color.White)
	strokeRect(img, 2, 6, badgeSize-3, badgeSize-3, inkColor, 2)

	// Header bar.
	fillRect(img, 2, 6, badgeSize-3, 14, headerColor)
	strokeRect(img, 2, 6, badgeSize-3, 14, inkColor, 1)

	// Hanging rings.
	fillRect(img, 8, 3, 10, 8, inkColor)
	fillRect(img, badgeSize-11, 3, badgeSize-9, 8, inkColor)

	// Simplified 3x2 day grid.
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			x := 8 + col*7
			y := 18 + row*6
			fillRect(img, x, y, x+4, y+3, inkColor)
		}
	}

	return img
}

// BadgePNG encodes the window badge as PNG.
func BadgePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Badge()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fillRect fills the inclusive rectangle (x0,y0)-(x1,y1).
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.Set(x, y, c)
		}
	}
}

// strokeRect outlines the inclusive rectangle (x0,y0)-(x1,y1).
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color, width int) {
	for i := 0; i < width; i++ {
		for x := x0; x <= x1; x++ {
			img.Set(x, y0+i, c)
			img.Set(x, y1-i, c)
		}
		for y := y0; y <= y1; y++ {
			img.Set(x0+i, y, c)
			img.Set(x1-i, y, c)
		}
	}
}
