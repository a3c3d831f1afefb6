// Package imgview renders captured images and histogram charts as coarse
// half-block previews for in-terminal display.
package imgview

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
)

// Render decodes JPEG or PNG bytes and produces an ANSI preview at most
// cols wide and rows tall. Each terminal cell shows two image pixels using
// the upper-half-block glyph, so the effective pixel grid is cols × 2·rows.
func Render(data []byte, cols, rows int) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}
	if cols < 1 || rows < 1 {
		return "", nil
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return "", fmt.Errorf("image has no pixels")
	}

	// Fit the image into the cell grid, preserving aspect ratio. A terminal
	// cell is roughly twice as tall as wide, which the half blocks cancel out.
	gridW, gridH := cols, rows*2
	scale := float64(srcW) / float64(gridW)
	if s := float64(srcH) / float64(gridH); s > scale {
		scale = s
	}
	outW := int(float64(srcW) / scale)
	outH := int(float64(srcH) / scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 2 {
		outH = 2
	}

	var sb strings.Builder
	for y := 0; y+1 < outH; y += 2 {
		for x := 0; x < outW; x++ {
			top := sampleAt(img, x, y, scale)
			bottom := sampleAt(img, x, y+1, scale)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀")
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// sampleAt maps an output pixel back to the source image and returns its
// color as a hex string lipgloss understands.
func sampleAt(img image.Image, x, y int, scale float64) string {
	bounds := img.Bounds()
	sx := bounds.Min.X + int(float64(x)*scale)
	sy := bounds.Min.Y + int(float64(y)*scale)
	if sx >= bounds.Max.X {
		sx = bounds.Max.X - 1
	}
	if sy >= bounds.Max.Y {
		sy = bounds.Max.Y - 1
	}
	r, g, b, _ := img.At(sx, sy).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
