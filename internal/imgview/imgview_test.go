package imgview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRenderSolidColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	out, err := Render(encodePNG(t, img), 4, 2)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out == "" {
		t.Fatal("expected non-empty preview")
	}
	if !strings.Contains(out, "▀") {
		t.Error("preview should use half-block glyphs")
	}
	if lines := strings.Split(out, "\n"); len(lines) > 2 {
		t.Errorf("preview taller than requested: %d rows", len(lines))
	}
}

func TestRenderNotAnImage(t *testing.T) {
	if _, err := Render([]byte("definitely not pixels"), 10, 10); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestRenderZeroArea(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	out, err := Render(encodePNG(t, img), 0, 0)
	if err != nil {
		t.Fatalf("zero-size viewport should not error: %v", err)
	}
	if out != "" {
		t.Errorf("want empty output, got %q", out)
	}
}
