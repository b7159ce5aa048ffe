package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestTranscodeDownscales(t *testing.T) {
	out, err := NewTranscoder(64, 75).Transcode(pngOf(t, 200, 100))
	if err != nil {
		t.Fatalf("transcode: %v", err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Fatalf("got %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
}

func TestTranscodeKeepsSmallImages(t *testing.T) {
	out, err := NewTranscoder(1600, 0).Transcode(pngOf(t, 40, 30))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Fatalf("got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestTranscodeRejectsGarbage(t *testing.T) {
	_, err := NewTranscoder(100, 80).Transcode([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
