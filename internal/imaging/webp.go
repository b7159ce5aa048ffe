package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const ContentType = "image/webp"

var ErrUnsupported = errors.New("imaging: unsupported image")

// Transcoder re-encodes uploads as WebP no wider than MaxWidth.
type Transcoder struct {
	MaxWidth int
	Quality  float32
}

func NewTranscoder(maxWidth, quality int) *Transcoder {
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &Transcoder{MaxWidth: maxWidth, Quality: float32(quality)}
}

func (t *Transcoder) Transcode(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	img := t.fit(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: t.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (t *Transcoder) fit(src image.Image) image.Image {
	b := src.Bounds()
	if t.MaxWidth <= 0 || b.Dx() <= t.MaxWidth {
		return src
	}

	h := b.Dy() * t.MaxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, t.MaxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
