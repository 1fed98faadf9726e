package media

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}
	return buf.Bytes()
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func gifBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil); err != nil {
		t.Fatalf("encode test gif: %v", err)
	}
	return buf.Bytes()
}

func TestOptimizeReencodesGifAsJPEG(t *testing.T) {
	t.Parallel()

	out, err := NewOptimizer().Optimize(gifBytes(t, 100, 100))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if out.Extension != ".jpg" {
		t.Fatalf("gif re-encoded as %s, want .jpg", out.Extension)
	}
}

func TestOptimizeDownscalesLargeImage(t *testing.T) {
	t.Parallel()

	out, err := NewOptimizer().Optimize(jpegBytes(t, 3000, 1000))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	if out.Width > 2000 || out.Height > 2000 {
		t.Fatalf("derivative too large: %dx%d", out.Width, out.Height)
	}
	// 3:1 aspect ratio preserved within rounding
	ratio := float64(out.Width) / float64(out.Height)
	if ratio < 2.99 || ratio > 3.01 {
		t.Fatalf("aspect ratio drifted: %dx%d (ratio %f)", out.Width, out.Height, ratio)
	}

	img, _, err := image.Decode(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("decode derivative: %v", err)
	}
	if img.Bounds().Dx() != out.Width || img.Bounds().Dy() != out.Height {
		t.Fatalf("reported dimensions %dx%d do not match encoded %dx%d",
			out.Width, out.Height, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestOptimizeNeverUpscales(t *testing.T) {
	t.Parallel()

	out, err := NewOptimizer().Optimize(jpegBytes(t, 640, 480))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if out.Width != 640 || out.Height != 480 {
		t.Fatalf("small image was resized: %dx%d", out.Width, out.Height)
	}
}

func TestOptimizeKeepsPNGFormat(t *testing.T) {
	t.Parallel()

	out, err := NewOptimizer().Optimize(pngBytes(t, 100, 100))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if out.Extension != ".png" {
		t.Fatalf("png re-encoded as %s", out.Extension)
	}
}

func TestOptimizeRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := NewOptimizer().Optimize([]byte("not an image")); err == nil {
		t.Fatalf("expected error for undecodable data")
	}
}
