package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"

	// Register gif and webp decoding; both are re-encoded as JPEG.
	_ "image/gif"

	_ "golang.org/x/image/webp"
)

// Optimizer produces the served derivative of an uploaded image:
// downscaled to fit maxDim on the longer side (never upscaled) and
// re-encoded at a fixed quality.
type Optimizer struct {
	maxDim  int
	quality int
}

// NewOptimizer creates an optimizer with the standard limits
func NewOptimizer() *Optimizer {
	return &Optimizer{maxDim: 2000, quality: 85}
}

// OptimizedImage is the result of one optimization pass
type OptimizedImage struct {
	Data      []byte
	Extension string // extension of the encoded derivative
	Width     int
	Height    int
}

// Optimize decodes, downscales and re-encodes an image
func (o *Optimizer) Optimize(data []byte) (*OptimizedImage, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	resized := img
	if width > o.maxDim || height > o.maxDim {
		resized = imaging.Fit(img, o.maxDim, o.maxDim, imaging.Lanczos)
		width = resized.Bounds().Dx()
		height = resized.Bounds().Dy()
	}

	encoded, ext, err := o.encode(resized, format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &OptimizedImage{
		Data:      encoded,
		Extension: ext,
		Width:     width,
		Height:    height,
	}, nil
}

// encode keeps JPEG and PNG in their source format; everything else
// (gif, webp) becomes JPEG at the configured quality.
func (o *Optimizer) encode(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer

	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".png", nil
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: o.quality}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".jpg", nil
	}
}
