package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Placement is where the scaled source image sits on the canvas.
type Placement struct {
	X, Y          int
	Width, Height int
}

// Bounds returns the canvas rectangle covered by the image.
func (p Placement) Bounds() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// MaxSourcePixels caps the declared size of a source image so that a small
// payload cannot make Decode allocate an enormous bitmap.
const MaxSourcePixels = 50_000_000

// Decode decodes an encoded raster image.
func Decode(b []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrDecode)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return nil, fmt.Errorf("%w: image is %dx%d, larger than %d pixels", ErrDecode, cfg.Width, cfg.Height, MaxSourcePixels)
	}
	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrDecode)
	}
	return img, nil
}

// Fit scales a srcW x srcH image to fill budget pixels of height, shrinking
// it further when the result would be wider than canvasW. The aspect ratio
// is kept and the result is centered horizontally at the top of the canvas.
func Fit(srcW, srcH, canvasW, budget int) Placement {
	if srcW <= 0 || srcH <= 0 || canvasW <= 0 || budget <= 0 {
		return Placement{}
	}
	ratio := float64(srcW) / float64(srcH)
	h := budget
	w := int(math.Round(float64(h) * ratio))
	if w > canvasW {
		w = canvasW
		h = int(math.Round(float64(w) / ratio))
	}
	w, h = max(w, 1), max(h, 1)
	return Placement{X: (canvasW - w) / 2, Width: w, Height: h}
}

// Place resamples src into the top budget pixels of canvas and overlays it.
func Place(canvas *image.NRGBA, src image.Image, budget int) (*image.NRGBA, Placement) {
	b := src.Bounds()
	p := Fit(b.Dx(), b.Dy(), canvas.Bounds().Dx(), budget)
	if p.Width == 0 {
		return canvas, p
	}
	scaled := imaging.Resize(src, p.Width, p.Height, imaging.Lanczos)
	return imaging.Overlay(canvas, scaled, image.Pt(p.X, p.Y), 1.0), p
}
