package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// NewCanvas returns an opaque width x height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *image.NRGBA {
	if bg == nil {
		bg = color.White
	}
	return imaging.New(width, height, bg)
}
