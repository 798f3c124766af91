// Package text measures, wraps and draws card text with a TrueType font.
package text

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DPI is fixed at 72 so that a face's point size equals its pixel size.
const DPI = 72.0

// Font is a parsed TrueType font. It is immutable and safe for concurrent use.
type Font struct {
	tt *truetype.Font
}

// Parse parses TrueType font data.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, errors.New("font data is empty")
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Font{tt: tt}, nil
}

var (
	defaultOnce sync.Once
	defaultFont *Font
	defaultErr  error
)

// Default returns the embedded Go Regular font, parsed on first use.
func Default() (*Font, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultErr = Parse(goregular.TTF)
	})
	return defaultFont, defaultErr
}

// Face returns the font at the given pixel scale. The scale is rounded to
// 1/64 pixel the same way truetype.NewFace rounds its size.
// A Face holds a glyph cache and must not be shared between goroutines.
func (f *Font) Face(scale float64) *Face {
	return &Face{
		font:  f,
		scale: scale,
		ppem:  fixed.Int26_6(0.5 + scale*64),
	}
}

// Face is a Font at one pixel scale.
type Face struct {
	font  *Font
	scale float64
	ppem  fixed.Int26_6
	face  font.Face
}

// Scale returns the pixel scale of the face.
func (f *Face) Scale() float64 { return f.scale }

// Advance returns the horizontal advance of r in pixels.
func (f *Face) Advance(r rune) float64 {
	hm := f.font.tt.HMetric(f.ppem, f.font.tt.Index(r))
	return fixedToFloat(hm.AdvanceWidth)
}

// Measure returns the width of s as the plain sum of its glyph advances.
func (f *Face) Measure(s string) float64 {
	var w fixed.Int26_6
	for _, r := range s {
		w += f.font.tt.HMetric(f.ppem, f.font.tt.Index(r)).AdvanceWidth
	}
	return fixedToFloat(w)
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() float64 {
	return fixedToFloat(f.drawFace().Metrics().Ascent)
}

func (f *Face) drawFace() font.Face {
	if f.face == nil {
		f.face = unkerned{truetype.NewFace(f.font.tt, &truetype.Options{
			Size:    f.scale,
			DPI:     DPI,
			Hinting: font.HintingNone,
		})}
	}
	return f.face
}

// unkerned keeps drawn glyph positions identical to Measure.
type unkerned struct {
	font.Face
}

func (unkerned) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
