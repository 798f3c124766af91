package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LineHeightFactor is the line height as a multiple of the face scale.
const LineHeightFactor = 1.2

// Block describes a rendered run of lines.
type Block struct {
	Lines      int
	LineHeight float64
	Height     float64
}

// Render draws lines top to bottom starting at startY, each centered on
// centerX. Glyphs falling outside dst are clipped.
func Render(dst draw.Image, lines []string, centerX, startY float64, face *Face, c color.Color, lineHeightFactor float64) Block {
	lineHeight := face.Scale() * lineHeightFactor
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face.drawFace(),
	}
	ascent := face.Ascent()
	for i, line := range lines {
		x := centerX - face.Measure(line)/2
		top := startY + float64(i)*lineHeight
		d.Dot = fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(top + ascent)}
		d.DrawString(line)
	}
	return Block{
		Lines:      len(lines),
		LineHeight: lineHeight,
		Height:     float64(len(lines)) * lineHeight,
	}
}
