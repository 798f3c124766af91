package imagepkg

import (
	"image/color"
	"image/draw"
	"strings"

	"github.com/youruser/cardcomposer/internal/cards"
	"github.com/youruser/cardcomposer/internal/text"
)

// Role identifies the text zone a block belongs to.
type Role int

const (
	RoleTitle Role = iota
	RoleBreakdown
	RoleExample
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleBreakdown:
		return "breakdown"
	case RoleExample:
		return "example"
	}
	return "unknown"
}

// Style is the formatting of one zone.
type Style struct {
	Scale float64
	Color color.Color
}

// Layout holds the card geometry and the per-zone styles. ImageMargin is
// kept free between the top zone and the middle of the canvas.
type Layout struct {
	Width, Height     int
	Background        color.Color
	HorizontalPadding float64
	ImageMargin       int
	VerticalPadding   float64
	LineHeightFactor  float64
	Styles            map[Role]Style
}

// DefaultLayout returns the 280x480 card layout.
func DefaultLayout() Layout {
	return Layout{
		Width:             280,
		Height:            480,
		Background:        color.White,
		HorizontalPadding: 20,
		ImageMargin:       24,
		VerticalPadding:   16,
		LineHeightFactor:  text.LineHeightFactor,
		Styles: map[Role]Style{
			RoleTitle:     {Scale: 24, Color: color.Black},
			RoleBreakdown: {Scale: 18, Color: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}},
			RoleExample:   {Scale: 16, Color: color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}},
		},
	}
}

// TopZoneBudget is the maximum height of the placed source image.
func (l Layout) TopZoneBudget() int {
	return l.Height/2 - l.ImageMargin
}

// TextWidth is the widest a line may be before it wraps.
func (l Layout) TextWidth() float64 {
	return float64(l.Width) - 2*l.HorizontalPadding
}

// ZoneSummary counts what was drawn in one zone. Clipped counts the wrapped
// lines cut from items that ran into the bottom edge.
type ZoneSummary struct {
	Items   int
	Lines   int
	Clipped int
}

// Summary describes a finished layout. Cursor lists every cursor position
// in the order it was reached.
type Summary struct {
	Zones  map[Role]ZoneSummary
	Cursor []float64
}

type zone struct {
	role    Role
	items   []string
	guarded bool
	itemGap float64
	tailGap float64
}

func (l Layout) zones(c cards.Card) []zone {
	var title []string
	if h := c.Heading(); strings.TrimSpace(h) != "" {
		title = []string{h}
	}
	return []zone{
		{role: RoleTitle, items: title, itemGap: l.VerticalPadding},
		{role: RoleBreakdown, items: c.Breakdown, guarded: true, itemGap: l.VerticalPadding / 2, tailGap: l.VerticalPadding / 2},
		{role: RoleExample, items: c.Examples, guarded: true, itemGap: l.VerticalPadding},
	}
}

// Sequence draws the title, breakdown items and examples of c below the
// placed image. Items of the list zones that start too close to the bottom
// edge are dropped silently, as are the lines of any item that would start
// past that point.
func (l Layout) Sequence(dst draw.Image, p Placement, c cards.Card, f *text.Font) Summary {
	s := Summary{Zones: make(map[Role]ZoneSummary)}
	cursor := float64(p.Y+p.Height+l.ImageMargin) + l.VerticalPadding
	s.Cursor = append(s.Cursor, cursor)
	centerX := float64(l.Width) / 2

	for _, z := range l.zones(c) {
		style, ok := l.Styles[z.role]
		if len(z.items) == 0 || !ok {
			continue
		}
		face := f.Face(style.Scale)
		lineHeight := style.Scale * l.LineHeightFactor
		limit := float64(l.Height) - 1.5*lineHeight
		zs := s.Zones[z.role]
		for _, item := range z.items {
			if z.guarded && cursor >= limit {
				break
			}
			lines := text.Wrap(item, l.TextWidth(), face)
			if n := fitLines(len(lines), cursor, lineHeight, limit); n < len(lines) {
				zs.Clipped += len(lines) - n
				lines = lines[:n]
			}
			b := text.Render(dst, lines, centerX, cursor, face, style.Color, l.LineHeightFactor)
			cursor += b.Height + z.itemGap
			s.Cursor = append(s.Cursor, cursor)
			zs.Items++
			zs.Lines += b.Lines
		}
		if z.tailGap > 0 {
			cursor += z.tailGap
			s.Cursor = append(s.Cursor, cursor)
		}
		s.Zones[z.role] = zs
	}
	return s
}

// fitLines returns how many of n lines starting at top begin before limit.
func fitLines(n int, top, lineHeight, limit float64) int {
	for i := 0; i < n; i++ {
		if top+float64(i)*lineHeight >= limit {
			return i
		}
	}
	return n
}
