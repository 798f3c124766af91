package imagepkg

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/cardcomposer/internal/cards"
	"github.com/youruser/cardcomposer/internal/text"
)

// Composer renders cards. It holds no per-request state and is safe for
// concurrent use.
type Composer struct {
	Layout   Layout
	LoadFont func() (*text.Font, error)
}

// NewComposer returns a Composer using the default layout and embedded font.
func NewComposer() *Composer {
	return &Composer{Layout: DefaultLayout(), LoadFont: text.Default}
}

// Compose renders card beneath the base64 encoded image and returns PNG bytes.
func (c *Composer) Compose(imageBase64 string, card cards.Card) ([]byte, error) {
	img, _, err := c.Render(imageBase64, card)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// Render composes the card canvas without encoding it.
func (c *Composer) Render(imageBase64 string, card cards.Card) (*image.NRGBA, Summary, error) {
	raw, err := decodeBase64(imageBase64)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("%w: base64: %v", ErrDecode, err)
	}
	src, err := Decode(raw)
	if err != nil {
		return nil, Summary{}, err
	}

	canvas := NewCanvas(c.Layout.Width, c.Layout.Height, c.Layout.Background)
	canvas, placement := Place(canvas, src, c.Layout.TopZoneBudget())

	load := c.LoadFont
	if load == nil {
		load = text.Default
	}
	f, err := load()
	if err != nil {
		return nil, Summary{}, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	if f == nil {
		return nil, Summary{}, fmt.Errorf("%w: no font", ErrFontLoad)
	}

	summary := c.Layout.Sequence(canvas, placement, card, f)
	return canvas, summary, nil
}

// decodeBase64 accepts plain standard base64 or a data URL.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, errors.New("malformed data URL")
		}
		s = s[i+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}
