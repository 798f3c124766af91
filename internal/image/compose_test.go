package imagepkg

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"strings"
	"sync"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/youruser/cardcomposer/internal/cards"
	"github.com/youruser/cardcomposer/internal/text"
)

func encodedPixel(t *testing.T, c color.Color) string {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, imaging.New(1, 1, c), imaging.PNG); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestComposeRedPixelEmptyCard(t *testing.T) {
	out, err := NewComposer().Compose(encodedPixel(t, color.NRGBA{R: 255, A: 255}), cards.Card{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not an image: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 280, 480) {
		t.Fatalf("unexpected output size %v", img.Bounds())
	}
	placed := image.Rect(32, 0, 248, 216)
	white := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < 480; y++ {
		for x := 0; x < 280; x++ {
			got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			inside := image.Pt(x, y).In(placed)
			if !inside && got != white {
				t.Fatalf("pixel (%d, %d) = %v, want background", x, y, got)
			}
			if inside && (got.R < 250 || got.G > 5 || got.B > 5) {
				t.Fatalf("pixel (%d, %d) = %v, want red", x, y, got)
			}
		}
	}
}

func TestComposeDrawsText(t *testing.T) {
	c := NewComposer()
	img, s, err := c.Render(encodedPixel(t, color.Black), cards.Card{
		Title:     "hello world",
		Breakdown: []string{"hel", "lo"},
		Examples:  []string{"Hello, world!"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s.Zones[RoleBreakdown].Items != 2 || s.Zones[RoleExample].Items != 1 {
		t.Fatalf("unexpected summary %+v", s.Zones)
	}
	drawn := false
	for y := 216; y < 480 && !drawn; y++ {
		for x := 0; x < 280; x++ {
			if img.NRGBAAt(x, y) != (color.NRGBA{255, 255, 255, 255}) {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Fatalf("expected text below the image")
	}
}

func TestComposeAcceptsDataURL(t *testing.T) {
	src := "data:image/png;base64," + encodedPixel(t, color.White)
	if _, err := NewComposer().Compose(src, cards.Card{Title: "x"}); err != nil {
		t.Fatalf("compose: %v", err)
	}
}

func TestComposeDecodeErrors(t *testing.T) {
	inputs := map[string]string{
		"malformed base64": "!!! not base64 !!!",
		"not an image":     base64.StdEncoding.EncodeToString([]byte("hello")),
		"empty":            "",
		"bad data url":     "data:image/png;base64",
	}
	loaded := false
	c := NewComposer()
	c.LoadFont = func() (*text.Font, error) {
		loaded = true
		return text.Default()
	}
	for name, in := range inputs {
		out, err := c.Compose(in, cards.Card{Title: "hello"})
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("%s: expected ErrDecode, got %v", name, err)
		}
		if out != nil {
			t.Fatalf("%s: expected no output, got %d bytes", name, len(out))
		}
	}
	if loaded {
		t.Fatalf("decode failures must stop before the font is loaded")
	}
}

func TestComposeFontLoadError(t *testing.T) {
	c := NewComposer()
	c.LoadFont = func() (*text.Font, error) { return nil, errors.New("asset missing") }
	out, err := c.Compose(encodedPixel(t, color.White), cards.Card{})
	if !errors.Is(err, ErrFontLoad) || out != nil {
		t.Fatalf("expected ErrFontLoad and no output, got %v", err)
	}
	if !strings.Contains(err.Error(), "asset missing") {
		t.Fatalf("cause must be kept in %q", err)
	}
}

func TestComposeTruncatesSilently(t *testing.T) {
	examples := make([]string, 50)
	for i := range examples {
		examples[i] = "an example sentence that wraps onto more than one line of the card"
	}
	_, s, err := NewComposer().Render(encodedPixel(t, color.White), cards.Card{Title: "title", Examples: examples})
	if err != nil {
		t.Fatalf("truncation must not fail: %v", err)
	}
	if n := s.Zones[RoleExample].Items; n >= 50 {
		t.Fatalf("expected fewer than 50 examples, got %d", n)
	}
}

func TestComposeConcurrent(t *testing.T) {
	c := NewComposer()
	src := encodedPixel(t, color.NRGBA{B: 255, A: 255})
	card := cards.Card{Title: "concurrent", Breakdown: []string{"a", "b"}, Examples: []string{"c"}}
	want, err := c.Compose(src, card)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Compose(src, card)
			if err == nil && !bytes.Equal(got, want) {
				err = errors.New("output differs between calls")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent compose: %v", err)
		}
	}
}
