package reveal

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Measurer returns the rendered width of s on one line, with whitespace kept
// as-is and no wrapping. It must use the same face and size as the text
// being laid out.
type Measurer func(s string) float64

// CellMeasurer measures terminal cells, ignoring ANSI escape sequences.
func CellMeasurer(s string) float64 {
	return float64(runewidth.StringWidth(ansi.Strip(s)))
}

// FaceMeasurer measures advance width in pixels for face. The face is
// guarded by a mutex because font.Face is not safe for concurrent use.
func FaceMeasurer(face font.Face) Measurer {
	var mu sync.Mutex
	return func(s string) float64 {
		mu.Lock()
		defer mu.Unlock()
		return float64(font.MeasureString(face, s)) / 64
	}
}

// NewFontMeasurer parses a TrueType/OpenType font and measures at size
// points and dpi.
func NewFontMeasurer(ttf []byte, size, dpi float64) (Measurer, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return FaceMeasurer(face), nil
}

// DefaultFontMeasurer measures with Go Regular at size pixels.
func DefaultFontMeasurer(size float64) (Measurer, error) {
	return NewFontMeasurer(goregular.TTF, size, 72)
}
