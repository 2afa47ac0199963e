package reveal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a colour with 0..255 channels and a 0..1 alpha.
type RGBA struct {
	R, G, B float64
	A       float64
}

// ParseColor reads "rgba(r, g, b, a)", "rgb(r, g, b)" or "#rrggbb".
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		return fromColorful(c, 1), nil
	}

	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgba("):len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgb("):len(s)-1], 3
	default:
		return RGBA{}, fmt.Errorf("parse colour %q: unsupported format", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return RGBA{}, fmt.Errorf("parse colour %q: want %d components, got %d", s, want, len(parts))
	}
	vals := make([]float64, 4)
	vals[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		vals[i] = v
	}
	return RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

// MustColor is ParseColor for package-level literals.
func MustColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func fromColorful(c colorful.Color, alpha float64) RGBA {
	return RGBA{R: c.R * 255, G: c.G * 255, B: c.B * 255, A: alpha}
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// MixColor blends channel by channel in RGB space, alpha included.
func MixColor(a, b RGBA, t float64) RGBA {
	return fromColorful(a.colorful().BlendRgb(b.colorful(), t), Lerp(a.A, b.A, t))
}

// Over composites c onto an opaque base, returning an opaque colour.
func (c RGBA) Over(base RGBA) RGBA {
	out := MixColor(RGBA{R: base.R, G: base.G, B: base.B, A: 1}, RGBA{R: c.R, G: c.G, B: c.B, A: 1}, clamp01(c.A))
	out.A = 1
	return out
}

// Hex formats the RGB channels as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return c.colorful().Clamped().Hex()
}

// String formats the colour as rgba().
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		int(math.Round(c.R)), int(math.Round(c.G)), int(math.Round(c.B)),
		strconv.FormatFloat(c.A, 'f', -1, 64))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
