package reveal

import (
	"fmt"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMargin is kept free at the right edge of every wrapped line.
const DefaultMargin = 5

// Wrap greedily fills lines so each measures at most containerWidth-5. A word
// wider than that on its own gets a line to itself; words are never split.
// Runs of whitespace collapse to one space; see Words. The last line is always emitted,
// so empty text gives one empty line. An unmeasured container (width <= 0)
// gives no lines.
func Wrap(text string, containerWidth float64, measure Measurer) []string {
	return wrap(text, containerWidth, DefaultMargin, measure)
}

func wrap(text string, containerWidth, margin float64, measure Measurer) []string {
	if containerWidth <= 0 {
		return []string{}
	}
	limit := containerWidth - margin

	var lines []string
	line := ""
	for i, word := range Words(text) {
		if i == 0 {
			line = word
			continue
		}
		candidate := line + " " + word
		if measure(candidate) > limit {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// Words splits text on runs of collapsible whitespace the way a browser
// lays out a paragraph. A no-break space (U+00A0) does not collapse and stays
// inside its word.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r != '\u00a0' && unicode.IsSpace(r)
	})
}

type wrapKey struct {
	text   string
	width  float64
	margin float64
}

// Wrapper wraps with a fixed measurer and caches results per text and width.
type Wrapper struct {
	measure Measurer
	margin  float64
	cache   *lru.Cache[wrapKey, []string]
}

// WrapperOption configures a Wrapper.
type WrapperOption func(*Wrapper)

// WithMargin overrides DefaultMargin.
func WithMargin(margin float64) WrapperOption {
	return func(w *Wrapper) { w.margin = margin }
}

// NewWrapper returns a Wrapper holding up to cacheSize results.
func NewWrapper(measure Measurer, cacheSize int, opts ...WrapperOption) (*Wrapper, error) {
	cache, err := lru.New[wrapKey, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create wrap cache: %w", err)
	}
	w := &Wrapper{measure: measure, margin: DefaultMargin, cache: cache}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Wrap is the package-level Wrap with this wrapper's margin, served from
// cache when the same text was wrapped at the same width before.
func (w *Wrapper) Wrap(text string, containerWidth float64) []string {
	key := wrapKey{text: text, width: containerWidth, margin: w.margin}
	if lines, ok := w.cache.Get(key); ok {
		return append([]string(nil), lines...)
	}
	lines := wrap(text, containerWidth, w.margin, w.measure)
	w.cache.Add(key, lines)
	return append([]string(nil), lines...)
}

// Measure exposes the wrapper's measurer.
func (w *Wrapper) Measure(s string) float64 {
	return w.measure(s)
}
