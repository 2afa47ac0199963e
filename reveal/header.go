package reveal

import "math"

// Palette is the colour set of the header chrome.
type Palette struct {
	Background       RGBA
	Text             RGBA
	ButtonText       RGBA
	ButtonBackground RGBA
}

// HeaderTheme pairs the palette shown over the hero with the one shown
// over the page body.
type HeaderTheme struct {
	Dark  Palette
	Light Palette
}

// DefaultHeaderTheme is transparent-on-dark over the hero, white below it.
func DefaultHeaderTheme() HeaderTheme {
	return HeaderTheme{
		Light: Palette{
			Background:       MustColor("rgba(255, 255, 255, 1)"),
			Text:             MustColor("rgba(0, 0, 0, 1)"),
			ButtonText:       MustColor("rgba(0, 0, 0, 1)"),
			ButtonBackground: MustColor("rgba(255, 255, 255, 1)"),
		},
		Dark: Palette{
			Background:       MustColor("rgba(255, 255, 255, 0)"),
			Text:             MustColor("rgba(255, 255, 255, 1)"),
			ButtonText:       MustColor("rgba(255, 255, 255, 1)"),
			ButtonBackground: MustColor("rgba(0, 0, 0, 1)"),
		},
	}
}

// Bands sizes the scroll windows, before the hero's bottom edge, in which
// the header changes.
type Bands struct {
	// Transition is the window over which the palette moves to light.
	Transition float64
	// Border is the window over which the bottom border fades in.
	Border float64
}

// DefaultBands are in CSS pixels.
func DefaultBands() Bands {
	return Bands{Transition: 90, Border: 20}
}

// HeaderStyle is the header state at one scroll offset.
type HeaderStyle struct {
	Palette
	// UnderlineY is the offset of the decorative line below the header.
	UnderlineY float64
	// BorderWidth is 0 over the hero and 1 once it has scrolled away.
	BorderWidth float64
}

// HasBorder reports whether the border is drawn at whole-unit resolution.
func (s HeaderStyle) HasBorder() bool {
	return math.Round(s.BorderWidth) >= 1
}

// Breakpoints returns [0, heroHeight-band, heroHeight] with the middle
// point held at or above zero.
func Breakpoints(heroHeight, band float64) []float64 {
	return []float64{0, math.Max(0, heroHeight-band), heroHeight}
}

// HeaderStyleAt interpolates every header channel for scrollY. All four
// colour channels share one breakpoint set so they move in lock-step. A hero
// that has not been measured yet leaves the header in its dark state.
func HeaderStyleAt(scrollY, heroHeight float64, theme HeaderTheme, bands Bands) HeaderStyle {
	if heroHeight <= 0 {
		return HeaderStyle{Palette: theme.Dark}
	}

	colors := Breakpoints(heroHeight, bands.Transition)
	style := HeaderStyle{
		Palette: Palette{
			Background:       Transition(scrollY, colors, theme.Dark.Background, theme.Light.Background, MixColor),
			Text:             Transition(scrollY, colors, theme.Dark.Text, theme.Light.Text, MixColor),
			ButtonText:       Transition(scrollY, colors, theme.Dark.ButtonText, theme.Light.ButtonText, MixColor),
			ButtonBackground: Transition(scrollY, colors, theme.Dark.ButtonBackground, theme.Light.ButtonBackground, MixColor),
		},
		BorderWidth: Transition(scrollY, Breakpoints(heroHeight, bands.Border), 0.0, 1.0, Lerp),
	}
	style.UnderlineY, _ = Interpolate(scrollY, []float64{0, heroHeight}, []float64{heroHeight, 0})
	return style
}
