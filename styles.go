package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zam-dot/portfolio/reveal"
)

// ============================================================================
// PAGE COLOURS
// ============================================================================
// The hero and footer sit on a near-black "space" background, the body of
// the page is white. Header colours are not listed here: they come from
// reveal.HeaderStyleAt every frame and are composited over spaceBlack.

var (
	spaceBlack = reveal.MustColor("#0b0a17")
	pageWhite  = reveal.MustColor("#ffffff")
	inkBlack   = reveal.MustColor("#111111")
	accentFrom = reveal.MustColor("#f97316") // orange
	accentTo   = reveal.MustColor("#a855f7") // purple

	// maskInk is body text seen through a 90% white overlay
	maskInk = reveal.MixColor(inkBlack, pageWhite, 0.9)
)

func color(c reveal.RGBA) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

var (
	// ============================================================================
	// SECTION STYLES
	// ============================================================================

	heroStyle = lipgloss.NewStyle().
			Background(color(spaceBlack)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	pageStyle = lipgloss.NewStyle().
			Background(color(pageWhite)).
			Foreground(color(inkBlack))

	maskedStyle = pageStyle.
			Foreground(color(maskInk))

	headingStyle = pageStyle.
			Bold(true).
			Foreground(color(reveal.MixColor(accentFrom, accentTo, 0.5)))

	footerStyle = lipgloss.NewStyle().
			Background(color(spaceBlack)).
			Foreground(lipgloss.Color("#ffffff"))

	footerLinkStyle = footerStyle.
			Underline(true)

	// ============================================================================
	// FORM STYLES
	// ============================================================================

	fieldStyle = pageStyle.
			Italic(true).
			Bold(true)

	placeholderStyle = pageStyle.
				Foreground(lipgloss.Color("245"))

	fieldErrorStyle = pageStyle.
			Foreground(lipgloss.Color("#ef4444"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(color(inkBlack)).
			Background(color(pageWhite)).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(accentFrom)).
			BorderBackground(color(pageWhite))

	// ============================================================================
	// CHROME
	// ============================================================================

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusErrorStyle = statusStyle.
				Foreground(lipgloss.Color("203"))

	menuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(color(spaceBlack)).
			Padding(1, 4)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(color(accentFrom)).
				Bold(true)

	underlineRuleStyle = lipgloss.NewStyle().
				Foreground(color(spaceBlack)).
				Background(color(pageWhite))
)
