package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/zam-dot/portfolio/reveal"
)

// pageRow is one terminal row of the page. Rows with reveal set are about
// text whose mask depends on the scroll offset; every other row is final.
type pageRow struct {
	text   string
	reveal string
	indent int
}

// pageLayout is the page laid out for one viewport size. Offsets are rows
// from the top of the page.
type pageLayout struct {
	rows       []pageRow
	heroHeight int
	aboutTop   int
	contactTop int
	footerTop  int
}

// render lays the page out for the current size and feeds the viewport
func (m *model) render() {
	if !m.ready {
		return
	}
	m.layout = m.buildLayout()
	m.viewport.SetContent(m.maskedContent())
}

// buildLayout lays out every page row for the current width and records
// where each section starts
func (m *model) buildLayout() pageLayout {
	width, height := m.viewport.Width, m.viewport.Height
	var l pageLayout

	blank := func(style lipgloss.Style, n int) {
		for i := 0; i < n; i++ {
			l.rows = append(l.rows, pageRow{text: style.Width(width).Render("")})
		}
	}
	sectionMargins := func() (top, bottom int) {
		if m.isMobile() {
			return 2, 1
		}
		margin := int(math.Round(0.15 * float64(height)))
		return margin, margin
	}

	// Hero: full viewport, greeting centred
	l.heroHeight = height
	greeting := m.typedGreeting()
	first := (height - len(greeting)) / 2
	for row := 0; row < height; row++ {
		line := ""
		if i := row - first; i >= 0 && i < len(greeting) {
			line = greeting[i]
		}
		l.rows = append(l.rows, pageRow{text: heroStyle.Width(width).Align(lipgloss.Center).Render(line)})
	}

	// About
	l.aboutTop = len(l.rows)
	top, bottom := sectionMargins()
	blank(pageStyle, top)
	l.rows = append(l.rows, pageRow{text: headingStyle.Width(width).Align(lipgloss.Center).Render("ABOUT ME")})
	blank(pageStyle, bottom)

	indent := 4
	if m.isMobile() {
		indent = 2
	}
	container := float64(width - 2*indent)
	for i, paragraph := range m.profile.About {
		for _, line := range m.wrapper.Wrap(paragraph, container) {
			l.rows = append(l.rows, pageRow{reveal: line, indent: indent})
		}
		if i < len(m.profile.About)-1 {
			blank(pageStyle, 1)
		}
	}

	// Contact
	l.contactTop = len(l.rows)
	top, bottom = sectionMargins()
	blank(pageStyle, top)
	l.rows = append(l.rows, pageRow{text: headingStyle.Width(width).Align(lipgloss.Center).Render("GET IN TOUCH")})
	blank(pageStyle, bottom)
	for _, row := range m.form.rows(width, m.profile.FirstName()) {
		l.rows = append(l.rows, pageRow{text: row})
	}
	blank(pageStyle, top)

	// Footer
	l.footerTop = len(l.rows)
	blank(footerStyle, 1)
	for _, row := range m.footerRows(width) {
		l.rows = append(l.rows, pageRow{text: row})
	}
	blank(footerStyle, 1)

	return l
}

// typedGreeting returns the greeting lines as far as typing has got, with
// the cursor after the last typed character
func (m *model) typedGreeting() []string {
	lines := typedLines(m.profile.Greeting, m.typed)
	cursor := "_"
	if m.typingDone() && !m.cursorOn {
		cursor = " "
	}
	if len(lines) == 0 {
		return []string{cursor}
	}
	lines[len(lines)-1] += cursor
	return lines
}

// footerRows packs the social link labels greedily into centred rows no wider
// than width, followed by a spacer and the copyright line
func (m *model) footerRows(width int) []string {
	sep := footerStyle.Render("   ")
	var rows, line []string
	flush := func() {
		if len(line) == 0 {
			return
		}
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(line, sep),
			lipgloss.WithWhitespaceBackground(color(spaceBlack))))
		line = nil
	}
	for _, link := range m.profile.Links {
		label := footerLinkStyle.Render(link.Label)
		if len(line) > 0 && lipgloss.Width(strings.Join(append(line, label), sep)) > width {
			flush()
		}
		line = append(line, label)
	}
	flush()

	rows = append(rows, footerStyle.Width(width).Render(""))
	rows = append(rows, footerStyle.Width(width).Align(lipgloss.Right).Render(m.profile.Copyright+"  "))
	return rows
}

// maskedContent renders every row, masking about lines for the current
// scroll offset
func (m *model) maskedContent() string {
	rows := make([]string, len(m.layout.rows))
	for i, row := range m.layout.rows {
		if row.reveal == "" {
			rows[i] = row.text
			continue
		}
		rows[i] = maskedLine(row.reveal, row.indent, m.viewport.Width, m.rowHidden(i))
	}
	return strings.Join(rows, "\n")
}

// rowHidden is the masked fraction of page row i at the current scroll
// offset. A row's top is its index in the page.
func (m *model) rowHidden(i int) float64 {
	return reveal.MaskAt(m.scroll.Get(), float64(i), float64(m.viewport.Height), m.maskConfig())
}

// maskSplit cuts line where the mask begins: visible keeps the leading
// (1 - hidden) of its cells and rest is drawn under the mask
func maskSplit(line string, hidden float64) (visible, rest string) {
	lineWidth := runewidth.StringWidth(line)
	masked := int(math.Round(hidden * float64(lineWidth)))
	visible = runewidth.Truncate(line, lineWidth-masked, "")
	return visible, line[len(visible):]
}

// maskedLine draws line with its right-hand hidden fraction under the mask
func maskedLine(line string, indent, width int, hidden float64) string {
	visible, rest := maskSplit(line, hidden)

	pad := width - indent - runewidth.StringWidth(line)
	if pad < 0 {
		pad = 0
	}
	return pageStyle.Render(strings.Repeat(" ", indent)+visible) +
		maskedStyle.Render(rest) +
		pageStyle.Render(strings.Repeat(" ", pad))
}

// ============================================================================
// HEADER
// ============================================================================

// renderHeader draws the nav row and the border row in the colours of the
// current header style
func (m *model) renderHeader() string {
	bg := m.header.Background.Over(spaceBlack)
	fg := m.header.Text.Over(bg)
	base := lipgloss.NewStyle().Background(color(bg)).Foreground(color(fg))
	width := m.width

	var left, right string
	if m.isMobile() {
		left = base.Bold(true).Render("  ☄ MENU (m)")
	} else {
		active := m.activeSection()
		link := func(label, section string) string {
			return base.Bold(true).Underline(active == section).Render(label)
		}
		left = base.Render("  ") + link("ABOUT ME", sectionAbout) + base.Render("    ") + link("CONTACT ME", sectionContact)

		button := lipgloss.NewStyle().
			Foreground(color(m.header.ButtonText.Over(bg))).
			Background(color(m.header.ButtonBackground.Over(bg))).
			Render(" Check Out My Resume! ")
		edge := lipgloss.NewStyle().Background(color(bg))
		right = edge.Foreground(color(accentFrom)).Render("(") + button +
			edge.Foreground(color(accentTo)).Render(")") + base.Render("  ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		right = ""
		gap = max(0, width-lipgloss.Width(left))
	}
	nav := left + base.Render(strings.Repeat(" ", gap)) + right

	border := base.Render(strings.Repeat(" ", width))
	if m.header.HasBorder() {
		border = base.Foreground(lipgloss.Color("250")).Render(strings.Repeat("─", width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, nav, border)
}

// pageView is the viewport with the decorative underline drawn at the
// header's UnderlineY
func (m *model) pageView() string {
	rows := strings.Split(m.viewport.View(), "\n")
	y := int(math.Round(m.header.UnderlineY))
	if y >= 0 && y < len(rows) && m.viewport.Width > 4 {
		rows[y] = underlineRuleStyle.Render("  " + strings.Repeat("─", m.viewport.Width-4) + "  ")
	}
	return strings.Join(rows, "\n")
}

func (m *model) renderMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		line := "  " + item.label
		if i == m.menuIndex {
			line = menuSelectedStyle.Render("› " + item.label)
		}
		b.WriteString(line + "\n\n")
	}
	b.WriteString("↑/↓ to move, enter to go, esc to close")
	return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Left, lipgloss.Top,
		menuStyle.Width(m.width).Height(m.viewport.Height).Render(b.String()))
}

// renderStatus draws the status message, or the key hints when there is none
func (m *model) renderStatus() string {
	line := m.status
	style := statusStyle
	if m.statusErr {
		style = statusErrorStyle
	}
	if line == "" {
		switch m.mode {
		case modeForm:
			line = "tab/shift+tab to move, enter on the last field or ctrl+s to send, esc to leave the form"
		case modeLinks:
			line = "↑↓ to navigate, / to filter, enter to open, esc to go back"
		default:
			line = "a about · c contact · l links · r resume · ? help · q quit"
		}
	}
	return style.Width(m.width).MaxHeight(1).Render(line)
}
