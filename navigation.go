package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const scrollFrame = 16 * time.Millisecond

const (
	sectionHero    = "hero"
	sectionAbout   = "about"
	sectionContact = "contact"
	sectionFooter  = "footer"
)

// scrollTickMsg advances an eased scroll toward scrollTarget
type scrollTickMsg struct{}

func scrollTick() tea.Cmd {
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg { return scrollTickMsg{} })
}

type menuItem struct {
	label  string
	action string
}

var menuItems = []menuItem{
	{label: "ABOUT ME", action: sectionAbout},
	{label: "CONTACT ME", action: sectionContact},
	{label: "Check Out My Resume!", action: "resume"},
}

// sectionTop returns the first row of a section
func (m *model) sectionTop(section string) int {
	switch section {
	case sectionAbout:
		return m.layout.aboutTop
	case sectionContact:
		return m.layout.contactTop
	case sectionFooter:
		return m.layout.footerTop
	}
	return 0
}

// activeSection names the section at the middle of the viewport
func (m *model) activeSection() string {
	mid := m.viewport.YOffset + m.viewport.Height/2
	switch {
	case mid >= m.layout.footerTop && m.layout.footerTop > 0:
		return sectionFooter
	case mid >= m.layout.contactTop && m.layout.contactTop > 0:
		return sectionContact
	case mid >= m.layout.aboutTop && m.layout.aboutTop > 0:
		return sectionAbout
	}
	return sectionHero
}

// maxOffset is the last offset at which the viewport is still full
func (m *model) maxOffset() int {
	return max(0, len(m.layout.rows)-m.viewport.Height)
}

// jumpTo starts an eased scroll so row ends up JumpOffset rows below the
// top of the viewport
func (m *model) jumpTo(row int) tea.Cmd {
	target := min(max(0, row-m.config.JumpOffset), m.maxOffset())
	m.scrollTarget = target
	if m.scrolling {
		return nil
	}
	m.scrolling = true
	return scrollTick()
}

// jumpToSection starts a smooth scroll to a section, stopping JumpOffset
// rows above it so the heading is not hidden under the header
func (m *model) jumpToSection(section string) tea.Cmd {
	return m.jumpTo(m.sectionTop(section))
}

// stopScrolling cancels an eased scroll when the user scrolls by hand
func (m *model) stopScrolling() {
	m.scrolling = false
	m.scrollTarget = m.viewport.YOffset
}

// handleScrollTick moves a quarter of the remaining distance each frame,
// at least one row, and stops ticking once the target is reached
func (m *model) handleScrollTick() (tea.Model, tea.Cmd) {
	if !m.scrolling {
		return m, nil
	}
	diff := m.scrollTarget - m.viewport.YOffset
	if diff == 0 {
		m.scrolling = false
		return m, nil
	}

	step := diff / 4
	if step == 0 {
		step = 1
		if diff < 0 {
			step = -1
		}
	}
	before := m.viewport.YOffset
	m.viewport.SetYOffset(before + step)
	m.syncScroll()

	if m.viewport.YOffset == m.scrollTarget || m.viewport.YOffset == before {
		m.scrolling = false
		return m, nil
	}
	return m, scrollTick()
}
