package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/zam-dot/portfolio/contact"
	"github.com/zam-dot/portfolio/reveal"
)

const (
	headerHeight  = 2 // nav row + border row
	statusHeight  = 1
	wrapCacheSize = 64
)

// Modes
const (
	modeView  = "view"
	modeForm  = "form"
	modeLinks = "links"
	modeMenu  = "menu"
	modeHelp  = "help"
)

// model holds all the state for the portfolio
type model struct {
	config  Config
	profile Profile

	viewport  viewport.Model // the scrolling page
	linksList list.Model     // social links picker
	form      contactForm
	ready     bool
	mode      string
	width     int
	height    int

	// Scroll-reactive state. size and scroll are the two signals the page
	// reacts to; header and layout are derived from them.
	size    *reveal.Signal[reveal.Size]
	scroll  *reveal.Signal[float64]
	wrapper *reveal.Wrapper
	theme   reveal.HeaderTheme
	header  reveal.HeaderStyle
	layout  pageLayout

	typed    int  // greeting characters revealed so far
	cursorOn bool // blink phase once typing is done

	scrollTarget int
	scrolling    bool

	menuIndex int
	helpText  string

	status    string
	statusErr bool

	client   *contact.Client
	outbox   *contact.Outbox
	flushing bool // a resend of the outbox is in flight
}

// newModel wires the signals: a new size re-lays the page out, a new scroll
// offset re-themes the header and re-masks the about text.
func newModel(config Config, profile Profile) (*model, error) {
	wrapper, err := reveal.NewWrapper(reveal.CellMeasurer, wrapCacheSize, reveal.WithMargin(config.WrapMargin))
	if err != nil {
		return nil, fmt.Errorf("create wrapper: %w", err)
	}

	m := &model{
		config:    config,
		profile:   profile,
		linksList: newLinksList(profile.Links),
		form:      newContactForm(),
		mode:      modeView,
		size:      reveal.NewSignal(reveal.Size{}),
		scroll:    reveal.NewSignal(0.0),
		wrapper:   wrapper,
		theme:     reveal.DefaultHeaderTheme(),
		client:    contact.NewClient(config.ContactURL),
		outbox:    contact.LoadOutbox(config.OutboxFile),
	}
	m.header = reveal.HeaderStyleAt(0, 0, m.theme, m.bands())

	m.size.Subscribe(func(reveal.Size) {
		if !m.ready {
			return
		}
		m.render()
		m.updateHeader()
	})
	m.scroll.Subscribe(func(float64) {
		if !m.ready {
			return
		}
		m.updateHeader()
		m.render()
	})

	if n := m.outbox.Len(); n > 0 {
		m.setStatus(fmt.Sprintf("%d undelivered message(s) queued, press f to resend", n), false)
	}
	return m, nil
}

func (m *model) bands() reveal.Bands {
	return reveal.Bands{Transition: m.config.HeaderBand, Border: m.config.BorderBand}
}

func (m *model) maskConfig() reveal.MaskConfig {
	return reveal.MaskConfig{Fraction: m.config.MaskFraction, Band: m.config.MaskBand}
}

// updateHeader recomputes the header chrome from the latest scroll sample
func (m *model) updateHeader() {
	m.header = reveal.HeaderStyleAt(m.scroll.Get(), float64(m.layout.heroHeight), m.theme, m.bands())
}

// syncScroll publishes the viewport offset; subscribers only run when it moved
func (m *model) syncScroll() {
	m.scroll.Set(float64(m.viewport.YOffset))
}

// isMobile reports whether the header collapses into the menu toggle
func (m *model) isMobile() bool {
	return m.width <= m.config.MobileWidth
}

// setStatus replaces the status line; isErr draws it in the error colour
func (m *model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}
