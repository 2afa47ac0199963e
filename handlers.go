package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zam-dot/portfolio/contact"
	"github.com/zam-dot/portfolio/reveal"
)

// handleKeyMsg routes a key press. Modes that own the keyboard (form, links,
// menu, help) get it first; in view mode the portfolio shortcuts apply and
// any other key scrolls the page.
func (m *model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeLinks:
		return m.handleLinksKey(msg)
	case modeMenu:
		return m.handleMenuKey(msg)
	case modeHelp:
		switch msg.String() {
		case "esc", "?", "q":
			m.mode = modeView
		}
		return m, nil
	}

	// Any key dismisses the last status message
	m.status = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "a":
		return m, m.jumpToSection(sectionAbout)

	case "c":
		return m.handleFocusForm()

	case "r":
		return m.handleOpenResume()

	case "l", "L":
		if len(m.profile.Links) == 0 {
			return m, nil
		}
		m.mode = modeLinks
		return m, nil

	case "m":
		m.mode = modeMenu
		m.menuIndex = 0
		return m, nil

	case "?":
		m.helpText = renderHelp(m.width)
		m.mode = modeHelp
		return m, nil

	case "f":
		return m.handleFlush()

	case "g", "home":
		m.stopScrolling()
		m.viewport.GotoTop()
		m.syncScroll()
		return m, nil

	case "G", "end":
		m.stopScrolling()
		m.viewport.GotoBottom()
		m.syncScroll()
		return m, nil
	}

	// Everything else scrolls the page
	m.stopScrolling()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.syncScroll()
	return m, cmd
}

// handleFormKey drives the contact form: tab and the arrows move between
// fields, enter advances and submits from the last field, ctrl+s submits from
// anywhere, esc returns to the page. Everything else is typed into the
// focused field.
func (m *model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.blur()
		m.mode = modeView
		m.render()
		return m, nil

	case "tab", "down":
		cmd := m.form.next()
		m.render()
		return m, cmd

	case "shift+tab", "up":
		cmd := m.form.prev()
		m.render()
		return m, cmd

	case "enter":
		if !m.form.onLastField() {
			cmd := m.form.next()
			m.render()
			return m, cmd
		}
		return m.handleSubmit()

	case "ctrl+s":
		return m.handleSubmit()
	}

	cmd := m.form.update(msg)
	m.render()
	return m, cmd
}

// handleLinksKey drives the social links picker. While the list is being
// filtered, esc and enter belong to the filter; otherwise enter opens the
// selected link and esc goes back to the page.
func (m *model) handleLinksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.linksList.FilterState() == list.Filtering

	switch msg.String() {
	case "esc":
		if !filtering && !m.linksList.IsFiltered() {
			m.mode = modeView
			return m, nil
		}
	case "enter":
		if !filtering {
			if selected, ok := m.linksList.SelectedItem().(linkItem); ok {
				m.mode = modeView
				m.setStatus("Opening "+selected.link.URL+"...", false)
				return m, openExternally(selected.link.URL)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.linksList, cmd = m.linksList.Update(msg)
	return m, cmd
}

// handleMenuKey drives the mobile menu overlay. Choosing an entry closes the
// menu and performs the same action as the matching header link.
func (m *model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "esc", "m":
		m.mode = modeView
	case "enter":
		m.mode = modeView
		switch action := menuItems[m.menuIndex].action; action {
		case "resume":
			return m.handleOpenResume()
		case sectionContact:
			return m.handleFocusForm()
		default:
			return m, m.jumpToSection(action)
		}
	}
	return m, nil
}

// handleFocusForm scrolls to the contact section and focuses the first field
func (m *model) handleFocusForm() (tea.Model, tea.Cmd) {
	m.mode = modeForm
	focus := m.form.focusField(0)
	m.render()
	return m, tea.Batch(m.jumpToSection(sectionContact), focus)
}

// handleOpenResume opens the resume with the system opener
func (m *model) handleOpenResume() (tea.Model, tea.Cmd) {
	if m.profile.ResumeURL == "" {
		m.setStatus("No resume link configured", true)
		return m, nil
	}
	m.setStatus("Opening resume...", false)
	return m, openExternally(m.profile.ResumeURL)
}

// handleSubmit validates the form locally and only posts it when every field
// passes. Invalid fields get their messages and focus moves to the first one.
func (m *model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	s := m.form.submission()
	if errs := contact.Validate(s); errs != nil {
		m.form.errors = errs
		cmd := m.form.focusField(m.form.firstInvalid())
		m.render()
		return m, cmd
	}

	m.form.errors = nil
	m.form.submitting = true
	m.render()
	return m, submitContact(m.client, s)
}

// handleFlush resends the outbox in the background. Only one resend runs at
// a time; pressing f again while it is in flight does nothing.
func (m *model) handleFlush() (tea.Model, tea.Cmd) {
	if m.flushing {
		m.setStatus("Already resending queued messages...", false)
		return m, nil
	}
	if m.outbox.Len() == 0 {
		m.setStatus("Nothing queued", false)
		return m, nil
	}
	m.flushing = true
	m.setStatus(fmt.Sprintf("Resending %d message(s)...", m.outbox.Len()), false)
	return m, flushOutbox(m.outbox, m.client)
}

// ============================================================================
// ASYNC RESULTS
// ============================================================================

// handleSubmitResult finishes a submission. Success clears the form, field
// errors from the server go back onto the form, and any other failure queues
// the submission in the outbox so it can be resent later.
func (m *model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false

	var fieldErrs contact.FieldErrors
	switch {
	case msg.err == nil:
		m.form.reset()
		m.form.blur()
		m.mode = modeView
		m.setStatus("Thanks for reaching out! I'll get back to you soon.", false)

	case errors.As(msg.err, &fieldErrs):
		m.form.errors = fieldErrs

	default:
		log.Printf("Error submitting contact form: %v", msg.err)
		if err := m.outbox.Add(msg.submission, msg.err); err != nil {
			log.Printf("Error queueing submission: %v", err)
		}
		m.setStatus("Failed to submit form. Please try again later.", true)
	}

	m.render()
	return m, nil
}

// handleFlushResult reports how many queued messages went out
func (m *model) handleFlushResult(msg flushResultMsg) (tea.Model, tea.Cmd) {
	m.flushing = false
	if msg.err != nil {
		log.Printf("Error resending outbox: %v", msg.err)
		m.setStatus(fmt.Sprintf("Sent %d, %d still queued: %v", msg.sent, m.outbox.Len(), msg.err), true)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Sent %d queued message(s)", msg.sent), false)
	return m, nil
}

// handleOpened surfaces a failure to open a link; success needs no feedback
func (m *model) handleOpened(msg openedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Printf("Error opening %s: %v", msg.url, msg.err)
		m.setStatus("Could not open "+msg.url, true)
	}
	return m, nil
}

// ============================================================================
// WINDOW
// ============================================================================

// handleWindowSize sizes the viewport to the space between the header and
// the status line. The first size creates the viewport; publishing the new
// size to the size signal re-lays the page out.
func (m *model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	bodyHeight := max(1, msg.Height-headerHeight-statusHeight)

	if !m.ready {
		m.viewport = viewport.New(msg.Width, bodyHeight)
		m.viewport.YPosition = headerHeight
		m.viewport.MouseWheelEnabled = true
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = bodyHeight
	}
	m.linksList.SetSize(msg.Width, bodyHeight)
	if m.mode == modeHelp {
		m.helpText = renderHelp(msg.Width)
	}

	m.size.Set(reveal.Size{Width: float64(msg.Width), Height: float64(bodyHeight)})
	m.syncScroll()
	if m.scrolling {
		m.scrollTarget = min(m.scrollTarget, m.maxOffset())
	}
	return m, nil
}
