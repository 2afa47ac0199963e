package main

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// LIST ITEM IMPLEMENTATION FOR LINKS
// ============================================================================

// linkItem wraps a Link to make it compatible with Bubble Tea's list component
// This is the adapter pattern - the footer's social links become list items
type linkItem struct {
	link Link
}

// FilterValue is searched when the user filters the list
func (i linkItem) FilterValue() string {
	return i.link.Label + " " + i.link.URL
}

// Title is the main text of the entry, the link's label or its URL
func (i linkItem) Title() string {
	if i.link.Label == "" {
		return i.link.URL
	}
	return i.link.Label
}

// Description is the secondary (greyed out) text, the URL truncated to fit
func (i linkItem) Description() string {
	url := i.link.URL
	if len(url) > 60 {
		url = url[:57] + "..."
	}
	return url
}

// newLinksList builds the filterable picker shown by the l key
func newLinksList(links []Link) list.Model {
	items := make([]list.Item, len(links))
	for i, link := range links {
		items[i] = linkItem{link: link}
	}

	linksList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	linksList.Title = "Find me on"
	linksList.SetShowStatusBar(false)
	linksList.SetShowHelp(false)
	linksList.SetFilteringEnabled(true)
	return linksList
}

// ============================================================================
// BUBBLE TEA LIFECYCLE METHODS
// ============================================================================

// Init starts typing the greeting and blinking the cursor
func (m *model) Init() tea.Cmd {
	return tea.Batch(
		typeTick(m.typingDelay()),
		cursorBlink(m.blinkDelay()),
	)
}

// Update routes each message to its handler, then lets the active component
// see anything left over
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case typeTickMsg:
		return m.handleTypeTick()
	case cursorBlinkMsg:
		return m.handleCursorBlink()
	case scrollTickMsg:
		return m.handleScrollTick()
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case flushResultMsg:
		return m.handleFlushResult(msg)
	case openedMsg:
		return m.handleOpened(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		// The wheel scrolls the page only when nothing is layered over it
		if m.mode != modeView {
			return m, nil
		}
		m.stopScrolling()
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncScroll()
		return m, cmd
	}

	// Whatever is left (cursor blinks, list filtering ticks) goes to the
	// component that owns the current mode
	var cmd tea.Cmd
	switch m.mode {
	case modeForm:
		cmd = m.form.update(msg)
		m.render()
	case modeLinks:
		m.linksList, cmd = m.linksList.Update(msg)
	}
	return m, cmd
}

// ============================================================================
// RENDERING THE USER INTERFACE
// ============================================================================

// View stacks the header, the body for the current mode and the status line
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var body string
	switch m.mode {
	case modeLinks:
		body = lipgloss.NewStyle().Height(m.viewport.Height).MaxHeight(m.viewport.Height).Render(m.linksList.View())
	case modeHelp:
		body = lipgloss.NewStyle().Height(m.viewport.Height).MaxHeight(m.viewport.Height).Render(m.helpText)
	case modeMenu:
		body = m.renderMenu()
	default:
		body = m.pageView()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatus(),
	)
}
