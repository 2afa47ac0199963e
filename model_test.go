package main

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/zam-dot/portfolio/contact"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	config := DefaultConfig()
	config.OutboxFile = filepath.Join(t.TempDir(), "outbox.json")

	profile, err := loadProfile("")
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}
	m, err := newModel(config, profile)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	return m
}

func resized(t *testing.T, width, height int) *model {
	t.Helper()
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizeLaysOutPage(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if !m.ready {
		t.Fatal("model should be ready after the first size")
	}
	if m.viewport.Height != 40-headerHeight-statusHeight {
		t.Errorf("viewport height = %d", m.viewport.Height)
	}
	l := m.layout
	if l.heroHeight != m.viewport.Height || l.aboutTop != l.heroHeight {
		t.Errorf("hero %d about %d", l.heroHeight, l.aboutTop)
	}
	if !(l.aboutTop < l.contactTop && l.contactTop < l.footerTop && l.footerTop < len(l.rows)) {
		t.Errorf("sections out of order: %+v", l)
	}
	if got := m.viewport.TotalLineCount(); got != len(l.rows) {
		t.Errorf("viewport has %d lines, layout %d rows", got, len(l.rows))
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "ABOUT ME") || !strings.Contains(view, "CONTACT ME") {
		t.Errorf("header links missing from view:\n%s", view)
	}
}

func TestAboutLinesFitContainer(t *testing.T) {
	m := resized(t, 100, 40)
	limit := 100 - 2*4 - int(m.config.WrapMargin)

	var lines int
	for _, row := range m.layout.rows {
		if row.reveal == "" {
			continue
		}
		lines++
		if w := runewidth.StringWidth(row.reveal); w > limit && strings.Contains(row.reveal, " ") {
			t.Errorf("line %q is %d cells, limit %d", row.reveal, w, limit)
		}
	}
	if lines < len(m.profile.About) {
		t.Errorf("got %d about lines for %d paragraphs", lines, len(m.profile.About))
	}
}

func TestScrollRethemesHeader(t *testing.T) {
	m := resized(t, 100, 40)
	if m.header.Background != m.theme.Dark.Background || m.header.HasBorder() {
		t.Fatalf("header at top = %+v, want dark without border", m.header)
	}

	m.Update(runeKey("G"))
	if m.viewport.YOffset < m.layout.heroHeight {
		t.Fatalf("offset %d did not pass the hero (%d rows)", m.viewport.YOffset, m.layout.heroHeight)
	}
	if m.header.Background != m.theme.Light.Background || m.header.Text != m.theme.Light.Text {
		t.Errorf("header past hero = %+v, want light", m.header)
	}
	if !m.header.HasBorder() || m.header.UnderlineY != 0 {
		t.Errorf("border %v underline %v", m.header.BorderWidth, m.header.UnderlineY)
	}

	m.Update(runeKey("g"))
	if m.viewport.YOffset != 0 || m.header.Background != m.theme.Dark.Background {
		t.Errorf("back at top: offset %d header %+v", m.viewport.YOffset, m.header)
	}
}

func TestSmoothScrollReachesSection(t *testing.T) {
	m := resized(t, 100, 40)
	want := min(m.layout.aboutTop-m.config.JumpOffset, m.maxOffset())

	cmd := m.jumpToSection(sectionAbout)
	for i := 0; cmd != nil; i++ {
		if i > 200 {
			t.Fatal("smooth scroll never settled")
		}
		_, cmd = m.handleScrollTick()
	}
	if m.viewport.YOffset != want {
		t.Errorf("offset = %d, want %d", m.viewport.YOffset, want)
	}
	if m.scroll.Get() != float64(want) {
		t.Errorf("scroll signal = %v, want %d", m.scroll.Get(), want)
	}
}

func TestMaskedLineKeepsWidth(t *testing.T) {
	for _, hidden := range []float64{0, 0.25, 0.5, 1} {
		got := ansi.Strip(maskedLine("hello world", 2, 20, hidden))
		if got != "  hello world       " {
			t.Errorf("hidden %v: %q", hidden, got)
		}
	}
}

func TestAboutRowRevealsWhileScrolling(t *testing.T) {
	m := resized(t, 100, 40)

	row := -1
	for i, r := range m.layout.rows {
		if r.reveal != "" {
			row = i
			break
		}
	}
	if row < 0 {
		t.Fatal("layout has no about lines")
	}
	line := m.layout.rows[row].reveal
	start, end := m.maskConfig().Thresholds(float64(m.viewport.Height))
	top := float64(row)

	cases := []struct {
		offset      int
		wantVisible string
		wantRest    string
	}{
		{int(math.Floor(top - start)), "", line},
		{int(math.Ceil(top - end)), line, ""},
	}
	for _, c := range cases {
		if c.offset > m.maxOffset() {
			t.Fatalf("offset %d is past the end of the page (%d)", c.offset, m.maxOffset())
		}
		m.viewport.SetYOffset(c.offset)
		m.syncScroll()

		visible, rest := maskSplit(line, m.rowHidden(row))
		if visible != c.wantVisible || rest != c.wantRest {
			t.Errorf("offset %d: visible %q rest %q", c.offset, visible, rest)
		}
	}

	// Halfway through the band only part of the line shows
	m.viewport.SetYOffset(int(math.Round(top - (start+end)/2)))
	m.syncScroll()
	if hidden := m.rowHidden(row); hidden <= 0 || hidden >= 1 {
		t.Errorf("mid band hidden = %v", hidden)
	}
}

func TestFlushRunsOnce(t *testing.T) {
	m := resized(t, 100, 40)
	if err := m.outbox.Add(contact.Submission{Name: "Ada", Email: "ada@example.com"}, errors.New("offline")); err != nil {
		t.Fatal(err)
	}

	_, first := m.Update(runeKey("f"))
	if first == nil || !m.flushing {
		t.Fatalf("first f: cmd %v flushing %v", first != nil, m.flushing)
	}
	if _, second := m.Update(runeKey("f")); second != nil {
		t.Error("a second f while resending must not start another flush")
	}

	m.Update(flushResultMsg{sent: 1})
	if m.flushing {
		t.Error("the result should clear the in-flight flag")
	}
	// The command never ran, so the entry is still queued
	if _, cmd := m.Update(runeKey("f")); cmd == nil {
		t.Error("f should resend again once the first flush finished")
	}
}

func TestContactFormFlow(t *testing.T) {
	m := resized(t, 100, 40)

	m.Update(runeKey("c"))
	if m.mode != modeForm {
		t.Fatalf("mode = %s, want form", m.mode)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(m.form.errors) != len(contact.Fields) {
		t.Fatalf("errors = %v", m.form.errors)
	}
	if m.form.submitting {
		t.Fatal("invalid form must not submit")
	}

	values := []string{"Ada", "a new project", "ada@example.com", "5551234567"}
	for i, v := range values {
		m.form.inputs[i].SetValue(v)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.form.submitting || cmd == nil {
		t.Fatal("valid form should start submitting")
	}
	if !strings.Contains(ansi.Strip(strings.Join(rowTexts(m), "\n")), "Submitting...") {
		t.Error("button should read Submitting...")
	}

	// No endpoint is configured, so the submission lands in the outbox
	msg := cmd()
	result, ok := msg.(submitResultMsg)
	if !ok || !errors.Is(result.err, contact.ErrEndpointMissing) {
		t.Fatalf("result = %#v", msg)
	}
	m.Update(msg)
	if m.outbox.Len() != 1 {
		t.Errorf("outbox has %d entries", m.outbox.Len())
	}
	if m.status != "Failed to submit form. Please try again later." || !m.statusErr {
		t.Errorf("status = %q (err %v)", m.status, m.statusErr)
	}
	if m.form.submitting {
		t.Error("submitting should be cleared")
	}

	m.Update(submitResultMsg{submission: m.form.submission()})
	if m.mode != modeView || m.form.submission() != (contact.Submission{}) {
		t.Errorf("after success: mode %s form %+v", m.mode, m.form.submission())
	}
}

func TestRemoteFieldErrorsShowOnForm(t *testing.T) {
	m := resized(t, 100, 40)
	m.Update(runeKey("c"))

	m.Update(submitResultMsg{err: contact.FieldErrors{contact.FieldEmail: "Please enter a valid email"}})
	if m.form.errors[contact.FieldEmail] != "Please enter a valid email" {
		t.Errorf("errors = %v", m.form.errors)
	}
	if m.outbox.Len() != 0 {
		t.Error("validation failures should not be queued")
	}
}

func TestMobileMenu(t *testing.T) {
	m := resized(t, 60, 30)
	if !m.isMobile() {
		t.Fatal("60 columns should use the mobile header")
	}
	if !strings.Contains(ansi.Strip(m.renderHeader()), "MENU") {
		t.Error("mobile header should show the menu toggle")
	}

	m.Update(runeKey("m"))
	if m.mode != modeMenu {
		t.Fatalf("mode = %s", m.mode)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeForm {
		t.Errorf("CONTACT ME should focus the form, mode = %s", m.mode)
	}
}

func TestLinksAndHelpModes(t *testing.T) {
	m := resized(t, 100, 40)

	m.Update(runeKey("l"))
	if m.mode != modeLinks || len(m.linksList.Items()) != len(m.profile.Links) {
		t.Fatalf("mode %s with %d items", m.mode, len(m.linksList.Items()))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeView {
		t.Fatalf("esc should leave the links list, mode = %s", m.mode)
	}

	m.Update(runeKey("?"))
	if m.mode != modeHelp || !strings.Contains(m.helpText, "Keys") {
		t.Fatalf("mode %s help %q", m.mode, m.helpText)
	}
	m.Update(runeKey("q"))
	if m.mode != modeView {
		t.Errorf("q should close help, mode = %s", m.mode)
	}
}

func rowTexts(m *model) []string {
	texts := make([]string, len(m.layout.rows))
	for i, row := range m.layout.rows {
		texts[i] = row.text
	}
	return texts
}
