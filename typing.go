package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// typeTickMsg reveals the next greeting character
type typeTickMsg struct{}

// cursorBlinkMsg toggles the hero cursor
type cursorBlinkMsg struct{}

func typeTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return typeTickMsg{} })
}

func cursorBlink(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return cursorBlinkMsg{} })
}

func greetingLength(lines []string) int {
	n := 0
	for _, line := range lines {
		n += len([]rune(line))
	}
	return n
}

// typedLines returns the first typed characters of lines, line by line. A
// line is present once its first character has been typed.
func typedLines(lines []string, typed int) []string {
	var out []string
	for _, line := range lines {
		if typed <= 0 {
			break
		}
		runes := []rune(line)
		if typed < len(runes) {
			out = append(out, string(runes[:typed]))
			break
		}
		out = append(out, line)
		typed -= len(runes)
	}
	return out
}

func (m *model) typingDone() bool {
	return m.typed >= greetingLength(m.profile.Greeting)
}

func (m *model) typingDelay() time.Duration {
	return time.Duration(m.config.TypingDelayMs) * time.Millisecond
}

func (m *model) blinkDelay() time.Duration {
	return time.Duration(m.config.CursorBlinkMs) * time.Millisecond
}

// handleTypeTick types one more rune of the greeting and schedules the next
// tick until the whole greeting is shown
func (m *model) handleTypeTick() (tea.Model, tea.Cmd) {
	if m.typingDone() {
		return m, nil
	}
	m.typed++
	m.render()
	if m.typingDone() {
		m.cursorOn = true
		return m, nil
	}
	return m, typeTick(m.typingDelay())
}

// handleCursorBlink keeps the cursor steady while typing and blinks it after
func (m *model) handleCursorBlink() (tea.Model, tea.Cmd) {
	if m.typingDone() {
		m.cursorOn = !m.cursorOn
		m.render()
	}
	return m, cursorBlink(m.blinkDelay())
}
