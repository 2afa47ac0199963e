package main

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zam-dot/portfolio/contact"
)

const submitTimeout = 15 * time.Second

// submitResultMsg is sent when a contact submission finished, successfully
// or not
type submitResultMsg struct {
	submission contact.Submission
	err        error
}

// flushResultMsg reports a resend of the outbox
type flushResultMsg struct {
	sent int
	err  error
}

// contactForm is the sentence-style form: one text input per contact.Field
type contactForm struct {
	inputs     []textinput.Model // in contact.Fields order
	focus      int
	errors     contact.FieldErrors
	submitting bool
}

// newContactForm creates one input per contact field with the first focused
func newContactForm() contactForm {
	inputs := make([]textinput.Model, len(contact.Fields))
	for i, f := range contact.Fields {
		ti := textinput.New()
		ti.Placeholder = string(f)
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 18
		ti.TextStyle = fieldStyle
		ti.PlaceholderStyle = placeholderStyle
		ti.Blur()
		inputs[i] = ti
	}
	return contactForm{inputs: inputs}
}

// focusField moves focus to input i and starts its cursor blinking
func (f *contactForm) focusField(i int) tea.Cmd {
	if i < 0 || i >= len(f.inputs) {
		return nil
	}
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	return f.inputs[i].Focus()
}

func (f *contactForm) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

func (f *contactForm) next() tea.Cmd {
	return f.focusField((f.focus + 1) % len(f.inputs))
}

func (f *contactForm) prev() tea.Cmd {
	return f.focusField((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *contactForm) onLastField() bool {
	return f.focus == len(f.inputs)-1
}

// update feeds msg to the focused input and clears that field's error once
// the user edits it
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.inputs[f.focus].Value() != before && f.errors != nil {
		delete(f.errors, contact.Fields[f.focus])
	}
	return cmd
}

// submission collects the current input values
func (f *contactForm) submission() contact.Submission {
	var s contact.Submission
	for i, field := range contact.Fields {
		s.Set(field, strings.TrimSpace(f.inputs[i].Value()))
	}
	return s
}

func (f *contactForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.errors = nil
	f.submitting = false
}

// firstInvalid returns the index of the first field with an error
func (f *contactForm) firstInvalid() int {
	for i, field := range contact.Fields {
		if _, ok := f.errors[field]; ok {
			return i
		}
	}
	return -1
}

func (f *contactForm) input(field contact.Field) string {
	for i, candidate := range contact.Fields {
		if candidate == field {
			return f.inputs[i].View()
		}
	}
	return ""
}

func (f *contactForm) errorsFor(fields ...contact.Field) string {
	var msgs []string
	for _, field := range fields {
		if msg, ok := f.errors[field]; ok {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, " · ")
}

// rows renders the form centred at width, one string per terminal row
func (f *contactForm) rows(width int, owner string) []string {
	text := pageStyle.Render
	sentences := []struct {
		segments []string
		fields   []contact.Field
	}{
		{[]string{text("Hello " + owner + ", my name is "), f.input(contact.FieldName)}, []contact.Field{contact.FieldName}},
		{[]string{text("I look forward to chatting with you about")}, nil},
		{[]string{f.input(contact.FieldSubject)}, []contact.Field{contact.FieldSubject}},
		{[]string{text("You can reach me at "), f.input(contact.FieldEmail), text(" or "), f.input(contact.FieldPhone)}, []contact.Field{contact.FieldEmail, contact.FieldPhone}},
	}

	var rows []string
	for _, sentence := range sentences {
		for _, line := range packSegments(sentence.segments, width) {
			rows = append(rows, centerRow(line, width))
		}
		if msg := f.errorsFor(sentence.fields...); msg != "" {
			rows = append(rows, centerRow(fieldErrorStyle.Render(msg), width))
		} else {
			rows = append(rows, centerRow("", width))
		}
	}

	label := "Submit"
	if f.submitting {
		label = "Submitting..."
	}
	rows = append(rows, strings.Split(centerRow(buttonStyle.Render(label), width), "\n")...)
	return rows
}

// packSegments greedily joins styled segments into lines no wider than width
func packSegments(segments []string, width int) []string {
	var lines []string
	line := ""
	for _, seg := range segments {
		if line != "" && lipgloss.Width(line+seg) > width {
			lines = append(lines, line)
			line = seg
			continue
		}
		line += seg
	}
	return append(lines, line)
}

func centerRow(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s,
		lipgloss.WithWhitespaceBackground(color(pageWhite)))
}

// submitContact posts the submission in the background
func submitContact(client *contact.Client, s contact.Submission) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return submitResultMsg{submission: s, err: client.Submit(ctx, s)}
	}
}

// flushOutbox resends queued submissions in the background
func flushOutbox(outbox *contact.Outbox, client *contact.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		sent, err := outbox.Flush(ctx, client)
		return flushResultMsg{sent: sent, err: err}
	}
}
