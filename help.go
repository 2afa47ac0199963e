package main

import (
	"log"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Keys

| Key | Action |
|-----|--------|
| ↑ ↓ pgup pgdn, mouse wheel | scroll the page |
| home / end | top / bottom |
| a | jump to *About me* |
| c | jump to *Get in touch* and fill in the form |
| r | open the resume |
| l | pick a social link to open |
| m | open the menu |
| f | resend queued messages |
| ? | toggle this help |
| q, ctrl+c | quit |

## Contact form

- **tab / shift+tab** move between fields
- **enter** on the last field, or **ctrl+s**, sends the message
- **esc** leaves the form

Messages that cannot be delivered are kept and can be resent with **f**.
`

// renderHelp renders the help screen with glamour, falling back to the raw
// markdown if rendering fails
func renderHelp(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		log.Printf("Error creating help renderer: %v", err)
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		log.Printf("Error rendering help: %v", err)
		return helpMarkdown
	}
	return out
}
