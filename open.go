package main

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// openedMsg reports the result of handing a URL to the system opener
type openedMsg struct {
	url string
	err error
}

// openCommand builds the platform command that opens url
var openCommand = func(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// openExternally opens url in the background
func openExternally(url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: openCommand(url).Start()}
	}
}
