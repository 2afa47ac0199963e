package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config, err := ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal("Error:", err)
	}

	// Logs would corrupt the alternate screen, so they go to a file or nowhere
	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "portfolio")
		if err != nil {
			log.Fatal("Error opening log file:", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	profile, err := loadProfile(config.ContentFile)
	if err != nil {
		log.Printf("Error loading profile, using the built-in one: %v", err)
		if profile, err = loadProfile(""); err != nil {
			log.Fatal("Error:", err)
		}
	}
	if config.ResumeURL != "" {
		profile.ResumeURL = config.ResumeURL
	}

	if config.OutboxFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutboxFile), 0o755); err != nil {
			log.Printf("Error creating outbox directory: %v", err)
		}
	}

	m, err := newModel(config, profile)
	if err != nil {
		log.Fatal("Error:", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if config.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		log.Fatal("Error running TUI:", err)
	}
}
