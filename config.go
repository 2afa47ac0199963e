package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/joho/godotenv/autoload" // PORTFOLIO_* variables may live in .env
)

// Config controls the portfolio. Sizes are in terminal rows and cells.
type Config struct {
	ContentFile string `json:"content_file"`
	ContactURL  string `json:"contact_url"`
	ResumeURL   string `json:"resume_url"`
	OutboxFile  string `json:"outbox_file"`
	LogFile     string `json:"log_file"`

	EnableMouse bool `json:"enable_mouse"`
	MobileWidth int  `json:"mobile_width"`

	HeaderBand   float64 `json:"header_band"`
	BorderBand   float64 `json:"border_band"`
	MaskFraction float64 `json:"mask_fraction"`
	MaskBand     float64 `json:"mask_band"`
	WrapMargin   float64 `json:"wrap_margin"`
	JumpOffset   int     `json:"jump_offset"`

	TypingDelayMs int `json:"typing_delay_ms"`
	CursorBlinkMs int `json:"cursor_blink_ms"`
}

// DefaultConfig returns the settings used when no flag, env var or config
// file says otherwise
func DefaultConfig() Config {
	return Config{
		OutboxFile:    defaultOutboxFile(),
		EnableMouse:   true,
		MobileWidth:   80,
		HeaderBand:    4,
		BorderBand:    1,
		MaskFraction:  0.5,
		MaskBand:      2,
		WrapMargin:    1,
		JumpOffset:    2,
		TypingDelayMs: 100,
		CursorBlinkMs: 500,
	}
}

func defaultOutboxFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "portfolio-outbox.json"
	}
	return filepath.Join(dir, "portfolio", "outbox.json")
}

// applyEnvOverrides replaces fields whose PORTFOLIO_* variable is set.
// PORTFOLIO_MOUSE enables the mouse only when it is "true"; a malformed
// width is ignored.
func applyEnvOverrides(config Config) Config {
	if val := os.Getenv("PORTFOLIO_CONTENT"); val != "" {
		config.ContentFile = val
	}
	if val := os.Getenv("PORTFOLIO_CONTACT_URL"); val != "" {
		config.ContactURL = val
	}
	if val := os.Getenv("PORTFOLIO_RESUME_URL"); val != "" {
		config.ResumeURL = val
	}
	if val := os.Getenv("PORTFOLIO_OUTBOX"); val != "" {
		config.OutboxFile = val
	}
	if val := os.Getenv("PORTFOLIO_LOG"); val != "" {
		config.LogFile = val
	}
	if val := os.Getenv("PORTFOLIO_MOUSE"); val != "" {
		config.EnableMouse = val == "true"
	}
	if val := os.Getenv("PORTFOLIO_MOBILE_WIDTH"); val != "" {
		if width, err := strconv.Atoi(val); err == nil {
			config.MobileWidth = width
		}
	}
	return config
}

// ParseFlags builds the configuration from defaults, an optional JSON file,
// PORTFOLIO_* variables and finally any flags given explicitly.
func ParseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("portfolio", flag.ContinueOnError)

	var configFile string
	var flagged Config
	fs.StringVar(&configFile, "config", "", "Path to config file")
	fs.StringVar(&flagged.ContentFile, "content", "", "HTML file with the profile content")
	fs.StringVar(&flagged.ContactURL, "contact-url", "", "Endpoint receiving contact form submissions")
	fs.StringVar(&flagged.ResumeURL, "resume", "", "Resume URL, overrides the profile")
	fs.StringVar(&flagged.OutboxFile, "outbox", "", "File keeping undelivered submissions")
	fs.StringVar(&flagged.LogFile, "log", "", "Write logs to this file")
	fs.BoolVar(&flagged.EnableMouse, "mouse", true, "Scroll with the mouse wheel")
	fs.IntVar(&flagged.MobileWidth, "mobile-width", 0, "Collapse the header below this many columns")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	config := DefaultConfig()
	if configFile != "" {
		fileConfig, err := loadConfigFromFile(configFile)
		if err != nil {
			return Config{}, err
		}
		config = fileConfig
	}
	config = applyEnvOverrides(config)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "content":
			config.ContentFile = flagged.ContentFile
		case "contact-url":
			config.ContactURL = flagged.ContactURL
		case "resume":
			config.ResumeURL = flagged.ResumeURL
		case "outbox":
			config.OutboxFile = flagged.OutboxFile
		case "log":
			config.LogFile = flagged.LogFile
		case "mouse":
			config.EnableMouse = flagged.EnableMouse
		case "mobile-width":
			config.MobileWidth = flagged.MobileWidth
		}
	})

	return config, nil
}

// loadConfigFromFile starts from the defaults so a partial file only
// overrides the keys it sets.
func loadConfigFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultConfig(), err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}
