package main

import (
	"os"
	"path/filepath"
	"testing"
)

func clearPortfolioEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORTFOLIO_CONTENT", "PORTFOLIO_CONTACT_URL", "PORTFOLIO_RESUME_URL",
		"PORTFOLIO_OUTBOX", "PORTFOLIO_LOG", "PORTFOLIO_MOUSE", "PORTFOLIO_MOBILE_WIDTH",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearPortfolioEnv(t)

	config, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	want := DefaultConfig()
	if config != want {
		t.Errorf("got %+v\nwant %+v", config, want)
	}
	if config.TypingDelayMs != 100 || config.CursorBlinkMs != 500 {
		t.Errorf("typing %d blink %d", config.TypingDelayMs, config.CursorBlinkMs)
	}
}

func TestParseFlagsPrecedence(t *testing.T) {
	clearPortfolioEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	file := `{"contact_url": "http://file/contact", "resume_url": "http://file/resume", "mobile_width": 60, "header_band": 6}`
	if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_RESUME_URL", "http://env/resume")
	t.Setenv("PORTFOLIO_MOUSE", "false")

	config, err := ParseFlags([]string{"-config", path, "-mobile-width", "100"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	if config.ContactURL != "http://file/contact" {
		t.Errorf("ContactURL = %q, want the file value", config.ContactURL)
	}
	if config.ResumeURL != "http://env/resume" {
		t.Errorf("ResumeURL = %q, env should beat the file", config.ResumeURL)
	}
	if config.MobileWidth != 100 {
		t.Errorf("MobileWidth = %d, flag should beat the file", config.MobileWidth)
	}
	if config.EnableMouse {
		t.Error("EnableMouse should come from the environment")
	}
	if config.HeaderBand != 6 {
		t.Errorf("HeaderBand = %v", config.HeaderBand)
	}
	// Keys missing from the file keep their defaults
	if config.MaskFraction != 0.5 || config.JumpOffset != 2 {
		t.Errorf("defaults lost: %+v", config)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	clearPortfolioEnv(t)

	if _, err := ParseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.json")}); err == nil {
		t.Error("expected an error for a missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFlags([]string{"-config", path}); err == nil {
		t.Error("expected an error for malformed JSON")
	}

	if _, err := ParseFlags([]string{"-no-such-flag"}); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}
