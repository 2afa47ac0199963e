package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultProfile(t *testing.T) {
	p, err := loadProfile("")
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}
	if p.Name != "Nishant Salhotra" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.FirstName() != "Nishant" {
		t.Errorf("FirstName = %q", p.FirstName())
	}
	if len(p.Greeting) != 2 || p.Greeting[0] != "Hello! I'm" {
		t.Errorf("Greeting = %q", p.Greeting)
	}
	if len(p.About) != 4 {
		t.Fatalf("got %d about paragraphs, want 4", len(p.About))
	}
	if strings.Contains(p.About[0], "\n") || strings.Contains(p.About[0], "  ") {
		t.Errorf("paragraph whitespace not collapsed: %q", p.About[0])
	}

	wantLabels := []string{"LinkedIn", "Mail", "Twitter", "GitHub", "HackerRank", "Medium"}
	if len(p.Links) != len(wantLabels) {
		t.Fatalf("got %d links, want %d", len(p.Links), len(wantLabels))
	}
	for i, label := range wantLabels {
		if p.Links[i].Label != label {
			t.Errorf("link %d = %q, want %q", i, p.Links[i].Label, label)
		}
	}
	if !strings.HasPrefix(p.Links[1].URL, "mailto:") {
		t.Errorf("Mail URL = %q", p.Links[1].URL)
	}
	if !strings.HasSuffix(p.ResumeURL, ".pdf") {
		t.Errorf("ResumeURL = %q", p.ResumeURL)
	}
	if p.Copyright != "@ 2024 Nishant Salhotra" {
		t.Errorf("Copyright = %q", p.Copyright)
	}
}

func TestParseProfileFallbacks(t *testing.T) {
	html := `<html><body>
		<section id="hero"><h1>Hi, I am   Ada</h1></section>
		<footer>
			<a class="social" href="javascript:alert(1)">Bad</a>
			<a class="social" href="https://example.com/ada"></a>
			<a class="social">No href</a>
		</footer>
	</body></html>`

	p, err := parseProfile(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parseProfile: %v", err)
	}
	if len(p.Greeting) != 1 || p.Greeting[0] != "Hi, I am Ada" {
		t.Errorf("Greeting = %q", p.Greeting)
	}
	if p.Name != "Hi, I am Ada" {
		t.Errorf("Name = %q", p.Name)
	}
	if len(p.Links) != 1 || p.Links[0].Label != "https://example.com/ada" {
		t.Errorf("Links = %+v", p.Links)
	}
	if p.ResumeURL != "" || len(p.About) != 0 {
		t.Errorf("unexpected resume %q or about %q", p.ResumeURL, p.About)
	}
}

func TestParseProfileNeedsGreeting(t *testing.T) {
	_, err := parseProfile(strings.NewReader(`<html><title>Ada</title></html>`))
	if !errors.Is(err, errNoGreeting) {
		t.Fatalf("err = %v, want errNoGreeting", err)
	}
}

func TestLoadProfileFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.html")
	html := `<title>Ada Lovelace</title><div id="hero"><h1><span class="line">Hello</span></h1></div>
		<div id="about"><p>First.</p><p>   </p><p>Second.</p></div>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}
	if p.Name != "Ada Lovelace" || len(p.About) != 2 {
		t.Errorf("got name %q about %q", p.Name, p.About)
	}

	if _, err := loadProfile(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
