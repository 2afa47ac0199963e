package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/zam-dot/portfolio/reveal"
)

func TestReadParagraphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "about.txt")
	text := "\n\nFirst paragraph\n  continues here.\n\n\n   \nSecond one.\n\nThird\nand last"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readParagraphs(path)
	if err != nil {
		t.Fatalf("readParagraphs: %v", err)
	}
	want := []string{"First paragraph continues here.", "Second one.", "Third and last"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadParagraphsMissingFile(t *testing.T) {
	if _, err := readParagraphs(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestPrintHeader(t *testing.T) {
	theme := reveal.DefaultHeaderTheme()

	var buf bytes.Buffer
	printHeader(&buf, reveal.HeaderStyleAt(0, 800, theme, reveal.DefaultBands()))
	out := buf.String()
	for _, label := range []string{"background", "text", "button text", "button background", "underline y"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing %q in:\n%s", label, out)
		}
	}
	if !strings.Contains(out, theme.Dark.Background.String()) {
		t.Errorf("top of page should print the dark background:\n%s", out)
	}
	if !strings.Contains(out, "(drawn: false)") {
		t.Errorf("border should not be drawn over the hero:\n%s", out)
	}

	buf.Reset()
	printHeader(&buf, reveal.HeaderStyleAt(2000, 800, theme, reveal.DefaultBands()))
	if !strings.Contains(buf.String(), "(drawn: true)") {
		t.Errorf("border should be drawn past the hero:\n%s", buf.String())
	}
}
