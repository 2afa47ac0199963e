// Command layout-probe prints how text wraps and how the header looks at a
// given scroll offset, measured in pixels with a real font. It is the
// browser-sized counterpart of the terminal page and uses the same reveal
// package.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zam-dot/portfolio/reveal"
)

func main() {
	width := flag.Float64("width", 600, "Container width in px")
	fontSize := flag.Float64("font-size", 18, "Font size in px")
	hero := flag.Float64("hero", 800, "Hero height in px")
	scroll := flag.Float64("scroll", 0, "Scroll offset in px")
	viewport := flag.Float64("viewport", 1000, "Viewport height in px")
	lineHeight := flag.Float64("line-height", 28, "Line height in px")
	textFile := flag.String("text", "", "Paragraphs to wrap, blank-line separated (default stdin)")
	flag.Parse()

	measure, err := reveal.DefaultFontMeasurer(*fontSize)
	if err != nil {
		log.Fatal("Error:", err)
	}

	paragraphs, err := readParagraphs(*textFile)
	if err != nil {
		log.Fatal("Error:", err)
	}

	style := reveal.HeaderStyleAt(*scroll, *hero, reveal.DefaultHeaderTheme(), reveal.DefaultBands())
	printHeader(os.Stdout, style)

	fmt.Println()
	top := *hero
	for _, paragraph := range paragraphs {
		for _, line := range reveal.Wrap(paragraph, *width, measure) {
			hidden := reveal.MaskAt(*scroll, top, *viewport, reveal.DefaultMaskConfig())
			fmt.Printf("%6.0fpx  %5.1fpx  mask %3.0f%%  %s\n", top, measure(line), hidden*100, line)
			top += *lineHeight
		}
		top += *lineHeight
	}
}

// readParagraphs reads path, or stdin when path is empty, and joins each
// blank-line separated block into one paragraph
func readParagraphs(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var paragraphs []string
	var current []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}
	return paragraphs, scanner.Err()
}

// printHeader lists the header colours as swatches followed by the underline
// and border geometry
func printHeader(w io.Writer, s reveal.HeaderStyle) {
	swatch := func(name string, c reveal.RGBA) {
		block := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
		fmt.Fprintf(w, "%-18s %s %s\n", name, block, c)
	}
	swatch("background", s.Background)
	swatch("text", s.Text)
	swatch("button text", s.ButtonText)
	swatch("button background", s.ButtonBackground)
	fmt.Fprintf(w, "%-18s %.2fpx\n", "underline y", s.UnderlineY)
	fmt.Fprintf(w, "%-18s %.2fpx (drawn: %t)\n", "border width", s.BorderWidth, s.HasBorder())
}
