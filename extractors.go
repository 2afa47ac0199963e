package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery" // HTML parsing and DOM traversal
	"github.com/zam-dot/portfolio/reveal"
)

//go:embed content/profile.html
var defaultProfileHTML string

var errNoGreeting = errors.New("profile has no hero greeting")

// Link is a social or external link shown in the footer
type Link struct {
	Label string
	URL   string
}

// Profile is everything the page displays about its owner
type Profile struct {
	Name      string
	Greeting  []string // typed out line by line in the hero
	About     []string // one entry per paragraph
	Links     []Link
	ResumeURL string
	Copyright string
}

// FirstName is used to address the owner in the contact form
func (p Profile) FirstName() string {
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return p.Name
}

// loadProfile reads the profile from path, or the embedded default when
// path is empty
func loadProfile(path string) (Profile, error) {
	if path == "" {
		return parseProfile(strings.NewReader(defaultProfileHTML))
	}
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	profile, err := parseProfile(f)
	if err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return profile, nil
}

// parseProfile extracts the profile from an HTML document:
//
//	#hero h1 .line   greeting lines
//	#about p         about paragraphs
//	a.social         footer links
//	a.resume         resume link
//	.copyright       footer note
func parseProfile(r io.Reader) (Profile, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Profile{}, err
	}

	var profile Profile
	profile.Name = collapseSpace(doc.Find("title").First().Text())

	doc.Find("#hero h1 .line").Each(func(i int, s *goquery.Selection) {
		if line := collapseSpace(s.Text()); line != "" {
			profile.Greeting = append(profile.Greeting, line)
		}
	})
	if len(profile.Greeting) == 0 {
		// Fall back to the heading as a single line
		if heading := collapseSpace(doc.Find("#hero h1").First().Text()); heading != "" {
			profile.Greeting = []string{heading}
		}
	}
	if len(profile.Greeting) == 0 {
		return Profile{}, errNoGreeting
	}
	if profile.Name == "" {
		profile.Name = profile.Greeting[len(profile.Greeting)-1]
	}

	doc.Find("#about p").Each(func(i int, s *goquery.Selection) {
		if text := collapseSpace(s.Text()); text != "" {
			profile.About = append(profile.About, text)
		}
	})

	doc.Find("a.social").Each(func(i int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		label := collapseSpace(s.Text())
		if !exists || !shouldIncludeLink(href) {
			return
		}
		if label == "" {
			label = href
		}
		profile.Links = append(profile.Links, Link{Label: label, URL: href})
	})

	if href, exists := doc.Find("a.resume").First().Attr("href"); exists && shouldIncludeLink(href) {
		profile.ResumeURL = href
	}
	profile.Copyright = collapseSpace(doc.Find(".copyright").First().Text())

	return profile, nil
}

// shouldIncludeLink keeps links the system opener can handle
func shouldIncludeLink(href string) bool {
	href = strings.TrimSpace(href)
	return strings.HasPrefix(href, "http://") ||
		strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "mailto:")
}

// collapseSpace joins the words of s with single spaces. No-break spaces
// survive, as they do in the rendered page.
func collapseSpace(s string) string {
	return strings.Join(reveal.Words(s), " ")
}
