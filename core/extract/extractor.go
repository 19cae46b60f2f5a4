// Package extract implements the Extractor interface.
// It isolates the course program from a full catalog page by:
//  1. Finding the best content container (the catalog's program block,
//     <main>, <article>, or <body>)
//  2. Removing noise elements (nav, footer, scripts, images, etc.)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
// These contribute no meaningful content to a course page.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".breadcrumb",
}

// contentSelectors are tried in priority order when locating the course
// program block. The catalog wraps it in #programa; the generic containers
// cover layout changes.
var contentSelectors = []string{
	"#programa", ".programa", ".ficha-curso",
	"main", "article", "body",
}

// HTMLExtractor strips noise from HTML and returns the course content
// fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes raw HTML and returns a cleaned HTML fragment containing
// only the course program content.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Remove noise elements first (operates on the whole document).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, sel := range contentSelectors {
		found := doc.Find(sel)
		if found.Length() > 0 {
			content = found.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return result, nil
}
