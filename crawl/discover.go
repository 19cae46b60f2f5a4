// Package crawl provides course-page discovery for the scraper.
// Starting from a curriculum index, it walks the index domain via BFS
// and collects every link into the course catalog, keeping crawling
// logic separate from the fetch/render pipeline.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/coursepipe/core"
)

// maxIndexPages bounds the BFS so a misconfigured index can't trigger
// a runaway crawl.
const maxIndexPages = 100

// DiscoverCourses finds catalog course-page URLs reachable from baseURL.
// It crawls pages on the index domain breadth-first and collects links
// that land on catalogDomain with a recognizable course code. The
// returned URLs are normalized and deduplicated, in discovery order.
func DiscoverCourses(ctx context.Context, baseURL string, catalogDomain string, fetcher core.Fetcher) ([]string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	indexDomain := parsed.Host

	queue := NewQueue()
	queue.Add(NormalizeURL(baseURL))

	found := NewQueue()

	for queue.HasNext() && queue.Visited() < maxIndexPages {
		currentURL := queue.Next()

		result, err := fetcher.Fetch(ctx, currentURL)
		if err != nil {
			continue // Skip failed pages, don't block the crawl.
		}

		links, err := extractLinks(result.HTML, currentURL)
		if err != nil {
			continue
		}

		for _, link := range links {
			if IsStaticAsset(link) {
				continue
			}
			switch {
			case IsCatalogLink(link, catalogDomain):
				found.Add(NormalizeURL(link))
			case IsSameDomain(link, indexDomain):
				queue.Add(NormalizeURL(link))
			}
		}
	}

	if len(found.All()) == 0 {
		return nil, fmt.Errorf("no course links found under %s", baseURL)
	}
	return found.All(), nil
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, _ := url.Parse(baseURL)
	var links []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(href, base)
		if resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	// Skip mailto, javascript, etc.
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	// Strip fragments.
	resolved.Fragment = ""
	return resolved.String()
}
