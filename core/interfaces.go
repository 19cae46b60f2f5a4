// Package core defines the pipeline interfaces for the coursepipe scraper:
// each stage that turns a catalog course page into a stored document is a
// clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// PageMetadata identifies the course page a document was rendered from.
type PageMetadata struct {
	URL       string `json:"url"`
	Sigla     string `json:"sigla"` // course code from the catalog URL, if present
	Title     string `json:"title"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the course content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown (the canonical format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts Markdown (and metadata) into a stored document format.
type Renderer interface {
	Render(markdown string, meta PageMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}
