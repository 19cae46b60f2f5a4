// Package cmd — scrape command.
// Orchestrates the download half of the pipeline:
// discover course links → fetch → extract → normalize → render → write.
//
// Each course page is stored as one document named after its sigla, so
// the extract command can process the directory afterwards.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/coursepipe/config"
	"github.com/gaurav-prasanna/coursepipe/core"
	"github.com/gaurav-prasanna/coursepipe/core/extract"
	"github.com/gaurav-prasanna/coursepipe/core/fetch"
	"github.com/gaurav-prasanna/coursepipe/core/normalize"
	"github.com/gaurav-prasanna/coursepipe/core/output"
	"github.com/gaurav-prasanna/coursepipe/core/render"
	"github.com/gaurav-prasanna/coursepipe/crawl"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagBaseURL     string
	flagMarkdownOut bool
	flagForce       bool
	flagLimit       int
	flagScrapeDir   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Download catalog course pages as documents",
	Long: `Scrape discovers course links from the curriculum index, downloads each
course page, and stores it as a PDF (or Markdown) document.

Examples:
  coursepipe scrape --output-dir ./programas
  coursepipe scrape --base-url https://mia.uc.cl/malla-curricular --markdown
  coursepipe scrape --limit 5 --force`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Curriculum index to discover course links from (default from config)")
	scrapeCmd.Flags().StringVar(&flagScrapeDir, "output-dir", "programas", "Directory for downloaded documents")
	scrapeCmd.Flags().BoolVar(&flagMarkdownOut, "markdown", false, "Store pages as Markdown instead of PDF")
	scrapeCmd.Flags().BoolVar(&flagForce, "force", false, "Re-download pages that already have a stored document")
	scrapeCmd.Flags().IntVar(&flagLimit, "limit", 0, "Stop after N pages (0 = no limit)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	baseURL := cfg.Catalog.BaseURL
	if flagBaseURL != "" {
		baseURL = flagBaseURL
	}
	if parsed, err := url.Parse(baseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid base URL: %s (must include scheme, e.g. https://example.com)", baseURL)
	}

	// Initialize pipeline components.
	fetcher := fetch.New(fetch.Options{
		Timeout:    cfg.Scraper.Timeout(),
		UserAgent:  cfg.Scraper.UserAgent,
		MaxRetries: cfg.Scraper.MaxRetries,
		Delay:      cfg.Scraper.Delay(),
	})
	extractor := extract.New()
	normalizer := normalize.New()

	var renderer core.Renderer
	if flagMarkdownOut {
		renderer = render.NewMarkdownRenderer()
	} else {
		renderer = render.NewPDFRenderer()
	}

	writer, err := output.New(flagScrapeDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	fmt.Fprintf(os.Stdout, "Discovering course pages from %s...\n", baseURL)
	urls, err := crawl.DiscoverCourses(ctx, baseURL, cfg.Catalog.Domain, fetcher)
	if err != nil {
		return fmt.Errorf("discovering course pages: %w", err)
	}
	if flagLimit > 0 && len(urls) > flagLimit {
		urls = urls[:flagLimit]
	}
	fmt.Fprintf(os.Stdout, "Found %d course pages to process\n", len(urls))

	var errCount, skipCount int
	for i, pageURL := range urls {
		sigla := crawl.SiglaFromURL(pageURL)

		if !flagForce && writer.Exists(pageURL, sigla, renderer.Extension()) {
			skipCount++
			continue
		}

		fmt.Fprintf(os.Stdout, "[%d/%d] Processing %s\n", i+1, len(urls), pageURL)

		data, err := processPage(ctx, pageURL, sigla, fetcher, extractor, normalizer, renderer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		path, err := writer.Write(pageURL, sigla, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
	}

	if skipCount > 0 {
		fmt.Fprintf(os.Stdout, "Skipped %d already-downloaded pages\n", skipCount)
	}
	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d pages failed\n", errCount, len(urls))
	}
	return nil
}

// processPage runs a single course page through the full pipeline.
func processPage(
	ctx context.Context,
	rawURL string,
	sigla string,
	fetcher core.Fetcher,
	extractor core.Extractor,
	normalizer core.Normalizer,
	renderer core.Renderer,
) ([]byte, error) {
	// 1. Fetch
	result, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract the course program content
	content, err := extractor.Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 3. Normalize to Markdown
	markdown, err := normalizer.Normalize(content)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	meta := core.PageMetadata{
		URL:       rawURL,
		Sigla:     sigla,
		Title:     extractTitle(result.HTML),
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// 4. Render to the stored document format
	data, err := renderer.Render(markdown, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// extractTitle pulls the <title> content from raw HTML.
func extractTitle(html string) string {
	start := findTag(html, "<title>")
	if start == -1 {
		return ""
	}
	endTag := findTag(html, "</title>")
	if endTag == -1 {
		return ""
	}
	end := endTag - len("</title>")
	if end <= start {
		return ""
	}
	return html[start:end]
}

// findTag returns the index immediately after the given tag string.
func findTag(html, tag string) int {
	for i := 0; i <= len(html)-len(tag); i++ {
		if html[i:i+len(tag)] == tag {
			return i + len(tag)
		}
	}
	return -1
}
