// Package output handles file naming and writing for scraped course pages.
// Filenames are derived from the course sigla when the page URL carries one,
// otherwise from a short hash of the URL so reruns stay stable.
package output

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores the rendered page under a sigla-based filename.
// When sigla is empty the name falls back to a hash of the URL.
func (w *Writer) Write(rawURL, sigla string, data []byte, ext string) (string, error) {
	name := Filename(rawURL, sigla)
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Exists reports whether output for this page was already written,
// letting the scraper skip pages it has seen on a previous run.
func (w *Writer) Exists(rawURL, sigla string, ext string) bool {
	path := filepath.Join(w.OutputDir, Filename(rawURL, sigla)+ext)
	_, err := os.Stat(path)
	return err == nil
}

// Filename derives a flat filename for a course page.
// Example: sigla EPG4005 → epg4005; no sigla → curso_<hash8>.
func Filename(rawURL, sigla string) string {
	if sigla != "" {
		return sanitize(strings.ToLower(sigla))
	}
	sum := sha1.Sum([]byte(canonical(rawURL)))
	return "curso_" + hex.EncodeToString(sum[:])[:8]
}

// canonical strips the fragment so equivalent URLs hash identically.
func canonical(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	return parsed.String()
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
