// Package crawl — URL filtering rules.
// Provides helpers to filter, normalize, and classify URLs during discovery.
package crawl

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// staticExtensions are file extensions to skip during crawling.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// siglaRe matches a course code such as EPG4005 or IIC2233.
var siglaRe = regexp.MustCompile(`^[A-Za-z]{2,4}[0-9]{3,4}$`)

// IsSameDomain checks if the given URL belongs to the specified domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// IsCatalogLink reports whether a URL points at a course page on the
// catalog domain. Any page on that host with a recognizable sigla in
// its query string or path qualifies.
func IsCatalogLink(rawURL string, catalogDomain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Host != catalogDomain {
		return false
	}
	return SiglaFromURL(rawURL) != ""
}

// SiglaFromURL extracts the course code from a catalog URL.
// It checks the sigla query parameter first, then the last path segment.
// Returns the uppercased sigla, or "" when none is found.
func SiglaFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	for _, key := range []string{"sigla", "cxml_sigla", "codigo"} {
		if v := parsed.Query().Get(key); siglaRe.MatchString(v) {
			return strings.ToUpper(v)
		}
	}

	last := path.Base(parsed.Path)
	if siglaRe.MatchString(last) {
		return strings.ToUpper(last)
	}
	return ""
}

// IsStaticAsset checks if a URL points to a static asset (image, CSS, JS, etc.).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	// Remove fragment.
	parsed.Fragment = ""

	// Remove trailing slash (but keep root "/").
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
