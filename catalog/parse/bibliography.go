// Bibliography block splitting: a layered cascade of strategies turns a raw
// bibliography section into individual citation entries.
package parse

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/coursepipe/catalog"
)

// markerRe matches explicit enumeration markers at the start of a line:
// "1.", "12)", "a)", "-", "•", "*". Lettered markers require the closing
// parenthesis so an author initial ("A. Gelman") is not mistaken for one.
var markerRe = regexp.MustCompile(`^\s*(?:\d{1,2}[.)]|[a-z]\)|[-•*])\s+`)

// sentenceSplitRe finds a sentence end followed by a capitalized
// author-like token ("...2013. Gelman, A. ..."). The capture marks where
// the next entry begins.
var sentenceSplitRe = regexp.MustCompile(`[.;]\s+([A-ZÁÉÍÓÚÑ][a-záéíóúñ]+,\s)`)

// Bibliography splits a bibliography section into citation entries and
// extracts structured fields from each. Entries keep document order and are
// never re-sorted; an entry whose fields cannot be derived is retained with
// only its raw text.
func (p *Parser) Bibliography(text string) []catalog.BibEntry {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// Splitting strategies, tried in order until one yields a plausible
	// result: enumeration markers, blank-line boundaries, then the
	// sentence-boundary fallback for prose-style lists.
	var raws []string
	for _, split := range []func(string) []string{
		splitEnumerated,
		splitBlankLines,
		splitSentences,
	} {
		if raws = split(text); p.plausible(raws) {
			break
		}
		raws = nil
	}
	if raws == nil {
		// Nothing split cleanly; keep the whole block as one entry so the
		// raw text is never lost.
		raws = []string{text}
	}

	entries := make([]catalog.BibEntry, 0, len(raws))
	for _, raw := range raws {
		raw = normalizeSpace(raw)
		if raw == "" {
			continue
		}
		entries = append(entries, p.Entry(raw))
	}
	return entries
}

// plausible reports whether a split produced at least one entry with no
// entry implausibly long.
func (p *Parser) plausible(raws []string) bool {
	if len(raws) == 0 {
		return false
	}
	for _, raw := range raws {
		raw = normalizeSpace(raw)
		if raw == "" || len(raw) > p.opts.MaxEntryLen {
			return false
		}
	}
	return true
}

// splitEnumerated groups lines into entries at enumeration markers. The
// marker style must be consistent: it succeeds only when the block's first
// non-empty line carries a marker, so stray dashes mid-list don't trigger it.
func splitEnumerated(text string) []string {
	lines := strings.Split(text, "\n")

	first := -1
	for i, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			first = i
			break
		}
	}
	if first < 0 || !markerRe.MatchString(lines[first]) {
		return nil
	}

	var entries []string
	var current []string
	for _, ln := range lines[first:] {
		if markerRe.MatchString(ln) {
			if len(current) > 0 {
				entries = append(entries, strings.Join(current, " "))
			}
			current = []string{markerRe.ReplaceAllString(ln, "")}
			continue
		}
		if strings.TrimSpace(ln) != "" {
			current = append(current, strings.TrimSpace(ln))
		}
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, " "))
	}
	return entries
}

// splitBlankLines separates entries at blank-line boundaries.
var blankLineRe = regexp.MustCompile(`\n\s*\n`)

func splitBlankLines(text string) []string {
	parts := blankLineRe.Split(text, -1)
	if len(parts) < 2 {
		return nil
	}
	var entries []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			entries = append(entries, part)
		}
	}
	return entries
}

// splitSentences is the fallback for unstructured prose-style lists: it cuts
// after a sentence end when the next token looks like an author surname.
func splitSentences(text string) []string {
	flat := normalizeSpace(text)
	locs := sentenceSplitRe.FindAllStringSubmatchIndex(flat, -1)
	if len(locs) == 0 {
		return []string{flat}
	}

	var entries []string
	start := 0
	for _, loc := range locs {
		// loc[2] is where the capitalized author token begins.
		entries = append(entries, flat[start:loc[2]])
		start = loc[2]
	}
	entries = append(entries, flat[start:])
	return entries
}

var spaceRe = regexp.MustCompile(`\s+`)

// normalizeSpace collapses all whitespace runs to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
