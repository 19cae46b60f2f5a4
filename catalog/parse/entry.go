// Citation field extraction: an explicit, ordered list of named rules runs
// over each entry's raw text. Rule order is part of the contract (authors,
// year, title, publisher, URL) and every rule is optional; no rule failure
// aborts the entry.
package parse

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/coursepipe/catalog"
)

// entryState carries shared positions between rules: the title rule starts
// where the accepted author segment ended.
type entryState struct {
	raw       string
	entry     *catalog.BibEntry
	opts      Options
	authorEnd int
}

type entryRule struct {
	name  string
	apply func(*entryState)
}

var entryRules = []entryRule{
	{"authors", extractAuthors},
	{"year", extractYear},
	{"title", extractTitle},
	{"publisher", extractPublisher},
	{"url", extractURL},
}

// Entry extracts structured fields from one citation's raw text. The raw
// text is always retained; re-parsing an entry's own RawText reproduces the
// same fields (the rules hold no hidden state).
func (p *Parser) Entry(raw string) catalog.BibEntry {
	raw = normalizeSpace(raw)
	entry := catalog.BibEntry{RawText: raw}
	st := &entryState{raw: raw, entry: &entry, opts: p.opts}
	for _, rule := range entryRules {
		rule.apply(st)
	}
	return entry
}

// --- authors ---

var (
	initialTokenRe  = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ]\.?$`)
	initialsChunkRe = regexp.MustCompile(`^(?:[A-ZÁÉÍÓÚÑ]\.?\s*)+$`)
	lastCommaInitRe = regexp.MustCompile(`^[\p{Lu}][\p{L}'-]+,\s*(?:[\p{Lu}]\.\s*)*[\p{Lu}]\.?$`)
	authorSepRe     = regexp.MustCompile(`\s+(?:and|y|e)\s+|\s*&\s*|\s*;\s*`)
)

// nameParticles are lowercase surname particles allowed inside a name.
var nameParticles = map[string]bool{
	"de": true, "del": true, "la": true, "las": true, "los": true,
	"van": true, "von": true, "der": true, "da": true, "di": true,
}

// extractAuthors reads a leading run of "Lastname, F." / "Firstname
// Lastname" tokens terminated by the first title-like delimiter. When the
// leading segment is ambiguous (could as well be a title), authors are left
// empty and the segment stays available as candidate title text.
func extractAuthors(st *entryState) {
	seg, end := leadingSegment(st.raw)
	seg = strings.TrimRight(strings.TrimSpace(seg), ",;")
	if seg == "" {
		return
	}

	parts := splitAuthorParts(seg)
	if len(parts) == 0 || len(parts) > 8 {
		return
	}
	for _, part := range parts {
		if !personLike(part) {
			return
		}
	}
	if !acceptAuthors(parts) {
		return
	}

	if len(parts) > 5 {
		parts = parts[:5]
	}
	st.entry.Authors = parts
	st.authorEnd = end
}

// leadingSegment returns the text before the first title-like delimiter:
// a period closing a word of two or more letters, an opening quotation
// mark, or an opening parenthesis (APA year). A period after a bare
// initial ("B.") does not terminate the run. The returned offset is a
// byte index into raw.
func leadingSegment(raw string) (string, int) {
	letters := 0
	for i, r := range raw {
		switch {
		case r == '"' || r == '“' || r == '(':
			return raw[:i], i
		case r == '.':
			if letters >= 2 {
				return raw[:i], i
			}
			letters = 0
		case unicode.IsLetter(r):
			letters++
		default:
			letters = 0
		}
	}
	return raw, len(raw)
}

// splitAuthorParts splits an author segment on ";", "&", "and"/"y", and
// commas, re-attaching initials chunks ("Gelman" + "A." → "Gelman, A.").
func splitAuthorParts(seg string) []string {
	var parts []string
	for _, chunk := range authorSepRe.Split(seg, -1) {
		pieces := strings.Split(chunk, ",")
		for _, piece := range pieces {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if len(parts) > 0 && initialsChunkRe.MatchString(piece) {
				parts[len(parts)-1] += ", " + piece
				continue
			}
			parts = append(parts, piece)
		}
	}
	return parts
}

// personLike reports whether a single part reads as a person name: one to
// five tokens, each an initial, a surname particle, or a capitalized word.
func personLike(part string) bool {
	words := strings.Fields(part)
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	for _, w := range words {
		w = strings.Trim(w, ",")
		if initialTokenRe.MatchString(w) || nameParticles[strings.ToLower(w)] {
			continue
		}
		r := []rune(w)
		if !unicode.IsUpper(r[0]) {
			return false
		}
		for _, c := range r[1:] {
			if !unicode.IsLetter(c) && c != '\'' && c != '-' && c != '.' {
				return false
			}
		}
	}
	return true
}

// acceptAuthors is the ambiguity tie-break: the segment is taken as authors
// only when it shows a real author signal: a "Lastname, Initial" pair, an
// inner initial token, or a multi-name list. A lone capitalized run
// ("Bayesian Data Analysis") stays candidate title text.
func acceptAuthors(parts []string) bool {
	for _, part := range parts {
		if lastCommaInitRe.MatchString(part) {
			return true
		}
		for _, w := range strings.Fields(part) {
			if initialTokenRe.MatchString(strings.Trim(w, ",")) {
				return true
			}
		}
	}
	return len(parts) >= 2
}

// --- year ---

var yearTokenRe = regexp.MustCompile(`\b(\d{4})\b`)

// extractYear takes the first standalone four-digit token within the
// plausible range. When several plausible years occur the first wins: in
// standard citation order the first position anchors closest to the
// publication context.
func extractYear(st *entryState) {
	for _, m := range yearTokenRe.FindAllStringSubmatch(st.raw, -1) {
		y := 0
		for _, c := range m[1] {
			y = y*10 + int(c-'0')
		}
		if y >= st.opts.MinYear && y <= st.opts.MaxYear {
			st.entry.Year = &y
			return
		}
	}
}

// --- title ---

var (
	quotedTitleRe = regexp.MustCompile(`["“]([^"”]{2,})["”]`)
	yearParenRe   = regexp.MustCompile(`^\(\s*\d{4}[a-z]?\s*\)[.,]?\s*`)
)

// extractTitle finds the text between the author segment and the next
// strong delimiter. Quotation-marked titles take precedence over the
// heuristic segment boundaries.
func extractTitle(st *entryState) {
	if m := quotedTitleRe.FindStringSubmatch(st.raw); m != nil {
		st.entry.Title = strings.TrimRight(strings.TrimSpace(m[1]), ".,;")
		return
	}

	if len(st.entry.Authors) > 0 {
		rest := st.raw[st.authorEnd:]
		rest = strings.TrimLeft(rest, " .,;:")
		// Skip an APA-style year parenthesis between authors and title.
		rest = yearParenRe.ReplaceAllString(rest, "")
		seg, _ := leadingSegment(rest)
		seg = strings.TrimRight(strings.TrimSpace(seg), ".,;")
		if len(seg) >= 3 {
			st.entry.Title = seg
		}
		return
	}

	// No authors: the whole leading segment is candidate title text, kept
	// only when it actually reads as a title-cased run.
	seg, _ := leadingSegment(st.raw)
	seg = strings.TrimRight(strings.TrimSpace(seg), ".,;")
	if titleCased(seg) {
		st.entry.Title = seg
	}
}

// titleCased reports whether a multi-word run is predominantly capitalized,
// distinguishing "Bayesian Data Analysis" from plain prose like "See the
// course website for readings".
func titleCased(s string) bool {
	words := strings.Fields(s)
	if len(words) < 2 {
		return false
	}
	significant, capitalized := 0, 0
	for _, w := range words {
		if len([]rune(w)) < 4 {
			continue
		}
		significant++
		if unicode.IsUpper([]rune(w)[0]) {
			capitalized++
		}
	}
	return significant > 0 && capitalized*2 > significant
}

// --- publisher ---

// knownPublishers is the short list of strong publisher tokens observed in
// the catalog's citations.
var knownPublishers = []string{
	"springer", "wiley", "elsevier", "mit press",
	"cambridge university press", "oxford university press",
	"crc press", "taylor & francis", "academic press",
	"pearson", "o'reilly", "ieee", "acm", "sage",
	"mcgraw-hill", "addison-wesley", "prentice hall",
	"fondo de cultura economica",
}

var publisherTailRe = regexp.MustCompile(`[,.]\s*([A-ZÁÉÍÓÚÑ][\p{L}&'\-. ]*(?:Press|Publish(?:ers|ing)|Books|Ltd|Inc|Editores))\b`)
var editorialRe = regexp.MustCompile(`\b(?:Editorial|Ediciones|Ed\.)\s+([A-ZÁÉÍÓÚÑ][\p{L}'\- ]+)`)

// extractPublisher is best-effort: a known publisher name expanded to its
// surrounding delimiters, else a capitalized trailing segment ending in a
// publisher-like token. Frequently absent.
func extractPublisher(st *entryState) {
	lower := strings.ToLower(st.raw)
	for _, pub := range knownPublishers {
		idx := strings.Index(lower, pub)
		if idx < 0 {
			continue
		}
		start, end := idx, idx+len(pub)
		for start > 0 && !strings.ContainsRune(".,;:\n", rune(st.raw[start-1])) {
			start--
		}
		for end < len(st.raw) && !strings.ContainsRune(".,;:\n", rune(st.raw[end])) {
			end++
		}
		st.entry.Publisher = strings.Trim(st.raw[start:end], " .,;")
		return
	}

	if m := publisherTailRe.FindStringSubmatch(st.raw); m != nil {
		st.entry.Publisher = strings.TrimSpace(m[1])
		return
	}
	if m := editorialRe.FindStringSubmatch(st.raw); m != nil {
		st.entry.Publisher = "Editorial " + strings.Trim(m[1], " .,;")
	}
}

// --- url ---

var urlRe = regexp.MustCompile(`https?://[^\s<>"')\]]+`)

// extractURL keeps the last syntactically valid URL in the entry: citations
// that carry a DOI resolver and a mirror link typically place the canonical
// link last.
func extractURL(st *entryState) {
	matches := urlRe.FindAllString(st.raw, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		candidate := strings.TrimRight(matches[i], ".,;:")
		u, err := url.Parse(candidate)
		if err != nil || u.Scheme == "" || u.Host == "" {
			continue
		}
		st.entry.URL = candidate
		return
	}
}
