// Package segment splits raw course-document text into labeled sections.
// Section boundaries are detected by matching a prioritized list of heading
// patterns per label, case-insensitive and accent-insensitive. Splitting is
// a pure function over the input text.
package segment

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Label identifies a section of a course document.
type Label string

const (
	LabelMetadata          Label = "metadata"
	LabelDescripcion       Label = "descripcion"
	LabelResultados        Label = "resultados"
	LabelContenidos        Label = "contenidos"
	LabelMetodologia       Label = "metodologia"
	LabelEvaluacion        Label = "evaluacion"
	LabelBibliografia      Label = "bibliografia"
	LabelBibMinima         Label = "bibliografia_minima"
	LabelBibComplementaria Label = "bibliografia_complementaria"
)

// Sections maps a label to the text belonging to that section.
// A label absent from the map means the section was not found; missing
// sections are reported absent, never guessed.
type Sections map[Label]string

// Has reports whether the section was found.
func (s Sections) Has(label Label) bool {
	_, ok := s[label]
	return ok
}

// headingRule binds a label to one heading pattern. Rules are tried in order
// against each folded line; the first match wins.
type headingRule struct {
	label Label
	re    *regexp.Regexp
}

// Heading patterns are matched against folded text (lowercase, accents
// stripped), so they are written without diacritics. The optional roman
// numeral prefix covers the catalog's numbered section style
// ("I. DESCRIPCIÓN DEL CURSO"). Some catalogs fold the bibliography
// qualifier into a top-level heading ("VI. BIBLIOGRAFÍA MÍNIMA"); the
// qualified forms require the numeral prefix so that plain subheadings
// inside a bibliography block keep being handled by splitBibliography.
var headingRules = []headingRule{
	{LabelDescripcion, regexp.MustCompile(`^(?:[ivx]+\s*\.\s*)?descripcion(?:\s+del\s+curso)?\s*:?\s*$`)},
	{LabelResultados, regexp.MustCompile(`^(?:[ivx]+\s*\.\s*)?resultados\s+de(?:l)?\s+aprendizaje\s*:?\s*$`)},
	{LabelContenidos, regexp.MustCompile(`^(?:[ivx]+\s*\.\s*)?contenidos?\s*:?\s*$`)},
	{LabelMetodologia, regexp.MustCompile(`^(?:[ivx]+\s*\.\s*)?metodologias?(?:\s+para\s+el\s+aprendizaje)?\s*:?\s*$`)},
	{LabelEvaluacion, regexp.MustCompile(`^(?:[ivx]+\s*\.\s*)?evaluacion(?:\s+de\s+aprendizajes)?\s*:?\s*$`)},
	{LabelBibMinima, regexp.MustCompile(`^[ivx]+\s*\.\s*bibliografia\s+minima\s*:?\s*$`)},
	{LabelBibComplementaria, regexp.MustCompile(`^[ivx]+\s*\.\s*bibliografia\s+complementaria\s*:?\s*$`)},
	{LabelBibliografia, regexp.MustCompile(`^(?:[ivx]+\s*\.\s*)?bibliografia\s*:?\s*$`)},
}

// Bibliography subheadings split the bibliography block into its two lists.
var (
	minimaRe         = regexp.MustCompile(`^(?:bibliografia\s+)?minima\s*:?\s*$`)
	complementariaRe = regexp.MustCompile(`^(?:bibliografia\s+)?complementaria\s*:?\s*$`)
)

// footerRe matches institutional boilerplate that ends the last section.
var footerRe = regexp.MustCompile(`^(?:pontificia\s+universidad|facultad\s+de\b|escuela\s+de\b|instituto\s+de\b)`)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips combining accents, so "BIBLIOGRAFÍA" and
// "Bibliografia" compare equal.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// boundary marks the heading line that opens a section.
type boundary struct {
	label Label
	line  int
}

// Split divides raw document text into labeled sections. The metadata block
// runs from the top of the document to the first recognized heading; every
// other section runs from its heading to the next recognized heading or to
// the end of the document. Boundaries never overlap.
func Split(text string) Sections {
	lines := strings.Split(text, "\n")
	folded := make([]string, len(lines))
	for i, ln := range lines {
		folded[i] = strings.TrimSpace(Fold(ln))
	}

	var bounds []boundary
	for i, ln := range folded {
		if ln == "" {
			continue
		}
		for _, rule := range headingRules {
			if rule.re.MatchString(ln) {
				bounds = append(bounds, boundary{rule.label, i})
				break
			}
		}
	}

	sections := make(Sections)

	// Metadata: document top up to the first recognized heading, or the
	// whole document when no heading was found.
	metaEnd := len(lines)
	if len(bounds) > 0 {
		metaEnd = bounds[0].line
	}
	if meta := joinLines(lines[:metaEnd]); meta != "" {
		sections[LabelMetadata] = meta
	}

	for i, b := range bounds {
		end := len(lines)
		if i+1 < len(bounds) {
			end = bounds[i+1].line
		} else {
			// Last section: stop at institutional footer text if present.
			for j := b.line + 1; j < end; j++ {
				if footerRe.MatchString(folded[j]) {
					end = j
					break
				}
			}
		}
		body := joinLines(lines[b.line+1 : end])
		if body == "" {
			continue
		}
		// First heading occurrence wins; later duplicates are ignored.
		if _, seen := sections[b.label]; !seen {
			sections[b.label] = body
		}
	}

	if bib, ok := sections[LabelBibliografia]; ok {
		splitBibliography(bib, sections)
	}

	return sections
}

// splitBibliography divides the bibliography block into its minimal and
// complementary lists. When no subheadings are present the whole block is
// treated as the minimal list.
func splitBibliography(bib string, sections Sections) {
	lines := strings.Split(bib, "\n")
	folded := make([]string, len(lines))
	for i, ln := range lines {
		folded[i] = strings.TrimSpace(Fold(ln))
	}

	minStart := -1
	for i, f := range folded {
		if minimaRe.MatchString(f) {
			minStart = i
			break
		}
	}

	// The complementary subheading only counts after the minimal one, so
	// a reversed ordering degrades to a single minimal list instead of
	// slicing out of order.
	compStart := -1
	for i := minStart + 1; i < len(folded); i++ {
		if complementariaRe.MatchString(folded[i]) {
			compStart = i
			break
		}
	}

	var minima, comp string
	switch {
	case minStart < 0 && compStart < 0:
		minima = bib
	case compStart < 0:
		minima = joinLines(lines[minStart+1:])
	case minStart < 0:
		minima = joinLines(lines[:compStart])
		comp = joinLines(lines[compStart+1:])
	default:
		minima = joinLines(lines[minStart+1 : compStart])
		comp = joinLines(lines[compStart+1:])
	}

	if minima != "" && !sections.Has(LabelBibMinima) {
		sections[LabelBibMinima] = minima
	}
	if comp != "" && !sections.Has(LabelBibComplementaria) {
		sections[LabelBibComplementaria] = comp
	}
}

func joinLines(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
