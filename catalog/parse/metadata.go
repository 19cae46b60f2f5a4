// Metadata attribute extraction: label-anchored patterns over the header
// block of a course document.
package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/coursepipe/catalog"
)

// metadataRule binds one attribute to its label-anchored pattern.
// Rules run in order and independently; each is optional.
type metadataRule struct {
	name  string
	re    *regexp.Regexp
	apply func(m *catalog.Metadata, value string, p *Parser)
}

// Label tokens are matched with explicit accent alternatives because the
// capture must preserve the original value text. The code pattern is the
// catalog's fixed shape: 2-4 letters followed by 3-4 digits.
var metadataRules = []metadataRule{
	{"codigo", regexp.MustCompile(`(?i)\b(?:SIGLA|C[OÓ]DIGO)\s*:\s*([A-Za-z]{2,4}[0-9]{3,4})\b`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.Codigo = strings.ToUpper(v) }},
	{"nombre", regexp.MustCompile(`(?im)\b(?:CURSO|NOMBRE)\s*:\s*([^\n]+)`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.Nombre = v }},
	{"traduccion", regexp.MustCompile(`(?im)\bTRADUCCI[OÓ]N\s*:\s*([^\n]+)`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.Traduccion = v }},
	{"creditos", regexp.MustCompile(`(?im)\bCR[EÉ]DITOS?\s*:\s*([0-9]+(?:[.,][0-9]+)?)`),
		func(m *catalog.Metadata, v string, p *Parser) {
			m.Creditos = p.parseCount(v, p.opts.MinCredits, p.opts.MaxCredits)
		}},
	{"modulos", regexp.MustCompile(`(?im)\bM[OÓ]DULOS?\s*:\s*([0-9]+(?:[.,][0-9]+)?)`),
		func(m *catalog.Metadata, v string, p *Parser) {
			m.Modulos = p.parseCount(v, p.opts.MinCredits, p.opts.MaxCredits)
		}},
	{"caracter", regexp.MustCompile(`(?im)\bCAR[AÁ]CTER\s*:\s*([^\n]+)`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.Caracter = v }},
	{"tipo", regexp.MustCompile(`(?im)\bTIPO\s*:\s*([^\n]+)`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.Tipo = splitList(v) }},
	{"calificacion", regexp.MustCompile(`(?im)\bCALIFICACI[OÓ]N\s*:\s*([^\n]+)`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.Calificacion = v }},
	{"disciplina", regexp.MustCompile(`(?im)\bDISCIPLINA\s*:\s*([^\n]+)`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.Disciplina = v }},
	{"palabras_clave", regexp.MustCompile(`(?im)\bPALABRAS\s+CLAVES?\s*:\s*([^\n]+)`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.PalabrasClave = splitList(v) }},
	{"nivel_formativo", regexp.MustCompile(`(?im)\bNIVEL\s+FORMATIVO\s*:\s*([^\n]+)`),
		func(m *catalog.Metadata, v string, _ *Parser) { m.NivelFormativo = v }},
}

// nextLabelRe finds a following label token inside a captured value, for
// documents that place several attributes on one line.
var nextLabelRe = regexp.MustCompile(`(?i)\s+(?:SIGLA|C[OÓ]DIGO|CURSO|NOMBRE|TRADUCCI[OÓ]N|CR[EÉ]DITOS?|M[OÓ]DULOS?|CAR[AÁ]CTER|TIPO|CALIFICACI[OÓ]N|DISCIPLINA|PALABRAS\s+CLAVES?|NIVEL\s+FORMATIVO)\s*:`)

// Metadata extracts the course attribute set from a metadata section.
// Fields that cannot be matched are left absent; unknown vocabulary is
// passed through verbatim. Metadata never fails.
func (p *Parser) Metadata(text string) catalog.Metadata {
	var m catalog.Metadata
	for _, rule := range metadataRules {
		match := rule.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value := strings.TrimSpace(trimAtNextLabel(match[1]))
		if value == "" {
			continue
		}
		rule.apply(&m, value, p)
	}
	return m
}

// trimAtNextLabel cuts a captured value at the next attribute label, so a
// single-line header like "Código: X  Nombre: Y" doesn't bleed one value
// into another.
func trimAtNextLabel(value string) string {
	if loc := nextLabelRe.FindStringIndex(value); loc != nil {
		return value[:loc[0]]
	}
	return value
}

// parseCount parses a numeric attribute with locale-aware decimal handling
// (the catalog writes "7,5" as well as "7.5") and clamps it to the sane
// range. Out-of-range or unparseable text yields nil, never a fabricated
// default.
func (p *Parser) parseCount(raw string, min, max int) *int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(math.Round(f))
	if n < min || n > max {
		return nil
	}
	return &n
}

// splitList splits a comma-separated attribute value into trimmed items.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
