// Package assemble composes segmenter and parser output into validated
// course records, and drives the sequential extraction run over an input
// directory. Documents are processed one at a time: parsing is an in-memory
// text transform, so sequential processing caps peak memory with many large
// documents present.
package assemble

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/gaurav-prasanna/coursepipe/catalog"
	"github.com/gaurav-prasanna/coursepipe/catalog/parse"
	"github.com/gaurav-prasanna/coursepipe/catalog/pdftext"
	"github.com/gaurav-prasanna/coursepipe/catalog/segment"
)

// Assembler turns raw document text into course records.
type Assembler struct {
	parser *parse.Parser
	logger *slog.Logger
}

// New creates an Assembler. A nil logger falls back to slog.Default.
func New(opts parse.Options, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		parser: parse.New(opts),
		logger: logger,
	}
}

// Assemble produces exactly one course record from one document's text, or
// an error wrapping catalog.ErrNoCourseCode when no code can be found, the
// only hard per-document failure. Absent sections yield empty fields.
func (a *Assembler) Assemble(filename, text string) (catalog.Course, error) {
	sections := segment.Split(text)

	metaText, ok := sections[segment.LabelMetadata]
	if !ok {
		metaText = text
	}
	meta := a.parser.Metadata(metaText)
	if meta.Codigo == "" {
		return catalog.Course{}, fmt.Errorf("%s: %w", filename, catalog.ErrNoCourseCode)
	}

	course := catalog.Course{
		Filename:    filename,
		ExtractedAt: time.Now().UTC(),
		Metadata:    meta,
	}

	if desc, ok := sections[segment.LabelDescripcion]; ok {
		course.Descripcion = flatten(desc)
	}
	if res, ok := sections[segment.LabelResultados]; ok {
		course.Resultados = listItems(res)
	}
	if cont, ok := sections[segment.LabelContenidos]; ok {
		course.Contenidos = listItems(cont)
	}
	if met, ok := sections[segment.LabelMetodologia]; ok {
		course.Metodologias = listItems(met)
	}
	if eval, ok := sections[segment.LabelEvaluacion]; ok {
		course.Evaluacion = evalItems(eval)
	}

	if bib, ok := sections[segment.LabelBibMinima]; ok {
		course.Bibliography.Minima = dedupe(a.parser.Bibliography(bib))
	}
	if bib, ok := sections[segment.LabelBibComplementaria]; ok {
		course.Bibliography.Complementaria = dedupe(a.parser.Bibliography(bib))
	}

	return course, nil
}

// Directory runs the extraction over every supported document in dir,
// sequentially, in name order. Per-document failures are counted and
// logged, never propagated; the returned error covers setup problems only.
func (a *Assembler) Directory(dir string) (*catalog.Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && pdftext.Supported(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	a.logger.Info("starting extraction", "dir", dir, "files", len(names))

	batch := &catalog.Batch{}
	for _, name := range names {
		text, err := pdftext.FromFile(filepath.Join(dir, name))
		if err != nil {
			a.logger.Warn("document skipped", "file", name, "stage", "read", "reason", err)
			batch.Fail(name)
			continue
		}

		course, err := a.Assemble(name, text)
		if err != nil {
			a.logger.Warn("document skipped", "file", name, "stage", "assemble", "reason", err)
			batch.Fail(name)
			continue
		}

		a.logger.Debug("course extracted",
			"file", name,
			"codigo", course.Codigo(),
			"bib_entries", course.TotalBibEntries())
		batch.Append(course)
	}

	return batch, nil
}

// dedupe collapses duplicate entries (identical whitespace-normalized raw
// text) within one list, preserving first-occurrence order.
func dedupe(entries []catalog.BibEntry) []catalog.BibEntry {
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	for _, e := range entries {
		key := strings.Join(strings.Fields(e.RawText), " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

var spaceRe = regexp.MustCompile(`\s+`)

// flatten collapses a section into a single-paragraph string.
func flatten(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// itemMarkerRe strips leading bullet or enumeration markers from list lines.
var itemMarkerRe = regexp.MustCompile(`^\s*(?:\d{1,2}[.)]|[a-z]\)|[-•*])\s+`)

// listItems splits a section into its non-empty lines, markers removed.
func listItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(itemMarkerRe.ReplaceAllString(line, ""))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// evalItemRe captures "strategy ... NN%" lines of the evaluation section.
var evalItemRe = regexp.MustCompile(`^(.*?)[\s:.\-]*(\d{1,3}\s*%)\s*$`)

// evalItems parses the evaluation methodology into strategy/percentage
// pairs. Lines without a percentage keep the whole line as the strategy.
func evalItems(text string) []catalog.EvalItem {
	var items []catalog.EvalItem
	for _, line := range listItems(text) {
		if m := evalItemRe.FindStringSubmatch(line); m != nil && strings.TrimSpace(m[1]) != "" {
			items = append(items, catalog.EvalItem{
				Estrategia: strings.TrimSpace(m[1]),
				Porcentaje: strings.ReplaceAll(m[2], " ", ""),
			})
			continue
		}
		items = append(items, catalog.EvalItem{Estrategia: line})
	}
	return items
}
