// Package catalog defines the data model for extracted course records.
// A Course is one structured catalog entry; a Batch is the ordered set of
// courses produced by one extraction run, plus its run counters.
package catalog

import (
	"errors"
	"sort"
	"time"
)

// ErrNoCourseCode marks a document from which no course code could be
// extracted. This is a hard failure for that document only, never for
// the batch.
var ErrNoCourseCode = errors.New("no course code found in document")

// ErrUnreadable marks a document with no extractable text.
var ErrUnreadable = errors.New("no extractable text in document")

// BibEntry is a single citation belonging to a course's reading list.
// RawText is always retained verbatim; every structured field is optional.
// An entry with only RawText populated is still valid: it degrades to an
// unstructured citation rather than being dropped.
type BibEntry struct {
	RawText   string   `json:"raw_text"`
	Authors   []string `json:"authors,omitempty"`
	Title     string   `json:"title,omitempty"`
	Year      *int     `json:"year,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	URL       string   `json:"url,omitempty"`
}

// Bibliography holds a course's two reading lists in document order.
type Bibliography struct {
	Minima         []BibEntry `json:"minima"`
	Complementaria []BibEntry `json:"complementaria"`
}

// TotalEntries returns the combined number of citations.
func (b Bibliography) TotalEntries() int {
	return len(b.Minima) + len(b.Complementaria)
}

// Metadata holds the labeled attributes parsed from a course's header block.
// String fields are passed through verbatim; the catalog vocabulary is not
// controlled by this tool, so no closed enumeration is enforced. Numeric
// fields are nil when absent or unparseable.
type Metadata struct {
	Codigo         string   `json:"codigo,omitempty"`
	Nombre         string   `json:"nombre,omitempty"`
	Traduccion     string   `json:"traduccion,omitempty"`
	Creditos       *int     `json:"creditos,omitempty"`
	Modulos        *int     `json:"modulos,omitempty"`
	Caracter       string   `json:"caracter,omitempty"`
	Tipo           []string `json:"tipo,omitempty"`
	Calificacion   string   `json:"calificacion,omitempty"`
	Disciplina     string   `json:"disciplina,omitempty"`
	PalabrasClave  []string `json:"palabras_clave,omitempty"`
	NivelFormativo string   `json:"nivel_formativo,omitempty"`
}

// EvalItem is one row of a course's evaluation methodology.
type EvalItem struct {
	Estrategia string `json:"estrategia"`
	Porcentaje string `json:"porcentaje,omitempty"`
}

// Course is the complete structured representation of one catalog entry.
type Course struct {
	Filename    string    `json:"filename"`
	ExtractedAt time.Time `json:"extracted_at"`

	Metadata     Metadata     `json:"metadata"`
	Descripcion  string       `json:"descripcion,omitempty"`
	Resultados   []string     `json:"resultados_aprendizaje,omitempty"`
	Contenidos   []string     `json:"contenidos,omitempty"`
	Metodologias []string     `json:"metodologias,omitempty"`
	Evaluacion   []EvalItem   `json:"evaluacion,omitempty"`
	Bibliography Bibliography `json:"bibliography"`
}

// Codigo returns the course code, the record's identity within a run.
func (c Course) Codigo() string { return c.Metadata.Codigo }

// HasBibliography reports whether the course carries at least one citation.
func (c Course) HasBibliography() bool { return c.Bibliography.TotalEntries() > 0 }

// TotalBibEntries returns the citation count across both reading lists.
func (c Course) TotalBibEntries() int { return c.Bibliography.TotalEntries() }

// Batch is the ordered collection of courses produced by one run, together
// with its counters. It has a single owner at any time: the assembler appends
// to it, then hands it read-only to the exporters.
type Batch struct {
	Courses []Course

	FilesProcessed int
	Successes      int
	Failures       int
	FailedFiles    []string
}

// Append records one successfully extracted course.
func (b *Batch) Append(c Course) {
	b.Courses = append(b.Courses, c)
	b.FilesProcessed++
	b.Successes++
}

// Fail records a document that produced no course record.
func (b *Batch) Fail(filename string) {
	b.FilesProcessed++
	b.Failures++
	b.FailedFiles = append(b.FailedFiles, filename)
}

// Ranked is one row of the bibliography ranking in a run report.
type Ranked struct {
	Codigo  string `json:"codigo"`
	Nombre  string `json:"nombre"`
	Entries int    `json:"entries"`
}

// Report holds the aggregate counters for a finished batch.
type Report struct {
	TotalFiles            int      `json:"total_files"`
	Successes             int      `json:"successful_extractions"`
	Failures              int      `json:"failed_extractions"`
	SuccessRate           float64  `json:"success_rate"`
	CoursesWithBib        int      `json:"courses_with_bibliography"`
	BibliographyCoverage  float64  `json:"bibliography_coverage"`
	TotalBibEntries       int      `json:"total_bibliography_entries"`
	AvgEntriesPerCourse   float64  `json:"avg_entries_per_course"`
	TopByBibliography     []Ranked `json:"top_by_bibliography"`
}

// Report computes the run summary over the finished batch.
// topN limits the bibliography ranking; topN <= 0 means no ranking.
func (b *Batch) Report(topN int) Report {
	r := Report{
		TotalFiles: b.FilesProcessed,
		Successes:  b.Successes,
		Failures:   b.Failures,
	}
	if b.FilesProcessed > 0 {
		r.SuccessRate = float64(b.Successes) / float64(b.FilesProcessed) * 100
	}

	for _, c := range b.Courses {
		if c.HasBibliography() {
			r.CoursesWithBib++
			r.TotalBibEntries += c.TotalBibEntries()
		}
	}
	if b.FilesProcessed > 0 {
		r.BibliographyCoverage = float64(r.CoursesWithBib) / float64(b.FilesProcessed) * 100
	}
	if r.CoursesWithBib > 0 {
		r.AvgEntriesPerCourse = float64(r.TotalBibEntries) / float64(r.CoursesWithBib)
	}

	if topN > 0 {
		ranked := make([]Ranked, 0, len(b.Courses))
		for _, c := range b.Courses {
			if c.HasBibliography() {
				ranked = append(ranked, Ranked{
					Codigo:  c.Codigo(),
					Nombre:  c.Metadata.Nombre,
					Entries: c.TotalBibEntries(),
				})
			}
		}
		// Stable sort keeps document order among equal counts.
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Entries > ranked[j].Entries
		})
		if len(ranked) > topN {
			ranked = ranked[:topN]
		}
		r.TopByBibliography = ranked
	}

	return r
}
