// Run report exporter: aggregate counters plus per-course summaries, for
// reproducing the run's summary output later.
package export

import (
	"github.com/gaurav-prasanna/coursepipe/catalog"
)

// courseSummary is the per-course line of the run report.
type courseSummary struct {
	Codigo     string `json:"codigo"`
	Nombre     string `json:"nombre"`
	Filename   string `json:"filename"`
	BibEntries int    `json:"bib_entries"`
}

// runReport is the report document schema.
type runReport struct {
	Resumen    catalog.Report  `json:"resumen_general"`
	Cursos     []courseSummary `json:"cursos_procesados"`
	ConErrores []string        `json:"archivos_con_errores"`
}

// WriteReportJSON writes the extraction report for a finished batch.
func WriteReportJSON(path string, batch *catalog.Batch, topN int) error {
	report := runReport{
		Resumen:    batch.Report(topN),
		Cursos:     make([]courseSummary, 0, len(batch.Courses)),
		ConErrores: batch.FailedFiles,
	}
	for _, c := range batch.Courses {
		report.Cursos = append(report.Cursos, courseSummary{
			Codigo:     c.Codigo(),
			Nombre:     c.Metadata.Nombre,
			Filename:   c.Filename,
			BibEntries: c.TotalBibEntries(),
		})
	}
	return writeJSON(path, report)
}
