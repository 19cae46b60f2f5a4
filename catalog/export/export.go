// Package export serializes a finished extraction batch to its output
// files: full and bibliography-only JSON documents, metadata and
// bibliography CSV tables, and the run report. Exporters are pure
// serializers: they never re-validate or mutate records.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gaurav-prasanna/coursepipe/catalog"
)

// Format selects which exporters run.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatBoth Format = "both"
)

// ParseFormat validates an export-format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatBoth:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q (want json, csv, or both)", s)
}

// Files lists the paths written by one export run.
type Files struct {
	CoursesJSON      string
	BibliographyJSON string
	MetadataCSV      string
	BibliographyCSV  string
	ReportJSON       string
}

// Run writes the batch to the output directory. File names carry the run
// timestamp. A write failure is fatal for the run; files already written
// are not rolled back. Partial export is acceptable and reported through
// the returned Files.
func Run(batch *catalog.Batch, dir string, format Format, ts time.Time, topN int, logger *slog.Logger) (Files, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Files{}, fmt.Errorf("creating output directory: %w", err)
	}

	stamp := ts.Format("20060102_150405")
	var files Files

	if format == FormatJSON || format == FormatBoth {
		files.CoursesJSON = filepath.Join(dir, fmt.Sprintf("cursos_completo_%s.json", stamp))
		if err := WriteCoursesJSON(files.CoursesJSON, batch, logger); err != nil {
			return files, err
		}

		files.BibliographyJSON = filepath.Join(dir, fmt.Sprintf("bibliografia_%s.json", stamp))
		if err := WriteBibliographyJSON(files.BibliographyJSON, batch, logger); err != nil {
			return files, err
		}
	}

	if format == FormatCSV || format == FormatBoth {
		files.MetadataCSV = filepath.Join(dir, fmt.Sprintf("metadatos_%s.csv", stamp))
		if err := WriteMetadataCSV(files.MetadataCSV, batch); err != nil {
			return files, err
		}

		files.BibliographyCSV = filepath.Join(dir, fmt.Sprintf("bibliografia_%s.csv", stamp))
		if err := WriteBibliographyCSV(files.BibliographyCSV, batch); err != nil {
			return files, err
		}
	}

	files.ReportJSON = filepath.Join(dir, fmt.Sprintf("reporte_extraccion_%s.json", stamp))
	if err := WriteReportJSON(files.ReportJSON, batch, topN); err != nil {
		return files, err
	}

	return files, nil
}
