// CSV exporters built on gocsv struct tags: a metadata table with one row
// per course, and a bibliography table with one row per citation. Field
// escaping (quotes, commas, the ";" list-join delimiter) is handled by the
// underlying encoding/csv writer.
package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/gaurav-prasanna/coursepipe/catalog"
)

// MetadataRow is one course in the metadata CSV table.
type MetadataRow struct {
	Codigo          string `csv:"codigo"`
	Nombre          string `csv:"nombre"`
	Creditos        string `csv:"creditos"`
	Modulos         string `csv:"modulos"`
	Caracter        string `csv:"caracter"`
	Tipo            string `csv:"tipo"`
	Disciplina      string `csv:"disciplina"`
	PalabrasClave   string `csv:"palabras_clave"`
	Filename        string `csv:"filename"`
	HasBibliography bool   `csv:"has_bibliography"`
	TotalBibEntries int    `csv:"total_bib_entries"`
}

// BibliographyRow is one citation in the bibliography CSV table.
type BibliographyRow struct {
	CursoCodigo      string `csv:"curso_codigo"`
	CursoNombre      string `csv:"curso_nombre"`
	TipoBibliografia string `csv:"tipo_bibliografia"`
	RawText          string `csv:"raw_text"`
	Authors          string `csv:"authors"`
	Title            string `csv:"title"`
	Year             string `csv:"year"`
	Publisher        string `csv:"publisher"`
	URL              string `csv:"url"`
}

// WriteMetadataCSV writes one row per course.
func WriteMetadataCSV(path string, batch *catalog.Batch) error {
	rows := make([]MetadataRow, 0, len(batch.Courses))
	for _, c := range batch.Courses {
		rows = append(rows, MetadataRow{
			Codigo:          c.Codigo(),
			Nombre:          c.Metadata.Nombre,
			Creditos:        countString(c.Metadata.Creditos),
			Modulos:         countString(c.Metadata.Modulos),
			Caracter:        c.Metadata.Caracter,
			Tipo:            strings.Join(c.Metadata.Tipo, ";"),
			Disciplina:      c.Metadata.Disciplina,
			PalabrasClave:   strings.Join(c.Metadata.PalabrasClave, ";"),
			Filename:        c.Filename,
			HasBibliography: c.HasBibliography(),
			TotalBibEntries: c.TotalBibEntries(),
		})
	}
	return writeCSV(path, &rows)
}

// WriteBibliographyCSV writes one row per citation, both reading lists, in
// document order.
func WriteBibliographyCSV(path string, batch *catalog.Batch) error {
	var rows []BibliographyRow
	for _, c := range batch.Courses {
		for _, e := range c.Bibliography.Minima {
			rows = append(rows, bibliographyRow(c, "minima", e))
		}
		for _, e := range c.Bibliography.Complementaria {
			rows = append(rows, bibliographyRow(c, "complementaria", e))
		}
	}
	return writeCSV(path, &rows)
}

func bibliographyRow(c catalog.Course, tipo string, e catalog.BibEntry) BibliographyRow {
	year := ""
	if e.Year != nil {
		year = strconv.Itoa(*e.Year)
	}
	return BibliographyRow{
		CursoCodigo:      c.Codigo(),
		CursoNombre:      c.Metadata.Nombre,
		TipoBibliografia: tipo,
		RawText:          e.RawText,
		Authors:          strings.Join(e.Authors, "; "),
		Title:            e.Title,
		Year:             year,
		Publisher:        e.Publisher,
		URL:              e.URL,
	}
}

func writeCSV(path string, rows any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func countString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
