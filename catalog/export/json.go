// JSON exporters: one document mapping course code to the full record, and
// one bibliography-only view with entry counts.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/coursepipe/catalog"
)

// WriteCoursesJSON writes the full batch as a map from course code to
// record. When two documents yield the same code the later record wins;
// the collision is logged so the mismatch with the CSV row count can be
// traced.
func WriteCoursesJSON(path string, batch *catalog.Batch, logger *slog.Logger) error {
	courses := make(map[string]catalog.Course, len(batch.Courses))
	for _, c := range batch.Courses {
		code := c.Codigo()
		if prev, dup := courses[code]; dup {
			logger.Debug("duplicate course code, keeping later record",
				"codigo", code, "kept", c.Filename, "dropped", prev.Filename)
		}
		courses[code] = c
	}
	return writeJSON(path, courses)
}

// bibliographyView is the bibliography-only projection of one course.
type bibliographyView struct {
	Codigo        string               `json:"codigo"`
	Nombre        string               `json:"nombre"`
	Bibliografia  catalog.Bibliography `json:"bibliografia"`
	TotalEntradas int                  `json:"total_entradas"`
}

// WriteBibliographyJSON writes the bibliography summary for every course
// that carries at least one citation.
func WriteBibliographyJSON(path string, batch *catalog.Batch, logger *slog.Logger) error {
	views := make(map[string]bibliographyView)
	for _, c := range batch.Courses {
		if !c.HasBibliography() {
			continue
		}
		if _, dup := views[c.Codigo()]; dup {
			logger.Debug("duplicate course code, keeping later record",
				"codigo", c.Codigo(), "kept", c.Filename)
		}
		views[c.Codigo()] = bibliographyView{
			Codigo:        c.Codigo(),
			Nombre:        c.Metadata.Nombre,
			Bibliografia:  c.Bibliography,
			TotalEntradas: c.TotalBibEntries(),
		}
	}
	return writeJSON(path, views)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
