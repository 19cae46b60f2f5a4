package assemble

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/coursepipe/catalog"
	"github.com/gaurav-prasanna/coursepipe/catalog/parse"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleCourse = `Código: EPG4005
Nombre: Métodos Bayesianos
Créditos: 5

DESCRIPCIÓN
Curso introductorio a la inferencia bayesiana.

EVALUACIÓN
Tareas 40%
Examen 60%

BIBLIOGRAFÍA
Mínima:
1. Gelman, A. (2013). Bayesian Data Analysis. CRC Press.
2. Hastie, T. (2009). The Elements of Statistical Learning. Springer.
Complementaria:
1. Knuth, D. (1997). The Art of Computer Programming. Addison-Wesley.`

func TestAssembleFullDocument(t *testing.T) {
	a := New(parse.Options{}, discardLogger())

	course, err := a.Assemble("epg4005.txt", sampleCourse)
	require.NoError(t, err)

	assert.Equal(t, "EPG4005", course.Codigo())
	assert.Equal(t, "epg4005.txt", course.Filename)
	assert.Equal(t, "Curso introductorio a la inferencia bayesiana.", course.Descripcion)

	require.Len(t, course.Evaluacion, 2)
	assert.Equal(t, "Tareas", course.Evaluacion[0].Estrategia)
	assert.Equal(t, "40%", course.Evaluacion[0].Porcentaje)

	assert.Len(t, course.Bibliography.Minima, 2)
	assert.Len(t, course.Bibliography.Complementaria, 1)
	assert.Equal(t, 3, course.TotalBibEntries())
	assert.True(t, course.HasBibliography())
}

func TestAssembleNoCourseCode(t *testing.T) {
	a := New(parse.Options{}, discardLogger())

	_, err := a.Assemble("sin_codigo.txt", "Nombre: Curso sin sigla\n\nDESCRIPCIÓN\nTexto.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrNoCourseCode))
}

func TestAssembleWithoutBibliography(t *testing.T) {
	a := New(parse.Options{}, discardLogger())

	course, err := a.Assemble("mat1610.txt", "Código: MAT1610\nNombre: Cálculo I")
	require.NoError(t, err)

	assert.False(t, course.HasBibliography())
	assert.Equal(t, 0, course.TotalBibEntries())
}

func TestAssembleDuplicateEntriesCollapsed(t *testing.T) {
	a := New(parse.Options{}, discardLogger())

	course, err := a.Assemble("dup.txt", `Código: EPG4005
BIBLIOGRAFÍA
1. Gelman, A. (2013). Bayesian Data Analysis. CRC Press.
2. Gelman,   A. (2013). Bayesian  Data Analysis. CRC Press.
3. Hastie, T. (2009). The Elements of Statistical Learning. Springer.`)
	require.NoError(t, err)

	// Whitespace-only variants are the same entry; the first occurrence
	// survives.
	require.Len(t, course.Bibliography.Minima, 2)
	assert.Equal(t, []string{"Gelman, A."}, course.Bibliography.Minima[0].Authors)
}

func TestDirectoryMixedSuccessAndFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_bueno.txt"), []byte(sampleCourse), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_sin_codigo.txt"), []byte("Nombre: Sin sigla"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c_vacio.txt"), nil, 0644))
	// Unsupported extensions are ignored entirely.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.docx"), []byte("x"), 0644))

	a := New(parse.Options{}, discardLogger())
	batch, err := a.Directory(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, batch.FilesProcessed)
	assert.Equal(t, 1, batch.Successes)
	assert.Equal(t, 2, batch.Failures)
	assert.Equal(t, []string{"b_sin_codigo.txt", "c_vacio.txt"}, batch.FailedFiles)
	require.Len(t, batch.Courses, 1)
	assert.Equal(t, "EPG4005", batch.Courses[0].Codigo())
}

func TestDirectoryMissing(t *testing.T) {
	a := New(parse.Options{}, discardLogger())

	_, err := a.Directory(filepath.Join(t.TempDir(), "no_existe"))
	assert.Error(t, err)
}

func TestListItemsStripMarkers(t *testing.T) {
	items := listItems("1. Formular modelos.\n- Aplicar métodos.\n\n• Comunicar resultados.")

	assert.Equal(t, []string{
		"Formular modelos.",
		"Aplicar métodos.",
		"Comunicar resultados.",
	}, items)
}

func TestEvalItemsWithoutPercentage(t *testing.T) {
	items := evalItems("Tareas 40%\nParticipación en clases")

	require.Len(t, items, 2)
	assert.Equal(t, "40%", items[0].Porcentaje)
	assert.Equal(t, "Participación en clases", items[1].Estrategia)
	assert.Empty(t, items[1].Porcentaje)
}
