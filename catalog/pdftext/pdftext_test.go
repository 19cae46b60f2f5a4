package pdftext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/coursepipe/catalog"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("curso.pdf"))
	assert.True(t, Supported("curso.txt"))
	assert.True(t, Supported("curso.md"))
	assert.True(t, Supported("CURSO.PDF"))
	assert.False(t, Supported("curso.docx"))
	assert.False(t, Supported("curso"))
}

func TestFromFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curso.txt")
	require.NoError(t, os.WriteFile(path, []byte("Código: EPG4005   \n\n\n\nNombre:  Métodos"), 0644))

	text, err := FromFile(path)
	require.NoError(t, err)

	// Space runs collapse, repeated blank lines reduce to one.
	assert.Equal(t, "Código: EPG4005\n\nNombre: Métodos", text)
}

func TestFromFileEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacio.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n \n"), 0644))

	_, err := FromFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnreadable))
}

func TestFromFileUnsupportedType(t *testing.T) {
	_, err := FromFile("curso.docx")
	assert.Error(t, err)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "no_existe.txt"))
	assert.Error(t, err)
}

func TestTextFromStream(t *testing.T) {
	stream := []byte(`BT
/F1 12 Tf
(C\363digo: EPG4005) Tj
0 -14 Td
[(Nombre: ) (M\351todos)] TJ
T*
(Bibliograf\355a) Tj
ET`)

	text := textFromStream(stream)

	assert.Contains(t, text, "Código: EPG4005")
	assert.Contains(t, text, "Nombre: Métodos")
	assert.Contains(t, text, "Bibliografía")
}

func TestDecodePDFString(t *testing.T) {
	assert.Equal(t, "a(b)c", decodePDFString([]byte(`a\(b\)c`)))
	assert.Equal(t, "line\nnext", decodePDFString([]byte(`line\nnext`)))
	assert.Equal(t, "ó", decodePDFString([]byte(`\363`)))
	assert.Equal(t, `back\slash`, decodePDFString([]byte(`back\\slash`)))
}
