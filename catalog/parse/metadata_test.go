package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataSingleLineHeader(t *testing.T) {
	p := New(Options{})

	m := p.Metadata("Código: EPG4005  Nombre: METODOS BAYESIANOS  Créditos: 5")

	assert.Equal(t, "EPG4005", m.Codigo)
	assert.Equal(t, "METODOS BAYESIANOS", m.Nombre)
	require.NotNil(t, m.Creditos)
	assert.Equal(t, 5, *m.Creditos)
}

func TestMetadataMultiLineHeader(t *testing.T) {
	p := New(Options{})

	m := p.Metadata(`SIGLA: IIC2233
NOMBRE: Programación Avanzada
TRADUCCIÓN: Advanced Programming
CRÉDITOS: 10
MÓDULOS: 3
CARÁCTER: Mínimo
TIPO: Cátedra, Laboratorio
CALIFICACIÓN: Estándar
DISCIPLINA: Computación
PALABRAS CLAVE: estructuras de datos, algoritmos
NIVEL FORMATIVO: Pregrado`)

	assert.Equal(t, "IIC2233", m.Codigo)
	assert.Equal(t, "Programación Avanzada", m.Nombre)
	assert.Equal(t, "Advanced Programming", m.Traduccion)
	require.NotNil(t, m.Creditos)
	assert.Equal(t, 10, *m.Creditos)
	require.NotNil(t, m.Modulos)
	assert.Equal(t, 3, *m.Modulos)
	assert.Equal(t, "Mínimo", m.Caracter)
	assert.Equal(t, []string{"Cátedra", "Laboratorio"}, m.Tipo)
	assert.Equal(t, "Estándar", m.Calificacion)
	assert.Equal(t, "Computación", m.Disciplina)
	assert.Equal(t, []string{"estructuras de datos", "algoritmos"}, m.PalabrasClave)
	assert.Equal(t, "Pregrado", m.NivelFormativo)
}

func TestMetadataSiglaLabelAccepted(t *testing.T) {
	p := New(Options{})

	m := p.Metadata("Sigla: mat1610")

	// The code is normalized to uppercase regardless of source casing.
	assert.Equal(t, "MAT1610", m.Codigo)
}

func TestMetadataMissingFieldsStayAbsent(t *testing.T) {
	p := New(Options{})

	m := p.Metadata("Código: EPG4005")

	assert.Equal(t, "EPG4005", m.Codigo)
	assert.Empty(t, m.Nombre)
	assert.Nil(t, m.Creditos)
	assert.Nil(t, m.Modulos)
	assert.Empty(t, m.Tipo)
}

func TestMetadataNoCode(t *testing.T) {
	p := New(Options{})

	m := p.Metadata("Nombre: Curso sin sigla")

	assert.Empty(t, m.Codigo)
	assert.Equal(t, "Curso sin sigla", m.Nombre)
}

func TestMetadataCommaDecimalCredits(t *testing.T) {
	p := New(Options{})

	m := p.Metadata("Créditos: 7,5")

	require.NotNil(t, m.Creditos)
	assert.Equal(t, 8, *m.Creditos)
}

func TestMetadataOutOfRangeCreditsReportedUnknown(t *testing.T) {
	p := New(Options{})

	m := p.Metadata("Créditos: 999")

	assert.Nil(t, m.Creditos)
}

func TestMetadataValueDoesNotBleedIntoNextLabel(t *testing.T) {
	p := New(Options{})

	m := p.Metadata("Nombre: Cálculo I Carácter: Mínimo")

	assert.Equal(t, "Cálculo I", m.Nombre)
	assert.Equal(t, "Mínimo", m.Caracter)
}

func TestMetadataUnknownVocabularyPassesThrough(t *testing.T) {
	p := New(Options{})

	m := p.Metadata("Carácter: Optativo de Profundización")

	assert.Equal(t, "Optativo de Profundización", m.Caracter)
}
