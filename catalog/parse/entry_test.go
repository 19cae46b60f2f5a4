package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryAPACitation(t *testing.T) {
	p := New(Options{})

	entry := p.Entry("Gelman, A., Carlin, J. B. (2013). Bayesian Data Analysis. CRC Press.")

	assert.Equal(t, []string{"Gelman, A.", "Carlin, J. B."}, entry.Authors)
	require.NotNil(t, entry.Year)
	assert.Equal(t, 2013, *entry.Year)
	assert.Equal(t, "Bayesian Data Analysis", entry.Title)
	assert.Equal(t, "CRC Press", entry.Publisher)
	assert.Empty(t, entry.URL)
}

func TestEntryFullNameCitation(t *testing.T) {
	p := New(Options{})

	entries := p.Bibliography("1. Andrew Gelman, John B. Carlin. Bayesian Data Analysis. CRC Press, 2013.")
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, []string{"Andrew Gelman", "John B. Carlin"}, entry.Authors)
	assert.Equal(t, "Bayesian Data Analysis", entry.Title)
	assert.Equal(t, "CRC Press", entry.Publisher)
	require.NotNil(t, entry.Year)
	assert.Equal(t, 2013, *entry.Year)
}

func TestEntryQuotedTitleWins(t *testing.T) {
	p := New(Options{})

	entry := p.Entry(`Knuth, D. "The Art of Computer Programming", Addison-Wesley, 1997.`)

	assert.Equal(t, "The Art of Computer Programming", entry.Title)
	assert.Equal(t, []string{"Knuth, D."}, entry.Authors)
	require.NotNil(t, entry.Year)
	assert.Equal(t, 1997, *entry.Year)
}

func TestEntryAmbiguousLeadingRunStaysTitle(t *testing.T) {
	// A lone capitalized run with no author signal must not be taken as
	// an author list.
	p := New(Options{})

	entry := p.Entry("Bayesian Data Analysis. CRC Press, 2013.")

	assert.Empty(t, entry.Authors)
	assert.Equal(t, "Bayesian Data Analysis", entry.Title)
	assert.Equal(t, "CRC Press", entry.Publisher)
}

func TestEntryProseYieldsRawOnly(t *testing.T) {
	p := New(Options{})

	raw := "See the course website for readings."
	entry := p.Entry(raw)

	assert.Equal(t, raw, entry.RawText)
	assert.Empty(t, entry.Authors)
	assert.Empty(t, entry.Title)
	assert.Nil(t, entry.Year)
	assert.Empty(t, entry.Publisher)
	assert.Empty(t, entry.URL)
}

func TestEntryFirstPlausibleYearWins(t *testing.T) {
	p := New(Options{})

	entry := p.Entry("Smith, J. (2010). Reprint of the 1850 edition. Springer, 2015.")

	require.NotNil(t, entry.Year)
	assert.Equal(t, 2010, *entry.Year)
}

func TestEntryImplausibleYearIgnored(t *testing.T) {
	p := New(Options{})

	entry := p.Entry("Smith, J. Numerical Tables, page 1203, Wiley.")

	assert.Nil(t, entry.Year)
}

func TestEntryLastURLWins(t *testing.T) {
	p := New(Options{})

	entry := p.Entry("Doe, J. Lecture Notes. https://doi.org/10.1000/x disponible en https://example.edu/notes.pdf.")

	assert.Equal(t, "https://example.edu/notes.pdf", entry.URL)
}

func TestEntryURLTrailingPunctuationTrimmed(t *testing.T) {
	p := New(Options{})

	entry := p.Entry("Apuntes del curso: https://example.edu/apuntes;")

	assert.Equal(t, "https://example.edu/apuntes", entry.URL)
}

func TestEntryAmpersandAuthors(t *testing.T) {
	p := New(Options{})

	entry := p.Entry("Hastie, T. & Tibshirani, R. (2009). The Elements of Statistical Learning. Springer.")

	assert.Equal(t, []string{"Hastie, T.", "Tibshirani, R."}, entry.Authors)
	assert.Equal(t, "The Elements of Statistical Learning", entry.Title)
	assert.Equal(t, "Springer", entry.Publisher)
}

func TestEntrySpanishConjunctionAuthors(t *testing.T) {
	p := New(Options{})

	entry := p.Entry("García, M. y Pérez, L. (2018). Métodos Estadísticos. Ediciones UC.")

	assert.Equal(t, []string{"García, M.", "Pérez, L."}, entry.Authors)
	require.NotNil(t, entry.Year)
	assert.Equal(t, 2018, *entry.Year)
}

func TestEntryReparseIsIdempotent(t *testing.T) {
	p := New(Options{})

	first := p.Entry("Gelman, A., Carlin, J. B. (2013). Bayesian Data Analysis. CRC Press.")
	second := p.Entry(first.RawText)

	assert.Equal(t, first, second)
}

func TestEntryAuthorCapAtFive(t *testing.T) {
	p := New(Options{})

	entry := p.Entry("Ana, A.; Bravo, B.; Cruz, C.; Diaz, D.; Egan, E.; Fry, F. (2020). Collected Papers.")

	assert.Len(t, entry.Authors, 5)
}

func TestTitleCased(t *testing.T) {
	assert.True(t, titleCased("Bayesian Data Analysis"))
	assert.True(t, titleCased("Introducción al Análisis Real"))
	assert.False(t, titleCased("See the course website for readings"))
	assert.False(t, titleCased("Analysis")) // single word is never enough
}
