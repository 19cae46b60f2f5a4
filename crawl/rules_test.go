package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSameDomain(t *testing.T) {
	assert.True(t, IsSameDomain("https://mia.uc.cl/malla", "mia.uc.cl"))
	assert.False(t, IsSameDomain("https://catalogo.uc.cl/curso", "mia.uc.cl"))
	assert.False(t, IsSameDomain("://bad url", "mia.uc.cl"))
}

func TestSiglaFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://catalogo.uc.cl/index.php?sigla=EPG4005", "EPG4005"},
		{"https://catalogo.uc.cl/index.php?sigla=epg4005", "EPG4005"},
		{"https://catalogo.uc.cl/programa?cxml_sigla=IIC2233", "IIC2233"},
		{"https://catalogo.uc.cl/cursos/MAT1610", "MAT1610"},
		{"https://catalogo.uc.cl/index.php?page=home", ""},
		{"https://catalogo.uc.cl/", ""},
		{"https://catalogo.uc.cl/index.php?sigla=NOTACODE12345", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SiglaFromURL(tc.url), tc.url)
	}
}

func TestIsCatalogLink(t *testing.T) {
	assert.True(t, IsCatalogLink("https://catalogo.uc.cl/index.php?sigla=EPG4005", "catalogo.uc.cl"))
	// Right host but no recognizable course code.
	assert.False(t, IsCatalogLink("https://catalogo.uc.cl/ayuda", "catalogo.uc.cl"))
	// Right shape but wrong host.
	assert.False(t, IsCatalogLink("https://otro.uc.cl/index.php?sigla=EPG4005", "catalogo.uc.cl"))
}

func TestIsStaticAsset(t *testing.T) {
	assert.True(t, IsStaticAsset("https://mia.uc.cl/logo.png"))
	assert.True(t, IsStaticAsset("https://mia.uc.cl/estilos.css"))
	assert.False(t, IsStaticAsset("https://mia.uc.cl/malla"))
	// Course documents are not crawl noise.
	assert.False(t, IsStaticAsset("https://catalogo.uc.cl/programa.pdf"))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://mia.uc.cl/malla", NormalizeURL("https://mia.uc.cl/malla/"))
	assert.Equal(t, "https://mia.uc.cl/malla", NormalizeURL("https://mia.uc.cl/malla#seccion"))
	assert.Equal(t, "https://mia.uc.cl/", NormalizeURL("https://mia.uc.cl/"))
}

func TestQueueDeduplicates(t *testing.T) {
	q := NewQueue()
	q.Add("https://a")
	q.Add("https://b")
	q.Add("https://a")

	assert.Equal(t, 2, q.Visited())
	assert.Equal(t, []string{"https://a", "https://b"}, q.All())

	assert.True(t, q.HasNext())
	assert.Equal(t, "https://a", q.Next())
	assert.Equal(t, "https://b", q.Next())
	assert.False(t, q.HasNext())
}
