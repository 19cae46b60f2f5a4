package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "catalogo.uc.cl", cfg.Catalog.Domain)
	assert.Equal(t, 2*time.Second, cfg.Scraper.Delay())
	assert.Equal(t, 30*time.Second, cfg.Scraper.Timeout())
	assert.Equal(t, 3, cfg.Scraper.MaxRetries)
	assert.Equal(t, 1400, cfg.Extract.MinYear)
	assert.Equal(t, time.Now().Year()+1, cfg.Extract.MaxYear)
	assert.Equal(t, 30, cfg.Extract.MaxCredits)
	assert.Equal(t, 1000, cfg.Extract.MaxEntryLen)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  base_url: https://example.edu/malla
scraper:
  delay_between_requests: 5
extract:
  top_n: 10
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.edu/malla", cfg.Catalog.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Scraper.Delay())
	assert.Equal(t, 10, cfg.Extract.TopN)
	// Untouched keys keep their defaults.
	assert.Equal(t, "catalogo.uc.cl", cfg.Catalog.Domain)
	assert.Equal(t, 3, cfg.Scraper.MaxRetries)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no_existe.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
