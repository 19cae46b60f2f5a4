// Package config holds the run configuration for coursepipe. Values are
// loaded from an optional YAML file over defaults and passed explicitly
// into the commands, never kept as ambient global state.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full run configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Scraper ScraperConfig `yaml:"scraper"`
	Extract ExtractConfig `yaml:"extract"`
}

// CatalogConfig locates the catalog to scrape.
type CatalogConfig struct {
	// BaseURL is the page listing the catalog course links.
	BaseURL string `yaml:"base_url"`
	// Domain filters discovered links to the catalog host.
	Domain string `yaml:"domain"`
}

// ScraperConfig tunes the download behavior.
type ScraperConfig struct {
	DelaySeconds   int    `yaml:"delay_between_requests"`
	TimeoutSeconds int    `yaml:"request_timeout"`
	MaxRetries     int    `yaml:"max_retries"`
	UserAgent      string `yaml:"user_agent"`
}

// Delay returns the pause between requests.
func (s ScraperConfig) Delay() time.Duration {
	return time.Duration(s.DelaySeconds) * time.Second
}

// Timeout returns the per-request timeout.
func (s ScraperConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ExtractConfig bounds the extraction plausibility checks.
type ExtractConfig struct {
	MinYear     int `yaml:"min_year"`
	MaxYear     int `yaml:"max_year"`
	MinCredits  int `yaml:"min_credits"`
	MaxCredits  int `yaml:"max_credits"`
	MaxEntryLen int `yaml:"max_entry_len"`
	TopN        int `yaml:"top_n"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			BaseURL: "https://mia.uc.cl/malla-curricular",
			Domain:  "catalogo.uc.cl",
		},
		Scraper: ScraperConfig{
			DelaySeconds:   2,
			TimeoutSeconds: 30,
			MaxRetries:     3,
			UserAgent:      "coursepipe/1.0 (+https://github.com/gaurav-prasanna/coursepipe)",
		},
		Extract: ExtractConfig{
			MinYear:     1400,
			MaxYear:     time.Now().Year() + 1,
			MinCredits:  0,
			MaxCredits:  30,
			MaxEntryLen: 1000,
			TopN:        5,
		},
	}
}

// Load reads the configuration file at path, merged over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
