package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Categories in canonical display order.
const (
	CategoryFreight     = "freight_industry"
	CategoryPolicy      = "policy"
	CategoryAI          = "ai_supply_chain"
	CategoryDisruptions = "disruptions"
	CategoryBorder      = "border"
	CategoryJobs        = "jobs"
)

// AllCategories returns every valid source category in canonical order.
func AllCategories() []string {
	return []string{CategoryFreight, CategoryPolicy, CategoryAI, CategoryDisruptions, CategoryBorder, CategoryJobs}
}

type Source struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	URL      string `yaml:"url"`
	Enabled  bool   `yaml:"enabled"`
}

// Crossing is a border port of entry we track weather for.
type Crossing struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

type AIConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

// TTLConfig holds cache lifetimes per data class. News churns fast,
// status data (border waits, weather) slower, job listings barely at all.
type TTLConfig struct {
	News   string `yaml:"news,omitempty"`
	Status string `yaml:"status,omitempty"`
	Jobs   string `yaml:"jobs,omitempty"`
}

type Config struct {
	FetchTimeout string     `yaml:"fetch_timeout,omitempty"`
	TTL          TTLConfig  `yaml:"ttl,omitempty"`
	ContextSize  int        `yaml:"context_size,omitempty"`
	Sources      []Source   `yaml:"sources"`
	Crossings    []Crossing `yaml:"crossings,omitempty"`
	AI           *AIConfig  `yaml:"ai,omitempty"`
}

// AIEnabled returns true if the assistant is configured with a valid API key.
func (c *Config) AIEnabled() bool {
	return c.AIKey() != ""
}

// AIKey returns the resolved API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("SUPPLYALERT_AI_KEY")
}

func (c *Config) FetchTimeoutDuration() time.Duration {
	return parseDurationOr(c.FetchTimeout, 10*time.Second)
}

// NewsTTL is the cache lifetime for news feed results.
func (c *Config) NewsTTL() time.Duration {
	return parseDurationOr(c.TTL.News, 5*time.Minute)
}

// StatusTTL is the cache lifetime for border waits and weather.
func (c *Config) StatusTTL() time.Duration {
	return parseDurationOr(c.TTL.Status, 30*time.Minute)
}

// JobsTTL is the cache lifetime for job listing feeds.
func (c *Config) JobsTTL() time.Duration {
	return parseDurationOr(c.TTL.Jobs, 12*time.Hour)
}

// CategoryTTL picks the cache lifetime for a source category.
func (c *Config) CategoryTTL(category string) time.Duration {
	switch category {
	case CategoryBorder:
		return c.StatusTTL()
	case CategoryJobs:
		return c.JobsTTL()
	default:
		return c.NewsTTL()
	}
}

// GetContextSize returns the assistant context item cap, defaulting to 10.
func (c *Config) GetContextSize() int {
	if c.ContextSize <= 0 {
		return 10
	}
	return c.ContextSize
}

func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// SourcesForCategory returns the enabled sources tagged with category,
// preserving config order.
func (c *Config) SourcesForCategory(category string) []Source {
	var out []Source
	for _, s := range c.EnabledSources() {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "supplyalert", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validCategories := map[string]bool{}
	for _, c := range AllCategories() {
		validCategories[c] = true
	}

	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required", s.Name)
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("source %q: invalid url: %w", s.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source %q: url scheme must be http or https, got %q", s.Name, u.Scheme)
		}
		if !validCategories[s.Category] {
			return fmt.Errorf("source %q: unknown category %q", s.Name, s.Category)
		}
	}

	for _, cr := range cfg.Crossings {
		if cr.Name == "" {
			return fmt.Errorf("crossing with empty name")
		}
		if cr.Lat < -90 || cr.Lat > 90 || cr.Lon < -180 || cr.Lon > 180 {
			return fmt.Errorf("crossing %q: coordinates out of range", cr.Name)
		}
	}
	return nil
}
