package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Stopword sources.
const (
	SourceEmbedded = "embedded"
	SourceNLTK     = "nltk"
)

// Config holds all configuration for friendlytext.
type Config struct {
	Clean        CleanConfig        `yaml:"clean"`
	Stopwords    StopwordsConfig    `yaml:"stopwords"`
	PatternCache PatternCacheConfig `yaml:"pattern_cache"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// CleanConfig holds the ordered list of cleaning steps.
type CleanConfig struct {
	Steps []string `yaml:"steps"` // urls, hashtags, punctuation, digits, lowercase, stopwords
}

// StopwordsConfig describes where the stopword set comes from.
type StopwordsConfig struct {
	Language     string   `yaml:"language"`
	Source       string   `yaml:"source"`   // "embedded" or "nltk"
	NLTKURL      string   `yaml:"nltk_url"` // corpus archive for the nltk source
	CacheEnabled bool     `yaml:"cache_enabled"`
	Files        []string `yaml:"files"`   // glob patterns of extra word lists
	Extra        []string `yaml:"extra"`   // words added to the set
	Exclude      []string `yaml:"exclude"` // words removed from the set
}

// PatternCacheConfig holds compiled pattern cache configuration.
type PatternCacheConfig struct {
	MaxSize int `yaml:"max_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Clean: CleanConfig{
			Steps: []string{"urls", "hashtags", "lowercase", "stopwords", "digits", "punctuation"},
		},
		Stopwords: StopwordsConfig{
			Language:     "english",
			Source:       SourceEmbedded,
			NLTKURL:      "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/corpora/stopwords.zip",
			CacheEnabled: true,
		},
		PatternCache: PatternCacheConfig{
			MaxSize: 16,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Stopwords.Source {
	case SourceEmbedded, SourceNLTK:
	default:
		return fmt.Errorf("unknown stopwords source %q (want %q or %q)", c.Stopwords.Source, SourceEmbedded, SourceNLTK)
	}
	if c.Stopwords.Source == SourceNLTK && c.Stopwords.NLTKURL == "" {
		return fmt.Errorf("stopwords.nltk_url is required for the %q source", SourceNLTK)
	}
	if c.PatternCache.MaxSize < 0 {
		return fmt.Errorf("pattern_cache.max_size must not be negative, got %d", c.PatternCache.MaxSize)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for friendlytext.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "friendlytext.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(DataDir(dir), "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DataDir returns the per-project data directory.
func DataDir(dir string) string {
	return filepath.Join(dir, ".friendlytext")
}

// CacheDBPath returns the path to the stopword cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(DataDir(dir), "stopwords.db")
}

// EnsureDataDir ensures the .friendlytext directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(DataDir(dir), 0755)
}
