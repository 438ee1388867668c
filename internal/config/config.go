// Package config loads the optional cambium.toml tool configuration and
// the YAML fleet inventory consumed by cam-report.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/cambium"
)

// DefaultPath is the configuration file looked up when none is named.
const DefaultPath = "cambium.toml"

// Config is the top-level tool configuration.
type Config struct {
	Site       Site       `toml:"site"`
	Fetch      Fetch      `toml:"fetch"`
	Thresholds Thresholds `toml:"thresholds"`
}

// Site carries the default connection settings for single-site commands.
// Flags and environment variables take precedence over these.
type Site struct {
	URL         string `toml:"url"`
	Username    string `toml:"username"`
	AppPassword string `toml:"app_password"`
}

// Fetch shapes the snapshot stage.
type Fetch struct {
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	MediaPageSize     int     `toml:"media_page_size"`
}

// Thresholds overrides the classification and recommendation cutoffs.
// Zero values keep the stock audit defaults.
type Thresholds struct {
	WritingSampleSize     int     `toml:"writing_sample_size"`
	TopCategories         int     `toml:"top_categories"`
	TopTags               int     `toml:"top_tags"`
	TopPhrases            int     `toml:"top_phrases"`
	DominanceRatio        float64 `toml:"dominance_ratio"`
	ScriptCharThreshold   int     `toml:"script_char_threshold"`
	BigramMinCount        int     `toml:"bigram_min_count"`
	ReadingWordsPerMinute int     `toml:"reading_words_per_minute"`

	MinAvgWordCount            int     `toml:"min_avg_word_count"`
	MinPostCount               int     `toml:"min_post_count"`
	MinMetaDescriptionCoverage float64 `toml:"min_meta_description_coverage"`
	MinFeaturedImageCoverage   float64 `toml:"min_featured_image_coverage"`
	MinAltTextCoverage         float64 `toml:"min_alt_text_coverage"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Fetch: Fetch{
			TimeoutSeconds:    120,
			RequestsPerSecond: 4,
			MediaPageSize:     100,
		},
	}
}

// Load reads a TOML configuration file. A missing file is not an error:
// the defaults come back so the tool runs unconfigured.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Options maps the configuration onto audit options. Zero-valued fields
// stay zero; the audit backfills its own defaults.
func (c *Config) Options() cambium.Options {
	t := c.Thresholds

	return cambium.Options{
		WritingSampleSize: t.WritingSampleSize,
		TopCategories:     t.TopCategories,
		TopTags:           t.TopTags,
		TopPhrases:        t.TopPhrases,

		DominanceRatio:        t.DominanceRatio,
		ScriptCharThreshold:   t.ScriptCharThreshold,
		BigramMinCount:        t.BigramMinCount,
		ReadingWordsPerMinute: t.ReadingWordsPerMinute,

		MinAvgWordCount:            t.MinAvgWordCount,
		MinPostCount:               t.MinPostCount,
		MinMetaDescriptionCoverage: t.MinMetaDescriptionCoverage,
		MinFeaturedImageCoverage:   t.MinFeaturedImageCoverage,
		MinAltTextCoverage:         t.MinAltTextCoverage,

		FetchTimeout:  time.Duration(c.Fetch.TimeoutSeconds) * time.Second,
		MediaPageSize: c.Fetch.MediaPageSize,
	}
}
