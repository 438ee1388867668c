package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/farcloser/primordium/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- fixtures ----------

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// ---------- tests ----------

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 120, cfg.Fetch.TimeoutSeconds)
	assert.InDelta(t, 4.0, cfg.Fetch.RequestsPerSecond, 1e-9)
	assert.Equal(t, 100, cfg.Fetch.MediaPageSize)
}

func TestLoadParsesToml(t *testing.T) {
	path := writeFile(t, "cambium.toml", `
[site]
url = "https://wanderoften.example"
username = "auditor"
app_password = "xxxx yyyy zzzz"

[fetch]
timeout_seconds = 30
requests_per_second = 2.5

[thresholds]
min_avg_word_count = 1200
min_alt_text_coverage = 0.95
top_tags = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://wanderoften.example", cfg.Site.URL)
	assert.Equal(t, "auditor", cfg.Site.Username)
	assert.Equal(t, "xxxx yyyy zzzz", cfg.Site.AppPassword)

	assert.Equal(t, 30, cfg.Fetch.TimeoutSeconds)
	assert.InDelta(t, 2.5, cfg.Fetch.RequestsPerSecond, 1e-9)
	assert.Equal(t, 100, cfg.Fetch.MediaPageSize) // untouched default

	assert.Equal(t, 1200, cfg.Thresholds.MinAvgWordCount)
	assert.InDelta(t, 0.95, cfg.Thresholds.MinAltTextCoverage, 1e-9)
	assert.Equal(t, 5, cfg.Thresholds.TopTags)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := writeFile(t, "broken.toml", "[site\nurl =")

	cfg, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestOptionsMapsThresholds(t *testing.T) {
	cfg := Default()
	cfg.Fetch.TimeoutSeconds = 45
	cfg.Fetch.MediaPageSize = 50
	cfg.Thresholds.MinAvgWordCount = 1200
	cfg.Thresholds.TopPhrases = 3

	opts := cfg.Options()

	assert.Equal(t, 45*time.Second, opts.FetchTimeout)
	assert.Equal(t, 50, opts.MediaPageSize)
	assert.Equal(t, 1200, opts.MinAvgWordCount)
	assert.Equal(t, 3, opts.TopPhrases)

	// Unset cutoffs stay zero for the audit to backfill.
	assert.Zero(t, opts.MinPostCount)
	assert.Zero(t, opts.DominanceRatio)
}

func TestLoadSites(t *testing.T) {
	path := writeFile(t, "sites.yaml", `
sites:
  - name: wander
    url: https://wanderoften.example
    username: auditor
    app_password: "xxxx yyyy"
  - url: https://second.example
`)

	sites, err := LoadSites(path)
	require.NoError(t, err)
	require.Len(t, sites, 2)

	assert.Equal(t, "wander", sites[0].Name)
	assert.Equal(t, "https://wanderoften.example", sites[0].URL)
	assert.Equal(t, "auditor", sites[0].Username)

	// Missing names fall back to the URL.
	assert.Equal(t, "https://second.example", sites[1].Name)
}

func TestLoadSitesRequiresURL(t *testing.T) {
	path := writeFile(t, "sites.yaml", `
sites:
  - name: nameless
`)

	_, err := LoadSites(path)

	require.ErrorIs(t, err, fault.ErrMissingRequirements)
}

func TestLoadSitesRejectsEmptyInventory(t *testing.T) {
	path := writeFile(t, "sites.yaml", "sites: []\n")

	_, err := LoadSites(path)

	require.ErrorIs(t, err, fault.ErrMissingRequirements)
}

func TestLoadSitesMissingFile(t *testing.T) {
	_, err := LoadSites(filepath.Join(t.TempDir(), "absent.yaml"))

	require.ErrorIs(t, err, fault.ErrReadFailure)
}
