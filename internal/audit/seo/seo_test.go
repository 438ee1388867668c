package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/cambium/internal/types"
)

// ---------- fixtures ----------

func plugin(name, status string) types.Plugin {
	return types.Plugin{Name: name, Status: status}
}

func yoastPost(title, desc string) types.Post {
	head := map[string]any{}
	if title != "" {
		head["title"] = title
	}

	if desc != "" {
		head["description"] = desc
	}

	return types.Post{YoastHead: head}
}

// ---------- tests ----------

func TestAnalyzeDetectsActivePlugin(t *testing.T) {
	snapshot := &types.Snapshot{
		Plugins: []types.Plugin{plugin("Yoast SEO Premium", types.StatusActive)},
	}

	result := Analyze(snapshot)
	require.NotNil(t, result)

	assert.Equal(t, "Yoast SEO", result.Plugin)
	assert.True(t, result.HasPlugin)
	assert.True(t, result.HasSitemap)
	assert.True(t, result.HasOpenGraph)
	assert.True(t, result.HasCanonical)
	assert.True(t, result.HasSchema)
}

func TestAnalyzeIgnoresInactivePlugins(t *testing.T) {
	snapshot := &types.Snapshot{
		Plugins: []types.Plugin{plugin("Yoast SEO", "inactive")},
	}

	result := Analyze(snapshot)

	assert.Empty(t, result.Plugin)
	assert.False(t, result.HasPlugin)
	assert.False(t, result.HasSitemap)
}

func TestAnalyzeProviderPriority(t *testing.T) {
	// Yoast outranks Rank Math regardless of install order.
	snapshot := &types.Snapshot{
		Plugins: []types.Plugin{
			plugin("Rank Math SEO", types.StatusActive),
			plugin("Yoast SEO", types.StatusActive),
		},
	}

	result := Analyze(snapshot)

	assert.Equal(t, "Yoast SEO", result.Plugin)
}

func TestAnalyzeCoverageFromYoastHead(t *testing.T) {
	snapshot := &types.Snapshot{
		Posts: []types.Post{
			yoastPost("Title One", "Desc one"),
			yoastPost("Title Two", ""),
			yoastPost("", ""),
			{},
		},
	}

	result := Analyze(snapshot)

	assert.Equal(t, 4, result.SampleSize)
	assert.InDelta(t, 0.5, result.MetaTitleCoverage, 1e-9)
	assert.InDelta(t, 0.25, result.MetaDescCoverage, 1e-9)
	assert.Zero(t, result.FocusKeywordCoverage)
}

func TestAnalyzeCoverageFallsBackThroughProviders(t *testing.T) {
	snapshot := &types.Snapshot{
		Posts: []types.Post{
			{RankMath: map[string]any{
				"title":         "RM Title",
				"description":   "RM Desc",
				"focus_keyword": "slow travel",
			}},
			{Meta: map[string]any{
				"_yoast_wpseo_metadesc": "Custom-meta desc",
				"_yoast_wpseo_focuskw":  "hidden gems",
			}},
		},
	}

	result := Analyze(snapshot)

	assert.InDelta(t, 0.5, result.MetaTitleCoverage, 1e-9)
	assert.InDelta(t, 1.0, result.MetaDescCoverage, 1e-9)
	assert.InDelta(t, 1.0, result.FocusKeywordCoverage, 1e-9)
}

func TestAnalyzeWithoutPostsReportsZeroCoverage(t *testing.T) {
	result := Analyze(&types.Snapshot{})

	assert.Zero(t, result.SampleSize)
	assert.Zero(t, result.MetaTitleCoverage)
	assert.Zero(t, result.MetaDescCoverage)
	assert.Zero(t, result.FocusKeywordCoverage)
}
