package seo

import (
	"strings"

	"github.com/farcloser/cambium/internal/types"
)

type provider struct {
	name  string
	match string // matched case-insensitively against plugin names
}

// Known SEO plugins in detection priority order: the first active plugin
// matching wins.
//
//nolint:gochecknoglobals // provider table, effectively const
var providers = []provider{
	{"Yoast SEO", "yoast"},
	{"Rank Math", "rank math"},
	{"All in One SEO", "all in one seo"},
	{"SEOPress", "seopress"},
}

// Analyze detects the installed SEO plugin and measures metadata coverage
// over the published posts.
func Analyze(snapshot *types.Snapshot) *types.SEOResult {
	result := &types.SEOResult{
		SampleSize: len(snapshot.Posts),
	}

	active := snapshot.ActivePlugins()

	for _, candidate := range providers {
		for _, plugin := range active {
			if strings.Contains(strings.ToLower(plugin.Name), candidate.match) {
				result.Plugin = candidate.name
				result.HasPlugin = true

				break
			}
		}

		if result.HasPlugin {
			break
		}
	}

	// A detected plugin implies these capabilities. They are not verified
	// against the live site.
	if result.HasPlugin {
		result.HasSitemap = true
		result.HasOpenGraph = true
		result.HasCanonical = true
		result.HasSchema = true
	}

	var titles, descriptions, keywords int

	for _, post := range snapshot.Posts {
		meta := post.SEO()

		if meta.Title != "" {
			titles++
		}

		if meta.Description != "" {
			descriptions++
		}

		if meta.FocusKeyword != "" {
			keywords++
		}
	}

	if total := len(snapshot.Posts); total > 0 {
		result.MetaTitleCoverage = float64(titles) / float64(total)
		result.MetaDescCoverage = float64(descriptions) / float64(total)
		result.FocusKeywordCoverage = float64(keywords) / float64(total)
	}

	return result
}
