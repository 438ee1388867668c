// Package output provides shared audit serialization for cambium JSON output.
package output

import (
	"time"

	"github.com/farcloser/cambium"
	"github.com/farcloser/cambium/internal/types"
)

// AuditToMap converts an audit into the canonical map structure used for
// JSON and JSONL serialization.
func AuditToMap(audit *cambium.Audit) map[string]any {
	meta := map[string]any{
		"meta":     metaToMap(audit.Meta),
		"overview": overviewToMap(audit.Overview),
	}

	recommendations := make([]any, 0, len(audit.Recommendations))
	for _, rec := range audit.Recommendations {
		recommendations = append(recommendations, map[string]any{
			"check":   rec.Check.String(),
			"code":    rec.Code,
			"summary": rec.Summary,
		})
	}

	meta["recommendations"] = recommendations

	// Raw dimension results.
	if r := audit.Content; r != nil {
		meta["content"] = ContentToMap(r)
	}

	if r := audit.Structure; r != nil {
		hierarchy := make([]any, 0, len(r.Hierarchy))
		for _, node := range r.Hierarchy {
			hierarchy = append(hierarchy, map[string]any{
				"title": node.Title,
				"slug":  node.Slug,
				"depth": node.Depth,
			})
		}

		meta["structure"] = map[string]any{
			"total_pages": r.TotalPages,
			"hierarchy":   hierarchy,
			"max_depth":   r.MaxDepth,
			"sections": map[string]any{
				"home":    r.Sections.Home,
				"blog":    r.Sections.Blog,
				"shop":    r.Sections.Shop,
				"contact": r.Sections.Contact,
				"about":   r.Sections.About,
			},
			"permalink":   r.Permalink.String(),
			"sample_link": r.SampleLink,
		}
	}

	if r := audit.SEO; r != nil {
		meta["seo"] = map[string]any{
			"plugin":                 r.Plugin,
			"has_plugin":             r.HasPlugin,
			"meta_title_coverage":    r.MetaTitleCoverage,
			"meta_desc_coverage":     r.MetaDescCoverage,
			"focus_keyword_coverage": r.FocusKeywordCoverage,
			"sample_size":            r.SampleSize,
			"has_sitemap":            r.HasSitemap,
			"has_open_graph":         r.HasOpenGraph,
			"has_canonical":          r.HasCanonical,
			"has_schema":             r.HasSchema,
		}
	}

	if r := audit.Design; r != nil {
		meta["design"] = map[string]any{
			"theme":          r.Theme,
			"theme_version":  r.ThemeVersion,
			"is_child_theme": r.IsChildTheme,
			"page_builder":   r.PageBuilder,
			"uses_blocks":    r.UsesBlocks,
		}
	}

	if r := audit.Media; r != nil {
		meta["media"] = map[string]any{
			"total_items":          r.TotalItems,
			"images":               r.Images,
			"videos":               r.Videos,
			"other":                r.Other,
			"with_alt_text":        r.WithAltText,
			"without_alt_text":     r.WithoutAltText,
			"alt_text_coverage":    r.AltTextCoverage,
			"formats":              r.Formats,
			"has_webp":             r.HasWebP,
			"featured_image_usage": r.FeaturedImageUsage,
		}
	}

	if r := audit.Writing; r != nil {
		meta["writing"] = WritingToMap(r)
	}

	if r := audit.Language; r != nil {
		meta["language"] = map[string]any{
			"primary":             r.Primary,
			"primary_name":        r.PrimaryName,
			"detected":            r.Detected,
			"multilingual_plugin": r.MultilingualPlugin,
			"multilingual":        r.Multilingual,
			"rtl_support":         r.RTLSupport,
		}
	}

	if r := audit.Technical; r != nil {
		meta["technical"] = TechnicalToMap(r)
	}

	if p := audit.Profile; p != nil {
		meta["profile"] = map[string]any{
			"system_prompt":      p.SystemPrompt,
			"content_guidelines": p.ContentGuidelines,
			"seo_guidelines":     p.SEOGuidelines,
			"niche":              p.Niche,
			"languages":          p.Languages,
			"tone":               p.Tone,
			"categories":         p.Categories,
			"cadence":            p.Cadence,
		}
	}

	return meta
}

// ContentToMap converts content statistics to a map.
func ContentToMap(result *types.ContentResult) map[string]any {
	categories := make([]any, 0, len(result.TopCategories))
	for _, cat := range result.TopCategories {
		categories = append(categories, map[string]any{
			"name":    cat.Name,
			"count":   cat.Count,
			"percent": cat.Percent,
		})
	}

	tags := make([]any, 0, len(result.TopTags))
	for _, tag := range result.TopTags {
		tags = append(tags, map[string]any{
			"name":  tag.Name,
			"count": tag.Count,
		})
	}

	return map[string]any{
		"total_posts":       result.TotalPosts,
		"total_drafts":      result.TotalDrafts,
		"avg_word_count":    result.AvgWordCount,
		"min_word_count":    result.MinWordCount,
		"max_word_count":    result.MaxWordCount,
		"word_count_stddev": result.WordCountStdDev,
		"reading_time_min":  result.ReadingTimeMin,
		"top_categories":    categories,
		"top_tags":          tags,
		"niche":             result.Niche,
		"niche_score":       result.NicheScore,
		"patterns": map[string]any{
			"listicle_count":   result.Patterns.ListicleCount,
			"how_to_count":     result.Patterns.HowToCount,
			"review_count":     result.Patterns.ReviewCount,
			"comparison_count": result.Patterns.ComparisonCount,
			"guide_count":      result.Patterns.GuideCount,
			"news_count":       result.Patterns.NewsCount,
		},
		"posts_per_week": result.PostsPerWeek,
		"cadence":        result.Cadence.String(),
	}
}

// WritingToMap converts writing style findings to a map.
func WritingToMap(result *types.WritingResult) map[string]any {
	phrases := make([]any, 0, len(result.CommonPhrases))
	for _, phrase := range result.CommonPhrases {
		phrases = append(phrases, map[string]any{
			"phrase": phrase.Phrase,
			"count":  phrase.Count,
		})
	}

	return map[string]any{
		"sample_size":         result.SampleSize,
		"perspective":         result.Perspective.String(),
		"tone":                result.Tone.String(),
		"avg_sentence_words":  result.AvgSentenceWords,
		"avg_paragraph_words": result.AvgParagraphWords,
		"readability":         result.Readability,
		"common_phrases":      phrases,
		"uses_subheadings":    result.UsesSubheadings,
		"uses_lists":          result.UsesLists,
		"embeds_images":       result.EmbedsImages,
		"uses_cta":            result.UsesCTA,
	}
}

// TechnicalToMap converts the plugin and theme inventory to a map.
func TechnicalToMap(result *types.TechnicalResult) map[string]any {
	plugins := make([]any, 0, len(result.Plugins))
	for _, plugin := range result.Plugins {
		plugins = append(plugins, map[string]any{
			"name":     plugin.Name,
			"version":  plugin.Version,
			"category": plugin.Category,
		})
	}

	categories := make([]any, 0, len(result.Categories))
	for _, cat := range result.Categories {
		categories = append(categories, map[string]any{
			"category": cat.Category,
			"count":    cat.Count,
		})
	}

	return map[string]any{
		"total_plugins":  result.TotalPlugins,
		"active_plugins": result.ActivePlugins,
		"plugins":        plugins,
		"categories":     categories,
		"total_themes":   result.TotalThemes,
		"active_theme":   result.ActiveTheme,
	}
}

func metaToMap(meta cambium.Meta) map[string]any {
	checks := make([]string, 0, 8)

	for _, check := range []cambium.Check{
		cambium.CheckContent, cambium.CheckStructure, cambium.CheckSEO,
		cambium.CheckDesign, cambium.CheckMedia, cambium.CheckWriting,
		cambium.CheckLanguage, cambium.CheckTechnical,
	} {
		if meta.Checks&check != 0 {
			checks = append(checks, check.String())
		}
	}

	degraded := make([]string, 0, len(meta.Degraded))
	degraded = append(degraded, meta.Degraded...)

	out := map[string]any{
		"site":     meta.Site,
		"title":    meta.Title,
		"checks":   checks,
		"degraded": degraded,
	}

	// Identity fields are stamped by Run; a bare Analyze leaves them zero.
	if meta.ID != "" {
		out["id"] = meta.ID
		out["version"] = meta.Version
		out["generated_at"] = meta.GeneratedAt.Format(time.RFC3339)
		out["duration_ms"] = meta.Duration.Milliseconds()
	}

	return out
}

func overviewToMap(overview cambium.Overview) map[string]any {
	return map[string]any{
		"posts":       overview.Posts,
		"drafts":      overview.Drafts,
		"pages":       overview.Pages,
		"media_items": overview.MediaItems,
		"categories":  overview.Categories,
		"tags":        overview.Tags,
		"users":       overview.Users,
		"plugins":     overview.Plugins,
		"themes":      overview.Themes,
	}
}
