//nolint:wrapcheck
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/cambium"
	"github.com/farcloser/cambium/internal/output"
)

func outputAudit(site string, audit *cambium.Audit, formatName string, debug bool) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	var meta map[string]any
	if debug {
		meta = output.AuditToMap(audit)
	} else {
		meta = buildFriendlyOutput(audit)
	}

	data := &format.Data{
		Object: site,
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}

// buildFriendlyOutput creates a user-friendly summary of the audit.
func buildFriendlyOutput(audit *cambium.Audit) map[string]any {
	meta := map[string]any{
		"summary": fmt.Sprintf("%d recommendations (%d posts, %d pages audited)",
			len(audit.Recommendations), audit.Overview.Posts, audit.Overview.Pages),
	}

	if len(audit.Meta.Degraded) > 0 {
		meta["degraded"] = fmt.Sprintf("partial audit: %s could not be fetched",
			strings.Join(audit.Meta.Degraded, ", "))
	}

	props := buildProperties(audit)
	if len(props) > 0 {
		meta["properties"] = props
	}

	if len(audit.Recommendations) > 0 {
		recommendations := make([]any, 0, len(audit.Recommendations))
		for _, rec := range audit.Recommendations {
			recommendations = append(recommendations,
				fmt.Sprintf("[%s] %s: %s", rec.Check, rec.Code, rec.Summary))
		}

		meta["recommendations"] = recommendations
	}

	return meta
}

func buildProperties(audit *cambium.Audit) map[string]any {
	props := make(map[string]any)

	if r := audit.Content; r != nil {
		props["niche"] = fmt.Sprintf("%s (score: %d)", r.Niche, r.NicheScore)
		props["content"] = fmt.Sprintf("%d posts, avg %d words, %s cadence",
			r.TotalPosts, r.AvgWordCount, r.Cadence)
	}

	if r := audit.Structure; r != nil {
		props["structure"] = fmt.Sprintf("%d pages, permalinks %s", r.TotalPages, r.Permalink)
	}

	if r := audit.SEO; r != nil {
		plugin := r.Plugin
		if !r.HasPlugin {
			plugin = "none"
		}

		props["seo"] = fmt.Sprintf("plugin: %s, meta descriptions: %.0f%%",
			plugin, r.MetaDescCoverage*100)
	}

	if r := audit.Design; r != nil {
		theme := r.Theme
		if r.IsChildTheme {
			theme += " (child theme)"
		}

		props["design"] = fmt.Sprintf("theme: %s, builder: %s", theme, r.PageBuilder)
	}

	if r := audit.Media; r != nil {
		props["media"] = fmt.Sprintf("%d items (%d images), alt text: %.0f%%",
			r.TotalItems, r.Images, r.AltTextCoverage*100)
	}

	if r := audit.Writing; r != nil {
		props["writing"] = fmt.Sprintf("%s, %s tone, readability %.0f",
			r.Perspective, r.Tone, r.Readability)
	}

	if r := audit.Language; r != nil {
		lang := r.PrimaryName
		if r.Multilingual {
			lang = fmt.Sprintf("%s (+%s)", lang, strings.Join(r.Detected, ", "))
		}

		props["language"] = lang
	}

	if r := audit.Technical; r != nil {
		props["technical"] = fmt.Sprintf("%d active plugins, theme: %s",
			r.ActivePlugins, r.ActiveTheme)
	}

	return props
}
