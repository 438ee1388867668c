package technical

import (
	"regexp"
	"slices"
	"strings"

	"github.com/farcloser/cambium/internal/types"
)

type category struct {
	name  string
	match *regexp.Regexp
}

// Plugin categories in matching order: the first matching category wins, so
// a "WooCommerce SEO" plugin lands in SEO, not E-Commerce.
//
//nolint:gochecknoglobals // category table, effectively const
var categories = []category{
	{"SEO", regexp.MustCompile(`(?i)\bseo\b|yoast|rank math|seopress`)},
	{"Performance", regexp.MustCompile(`(?i)cach(e|ing)|optimiz|speed|performance|minif|lazy load`)},
	{"Security", regexp.MustCompile(`(?i)security|firewall|wordfence|sucuri|malware|limit login`)},
	{"Forms", regexp.MustCompile(`(?i)\bforms?\b|wpforms|gravity forms|ninja forms|formidable`)},
	{"E-Commerce", regexp.MustCompile(`(?i)woocommerce|commerce|\bshop\b|\bcart\b|payment|checkout`)},
	{"Analytics", regexp.MustCompile(`(?i)analytics|statistics|\bstats\b|tracking|monsterinsights`)},
	{"Backup", regexp.MustCompile(`(?i)backup|updraft|duplicator|migrat(e|ion)`)},
	{"Page Builder", regexp.MustCompile(`(?i)elementor|\bdivi\b|beaver|wpbakery|page builder`)},
	{"Multilingual", regexp.MustCompile(`(?i)wpml|polylang|translat|multilingual|weglot`)},
	{"Social", regexp.MustCompile(`(?i)social|\bshar(e|ing)\b|instagram|facebook|twitter`)},
	{"Media", regexp.MustCompile(`(?i)gallery|slider|\bimages?\b|photo|video|\bmedia\b`)},
}

const categoryOther = "Other"

// Analyze categorizes every active plugin and summarizes the theme
// inventory.
func Analyze(snapshot *types.Snapshot) *types.TechnicalResult {
	active := snapshot.ActivePlugins()

	result := &types.TechnicalResult{
		TotalPlugins:  len(snapshot.Plugins),
		ActivePlugins: len(active),
		Plugins:       make([]types.PluginInfo, 0, len(active)),
		TotalThemes:   len(snapshot.Themes),
	}

	if theme := snapshot.ActiveTheme(); theme != nil {
		result.ActiveTheme = theme.Name.Rendered
		if result.ActiveTheme == "" {
			result.ActiveTheme = theme.Stylesheet
		}
	}

	tally := map[string]int{}

	for _, plugin := range active {
		cat := categorize(plugin.Name)
		tally[cat]++

		result.Plugins = append(result.Plugins, types.PluginInfo{
			Name:     plugin.Name,
			Version:  plugin.Version,
			Category: cat,
		})
	}

	result.Categories = make([]types.CategoryCount, 0, len(tally))
	for name, count := range tally {
		result.Categories = append(result.Categories, types.CategoryCount{Category: name, Count: count})
	}

	slices.SortFunc(result.Categories, func(a, b types.CategoryCount) int {
		if d := b.Count - a.Count; d != 0 {
			return d
		}

		return strings.Compare(a.Category, b.Category)
	})

	return result
}

func categorize(name string) string {
	for _, entry := range categories {
		if entry.match.MatchString(name) {
			return entry.name
		}
	}

	return categoryOther
}
