package design

import (
	"strings"

	"github.com/farcloser/cambium/internal/types"
)

type builder struct {
	name  string
	match string // matched case-insensitively against plugin names
}

// Known page builders in detection priority order.
//
//nolint:gochecknoglobals // builder table, effectively const
var builders = []builder{
	{"Elementor", "elementor"},
	{"Divi", "divi"},
	{"Beaver Builder", "beaver"},
	{"WPBakery", "wpbakery"},
}

// Block-editor markup signatures left in rendered post bodies.
//
//nolint:gochecknoglobals // signature table, effectively const
var blockSignatures = []string{"<!-- wp:", "wp-block-"}

// Analyze resolves the active theme record and infers the page builder,
// first from plugin names, then from block-editor signatures in post bodies.
func Analyze(snapshot *types.Snapshot) *types.DesignResult {
	result := &types.DesignResult{}

	if theme := snapshot.ActiveTheme(); theme != nil {
		result.Theme = theme.Name.Rendered
		if result.Theme == "" {
			result.Theme = theme.Stylesheet
		}

		result.ThemeVersion = theme.Version
		result.IsChildTheme = theme.Template != "" && theme.Template != theme.Stylesheet
	}

	active := snapshot.ActivePlugins()

	for _, candidate := range builders {
		for _, plugin := range active {
			if strings.Contains(strings.ToLower(plugin.Name), candidate.match) {
				result.PageBuilder = candidate.name

				break
			}
		}

		if result.PageBuilder != "" {
			break
		}
	}

	result.UsesBlocks = usesBlockMarkup(snapshot.Posts)

	if result.PageBuilder == "" && result.UsesBlocks {
		result.PageBuilder = "Gutenberg"
	}

	return result
}

func usesBlockMarkup(posts []types.Post) bool {
	for _, post := range posts {
		for _, signature := range blockSignatures {
			if strings.Contains(post.Content.Rendered, signature) {
				return true
			}
		}
	}

	return false
}
