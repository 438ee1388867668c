package structure

import (
	"regexp"
	"slices"
	"strings"

	"github.com/farcloser/cambium/internal/types"
)

// Slug synonyms for the standard site sections.
//
//nolint:gochecknoglobals // synonym tables, effectively const
var (
	homeSlugs    = []string{"home", "homepage", "main", "welcome"}
	blogSlugs    = []string{"blog", "news", "articles", "posts", "journal"}
	shopSlugs    = []string{"shop", "store", "products", "boutique"}
	contactSlugs = []string{"contact", "contact-us", "get-in-touch", "contacts"}
	aboutSlugs   = []string{"about", "about-us", "about-me", "our-story", "who-we-are"}
)

var datePathRe = regexp.MustCompile(`/\d{4}/\d{2}/`)

// Analyze builds the flat page hierarchy, detects standard sections, and
// infers the permalink structure from a single sample post link.
func Analyze(snapshot *types.Snapshot) *types.StructureResult {
	result := &types.StructureResult{
		TotalPages: len(snapshot.Pages),
		Hierarchy:  make([]types.PageNode, 0, len(snapshot.Pages)),
	}

	for _, page := range snapshot.Pages {
		// Depth is capped at one level: a page either has a parent or
		// it does not. Deeper ancestry is not resolved.
		depth := 0
		if page.Parent != 0 {
			depth = 1
		}

		if depth > result.MaxDepth {
			result.MaxDepth = depth
		}

		result.Hierarchy = append(result.Hierarchy, types.PageNode{
			Title: page.Title.Rendered,
			Slug:  page.Slug,
			Depth: depth,
		})

		switch {
		case slices.Contains(homeSlugs, page.Slug):
			result.Sections.Home = true
		case slices.Contains(blogSlugs, page.Slug):
			result.Sections.Blog = true
		case slices.Contains(shopSlugs, page.Slug):
			result.Sections.Shop = true
		case slices.Contains(contactSlugs, page.Slug):
			result.Sections.Contact = true
		case slices.Contains(aboutSlugs, page.Slug):
			result.Sections.About = true
		default:
		}
	}

	result.Permalink, result.SampleLink = inferPermalink(snapshot.Posts)

	return result
}

// inferPermalink inspects exactly one sample post link. This is a
// single-sample inference; sites with mixed structures resolve to whatever
// the first post shows.
func inferPermalink(posts []types.Post) (types.Permalink, string) {
	for _, post := range posts {
		if post.Link == "" {
			continue
		}

		switch {
		case datePathRe.MatchString(post.Link):
			return types.PermalinkDate, post.Link
		case strings.Contains(post.Link, "/category/"):
			return types.PermalinkCategory, post.Link
		default:
			return types.PermalinkPostname, post.Link
		}
	}

	return types.PermalinkPostname, ""
}
