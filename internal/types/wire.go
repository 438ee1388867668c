package types

// Rendered is the WordPress REST wrapper around rendered HTML fields.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Post is a WordPress post as returned by /wp/v2/posts.
// Only the fields the audit reads are decoded.
type Post struct {
	ID            int      `json:"id"`
	Date          string   `json:"date"` // site-local ISO 8601, no zone
	Link          string   `json:"link"`
	Status        string   `json:"status"`
	Title         Rendered `json:"title"`
	Content       Rendered `json:"content"`
	Categories    []int    `json:"categories"`
	Tags          []int    `json:"tags"`
	FeaturedMedia int      `json:"featured_media"`

	// SEO plugin payloads. Whichever plugin is installed decorates the
	// post with its own block; absent blocks decode to nil maps.
	YoastHead map[string]any `json:"yoast_head_json"`
	RankMath  map[string]any `json:"rank_math"`
	Meta      map[string]any `json:"meta"`
}

// Page is a WordPress page as returned by /wp/v2/pages.
type Page struct {
	ID     int      `json:"id"`
	Parent int      `json:"parent"`
	Slug   string   `json:"slug"`
	Link   string   `json:"link"`
	Title  Rendered `json:"title"`
}

// MediaItem is a WordPress attachment as returned by /wp/v2/media.
type MediaItem struct {
	ID        int    `json:"id"`
	MediaType string `json:"media_type"` // "image", "video", "file"
	MimeType  string `json:"mime_type"`
	AltText   string `json:"alt_text"`
	SourceURL string `json:"source_url"`
}

// Term is a category or tag as returned by /wp/v2/categories and /wp/v2/tags.
type Term struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"` // posts associated with the term
}

// User is a site author as returned by /wp/v2/users.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Plugin is an installed plugin as returned by /wp/v2/plugins.
type Plugin struct {
	Plugin  string `json:"plugin"` // path id, e.g. "elementor/elementor"
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"` // "active" or "inactive"
}

// Theme is an installed theme as returned by /wp/v2/themes.
type Theme struct {
	Stylesheet string   `json:"stylesheet"`
	Template   string   `json:"template"` // parent stylesheet for child themes
	Name       Rendered `json:"name"`
	Version    string   `json:"version"`
	Status     string   `json:"status"` // "active" or "inactive"
}

// Settings are the site-wide options from /wp/v2/settings.
type Settings struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Language     string `json:"language"` // locale code, e.g. "en-US"
	Timezone     string `json:"timezone_string"`
	PostsPerPage int    `json:"posts_per_page"`
}

// StatusActive is the REST status value for active plugins and themes.
const StatusActive = "active"

// Snapshot is the immutable bundle of fetched collections an audit runs
// over. It is built once per audit; a collection whose fetch failed is its
// empty default, so analyzers never see nil-vs-missing distinctions.
type Snapshot struct {
	Settings   Settings
	Posts      []Post // published only
	Drafts     []Post
	Pages      []Page
	Media      []MediaItem
	Categories []Term
	Tags       []Term
	Users      []User
	Plugins    []Plugin
	Themes     []Theme

	// Degraded lists the collections that fell back to empty after a
	// fetch failure, for fidelity reporting.
	Degraded []string
}

// ActivePlugins returns the plugins with an active status.
func (s *Snapshot) ActivePlugins() []Plugin {
	active := make([]Plugin, 0, len(s.Plugins))

	for _, plugin := range s.Plugins {
		if plugin.Status == StatusActive {
			active = append(active, plugin)
		}
	}

	return active
}

// ActiveTheme returns the active theme record, or nil if none was fetched.
func (s *Snapshot) ActiveTheme() *Theme {
	for i := range s.Themes {
		if s.Themes[i].Status == StatusActive {
			return &s.Themes[i]
		}
	}

	return nil
}

// SEOMeta is the normalized SEO metadata of a post, resolved from whichever
// provider block the post carries.
type SEOMeta struct {
	Title        string
	Description  string
	FocusKeyword string
}

// Custom-meta fields written by the known SEO plugins, in the same priority
// order as plugin detection (Yoast, Rank Math, All in One, SEOPress).
//
//nolint:gochecknoglobals // capability tables, effectively const
var (
	metaTitleKeys = []string{
		"_yoast_wpseo_title", "rank_math_title", "_aioseo_title", "_seopress_titles_title",
	}
	metaDescKeys = []string{
		"_yoast_wpseo_metadesc", "rank_math_description", "_aioseo_description", "_seopress_titles_desc",
	}
	metaKeywordKeys = []string{
		"_yoast_wpseo_focuskw", "rank_math_focus_keyword", "_seopress_analysis_target_kw",
	}
)

// SEO resolves the post's SEO metadata by trying each known provider shape
// in a fixed priority order: the Yoast head block, the Rank Math block,
// then raw custom-meta fields.
func (p *Post) SEO() SEOMeta {
	return SEOMeta{
		Title:        p.seoField("title", "title", metaTitleKeys),
		Description:  p.seoField("description", "description", metaDescKeys),
		FocusKeyword: p.seoField("", "focus_keyword", metaKeywordKeys),
	}
}

func (p *Post) seoField(yoastKey, rankKey string, metaKeys []string) string {
	if yoastKey != "" {
		if v := stringField(p.YoastHead, yoastKey); v != "" {
			return v
		}
	}

	if v := stringField(p.RankMath, rankKey); v != "" {
		return v
	}

	return stringField(p.Meta, metaKeys...)
}

func stringField(block map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := block[key].(string); ok && v != "" {
			return v
		}
	}

	return ""
}
