// Package types holds the WordPress wire shapes and the per-dimension
// audit result value objects shared between the analyzers and consumers.
package types

/*
Publish Cadence Interpretation

Cadence is classified from the average number of posts per week across the
span between the oldest and newest published post:

	| Posts/week | Cadence  |
	|------------|----------|
	| >= 7       | daily    |
	| 1 to <7    | weekly   |
	| < 1        | monthly  |

Fewer than two dated posts leave the cadence unknown (no span to measure).
*/

// Cadence is the publish-frequency classification of a site.
type Cadence int

const (
	CadenceUnknown Cadence = iota
	CadenceDaily
	CadenceWeekly
	CadenceMonthly
)

func (c Cadence) String() string {
	switch c {
	case CadenceDaily:
		return "daily"
	case CadenceWeekly:
		return "weekly"
	case CadenceMonthly:
		return "monthly"
	case CadenceUnknown:
	}

	return "unknown"
}

// CategoryRank is a category ranked by post association.
type CategoryRank struct {
	Name    string
	Count   int     // posts referencing the category
	Percent float64 // Count as a share of total posts, 0-100
}

// TagRank is a tag ranked by usage count.
type TagRank struct {
	Name  string
	Count int
}

// ContentPatterns flags the title conventions found in the corpus, with the
// number of matching titles per convention.
type ContentPatterns struct {
	UsesListicles   bool
	UsesHowTo       bool
	UsesReviews     bool
	UsesComparisons bool
	UsesGuides      bool
	UsesNews        bool

	ListicleCount   int
	HowToCount      int
	ReviewCount     int
	ComparisonCount int
	GuideCount      int
	NewsCount       int
}

// ContentResult contains corpus-level content statistics.
type ContentResult struct {
	TotalPosts  int
	TotalDrafts int

	// Word statistics over stripped post bodies.
	AvgWordCount    int
	MinWordCount    int
	MaxWordCount    int
	WordCountStdDev float64
	ReadingTimeMin  int // ceil(AvgWordCount / reading speed)

	TopCategories []CategoryRank
	TopTags       []TagRank

	// Niche classification. Score is the keyword-hit total of the
	// winning niche; zero means no keyword matched and the niche
	// defaulted to "General".
	Niche      string
	NicheScore int

	Patterns ContentPatterns

	PostsPerWeek float64
	Cadence      Cadence
}

// Permalink is the inferred URL structure of a site.
type Permalink int

const (
	PermalinkPostname Permalink = iota // /%postname%/ (default)
	PermalinkCategory                  // /%category%/%postname%/
	PermalinkDate                      // /%year%/%monthnum%/%postname%/
)

func (p Permalink) String() string {
	switch p {
	case PermalinkCategory:
		return "/%category%/%postname%/"
	case PermalinkDate:
		return "/%year%/%monthnum%/%postname%/"
	case PermalinkPostname:
	}

	return "/%postname%/"
}

// PageNode is one page in the flattened hierarchy.
// Depth is 1 when the page has a parent, else 0. This is a single-level
// heuristic, not a recursive depth computation.
type PageNode struct {
	Title string
	Slug  string
	Depth int
}

// SectionFlags records which standard site sections exist, matched by slug
// synonyms.
type SectionFlags struct {
	Home    bool
	Blog    bool
	Shop    bool
	Contact bool
	About   bool
}

// StructureResult contains page hierarchy and URL convention findings.
type StructureResult struct {
	TotalPages int
	Hierarchy  []PageNode
	MaxDepth   int
	Sections   SectionFlags

	// Permalink is inferred from a single sample post link; SampleLink
	// is the link inspected (empty when no post was available and the
	// default structure was assumed).
	Permalink  Permalink
	SampleLink string
}

/*
Coverage Ratio Guidelines

Coverage ratios are proportions in 0-1 over the inspected posts or images.

	| Coverage  | Reading                                  |
	|-----------|------------------------------------------|
	| >= 0.8    | Healthy. Maintained deliberately.        |
	| 0.5-0.8   | Partial. Adopted late or inconsistently. |
	| < 0.5     | Poor. Worth a recommendation.            |

The default recommendation cutoffs are 0.5 for meta descriptions and 0.8
for featured images and alt text.
*/

// SEOResult contains SEO plugin detection and metadata coverage.
type SEOResult struct {
	Plugin    string // detected provider name, "" if none
	HasPlugin bool

	// Coverage over published posts, resolved through the provider
	// priority accessor (Yoast block, Rank Math block, custom meta).
	MetaTitleCoverage    float64
	MetaDescCoverage     float64
	FocusKeywordCoverage float64
	SampleSize           int

	// Capabilities implied by the detected plugin, not independently
	// verified against the live site.
	HasSitemap   bool
	HasOpenGraph bool
	HasCanonical bool
	HasSchema    bool
}

// DesignResult contains theme and page-builder findings.
type DesignResult struct {
	Theme        string
	ThemeVersion string
	IsChildTheme bool // active stylesheet differs from its template

	// PageBuilder is resolved from plugin names in a fixed order, then
	// from block-editor markup signatures in post bodies.
	PageBuilder string
	UsesBlocks  bool
}

// MediaResult contains the media inventory health findings.
type MediaResult struct {
	TotalItems int
	Images     int
	Videos     int
	Other      int

	WithAltText     int
	WithoutAltText  int
	AltTextCoverage float64 // images with non-empty alt text / images, 0-1

	Formats []string // distinct MIME types, sorted
	HasWebP bool

	// FeaturedImageUsage is the share of published posts with a non-zero
	// featured media id, 0-1.
	FeaturedImageUsage float64
}

// Perspective is the dominant grammatical person of the corpus.
type Perspective int

const (
	PerspectiveUnknown Perspective = iota
	PerspectiveFirst
	PerspectiveSecond
	PerspectiveThird
	PerspectiveMixed
)

func (p Perspective) String() string {
	switch p {
	case PerspectiveFirst:
		return "first-person"
	case PerspectiveSecond:
		return "second-person"
	case PerspectiveThird:
		return "third-person"
	case PerspectiveMixed:
		return "mixed"
	case PerspectiveUnknown:
	}

	return "unknown"
}

// Tone is the overall register of the writing.
type Tone int

const (
	ToneUnknown Tone = iota
	ToneFormal
	ToneCasual
	ToneFriendly
	ToneProfessional
)

func (t Tone) String() string {
	switch t {
	case ToneFormal:
		return "formal"
	case ToneCasual:
		return "casual"
	case ToneFriendly:
		return "friendly"
	case ToneProfessional:
		return "professional"
	case ToneUnknown:
	}

	return "unknown"
}

// PhraseCount is a recurring word bigram with its occurrence count.
type PhraseCount struct {
	Phrase string
	Count  int
}

/*
Writing Style Interpretation

## Perspective and Tone

Both classifications use marker-word counting with a dominance ratio
(default 2x). A class wins only when its count exceeds the runner-up by
more than the ratio; otherwise perspective falls back to "mixed" and tone
to "professional".

## Readability

Readability is a simplified Flesch reading ease:

	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)

with syllables approximated as words x 1.5. The approximation is a
deliberate placeholder, not a real syllable counter; scores are comparable
between runs of this tool but not against published Flesch tables.

	| Score   | Reading                    |
	|---------|----------------------------|
	| >= 70   | Easy, conversational       |
	| 50-70   | Standard web writing       |
	| 30-50   | Dense, long sentences      |
	| < 30    | Academic or poorly edited  |
*/

// WritingResult contains writing style findings over the post sample.
type WritingResult struct {
	SampleSize int // posts inspected

	Perspective Perspective
	Tone        Tone

	AvgSentenceWords  float64
	AvgParagraphWords float64
	Readability       float64

	CommonPhrases []PhraseCount // bigrams at or above the frequency floor, most frequent first

	UsesSubheadings bool
	UsesLists       bool
	EmbedsImages    bool
	UsesCTA         bool
}

// LanguageResult contains language and script findings.
type LanguageResult struct {
	Primary     string // base code from the site locale, e.g. "ar"
	PrimaryName string // display name, e.g. "Arabic"

	// Detected lists the primary language plus every script whose
	// character count across post bodies exceeded the detection
	// threshold, as base codes.
	Detected []string

	MultilingualPlugin string // detected provider name, "" if none
	Multilingual       bool
	RTLSupport         bool
}

// PluginInfo is an active plugin with its resolved category.
type PluginInfo struct {
	Name     string
	Version  string
	Category string
}

// CategoryCount is a plugin category with the number of active plugins in it.
type CategoryCount struct {
	Category string
	Count    int
}

// TechnicalResult contains the plugin and theme inventory breakdown.
type TechnicalResult struct {
	TotalPlugins  int
	ActivePlugins int
	Plugins       []PluginInfo    // active plugins, input order
	Categories    []CategoryCount // by descending count, then name

	TotalThemes int
	ActiveTheme string
}
