// Package profile synthesizes the analyzer results into the site profile:
// three deterministic long-form text blocks plus structured summary fields,
// consumed as prompt material by downstream content generation.
package profile

import (
	"fmt"
	"math"
	"strings"
	"text/template"

	"github.com/farcloser/cambium/internal/types"
)

// SiteProfile is the synthesized site description. Rendering is
// deterministic: identical input produces byte-identical text, so the
// blocks are safe to regression-test against golden files.
type SiteProfile struct {
	SystemPrompt      string
	ContentGuidelines string
	SEOGuidelines     string

	// Structured summary fields.
	Niche      string
	Languages  []string
	Tone       string
	Categories []string
	Cadence    string
}

// Input carries the analyzer results the synthesis reads. Dimensions that
// were not run may be nil; their sections fall back to neutral defaults.
type Input struct {
	Site      types.Settings
	Content   *types.ContentResult
	Structure *types.StructureResult
	SEO       *types.SEOResult
	Design    *types.DesignResult
	Media     *types.MediaResult
	Writing   *types.WritingResult
	Language  *types.LanguageResult
	Technical *types.TechnicalResult
}

// ---------- templates ----------

var systemPromptTmpl = template.Must(template.New("system").Parse(
	`You are the staff writer for {{.SiteTitle}}, a {{.Niche}} website{{if .Tagline}} ("{{.Tagline}}"){{end}}.

Voice:
- Write in {{.LanguageName}}.{{if .OtherLanguages}} The site also publishes content in: {{.OtherLanguages}}.{{end}}
- Keep a {{.ToneWord}} tone throughout.
- Write in the {{.PerspectiveWord}}.{{if .RTL}}
- The site serves a right-to-left readership; keep formatting direction-neutral.{{end}}

Content shape:
- Aim for about {{.AvgWordCount}} words per article (site range {{.MinWordCount}}-{{.MaxWordCount}}).
- Keep sentences near {{.AvgSentenceWords}} words on average.{{if .UsesSubheadings}}
- Break long articles up with descriptive subheadings.{{end}}{{if .UsesLists}}
- Use bullet or numbered lists where they aid scanning.{{end}}{{if .PatternList}}
- Favor the formats the site already uses: {{.PatternList}}.{{end}}{{if .CommonPhrases}}
- Recurring site phrasing worth echoing: {{.CommonPhrases}}.{{end}}

Topics:
- Primary categories: {{.CategoryList}}.{{if .TagList}}
- Frequent tags: {{.TagList}}.{{end}}

Platform: {{.Platform}}.
`))

var contentGuidelinesTmpl = template.Must(template.New("content").Parse(
	`Content guidelines for {{.SiteTitle}}:

1. Length and pacing
   - Target length: about {{.AvgWordCount}} words ({{.ReadingTime}} minute read). Do not fall below {{.MinWordCount}} words.
   - {{.CadencePhrase}}

2. Structure
   - Open with a short hook paragraph, no heading.{{if .UsesSubheadings}}
   - Use H2 subheadings every few paragraphs; H3 only beneath an H2.{{else}}
   - Introduce subheadings sparingly; the site currently publishes continuous prose.{{end}}{{if .UsesLists}}
   - Convert enumerable advice into bullet or numbered lists.{{end}}{{if .EmbedsImages}}
   - Place at least one illustrative image per major section, with alt text.{{end}}

3. Voice
   - Tone: {{.ToneWord}}. Perspective: {{.PerspectiveWord}}.
   - Keep the readability easy: short sentences (about {{.AvgSentenceWords}} words) and plain vocabulary.{{if .UsesCTA}}
   - Close with a call to action, as existing posts do.{{end}}

4. Taxonomy
   - File every article under one of: {{.CategoryList}}.{{if .TagList}}
   - Reuse existing tags where they fit: {{.TagList}}.{{end}}

5. Keywords
   - Work the focus keyword into the first paragraph, one subheading, and the closing paragraph.
   - Mention the niche ({{.Niche}}) naturally; never stuff keywords.
`))

var seoGuidelinesTmpl = template.Must(template.New("seo").Parse(
	`SEO guidelines for {{.SiteTitle}}:

1. Titles and descriptions
   - Meta titles at most 60 characters, focus keyword near the front.
   - Meta descriptions 120-155 characters, one clear value proposition.{{if .SEOPlugin}}
   - Fill both through {{.SEOPlugin}} on every post (current description coverage: {{.MetaDescPct}}%).{{else}}
   - No SEO plugin is installed; set document titles and descriptions manually.{{end}}

2. URLs
   - Permalink structure: {{.Permalink}}
   - Slugs: lowercase, hyphenated, 3-6 words, focus keyword included.

3. Headings
   - Exactly one H1 (the title). H2 for sections, H3 for subsections; never skip levels.

4. Media
   - Set a featured image on every post (current usage: {{.FeaturedPct}}%).
   - Write descriptive alt text for every image (current coverage: {{.AltPct}}%).

5. Linking
   - Link to 2-4 related posts per article using descriptive anchor text.
   - Link out to one or two authoritative sources per claim-heavy section.

6. Plumbing{{if .HasSitemap}}
   - The sitemap is generated by the SEO plugin; no action needed per post.{{else}}
   - No sitemap generation detected; submit one manually to search consoles.{{end}}{{if .HasSchema}}
   - Structured data is emitted by the SEO plugin; keep article metadata complete.{{else}}
   - No structured-data support detected; add Article schema where possible.{{end}}
`))

// ---------- synthesis ----------

// Synthesize renders the three profile blocks and the structured summary
// from the analyzer results. Pure: no I/O, no randomness, no clock.
func Synthesize(in Input) *SiteProfile {
	data := buildData(in)

	prof := &SiteProfile{
		SystemPrompt:      render(systemPromptTmpl, data),
		ContentGuidelines: render(contentGuidelinesTmpl, data),
		SEOGuidelines:     render(seoGuidelinesTmpl, data),
		Niche:             data.Niche,
		Tone:              data.ToneWord,
		Cadence:           data.CadenceWord,
	}

	if in.Language != nil {
		prof.Languages = in.Language.Detected
	}

	if in.Content != nil {
		for _, rank := range in.Content.TopCategories {
			prof.Categories = append(prof.Categories, rank.Name)
		}
	}

	return prof
}

func render(tmpl *template.Template, data templateData) string {
	var b strings.Builder

	// The templates only dereference fields of a fully-populated value;
	// execution cannot fail.
	if err := tmpl.Execute(&b, data); err != nil {
		panic(err)
	}

	return b.String()
}

type templateData struct {
	SiteTitle string
	Tagline   string
	Niche     string

	LanguageName   string
	OtherLanguages string
	RTL            bool

	ToneWord        string
	PerspectiveWord string

	AvgWordCount     int
	MinWordCount     int
	MaxWordCount     int
	AvgSentenceWords int
	ReadingTime      int

	CadencePhrase string
	CadenceWord   string

	CategoryList  string
	TagList       string
	PatternList   string
	CommonPhrases string

	Platform string

	SEOPlugin   string
	MetaDescPct int
	FeaturedPct int
	AltPct      int
	Permalink   string
	HasSitemap  bool
	HasSchema   bool

	UsesSubheadings bool
	UsesLists       bool
	EmbedsImages    bool
	UsesCTA         bool
}

//nolint:cyclop // flat field-by-field assembly reads better than splitting
func buildData(in Input) templateData {
	data := templateData{
		SiteTitle:        "this site",
		Niche:            "General",
		LanguageName:     "English",
		ToneWord:         "professional",
		PerspectiveWord:  "voice the topic calls for",
		AvgWordCount:     800,
		MinWordCount:     500,
		MaxWordCount:     1500,
		AvgSentenceWords: 18,
		ReadingTime:      4,
		CadencePhrase:    cadencePhrase(types.CadenceUnknown),
		CadenceWord:      types.CadenceUnknown.String(),
		CategoryList:     "the site's established topics",
		Platform:         "WordPress",
		Permalink:        types.PermalinkPostname.String(),
	}

	if in.Site.Title != "" {
		data.SiteTitle = in.Site.Title
	}

	data.Tagline = in.Site.Description

	if c := in.Content; c != nil {
		data.Niche = c.Niche
		data.CadencePhrase = cadencePhrase(c.Cadence)
		data.CadenceWord = c.Cadence.String()

		if c.AvgWordCount > 0 {
			data.AvgWordCount = c.AvgWordCount
			data.MinWordCount = c.MinWordCount
			data.MaxWordCount = c.MaxWordCount
			data.ReadingTime = c.ReadingTimeMin
		}

		if names := categoryNames(c.TopCategories); len(names) > 0 {
			data.CategoryList = strings.Join(names, ", ")
		}

		data.TagList = strings.Join(tagNames(c.TopTags, 8), ", ")
		data.PatternList = strings.Join(patternNames(c.Patterns), ", ")
	}

	if w := in.Writing; w != nil {
		if w.Tone != types.ToneUnknown {
			data.ToneWord = w.Tone.String()
		}

		if w.Perspective != types.PerspectiveUnknown && w.Perspective != types.PerspectiveMixed {
			data.PerspectiveWord = w.Perspective.String()
		}

		if w.AvgSentenceWords > 0 {
			data.AvgSentenceWords = int(math.Round(w.AvgSentenceWords))
		}

		data.UsesSubheadings = w.UsesSubheadings
		data.UsesLists = w.UsesLists
		data.EmbedsImages = w.EmbedsImages
		data.UsesCTA = w.UsesCTA
		data.CommonPhrases = strings.Join(phraseList(w.CommonPhrases, 5), ", ")
	}

	if l := in.Language; l != nil {
		if l.PrimaryName != "" {
			data.LanguageName = l.PrimaryName
		}

		data.RTL = l.RTLSupport
		data.OtherLanguages = strings.Join(secondaryLanguages(l), ", ")
	}

	if s := in.SEO; s != nil {
		data.SEOPlugin = s.Plugin
		data.MetaDescPct = percent(s.MetaDescCoverage)
		data.HasSitemap = s.HasSitemap
		data.HasSchema = s.HasSchema
	}

	if m := in.Media; m != nil {
		data.FeaturedPct = percent(m.FeaturedImageUsage)
		data.AltPct = percent(m.AltTextCoverage)
	}

	if st := in.Structure; st != nil {
		data.Permalink = st.Permalink.String()
	}

	if d := in.Design; d != nil {
		platform := "WordPress"
		if d.Theme != "" {
			platform += ", theme " + d.Theme
		}

		if d.PageBuilder != "" {
			platform += ", built with " + d.PageBuilder
		}

		data.Platform = platform
	}

	return data
}

func cadencePhrase(cadence types.Cadence) string {
	switch cadence {
	case types.CadenceDaily:
		return "Publish new content daily; the site already sustains a daily rhythm."
	case types.CadenceWeekly:
		return "Publish new content weekly, matching the site's established rhythm."
	case types.CadenceMonthly:
		return "Publish new content at least monthly; the current cadence is slower than weekly."
	case types.CadenceUnknown:
	}

	return "Maintain a consistent publishing schedule."
}

func categoryNames(ranks []types.CategoryRank) []string {
	names := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		names = append(names, rank.Name)
	}

	return names
}

func tagNames(ranks []types.TagRank, limit int) []string {
	names := make([]string, 0, len(ranks))

	for _, rank := range ranks {
		if len(names) >= limit {
			break
		}

		names = append(names, rank.Name)
	}

	return names
}

func patternNames(patterns types.ContentPatterns) []string {
	var names []string

	if patterns.UsesListicles {
		names = append(names, "listicles")
	}

	if patterns.UsesHowTo {
		names = append(names, "how-to articles")
	}

	if patterns.UsesReviews {
		names = append(names, "reviews")
	}

	if patterns.UsesComparisons {
		names = append(names, "comparisons")
	}

	if patterns.UsesGuides {
		names = append(names, "in-depth guides")
	}

	if patterns.UsesNews {
		names = append(names, "news updates")
	}

	return names
}

func phraseList(phrases []types.PhraseCount, limit int) []string {
	list := make([]string, 0, limit)

	for _, phrase := range phrases {
		if len(list) >= limit {
			break
		}

		list = append(list, fmt.Sprintf("%q", phrase.Phrase))
	}

	return list
}

func secondaryLanguages(l *types.LanguageResult) []string {
	var others []string

	for _, code := range l.Detected {
		if code != l.Primary {
			others = append(others, code)
		}
	}

	return others
}

func percent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
