package cambium

import (
	"time"

	"github.com/farcloser/cambium/internal/audit/content"
	"github.com/farcloser/cambium/internal/audit/design"
	"github.com/farcloser/cambium/internal/audit/language"
	"github.com/farcloser/cambium/internal/audit/media"
	"github.com/farcloser/cambium/internal/audit/seo"
	"github.com/farcloser/cambium/internal/audit/structure"
	"github.com/farcloser/cambium/internal/audit/technical"
	"github.com/farcloser/cambium/internal/audit/writing"
	"github.com/farcloser/cambium/internal/profile"
	"github.com/farcloser/cambium/internal/types"
)

/*
Usage:

	snapshot, err := cambium.Snapshot(ctx, client, cambium.DefaultOptions())
	audit := cambium.Analyze(snapshot, cambium.DefaultOptions())
	fmt.Println(audit.Content.Niche)

	// Fetch and analyze in one step
	audit, err := cambium.Run(ctx, client, cambium.DefaultOptions())

	// Selected dimensions only
	opts := cambium.DefaultOptions()
	opts.Checks = cambium.CheckSEO | cambium.CheckMedia
	audit := cambium.Analyze(snapshot, opts)

	// Tighter editorial bar
	opts := cambium.DefaultOptions()
	opts.MinAvgWordCount = 1200
	opts.MinAltTextCoverage = 0.95
	audit := cambium.Analyze(snapshot, opts)

	// Iterate recommendations
	for _, rec := range audit.Recommendations {
	    fmt.Printf("[%s] %s\n", rec.Code, rec.Summary)
	}

	// Feed the profile to a generation pipeline
	prompt := audit.Profile.SystemPrompt
*/

// Check represents a high-level audit dimension.
type Check int

const (
	CheckContent Check = 1 << iota
	CheckStructure
	CheckSEO
	CheckDesign
	CheckMedia
	CheckWriting
	CheckLanguage
	CheckTechnical

	// Presets.
	ChecksAll = CheckContent | CheckStructure | CheckSEO | CheckDesign |
		CheckMedia | CheckWriting | CheckLanguage | CheckTechnical
)

func (c Check) String() string {
	switch c {
	case CheckContent:
		return "content"
	case CheckStructure:
		return "structure"
	case CheckSEO:
		return "seo"
	case CheckDesign:
		return "design"
	case CheckMedia:
		return "media"
	case CheckWriting:
		return "writing-style"
	case CheckLanguage:
		return "language"
	case CheckTechnical:
		return "technical"
	}

	return "unknown"
}

// Options configures the audit.
type Options struct {
	Checks Check // which dimensions to run (default: ChecksAll)

	// Corpus shaping.
	WritingSampleSize int // posts inspected for style (default 20)
	TopCategories     int // ranked categories kept (default 10)
	TopTags           int // ranked tags kept (default 15)
	TopPhrases        int // recurring phrases kept (default 10)

	// Classification thresholds.
	DominanceRatio        float64 // perspective wins above ratio x runner-up (default 2)
	ScriptCharThreshold   int     // chars a script must exceed to count as present (default 50)
	BigramMinCount        int     // phrase frequency floor (default 3)
	ReadingWordsPerMinute int     // reading-time estimate speed (default 200)

	// Recommendation thresholds.
	MinAvgWordCount            int     // default 800
	MinPostCount               int     // default 20
	MinMetaDescriptionCoverage float64 // default 0.5
	MinFeaturedImageCoverage   float64 // default 0.8
	MinAltTextCoverage         float64 // default 0.8

	// Fetch shaping (Snapshot and Run only).
	FetchTimeout  time.Duration // whole fetch stage budget (default 2m)
	MediaPageSize int           // newest media items fetched (default 100)
}

// DefaultOptions returns the stock audit configuration.
func DefaultOptions() Options {
	return Options{
		Checks: ChecksAll,

		WritingSampleSize: 20,
		TopCategories:     10,
		TopTags:           15,
		TopPhrases:        10,

		DominanceRatio:        2.0,
		ScriptCharThreshold:   50,
		BigramMinCount:        3,
		ReadingWordsPerMinute: 200,

		MinAvgWordCount:            800,
		MinPostCount:               20,
		MinMetaDescriptionCoverage: 0.5,
		MinFeaturedImageCoverage:   0.8,
		MinAltTextCoverage:         0.8,

		FetchTimeout:  2 * time.Minute,
		MediaPageSize: 100,
	}
}

// Meta identifies one audit run.
type Meta struct {
	ID          string        // run id, set by Run
	Site        string        // site base URL
	Title       string        // site title at audit time
	Version     string        // tool version, set by Run
	GeneratedAt time.Time     // set by Run
	Duration    time.Duration // fetch plus analysis, set by Run
	Checks      Check         // dimensions that ran

	// Degraded lists the collections that fell back to empty after a
	// fetch failure.
	Degraded []string
}

// Overview counts the corpus the audit ran over.
type Overview struct {
	Posts      int
	Drafts     int
	Pages      int
	MediaItems int
	Categories int
	Tags       int
	Users      int
	Plugins    int
	Themes     int
}

// Audit is the immutable aggregate of one audit run.
type Audit struct {
	Meta     Meta
	Overview Overview

	// Raw dimension results (nil if not requested).
	Content   *types.ContentResult
	Structure *types.StructureResult
	SEO       *types.SEOResult
	Design    *types.DesignResult
	Media     *types.MediaResult
	Writing   *types.WritingResult
	Language  *types.LanguageResult
	Technical *types.TechnicalResult

	Recommendations []Recommendation
	Profile         *profile.SiteProfile
}

// Analyze runs the selected dimensions over a snapshot, then derives the
// recommendations and the site profile. Pure: no I/O, no clock, no
// randomness; identical snapshots produce identical audits.
func Analyze(snapshot *types.Snapshot, opts Options) *Audit {
	if opts.Checks == 0 {
		opts.Checks = ChecksAll
	}

	applyDefaults(&opts)

	audit := &Audit{
		Meta: Meta{
			Site:     snapshot.Settings.URL,
			Title:    snapshot.Settings.Title,
			Checks:   opts.Checks,
			Degraded: snapshot.Degraded,
		},
		Overview: Overview{
			Posts:      len(snapshot.Posts),
			Drafts:     len(snapshot.Drafts),
			Pages:      len(snapshot.Pages),
			MediaItems: len(snapshot.Media),
			Categories: len(snapshot.Categories),
			Tags:       len(snapshot.Tags),
			Users:      len(snapshot.Users),
			Plugins:    len(snapshot.Plugins),
			Themes:     len(snapshot.Themes),
		},
	}

	if opts.Checks&CheckContent != 0 {
		audit.Content = content.Analyze(snapshot, content.Options{
			TopCategories: opts.TopCategories,
			TopTags:       opts.TopTags,
			ReadingWPM:    opts.ReadingWordsPerMinute,
		})
	}

	if opts.Checks&CheckStructure != 0 {
		audit.Structure = structure.Analyze(snapshot)
	}

	if opts.Checks&CheckSEO != 0 {
		audit.SEO = seo.Analyze(snapshot)
	}

	if opts.Checks&CheckDesign != 0 {
		audit.Design = design.Analyze(snapshot)
	}

	if opts.Checks&CheckMedia != 0 {
		audit.Media = media.Analyze(snapshot)
	}

	if opts.Checks&CheckWriting != 0 {
		audit.Writing = writing.Analyze(snapshot, writing.Options{
			SampleSize:     opts.WritingSampleSize,
			DominanceRatio: opts.DominanceRatio,
			BigramMinCount: opts.BigramMinCount,
			TopPhrases:     opts.TopPhrases,
		})
	}

	if opts.Checks&CheckLanguage != 0 {
		audit.Language = language.Analyze(snapshot, language.Options{
			ScriptCharThreshold: opts.ScriptCharThreshold,
		})
	}

	if opts.Checks&CheckTechnical != 0 {
		audit.Technical = technical.Analyze(snapshot)
	}

	audit.Recommendations = buildRecommendations(audit, opts)
	audit.Profile = profile.Synthesize(profile.Input{
		Site:      snapshot.Settings,
		Content:   audit.Content,
		Structure: audit.Structure,
		SEO:       audit.SEO,
		Design:    audit.Design,
		Media:     audit.Media,
		Writing:   audit.Writing,
		Language:  audit.Language,
		Technical: audit.Technical,
	})

	return audit
}

//nolint:cyclop // one branch per option field, same shape throughout
func applyDefaults(opts *Options) {
	defaults := DefaultOptions()

	if opts.WritingSampleSize == 0 {
		opts.WritingSampleSize = defaults.WritingSampleSize
	}

	if opts.TopCategories == 0 {
		opts.TopCategories = defaults.TopCategories
	}

	if opts.TopTags == 0 {
		opts.TopTags = defaults.TopTags
	}

	if opts.TopPhrases == 0 {
		opts.TopPhrases = defaults.TopPhrases
	}

	if opts.DominanceRatio == 0 {
		opts.DominanceRatio = defaults.DominanceRatio
	}

	if opts.ScriptCharThreshold == 0 {
		opts.ScriptCharThreshold = defaults.ScriptCharThreshold
	}

	if opts.BigramMinCount == 0 {
		opts.BigramMinCount = defaults.BigramMinCount
	}

	if opts.ReadingWordsPerMinute == 0 {
		opts.ReadingWordsPerMinute = defaults.ReadingWordsPerMinute
	}

	if opts.MinAvgWordCount == 0 {
		opts.MinAvgWordCount = defaults.MinAvgWordCount
	}

	if opts.MinPostCount == 0 {
		opts.MinPostCount = defaults.MinPostCount
	}

	if opts.MinMetaDescriptionCoverage == 0 {
		opts.MinMetaDescriptionCoverage = defaults.MinMetaDescriptionCoverage
	}

	if opts.MinFeaturedImageCoverage == 0 {
		opts.MinFeaturedImageCoverage = defaults.MinFeaturedImageCoverage
	}

	if opts.MinAltTextCoverage == 0 {
		opts.MinAltTextCoverage = defaults.MinAltTextCoverage
	}

	if opts.FetchTimeout == 0 {
		opts.FetchTimeout = defaults.FetchTimeout
	}

	if opts.MediaPageSize == 0 {
		opts.MediaPageSize = defaults.MediaPageSize
	}
}
