package content

import (
	"math"
	"regexp"
	"slices"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/cambium/internal/audit/shared"
	"github.com/farcloser/cambium/internal/types"
)

type Options struct {
	TopCategories int // ranked categories to keep (default 10)
	TopTags       int // ranked tags to keep (default 15)
	ReadingWPM    int // reading speed for the time estimate (default 200)
}

func DefaultOptions() Options {
	return Options{
		TopCategories: 10,
		TopTags:       15,
		ReadingWPM:    200,
	}
}

// Publish cadence boundaries, in posts per week.
const (
	DailyPostsPerWeek  = 7.0
	WeeklyPostsPerWeek = 1.0
)

type nicheEntry struct {
	name     string
	keywords []*regexp.Regexp
}

// The niche table is ordered: ties resolve to the earliest entry.
//
//nolint:gochecknoglobals // classification table, effectively const
var nicheTable = []nicheEntry{
	{"Technology", keywords("tech", "software", "app", "gadget", "ai", "programming", "computer", "digital")},
	{"Travel & Tourism", keywords("travel", "destination", "hotel", "flight", "tourism", "vacation", "trip", "itinerary")},
	{"Food & Cooking", keywords("recipe", "food", "cooking", "kitchen", "meal", "ingredient", "baking", "restaurant")},
	{"Health & Wellness", keywords("health", "fitness", "workout", "wellness", "diet", "nutrition", "yoga", "exercise")},
	{"Finance", keywords("money", "investing", "finance", "budget", "saving", "credit", "tax", "wealth")},
	{"Fashion & Beauty", keywords("fashion", "style", "beauty", "makeup", "outfit", "skincare", "hair", "clothing")},
	{"Home & Garden", keywords("home", "garden", "decor", "diy", "furniture", "interior", "renovation", "plant")},
	{"Business & Marketing", keywords("business", "marketing", "entrepreneur", "startup", "seo", "branding", "sales", "ecommerce")},
	{"Education", keywords("learning", "education", "course", "study", "teaching", "student", "tutorial", "school")},
	{"Entertainment", keywords("movie", "music", "game", "gaming", "celebrity", "tv", "film", "streaming")},
	{"Sports", keywords("sport", "football", "soccer", "basketball", "training", "team", "league", "match")},
	{"Parenting & Family", keywords("parenting", "baby", "kid", "family", "pregnancy", "toddler", "mom", "child")},
}

// Title convention patterns.
//
//nolint:gochecknoglobals // pattern table, effectively const
var (
	listicleRe   = regexp.MustCompile(`(?i)^\d+\s|\btop\s+\d+\b|\b\d+\s+(best|ways|tips|things|reasons|ideas)\b`)
	howToRe      = regexp.MustCompile(`(?i)\bhow\s+to\b`)
	reviewRe     = regexp.MustCompile(`(?i)\breviews?\b|\bhands-?on\b|\bwe\s+tried\b`)
	comparisonRe = regexp.MustCompile(`(?i)\bvs\.?\b|\bversus\b|\bcompared?\b|\bcomparison\b`)
	guideRe      = regexp.MustCompile(`(?i)\bguides?\b|\bultimate\b|\bcomplete\b|\beverything\s+you\s+need\b`)
	newsRe       = regexp.MustCompile(`(?i)\bannounce[sd]?\b|\blaunch(es|ed)?\b|\breleas(es|ed)\b|\bbreaking\b|\bupdates?\b`)
)

// keywords compiles case-insensitive whole-word matchers, tolerating a
// plural s.
func keywords(words ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(words))
	for _, word := range words {
		compiled = append(compiled, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`s?\b`))
	}

	return compiled
}

// Analyze computes corpus-level content statistics over the snapshot.
func Analyze(snapshot *types.Snapshot, opts Options) *types.ContentResult {
	if opts.TopCategories == 0 {
		opts.TopCategories = 10
	}

	if opts.TopTags == 0 {
		opts.TopTags = 15
	}

	if opts.ReadingWPM == 0 {
		opts.ReadingWPM = 200
	}

	result := &types.ContentResult{
		TotalPosts:  len(snapshot.Posts),
		TotalDrafts: len(snapshot.Drafts),
		Niche:       "General",
	}

	// Word statistics.
	counts := make([]float64, 0, len(snapshot.Posts))
	for _, post := range snapshot.Posts {
		counts = append(counts, float64(shared.WordCount(post.Content.Rendered)))
	}

	if len(counts) > 0 {
		mean := stat.Mean(counts, nil)
		result.AvgWordCount = int(math.Round(mean))
		result.MinWordCount = int(slices.Min(counts))
		result.MaxWordCount = int(slices.Max(counts))
		result.ReadingTimeMin = int(math.Ceil(mean / float64(opts.ReadingWPM)))

		if len(counts) > 1 {
			result.WordCountStdDev = stat.StdDev(counts, nil)
		}
	}

	result.TopCategories = rankCategories(snapshot, opts.TopCategories)
	result.TopTags = rankTags(snapshot.Tags, opts.TopTags)

	result.Niche, result.NicheScore = classifyNiche(snapshot)
	result.Patterns = detectPatterns(snapshot.Posts)
	result.PostsPerWeek, result.Cadence = publishCadence(snapshot.Posts)

	return result
}

func rankCategories(snapshot *types.Snapshot, limit int) []types.CategoryRank {
	terms := make([]types.Term, len(snapshot.Categories))
	copy(terms, snapshot.Categories)

	slices.SortFunc(terms, func(a, b types.Term) int {
		if d := b.Count - a.Count; d != 0 {
			return d
		}

		return strings.Compare(a.Name, b.Name)
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}

	ranks := make([]types.CategoryRank, 0, len(terms))

	for _, term := range terms {
		rank := types.CategoryRank{Name: term.Name, Count: term.Count}
		if total := len(snapshot.Posts); total > 0 {
			rank.Percent = float64(term.Count) / float64(total) * 100
		}

		ranks = append(ranks, rank)
	}

	return ranks
}

func rankTags(tags []types.Term, limit int) []types.TagRank {
	terms := make([]types.Term, len(tags))
	copy(terms, tags)

	slices.SortFunc(terms, func(a, b types.Term) int {
		if d := b.Count - a.Count; d != 0 {
			return d
		}

		return strings.Compare(a.Name, b.Name)
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}

	ranks := make([]types.TagRank, 0, len(terms))
	for _, term := range terms {
		ranks = append(ranks, types.TagRank{Name: term.Name, Count: term.Count})
	}

	return ranks
}

// classifyNiche scores each niche by keyword matches over the concatenated
// post titles and category names. The highest score wins; zero matches
// default to "General".
func classifyNiche(snapshot *types.Snapshot) (string, int) {
	var corpus strings.Builder

	for _, post := range snapshot.Posts {
		corpus.WriteString(post.Title.Rendered)
		corpus.WriteString(" ")
	}

	for _, category := range snapshot.Categories {
		corpus.WriteString(category.Name)
		corpus.WriteString(" ")
	}

	text := corpus.String()

	bestName := "General"
	bestScore := 0

	for _, entry := range nicheTable {
		score := 0
		for _, keyword := range entry.keywords {
			score += len(keyword.FindAllStringIndex(text, -1))
		}

		if score > bestScore {
			bestName = entry.name
			bestScore = score
		}
	}

	return bestName, bestScore
}

func detectPatterns(posts []types.Post) types.ContentPatterns {
	patterns := types.ContentPatterns{}

	for _, post := range posts {
		title := post.Title.Rendered

		if listicleRe.MatchString(title) {
			patterns.ListicleCount++
		}

		if howToRe.MatchString(title) {
			patterns.HowToCount++
		}

		if reviewRe.MatchString(title) {
			patterns.ReviewCount++
		}

		if comparisonRe.MatchString(title) {
			patterns.ComparisonCount++
		}

		if guideRe.MatchString(title) {
			patterns.GuideCount++
		}

		if newsRe.MatchString(title) {
			patterns.NewsCount++
		}
	}

	patterns.UsesListicles = patterns.ListicleCount > 0
	patterns.UsesHowTo = patterns.HowToCount > 0
	patterns.UsesReviews = patterns.ReviewCount > 0
	patterns.UsesComparisons = patterns.ComparisonCount > 0
	patterns.UsesGuides = patterns.GuideCount > 0
	patterns.UsesNews = patterns.NewsCount > 0

	return patterns
}

// publishCadence classifies the posts/week rate over the span between the
// oldest and newest post. Spans shorter than a week count as one week;
// fewer than two dated posts leave the cadence unknown.
func publishCadence(posts []types.Post) (float64, types.Cadence) {
	var (
		oldest, newest time.Time
		dated          int
	)

	for _, post := range posts {
		ts, ok := parseDate(post.Date)
		if !ok {
			continue
		}

		if dated == 0 || ts.Before(oldest) {
			oldest = ts
		}

		if dated == 0 || ts.After(newest) {
			newest = ts
		}

		dated++
	}

	if dated < 2 {
		return 0, types.CadenceUnknown
	}

	weeks := newest.Sub(oldest).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}

	perWeek := float64(dated) / weeks

	switch {
	case perWeek >= DailyPostsPerWeek:
		return perWeek, types.CadenceDaily
	case perWeek >= WeeklyPostsPerWeek:
		return perWeek, types.CadenceWeekly
	default:
		return perWeek, types.CadenceMonthly
	}
}

// parseDate accepts the WordPress REST date shape (site-local ISO 8601
// without zone) and the GMT variant with offset.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}
