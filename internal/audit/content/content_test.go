package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/cambium/internal/types"
)

// ---------- fixtures ----------

func post(title, body, date string) types.Post {
	return types.Post{
		Title:   types.Rendered{Rendered: title},
		Content: types.Rendered{Rendered: body},
		Date:    date,
	}
}

func body(words int) string {
	return "<p>" + strings.TrimSpace(strings.Repeat("word ", words)) + "</p>"
}

func day(offset int) string {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	return base.AddDate(0, 0, offset).Format("2006-01-02T15:04:05")
}

// travelSnapshot is a small travel blog publishing every week.
func travelSnapshot() *types.Snapshot {
	titles := []string{
		"10 Best Hotels in Lisbon",
		"How to Plan a Rome Itinerary",
		"The Ultimate Guide to Slow Travel",
		"Backpacking Through Vietnam: A Complete Guide",
		"Top 5 Flight Booking Mistakes",
		"Kyoto vs Tokyo: Which Destination Wins",
	}

	posts := make([]types.Post, 0, len(titles))
	for i, title := range titles {
		posts = append(posts, post(title, body(100), day(i*7)))
	}

	return &types.Snapshot{
		Posts:  posts,
		Drafts: []types.Post{post("Unfinished", body(10), "")},
		Categories: []types.Term{
			{Name: "Destinations", Count: 4},
			{Name: "Travel Tips", Count: 2},
		},
		Tags: []types.Term{
			{Name: "europe", Count: 12},
			{Name: "budget", Count: 7},
		},
	}
}

// ---------- tests ----------

func TestAnalyzeTravelCorpus(t *testing.T) {
	result := Analyze(travelSnapshot(), DefaultOptions())
	require.NotNil(t, result)

	assert.Equal(t, 6, result.TotalPosts)
	assert.Equal(t, 1, result.TotalDrafts)

	assert.Equal(t, 100, result.AvgWordCount)
	assert.Equal(t, 100, result.MinWordCount)
	assert.Equal(t, 100, result.MaxWordCount)
	assert.InDelta(t, 0.0, result.WordCountStdDev, 1e-9)
	assert.Equal(t, 1, result.ReadingTimeMin)

	assert.Equal(t, "Travel & Tourism", result.Niche)
	assert.Equal(t, 7, result.NicheScore)

	require.Len(t, result.TopCategories, 2)
	assert.Equal(t, "Destinations", result.TopCategories[0].Name)
	assert.InDelta(t, 66.67, result.TopCategories[0].Percent, 0.01)
	assert.Equal(t, "Travel Tips", result.TopCategories[1].Name)

	require.Len(t, result.TopTags, 2)
	assert.Equal(t, types.TagRank{Name: "europe", Count: 12}, result.TopTags[0])

	assert.True(t, result.Patterns.UsesListicles)
	assert.Equal(t, 2, result.Patterns.ListicleCount)
	assert.True(t, result.Patterns.UsesHowTo)
	assert.Equal(t, 1, result.Patterns.HowToCount)
	assert.True(t, result.Patterns.UsesGuides)
	assert.Equal(t, 2, result.Patterns.GuideCount)
	assert.True(t, result.Patterns.UsesComparisons)
	assert.False(t, result.Patterns.UsesReviews)
	assert.False(t, result.Patterns.UsesNews)

	assert.InDelta(t, 1.2, result.PostsPerWeek, 1e-9)
	assert.Equal(t, types.CadenceWeekly, result.Cadence)
}

func TestAnalyzeEmptySnapshot(t *testing.T) {
	result := Analyze(&types.Snapshot{}, DefaultOptions())
	require.NotNil(t, result)

	assert.Zero(t, result.TotalPosts)
	assert.Zero(t, result.AvgWordCount)
	assert.Zero(t, result.MinWordCount)
	assert.Zero(t, result.MaxWordCount)
	assert.Zero(t, result.WordCountStdDev)
	assert.Zero(t, result.ReadingTimeMin)
	assert.Empty(t, result.TopCategories)
	assert.Empty(t, result.TopTags)
	assert.Equal(t, "General", result.Niche)
	assert.Zero(t, result.NicheScore)
	assert.Zero(t, result.PostsPerWeek)
	assert.Equal(t, types.CadenceUnknown, result.Cadence)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	snapshot := travelSnapshot()

	first := Analyze(snapshot, DefaultOptions())
	second := Analyze(snapshot, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestNicheTieResolvesToEarlierEntry(t *testing.T) {
	// "tech" (Technology) and "recipe" (Food & Cooking) each score one
	// hit; Technology is listed first and keeps the tie.
	snapshot := &types.Snapshot{
		Posts: []types.Post{post("A tech recipe", "", "")},
	}

	result := Analyze(snapshot, DefaultOptions())

	assert.Equal(t, "Technology", result.Niche)
	assert.Equal(t, 1, result.NicheScore)
}

func TestRankingsHonorLimitsAndTieBreaks(t *testing.T) {
	snapshot := &types.Snapshot{
		Posts: make([]types.Post, 4),
		Categories: []types.Term{
			{Name: "Zebra", Count: 2},
			{Name: "Alpha", Count: 2},
			{Name: "Major", Count: 3},
			{Name: "Minor", Count: 1},
		},
		Tags: []types.Term{
			{Name: "d", Count: 1},
			{Name: "c", Count: 5},
			{Name: "b", Count: 5},
			{Name: "a", Count: 2},
		},
	}

	result := Analyze(snapshot, Options{TopCategories: 3, TopTags: 3})

	require.Len(t, result.TopCategories, 3)
	assert.Equal(t, "Major", result.TopCategories[0].Name)
	assert.Equal(t, "Alpha", result.TopCategories[1].Name) // count tie, name order
	assert.Equal(t, "Zebra", result.TopCategories[2].Name)
	assert.InDelta(t, 75.0, result.TopCategories[0].Percent, 1e-9)

	require.Len(t, result.TopTags, 3)
	assert.Equal(t, "b", result.TopTags[0].Name)
	assert.Equal(t, "c", result.TopTags[1].Name)
	assert.Equal(t, "a", result.TopTags[2].Name)
}

func TestReadingTimeRoundsUp(t *testing.T) {
	snapshot := &types.Snapshot{
		Posts: []types.Post{post("t", body(250), "")},
	}

	// 250 words at 200 wpm is 1.25 minutes.
	result := Analyze(snapshot, DefaultOptions())

	assert.Equal(t, 2, result.ReadingTimeMin)
}

func TestPublishCadenceBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int
		perWeek float64
		want    types.Cadence
	}{
		{
			name:    "seven per week is daily",
			offsets: []int{0, 1, 2, 3, 4, 5, 6},
			perWeek: 7,
			want:    types.CadenceDaily,
		},
		{
			name:    "just under seven is weekly",
			offsets: []int{0, 1, 2, 3, 4, 5},
			perWeek: 6,
			want:    types.CadenceWeekly,
		},
		{
			name:    "one per week is weekly",
			offsets: []int{0, 9, 18, 28},
			perWeek: 1,
			want:    types.CadenceWeekly,
		},
		{
			name:    "under one per week is monthly",
			offsets: []int{0, 42, 84},
			perWeek: 0.25,
			want:    types.CadenceMonthly,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			posts := make([]types.Post, 0, len(tc.offsets))
			for _, offset := range tc.offsets {
				posts = append(posts, post("t", "", day(offset)))
			}

			result := Analyze(&types.Snapshot{Posts: posts}, DefaultOptions())

			assert.InDelta(t, tc.perWeek, result.PostsPerWeek, 1e-9)
			assert.Equal(t, tc.want, result.Cadence)
		})
	}
}

func TestPublishCadenceNeedsTwoDatedPosts(t *testing.T) {
	snapshot := &types.Snapshot{
		Posts: []types.Post{
			post("dated", "", day(0)),
			post("undated", "", ""),
			post("garbled", "", "yesterday"),
		},
	}

	result := Analyze(snapshot, DefaultOptions())

	assert.Zero(t, result.PostsPerWeek)
	assert.Equal(t, types.CadenceUnknown, result.Cadence)
}

func TestPublishCadenceAcceptsOffsetDates(t *testing.T) {
	snapshot := &types.Snapshot{
		Posts: []types.Post{
			post("a", "", "2025-03-01T00:00:00"),
			post("b", "", "2025-03-08T00:00:00+02:00"),
		},
	}

	result := Analyze(snapshot, DefaultOptions())

	assert.Equal(t, types.CadenceWeekly, result.Cadence)
}
