package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/cambium/internal/types"
)

// ---------- fixtures ----------

func fullInput() Input {
	return Input{
		Site: types.Settings{
			Title:       "Wander Often",
			Description: "Slow travel for busy people",
			URL:         "https://wanderoften.example",
			Language:    "en_US",
		},
		Content: &types.ContentResult{
			TotalPosts:     48,
			AvgWordCount:   1250,
			MinWordCount:   400,
			MaxWordCount:   3200,
			ReadingTimeMin: 7,
			TopCategories: []types.CategoryRank{
				{Name: "Destinations", Count: 20, Percent: 41.7},
				{Name: "Travel Tips", Count: 16, Percent: 33.3},
				{Name: "Packing", Count: 12, Percent: 25.0},
			},
			TopTags: []types.TagRank{
				{Name: "europe", Count: 14},
				{Name: "budget", Count: 9},
			},
			Niche: "Travel & Tourism",
			Patterns: types.ContentPatterns{
				UsesListicles: true,
				UsesGuides:    true,
			},
			PostsPerWeek: 2.5,
			Cadence:      types.CadenceWeekly,
		},
		Structure: &types.StructureResult{
			Permalink: types.PermalinkCategory,
		},
		SEO: &types.SEOResult{
			Plugin:           "Yoast SEO",
			HasPlugin:        true,
			MetaDescCoverage: 0.72,
			HasSitemap:       true,
			HasOpenGraph:     true,
			HasCanonical:     true,
			HasSchema:        true,
		},
		Design: &types.DesignResult{
			Theme:       "Astra",
			PageBuilder: "Elementor",
		},
		Media: &types.MediaResult{
			AltTextCoverage:    0.65,
			FeaturedImageUsage: 0.9,
		},
		Writing: &types.WritingResult{
			SampleSize:       20,
			Perspective:      types.PerspectiveFirst,
			Tone:             types.ToneFriendly,
			AvgSentenceWords: 16.4,
			CommonPhrases: []types.PhraseCount{
				{Phrase: "hidden gems", Count: 11},
				{Phrase: "travel insurance", Count: 7},
			},
			UsesSubheadings: true,
			UsesLists:       true,
			EmbedsImages:    true,
			UsesCTA:         true,
		},
		Language: &types.LanguageResult{
			Primary:     "en",
			PrimaryName: "English",
			Detected:    []string{"en", "fr"},
		},
		Technical: &types.TechnicalResult{
			TotalPlugins:  12,
			ActivePlugins: 9,
		},
	}
}

// ---------- tests ----------

func TestSynthesizeBlocks(t *testing.T) {
	prof := Synthesize(fullInput())
	require.NotNil(t, prof)

	assert.Contains(t, prof.SystemPrompt, "Wander Often")
	assert.Contains(t, prof.SystemPrompt, "Travel & Tourism")
	assert.Contains(t, prof.SystemPrompt, "Slow travel for busy people")
	assert.Contains(t, prof.SystemPrompt, "Write in English")
	assert.Contains(t, prof.SystemPrompt, "friendly tone")
	assert.Contains(t, prof.SystemPrompt, "first-person")
	assert.Contains(t, prof.SystemPrompt, "listicles, in-depth guides")
	assert.Contains(t, prof.SystemPrompt, "Destinations, Travel Tips, Packing")
	assert.Contains(t, prof.SystemPrompt, `"hidden gems"`)
	assert.Contains(t, prof.SystemPrompt, "theme Astra")
	assert.Contains(t, prof.SystemPrompt, "built with Elementor")
	assert.Contains(t, prof.SystemPrompt, "also publishes content in: fr")

	assert.Contains(t, prof.ContentGuidelines, "about 1250 words")
	assert.Contains(t, prof.ContentGuidelines, "7 minute read")
	assert.Contains(t, prof.ContentGuidelines, "Publish new content weekly")
	assert.Contains(t, prof.ContentGuidelines, "H2 subheadings")
	assert.Contains(t, prof.ContentGuidelines, "call to action")
	assert.Contains(t, prof.ContentGuidelines, "Travel & Tourism")

	assert.Contains(t, prof.SEOGuidelines, "Yoast SEO")
	assert.Contains(t, prof.SEOGuidelines, "coverage: 72%")
	assert.Contains(t, prof.SEOGuidelines, "usage: 90%")
	assert.Contains(t, prof.SEOGuidelines, "coverage: 65%")
	assert.Contains(t, prof.SEOGuidelines, "/%category%/%postname%/")
	assert.Contains(t, prof.SEOGuidelines, "sitemap is generated")
	assert.Contains(t, prof.SEOGuidelines, "Structured data is emitted")
}

func TestSynthesizeStructuredFields(t *testing.T) {
	prof := Synthesize(fullInput())

	assert.Equal(t, "Travel & Tourism", prof.Niche)
	assert.Equal(t, []string{"en", "fr"}, prof.Languages)
	assert.Equal(t, "friendly", prof.Tone)
	assert.Equal(t, []string{"Destinations", "Travel Tips", "Packing"}, prof.Categories)
	assert.Equal(t, "weekly", prof.Cadence)
}

func TestSynthesizeDeterministic(t *testing.T) {
	first := Synthesize(fullInput())
	second := Synthesize(fullInput())

	assert.Equal(t, first.SystemPrompt, second.SystemPrompt)
	assert.Equal(t, first.ContentGuidelines, second.ContentGuidelines)
	assert.Equal(t, first.SEOGuidelines, second.SEOGuidelines)
}

func TestSynthesizeEmptyInput(t *testing.T) {
	prof := Synthesize(Input{})
	require.NotNil(t, prof)

	assert.Contains(t, prof.SystemPrompt, "this site")
	assert.Contains(t, prof.SystemPrompt, "General")
	assert.Contains(t, prof.SystemPrompt, "Write in English")
	assert.Contains(t, prof.SystemPrompt, "professional tone")
	assert.Contains(t, prof.ContentGuidelines, "Maintain a consistent publishing schedule")
	assert.Contains(t, prof.SEOGuidelines, "No SEO plugin is installed")
	assert.Contains(t, prof.SEOGuidelines, "No sitemap generation detected")
	assert.Contains(t, prof.SEOGuidelines, "/%postname%/")

	assert.Equal(t, "General", prof.Niche)
	assert.Equal(t, "professional", prof.Tone)
	assert.Equal(t, "unknown", prof.Cadence)
	assert.Empty(t, prof.Languages)
	assert.Empty(t, prof.Categories)
}

func TestCadencePhrase(t *testing.T) {
	cases := []struct {
		cadence types.Cadence
		want    string
	}{
		{types.CadenceDaily, "daily"},
		{types.CadenceWeekly, "weekly"},
		{types.CadenceMonthly, "monthly"},
		{types.CadenceUnknown, "consistent publishing schedule"},
	}

	for _, tc := range cases {
		t.Run(tc.cadence.String(), func(t *testing.T) {
			assert.Contains(t, cadencePhrase(tc.cadence), tc.want)
		})
	}
}

func TestMixedPerspectiveFallsBackToNeutralWording(t *testing.T) {
	in := fullInput()
	in.Writing.Perspective = types.PerspectiveMixed

	prof := Synthesize(in)

	assert.Contains(t, prof.SystemPrompt, "voice the topic calls for")
	assert.NotContains(t, prof.SystemPrompt, "mixed.")
}

func TestSecondaryLanguagesExcludePrimary(t *testing.T) {
	langs := secondaryLanguages(&types.LanguageResult{
		Primary:  "ar",
		Detected: []string{"ar", "en"},
	})

	assert.Equal(t, []string{"en"}, langs)
}
