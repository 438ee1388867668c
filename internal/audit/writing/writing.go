package writing

import (
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/cambium/internal/audit/shared"
	"github.com/farcloser/cambium/internal/types"
)

type Options struct {
	SampleSize     int     // posts inspected (default 20)
	DominanceRatio float64 // class wins only above ratio x runner-up (default 2)
	BigramMinCount int     // phrase frequency floor (default 3)
	TopPhrases     int     // phrases to keep (default 10)
}

func DefaultOptions() Options {
	return Options{
		SampleSize:     20,
		DominanceRatio: 2,
		BigramMinCount: 3,
		TopPhrases:     10,
	}
}

// Marker-word tables for perspective and tone classification.
//
//nolint:gochecknoglobals // classification tables, effectively const
var (
	firstPerson  = wordSet("i", "we", "me", "us", "my", "our", "mine", "ours", "i'm", "i've", "we're", "we've")
	secondPerson = wordSet("you", "your", "yours", "you're", "you've", "you'll")
	thirdPerson  = wordSet("he", "she", "it", "they", "him", "her", "them", "his", "hers", "its", "their", "theirs")

	formalWords = wordSet(
		"furthermore", "moreover", "consequently", "therefore", "thus",
		"nevertheless", "accordingly", "subsequently", "whereas", "hence",
		"regarding", "notwithstanding",
	)
	casualWords = wordSet(
		"awesome", "cool", "stuff", "guys", "gonna", "wanna", "hey",
		"yeah", "super", "totally", "basically", "honestly", "folks",
	)
)

var ctaRe = regexp.MustCompile(
	`(?i)\b(subscribe|sign up|buy now|learn more|click here|get started|download now|join now|shop now|contact us|read more)\b`,
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}

	return set
}

// Analyze classifies the writing style over a sample of the first posts.
// An empty corpus returns the all-unknown default without error.
func Analyze(snapshot *types.Snapshot, opts Options) *types.WritingResult {
	if opts.SampleSize == 0 {
		opts.SampleSize = 20
	}

	if opts.DominanceRatio == 0 {
		opts.DominanceRatio = 2
	}

	if opts.BigramMinCount == 0 {
		opts.BigramMinCount = 3
	}

	if opts.TopPhrases == 0 {
		opts.TopPhrases = 10
	}

	sample := snapshot.Posts
	if len(sample) > opts.SampleSize {
		sample = sample[:opts.SampleSize]
	}

	result := &types.WritingResult{
		SampleSize:  len(sample),
		Perspective: types.PerspectiveUnknown,
		Tone:        types.ToneUnknown,
	}

	if len(sample) == 0 {
		return result
	}

	var (
		first, second, third int
		formal, casual       int

		sentenceLens  []float64
		paragraphLens []float64

		totalWords     int
		totalSentences int

		bigrams = map[string]int{}
	)

	for _, post := range sample {
		text := shared.Text(post.Content.Rendered)
		words := shared.CleanWords(text)

		for _, word := range words {
			switch {
			case firstPerson[word]:
				first++
			case secondPerson[word]:
				second++
			case thirdPerson[word]:
				third++
			default:
			}

			if formalWords[word] {
				formal++
			}

			if casualWords[word] {
				casual++
			}
		}

		for i := 0; i+1 < len(words); i++ {
			bigrams[words[i]+" "+words[i+1]]++
		}

		for _, sentence := range shared.Sentences(text) {
			count := len(shared.Words(sentence))
			sentenceLens = append(sentenceLens, float64(count))
			totalWords += count
			totalSentences++
		}

		for _, paragraph := range shared.Paragraphs(text) {
			paragraphLens = append(paragraphLens, float64(len(shared.Words(paragraph))))
		}

		flagStructure(post.Content.Rendered, result)

		if ctaRe.MatchString(text) {
			result.UsesCTA = true
		}
	}

	result.Perspective = classifyPerspective(first, second, third, opts.DominanceRatio)
	result.Tone = classifyTone(formal, casual, opts.DominanceRatio)

	if len(sentenceLens) > 0 {
		result.AvgSentenceWords = stat.Mean(sentenceLens, nil)
	}

	if len(paragraphLens) > 0 {
		result.AvgParagraphWords = stat.Mean(paragraphLens, nil)
	}

	result.Readability = readability(totalWords, totalSentences)
	result.CommonPhrases = topPhrases(bigrams, opts.BigramMinCount, opts.TopPhrases)

	return result
}

// classifyPerspective picks the dominant grammatical person only when its
// count exceeds the runner-up by more than the dominance ratio.
func classifyPerspective(first, second, third int, ratio float64) types.Perspective {
	type class struct {
		perspective types.Perspective
		count       int
	}

	classes := []class{
		{types.PerspectiveFirst, first},
		{types.PerspectiveSecond, second},
		{types.PerspectiveThird, third},
	}

	slices.SortStableFunc(classes, func(a, b class) int {
		return b.count - a.count
	})

	if float64(classes[0].count) > float64(classes[1].count)*ratio {
		return classes[0].perspective
	}

	return types.PerspectiveMixed
}

func classifyTone(formal, casual int, ratio float64) types.Tone {
	switch {
	case float64(formal) > float64(casual)*ratio:
		return types.ToneFormal
	case float64(casual) > float64(formal)*ratio:
		return types.ToneCasual
	case casual > formal:
		return types.ToneFriendly
	default:
		return types.ToneProfessional
	}
}

// readability computes a simplified Flesch reading ease with syllables
// approximated as words x 1.5. The approximation is a deliberate
// placeholder, not a syllable counter; see the WritingResult docs.
func readability(words, sentences int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}

	const syllablesPerWord = 1.5

	avgSentence := float64(words) / float64(sentences)

	return 206.835 - 1.015*avgSentence - 84.6*syllablesPerWord
}

func topPhrases(bigrams map[string]int, minCount, limit int) []types.PhraseCount {
	var phrases []types.PhraseCount

	for phrase, count := range bigrams {
		if count >= minCount {
			phrases = append(phrases, types.PhraseCount{Phrase: phrase, Count: count})
		}
	}

	slices.SortFunc(phrases, func(a, b types.PhraseCount) int {
		if d := b.Count - a.Count; d != 0 {
			return d
		}

		return strings.Compare(a.Phrase, b.Phrase)
	})

	if len(phrases) > limit {
		phrases = phrases[:limit]
	}

	return phrases
}

func flagStructure(fragment string, result *types.WritingResult) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return
	}

	if doc.Find("h2, h3").Length() > 0 {
		result.UsesSubheadings = true
	}

	if doc.Find("ul, ol").Length() > 0 {
		result.UsesLists = true
	}

	if doc.Find("img").Length() > 0 {
		result.EmbedsImages = true
	}
}
