// Package shared provides the text extraction and tokenization helpers the
// analyzers run over rendered post bodies.
package shared

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Block-level elements whose text forms natural paragraph boundaries.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, blockquote, figcaption"

var (
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
	paraBreak   = regexp.MustCompile(`\n\s*\n`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// Text extracts the visible text of an HTML fragment, one block element per
// paragraph, separated by blank lines. Input without block markup keeps its
// own line structure.
func Text(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	blocks := doc.Find(blockSelector)
	if blocks.Length() == 0 {
		return collapseLines(doc.Text())
	}

	parts := make([]string, 0, blocks.Length())

	blocks.Each(func(_ int, sel *goquery.Selection) {
		// Nested blocks (list items under a quoted list, say) would
		// duplicate text; only leaf blocks contribute.
		if sel.Find(blockSelector).Length() > 0 {
			return
		}

		if text := collapse(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, "\n\n")
}

// Words tokenizes text by whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the whitespace-token count of an HTML fragment's text.
func WordCount(fragment string) int {
	return len(Words(Text(fragment)))
}

// CleanWords lowercases each whitespace token and strips surrounding
// punctuation, dropping tokens with no letters or digits left.
func CleanWords(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))

	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if word != "" {
			words = append(words, word)
		}
	}

	return words
}

// Sentences splits text on sentence-ending punctuation, dropping empty
// segments.
func Sentences(text string) []string {
	return nonEmpty(sentenceEnd.Split(text, -1))
}

// Paragraphs splits text on blank lines, dropping empty segments.
func Paragraphs(text string) []string {
	return nonEmpty(paraBreak.Split(text, -1))
}

func nonEmpty(segments []string) []string {
	out := make([]string, 0, len(segments))

	for _, seg := range segments {
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

func collapse(text string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
}

func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = collapse(line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
