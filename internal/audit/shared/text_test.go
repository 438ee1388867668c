package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSplitsBlocksIntoParagraphs(t *testing.T) {
	text := Text("<p>One two.</p><h2>Heading</h2><p>Three.</p>")

	assert.Equal(t, "One two.\n\nHeading\n\nThree.", text)
}

func TestTextOnlyCountsLeafBlocks(t *testing.T) {
	text := Text("<blockquote><p>Quoted line.</p></blockquote>")

	assert.Equal(t, "Quoted line.", text)
}

func TestTextListItems(t *testing.T) {
	text := Text("<ul><li>First</li><li>Second</li></ul>")

	assert.Equal(t, "First\n\nSecond", text)
}

func TestTextCollapsesWhitespaceInsideBlocks(t *testing.T) {
	text := Text("<p>a   b\n\tc</p>")

	assert.Equal(t, "a b c", text)
}

func TestTextWithoutBlockMarkupKeepsLines(t *testing.T) {
	text := Text("line one\nline two")

	assert.Equal(t, "line one\nline two", text)
}

func TestTextStripsInlineMarkup(t *testing.T) {
	text := Text("<p>Some <strong>bold</strong> and <a href=\"#\">linked</a> words.</p>")

	assert.Equal(t, "Some bold and linked words.", text)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 5, WordCount("<p>one two</p><p>three four five</p>"))
	assert.Zero(t, WordCount(""))
}

func TestCleanWordsStripsPunctuationAndLowercases(t *testing.T) {
	words := CleanWords("Hello, World! (It's) fine -- really.")

	assert.Equal(t, []string{"hello", "world", "it's", "fine", "really"}, words)
}

func TestSentences(t *testing.T) {
	sentences := Sentences("First one. Second one! Third one? ")

	assert.Equal(t, []string{"First one", "Second one", "Third one"}, sentences)
}

func TestParagraphs(t *testing.T) {
	paragraphs := Paragraphs("alpha\n\nbeta\n   \ngamma")

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, paragraphs)
}
