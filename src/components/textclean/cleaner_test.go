package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanRemovesURLsAndEmails(t *testing.T) {
	c := New()
	got := c.Clean("Visit https://example.com or mail test@email.com for info")
	assert.NotContains(t, got, "example.com")
	assert.NotContains(t, got, "test@email.com")
	assert.Contains(t, got, "for info")
}

func TestCleanStripsHTML(t *testing.T) {
	c := New()
	got := c.Clean("<p>HTML tags</p> and &nbsp; entities &amp; more")
	assert.NotContains(t, got, "<p>")
	assert.Contains(t, got, "HTML tags")
	assert.Contains(t, got, "&")
	assert.NotContains(t, got, "&amp;")
}

func TestCleanNormalizesWhitespace(t *testing.T) {
	c := New()
	got := c.Clean("too   many    spaces\t\tand\ttabs")
	assert.Equal(t, "too many spaces and tabs", got)
}

func TestCleanNormalizesSmartPunctuation(t *testing.T) {
	c := New()
	got := c.Clean("“Smart quotes” and ‘apostrophes’ with em—dashes and ellipsis…")
	assert.Contains(t, got, `"Smart quotes"`)
	assert.Contains(t, got, "'apostrophes'")
	assert.Contains(t, got, "em-dashes")
	assert.Contains(t, got, "...")
}

func TestCleanFixesPunctuationSpacing(t *testing.T) {
	c := New()
	got := c.Clean("Spaced , punctuation .And missing spaces,after commas")
	assert.Contains(t, got, "Spaced, punctuation. And")
	assert.Contains(t, got, "spaces, after")
}

func TestCleanCollapsesRepeatedPunctuation(t *testing.T) {
	c := New()
	assert.Equal(t, "Really?", c.Clean("Really???"))
	assert.Equal(t, "Wow!", c.Clean("Wow!!!"))
}

func TestCleanRemovesControlCharacters(t *testing.T) {
	c := New()
	got := c.Clean("pre\x01mid\x7fpost with-hyphen")
	assert.Equal(t, "premidpost with-hyphen", got)
}

func TestCleanEmptyInput(t *testing.T) {
	c := New()
	assert.Equal(t, "", c.Clean(""))
	assert.Equal(t, "", c.Clean("   \n\n  "))
}

func TestGetStats(t *testing.T) {
	s := GetStats("ab cd", "ab")
	assert.Equal(t, 5, s.OriginalLength)
	assert.Equal(t, 2, s.CleanedLength)
	assert.Equal(t, 3, s.CharactersRemoved)
	assert.Equal(t, 2, s.OriginalWordCount)
	assert.Equal(t, 1, s.CleanedWordCount)
	assert.Equal(t, 60.0, s.ReductionPercentage)
}
