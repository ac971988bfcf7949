// Package textclean prepares raw user text for claim extraction: a linear
// pipeline of normalization and scrubbing passes. Order matters; each pass
// assumes the ones before it have run.
package textclean

import (
	"html"
	"math"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var (
	urlRE              = regexp.MustCompile(`https?://\S+|www\.\S+|ftp://\S+`)
	emailRE            = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	tabsRE             = regexp.MustCompile(`[\t\r\f\v]+`)
	newlinesRE         = regexp.MustCompile(`\n{3,}`)
	spacesRE           = regexp.MustCompile(` {2,}`)
	controlRE          = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\x{9f}]`)
	doubleQuoteRE      = regexp.MustCompile(`[“”„‟]`)
	singleQuoteRE      = regexp.MustCompile(`[‘’‚‛]`)
	spaceBeforePunctRE = regexp.MustCompile(`\s+([.,!?;:])`)
	punctNoSpaceRE     = regexp.MustCompile(`([.,!?;:])([A-Za-z])`)
	manyDotsRE         = regexp.MustCompile(`\.{4,}`)
	manyQuestionsRE    = regexp.MustCompile(`\?{2,}`)
	manyBangsRE        = regexp.MustCompile(`!{2,}`)
	openParenRE        = regexp.MustCompile(`\(\s+`)
	closeParenRE       = regexp.MustCompile(`\s+\)`)
	openBracketRE      = regexp.MustCompile(`\[\s+`)
	closeBracketRE     = regexp.MustCompile(`\s+\]`)
)

var specialReplacer = strings.NewReplacer(
	"–", "-",
	"—", "-",
	"…", "...",
	"•", "-",
	"·", "-",
	"→", "->",
	"←", "<-",
	"≈", "~",
	"≠", "!=",
	"≤", "<=",
	"≥", ">=",
)

// Stats reports before/after metrics for one cleaning run.
type Stats struct {
	OriginalLength      int     `json:"original_length"`
	CleanedLength       int     `json:"cleaned_length"`
	CharactersRemoved   int     `json:"characters_removed"`
	ReductionPercentage float64 `json:"reduction_percentage"`
	OriginalWordCount   int     `json:"original_word_count"`
	CleanedWordCount    int     `json:"cleaned_word_count"`
}

type Cleaner struct {
	stripper *bluemonday.Policy
}

func New() *Cleaner {
	// StrictPolicy drops every element and keeps the text, which is exactly
	// the HTML handling the extraction prompt needs.
	return &Cleaner{stripper: bluemonday.StrictPolicy()}
}

// Clean runs the full pipeline and returns text ready for the extraction
// prompt.
func (c *Cleaner) Clean(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = urlRE.ReplaceAllString(text, "")
	text = emailRE.ReplaceAllString(text, "")
	text = c.stripHTML(text)
	text = normalizeWhitespace(text)
	text = removeSpecialCharacters(text)
	text = normalizeQuotes(text)
	text = fixCommonIssues(text)
	text = finalCleanup(text)

	return strings.TrimSpace(text)
}

func (c *Cleaner) stripHTML(text string) string {
	return html.UnescapeString(c.stripper.Sanitize(text))
}

func normalizeWhitespace(text string) string {
	text = tabsRE.ReplaceAllString(text, " ")
	text = newlinesRE.ReplaceAllString(text, "\n\n")
	return spacesRE.ReplaceAllString(text, " ")
}

func removeSpecialCharacters(text string) string {
	text = controlRE.ReplaceAllString(text, "")
	return specialReplacer.Replace(text)
}

func normalizeQuotes(text string) string {
	text = doubleQuoteRE.ReplaceAllString(text, `"`)
	return singleQuoteRE.ReplaceAllString(text, "'")
}

func fixCommonIssues(text string) string {
	text = spaceBeforePunctRE.ReplaceAllString(text, "$1")
	text = punctNoSpaceRE.ReplaceAllString(text, "$1 $2")
	text = manyDotsRE.ReplaceAllString(text, "...")
	text = manyQuestionsRE.ReplaceAllString(text, "?")
	text = manyBangsRE.ReplaceAllString(text, "!")
	text = openParenRE.ReplaceAllString(text, "(")
	text = closeParenRE.ReplaceAllString(text, ")")
	text = openBracketRE.ReplaceAllString(text, "[")
	return closeBracketRE.ReplaceAllString(text, "]")
}

func finalCleanup(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return spacesRE.ReplaceAllString(strings.Join(lines, "\n"), " ")
}

// GetStats compares the original input with its cleaned form.
func GetStats(original, cleaned string) Stats {
	s := Stats{
		OriginalLength:    len(original),
		CleanedLength:     len(cleaned),
		CharactersRemoved: len(original) - len(cleaned),
		OriginalWordCount: len(strings.Fields(original)),
		CleanedWordCount:  len(strings.Fields(cleaned)),
	}
	if len(original) > 0 {
		s.ReductionPercentage = math.Round((1-float64(len(cleaned))/float64(len(original)))*10000) / 100
	}
	return s
}
