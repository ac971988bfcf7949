package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.reply, s.err
}

func TestAnalyzeParsesModelJSON(t *testing.T) {
	gen := &stubGenerator{reply: `{"verdict":"CONTRADICTED","confidence":90,"correction":"The Eiffel Tower is in Paris","key_facts":["Located in Paris"]}`}
	a := New(gen)

	result := a.Analyze(context.Background(), "The Eiffel Tower is located in Berlin", []Document{
		{Domain: "wikipedia.org", Content: "The Eiffel Tower is in Paris, France."},
	})

	assert.Equal(t, VerdictContradicted, result.Verdict)
	assert.Equal(t, 90.0, result.Confidence)
	assert.Equal(t, "The Eiffel Tower is in Paris", *result.Correction)
	assert.Equal(t, []string{"Located in Paris"}, result.KeyFacts)
}

func TestAnalyzeRecoversEmbeddedJSON(t *testing.T) {
	gen := &stubGenerator{reply: "Here is my assessment:\n" +
		`{"verdict":"SUPPORTED","confidence":85,"correction":null,"key_facts":[]}` +
		"\nHope that helps!"}
	a := New(gen)

	result := a.Analyze(context.Background(), "claim", []Document{{Domain: "d", Content: "c"}})
	assert.Equal(t, VerdictSupported, result.Verdict)
	assert.Equal(t, 85.0, result.Confidence)
	assert.Nil(t, result.Correction)
}

func TestAnalyzePromptCapsEvidence(t *testing.T) {
	gen := &stubGenerator{reply: `{"verdict":"SUPPORTED","confidence":80}`}
	a := New(gen)

	docs := []Document{
		{Domain: "one.test", Content: strings.Repeat("x", 4000)},
		{Domain: "two.test", Content: "short"},
		{Domain: "three.test", Content: "short"},
		{Domain: "four.test", Content: "short"},
		{Domain: "five.test", Content: "short"},
	}
	a.Analyze(context.Background(), "claim", docs)

	assert.Contains(t, gen.prompt, "SOURCE 4 (four.test)")
	assert.NotContains(t, gen.prompt, "five.test")
	// The 4000-char excerpt is cut to 1000 before embedding.
	assert.NotContains(t, gen.prompt, strings.Repeat("x", 1001))
	assert.Contains(t, gen.prompt, strings.Repeat("x", 1000))
}

func TestAnalyzePromptTruncatesMultibyteCleanly(t *testing.T) {
	gen := &stubGenerator{reply: `{"verdict":"SUPPORTED","confidence":80}`}
	a := New(gen)

	docs := []Document{{Domain: "one.test", Content: strings.Repeat("ü", 4000)}}
	a.Analyze(context.Background(), "claim", docs)

	assert.True(t, utf8.ValidString(gen.prompt))
	assert.Contains(t, gen.prompt, strings.Repeat("ü", 1000))
	assert.NotContains(t, gen.prompt, strings.Repeat("ü", 1001))
}

func TestHeuristicWhenGeneratorUnreachable(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	a := New(gen)

	docs := []Document{
		{Domain: "a.test", Content: "tesla was founded in 2003 in california"},
		{Domain: "b.test", Content: "completely unrelated text about cooking"},
	}

	first := a.Analyze(context.Background(), "Tesla was founded in 2003", docs)
	second := a.Analyze(context.Background(), "Tesla was founded in 2003", docs)

	// Claim words: tesla, founded, 2003 (3 words). Doc a matches all 3
	// (> 1.2), doc b matches none. ratio = 1/2 -> SUPPORTED, 80*0.5 = 40.
	assert.Equal(t, VerdictSupported, first.Verdict)
	assert.Equal(t, 40.0, first.Confidence)
	assert.Equal(t, first, second)
}

func TestHeuristicContradictedWhenLowOverlap(t *testing.T) {
	gen := &stubGenerator{reply: ""}
	a := New(gen)

	result := a.Analyze(context.Background(), "The moon is made of basalt rock", []Document{
		{Domain: "a.test", Content: "recipes for sourdough bread"},
		{Domain: "b.test", Content: "local football scores"},
	})

	assert.Equal(t, VerdictContradicted, result.Verdict)
	assert.Equal(t, 50.0, result.Confidence)
	assert.Equal(t, "Unable to verify - check sources", *result.Correction)
}

func TestHeuristicWhenModelReturnsProse(t *testing.T) {
	gen := &stubGenerator{reply: "I am not able to produce JSON today."}
	a := New(gen)

	result := a.Analyze(context.Background(), "Water boils at 100 degrees", []Document{
		{Domain: "a.test", Content: "water boils at 100 degrees celsius at sea level"},
	})

	// One of one docs supporting: ratio 1.0 -> SUPPORTED at 80.
	assert.Equal(t, VerdictSupported, result.Verdict)
	assert.Equal(t, 80.0, result.Confidence)
}

func TestHeuristicNoEvidence(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	a := New(gen)

	result := a.Analyze(context.Background(), "anything", nil)
	assert.Equal(t, VerdictContradicted, result.Verdict)
	assert.Equal(t, 50.0, result.Confidence)
}
