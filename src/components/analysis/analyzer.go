// Package analysis turns a claim plus scored evidence excerpts into a
// verdict. The primary path is a generation-model call; a deterministic
// keyword-overlap heuristic covers every way that call can fail.
package analysis

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/claimlens/claimlens/src/components/jsonx"
)

// Verdict is the analyzer's raw judgment, before the orchestrator maps it
// to a result status.
type Verdict string

const (
	VerdictSupported          Verdict = "SUPPORTED"
	VerdictContradicted       Verdict = "CONTRADICTED"
	VerdictPartiallySupported Verdict = "PARTIALLY_SUPPORTED"
)

// Document is one evidence excerpt: where it came from and what it said.
type Document struct {
	Domain  string
	Content string
}

// Result is the analyzer's judgment. Confidence is producer-supplied and
// not yet clamped; the orchestrator blends and clamps it.
type Result struct {
	Verdict    Verdict  `json:"verdict"`
	Confidence float64  `json:"confidence"`
	Correction *string  `json:"correction"`
	KeyFacts   []string `json:"key_facts"`
}

// Generator is the text-generation collaborator. It may be unreachable or
// return junk; both are tolerated.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	maxDocuments = 4
	maxExcerpt   = 1000
)

type Analyzer struct {
	gen Generator
}

func New(gen Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Analyze judges the claim against at most four evidence excerpts. Any
// generation or parse failure degrades to the keyword heuristic, never to
// an error.
func (a *Analyzer) Analyze(ctx context.Context, claim string, docs []Document) Result {
	if len(docs) > maxDocuments {
		docs = docs[:maxDocuments]
	}

	text, err := a.gen.Generate(ctx, buildPrompt(claim, docs))
	if err != nil {
		log.Printf("analysis: generation failed, using heuristic: %v", err)
		return heuristic(claim, docs)
	}
	if text == "" {
		log.Printf("analysis: empty generation response, using heuristic")
		return heuristic(claim, docs)
	}

	var result Result
	if err := jsonx.ExtractObject(text, &result); err != nil {
		log.Printf("analysis: no JSON in generation response, using heuristic")
		return heuristic(claim, docs)
	}
	return result
}

// buildPrompt embeds the claim and bounded excerpts so prompt size stays
// deterministic regardless of what the scraper brought back.
func buildPrompt(claim string, docs []Document) string {
	var evidence strings.Builder
	for i, doc := range docs {
		excerpt := doc.Content
		if runes := []rune(excerpt); len(runes) > maxExcerpt {
			excerpt = string(runes[:maxExcerpt])
		}
		evidence.WriteString(fmt.Sprintf("\n\nSOURCE %d (%s):\n", i+1, doc.Domain))
		evidence.WriteString(fmt.Sprintf("Content: %s\n", excerpt))
	}

	return fmt.Sprintf(`You are a fact-checker. Compare the claim with the web evidence and determine if it's true or false.

CLAIM: %q

WEB EVIDENCE:%s

Based on the evidence, respond with ONLY a JSON object:
{"verdict": "SUPPORTED" or "CONTRADICTED" or "PARTIALLY_SUPPORTED", "confidence": 0-100, "correction": "the correct information if claim is wrong" or null, "key_facts": ["fact from source 1", "fact from source 2"]}

JSON response:`, claim, evidence.String())
}

// heuristic is the deterministic fallback: a pure function of claim and
// evidence. A document supports the claim when it contains more than 40%
// of the claim's significant words.
func heuristic(claim string, docs []Document) Result {
	words := claimWords(claim)

	supporting := 0
	for _, doc := range docs {
		content := strings.ToLower(doc.Content)
		matches := 0
		for word := range words {
			if strings.Contains(content, word) {
				matches++
			}
		}
		if float64(matches) > float64(len(words))*0.4 {
			supporting++
		}
	}

	var ratio float64
	if len(docs) > 0 {
		ratio = float64(supporting) / float64(len(docs))
	}

	if ratio >= 0.5 {
		return Result{
			Verdict:    VerdictSupported,
			Confidence: math.Round(80 * ratio),
			KeyFacts:   []string{},
		}
	}

	correction := "Unable to verify - check sources"
	return Result{
		Verdict:    VerdictContradicted,
		Confidence: 50,
		Correction: &correction,
		KeyFacts:   []string{},
	}
}

func claimWords(claim string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(claim) {
		if len(w) > 3 {
			words[strings.ToLower(w)] = struct{}{}
		}
	}
	return words
}
