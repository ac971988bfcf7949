// Package extractor turns cleaned prose into atomic claim strings with one
// generation call. Compound statements are split so every claim carries a
// single verifiable fact.
package extractor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/claimlens/claimlens/src/components/jsonx"
)

// Generator is the text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Extractor struct {
	gen Generator
}

func New(gen Generator) *Extractor {
	return &Extractor{gen: gen}
}

type claimsPayload struct {
	Claims []string `json:"claims"`
}

// Extract asks the model for atomic claims and recovers them from whatever
// JSON shape it chose to answer with. The generation service being down is
// an error the caller reports; a parseable-but-empty answer is just zero
// claims.
func (e *Extractor) Extract(ctx context.Context, text string) ([]string, error) {
	raw, err := e.gen.Generate(ctx, buildPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("claim extraction: %w", err)
	}

	claims, err := parseClaims(raw)
	if err != nil {
		log.Printf("extractor: could not parse model output: %.200s", raw)
		return nil, fmt.Errorf("claim extraction: %w", err)
	}

	// Drop blank entries the model sometimes pads the list with.
	out := claims[:0]
	for _, c := range claims {
		if s := strings.TrimSpace(c); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func parseClaims(raw string) ([]string, error) {
	var payload claimsPayload
	if err := jsonx.ExtractObject(raw, &payload); err == nil && payload.Claims != nil {
		return payload.Claims, nil
	}

	var list []string
	if err := jsonx.ExtractArray(raw, &list); err == nil {
		return list, nil
	}

	return nil, jsonx.ErrNoJSON
}

func buildPrompt(text string) string {
	return fmt.Sprintf(`Extract all individual factual claims from the following text.

IMPORTANT RULES:
1. Break down compound claims into separate atomic claims
2. Each claim should contain ONE verifiable fact only
3. If a sentence has multiple facts, split them into separate claims

Example:
Input: "Tesla was founded by Elon Musk in 2003 in California"
Output claims:
- "Tesla was founded by Elon Musk"
- "Tesla was founded in 2003"
- "Tesla was founded in California"

TEXT TO ANALYZE:
"""
%s
"""

Return ONLY a valid JSON object with this exact format:
{"claims": ["claim 1", "claim 2", "claim 3"]}

Extract all atomic claims now:`, text)
}
