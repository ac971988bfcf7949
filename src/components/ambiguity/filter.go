// Package ambiguity flags claims whose phrasing is too vague to verify
// against web evidence. A flagged claim skips the whole pipeline, which is a
// cost control, not an error.
package ambiguity

import (
	"regexp"
	"strings"
)

// vocabulary lists hedge and vagueness markers. Multi-word phrases are
// matched as-is; everything is matched as whole words, case-insensitive.
var vocabulary = []string{
	"increased", "decreased", "improved", "declined", "grew", "reduced",
	"significantly", "substantially", "considerably", "greatly", "slightly",
	"mostly", "mainly", "generally", "usually", "often", "sometimes",
	"many", "few", "several", "some", "most", "numerous",
	"better", "worse", "more", "less", "higher", "lower",
	"around", "approximately", "about", "nearly", "almost",
	"rapidly", "slowly", "quickly", "gradually",
	"experts say", "studies show", "research suggests", "reportedly",
}

type marker struct {
	term string
	re   *regexp.Regexp
}

var markers = buildMarkers()

func buildMarkers() []marker {
	out := make([]marker, 0, len(vocabulary))
	for _, term := range vocabulary {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		out = append(out, marker{term: term, re: re})
	}
	return out
}

// Classify reports whether the claim contains vague phrasing and returns the
// matched terms in vocabulary order.
func Classify(claim string) (bool, []string) {
	lower := strings.ToLower(claim)
	var matched []string
	for _, m := range markers {
		if m.re.MatchString(lower) {
			matched = append(matched, m.term)
		}
	}
	return len(matched) > 0, matched
}
