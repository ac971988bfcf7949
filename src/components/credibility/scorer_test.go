package credibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTierTable(t *testing.T) {
	cases := []struct {
		url   string
		score int
		tier  string
	}{
		{"https://en.wikipedia.org/wiki/Tesla", 100, "Highly Authoritative"},
		{"https://www.bbc.com/news/article", 100, "Highly Authoritative"},
		{"https://cdc.gov/x", 100, "Highly Authoritative"},
		{"https://web.mit.edu/research", 100, "Highly Authoritative"},
		{"https://www.nytimes.com/2024/story.html", 85, "Very Reliable"},
		{"https://www.cnn.com/world", 70, "Reliable"},
		{"https://medium.com/@x", 50, "Moderate"},
		{"https://example-blog.test", 30, "Unverified Source"},
	}

	for _, tc := range cases {
		got := Score(tc.url)
		assert.Equal(t, tc.score, got.Score, tc.url)
		assert.Equal(t, tc.tier, got.Tier, tc.url)
	}
}

func TestScoreGovSuffixBeatsLowerTiers(t *testing.T) {
	// cdc.gov also appears in the tier 2 site list; the .gov rule must win.
	got := Score("https://www.cdc.gov/flu")
	assert.Equal(t, 100, got.Score)
}

func TestScoreIsTotal(t *testing.T) {
	for _, raw := range []string{"", "not a url", "ftp://weird.host/x", "https://"} {
		got := Score(raw)
		assert.Contains(t, []int{100, 85, 70, 50, 30}, got.Score, raw)
	}
}

func TestDomainStripsWWW(t *testing.T) {
	assert.Equal(t, "reuters.com", Domain("https://www.reuters.com/article"))
	assert.Equal(t, "reuters.com", Domain("https://reuters.com/article"))
}

func TestScoreSubstringLooseness(t *testing.T) {
	// Substring containment is the documented matching rule, so an embedding
	// domain matches too.
	got := Score("https://bbc.com.mirror.example/x")
	assert.Equal(t, 100, got.Score)
}
