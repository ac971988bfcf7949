package credibility

import (
	"net/url"
	"strings"
)

// SourceScore is the credibility assessment for a single URL's domain.
type SourceScore struct {
	Domain string `json:"domain"`
	Score  int    `json:"score"`
	Tier   string `json:"tier"`
}

// Tier is one credibility bucket. Tiers are evaluated in order; the first
// match wins, so a domain listed in several tiers gets the highest one.
type Tier struct {
	Label string
	Score int
	Sites []string
}

// Matching is substring containment on the domain, the same loose rule the
// rest of the pipeline was built around. A domain that merely embeds a
// trusted name (e.g. "bbc.com.evil.example") will match. Known looseness,
// kept on purpose.
var tiers = []Tier{
	{
		Label: "Highly Authoritative",
		Score: 100,
		Sites: []string{
			"wikipedia.org", "britannica.com",
			"who.int", "un.org", "worldbank.org", "imf.org",
			"nature.com", "science.org", "ieee.org", "acm.org",
			"reuters.com", "apnews.com", "bbc.com", "bbc.co.uk",
		},
	},
	{
		Label: "Very Reliable",
		Score: 85,
		Sites: []string{
			"nytimes.com", "washingtonpost.com", "theguardian.com",
			"wsj.com", "economist.com", "forbes.com", "bloomberg.com",
			"nasa.gov", "nih.gov", "cdc.gov", "fda.gov",
			"mit.edu", "stanford.edu", "harvard.edu", "oxford.ac.uk",
			"sciencedirect.com", "springer.com", "wiley.com",
		},
	},
	{
		Label: "Reliable",
		Score: 70,
		Sites: []string{
			"cnn.com", "nbcnews.com", "abcnews.com", "cbsnews.com",
			"usatoday.com", "time.com", "newsweek.com",
			"techcrunch.com", "wired.com", "arstechnica.com",
			"nationalgeographic.com", "smithsonianmag.com",
			"investopedia.com", "healthline.com", "mayoclinic.org",
		},
	},
	{
		Label: "Moderate",
		Score: 50,
		Sites: []string{
			"medium.com", "quora.com", "reddit.com",
			"businessinsider.com", "huffpost.com", "vox.com",
			"theverge.com", "engadget.com", "cnet.com",
			"webmd.com", "medicalnewstoday.com",
		},
	},
}

const (
	defaultLabel = "Unverified Source"
	defaultScore = 30
)

// Domain extracts the registrable host from a URL, lower-cased and with a
// leading "www." stripped. Unparsable input yields an empty domain.
func Domain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	domain := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(domain, "www.")
}

// Score maps a URL to its credibility tier. It is total: every input,
// including garbage, gets a score. Government and university domains are
// always tier 1 regardless of the site tables.
func Score(rawURL string) SourceScore {
	domain := Domain(rawURL)

	if strings.HasSuffix(domain, ".gov") || strings.HasSuffix(domain, ".edu") {
		return SourceScore{Domain: domain, Score: tiers[0].Score, Tier: tiers[0].Label}
	}

	for _, tier := range tiers {
		for _, site := range tier.Sites {
			if strings.Contains(domain, site) {
				return SourceScore{Domain: domain, Score: tier.Score, Tier: tier.Label}
			}
		}
	}

	return SourceScore{Domain: domain, Score: defaultScore, Tier: defaultLabel}
}
