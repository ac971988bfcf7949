package verifier

import (
	"github.com/claimlens/claimlens/src/components/analysis"
	"github.com/claimlens/claimlens/src/components/credibility"
	"github.com/claimlens/claimlens/src/components/scraper"
)

// Status is the final per-claim outcome. Every result carries exactly one
// of these; there is no silent unknown.
type Status string

const (
	StatusVerified      Status = "verified"
	StatusFalse         Status = "false"
	StatusPartiallyTrue Status = "partially_true"
	StatusAmbiguous     Status = "ambiguous"
	StatusUnverifiable  Status = "unverifiable"
)

// verdictStatus maps analyzer verdicts onto result statuses. Verdicts not
// in the table (including junk from a confused model) land on unverifiable.
var verdictStatus = map[analysis.Verdict]Status{
	analysis.VerdictSupported:          StatusVerified,
	analysis.VerdictContradicted:       StatusFalse,
	analysis.VerdictPartiallySupported: StatusPartiallyTrue,
}

// Evidence is a scraped page joined with its credibility score.
type Evidence struct {
	Page  scraper.Page
	Score credibility.SourceScore
}

// Source is one citation in a result.
type Source struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Domain      string `json:"domain"`
	Credibility string `json:"credibility"`
	Score       int    `json:"score"`
}

// Result is the unit returned per claim. Field names are part of the wire
// contract consumed downstream; do not rename them.
type Result struct {
	Claim                string   `json:"claim"`
	Status               Status   `json:"status"`
	ConfidenceScore      int      `json:"confidence_score"`
	Correction           *string  `json:"correction"`
	Explanation          string   `json:"explanation"`
	AmbiguousWords       []string `json:"ambiguous_words,omitempty"`
	KeyFacts             []string `json:"key_facts"`
	Sources              []Source `json:"sources"`
	SourcesChecked       int      `json:"sources_checked,omitempty"`
	AvgSourceCredibility float64  `json:"avg_source_credibility,omitempty"`
	ProcessingTime       float64  `json:"processing_time"`
}

// StatusCounts tallies results per status for the batch summary.
type StatusCounts struct {
	Verified      int `json:"verified"`
	False         int `json:"false"`
	PartiallyTrue int `json:"partially_true"`
	Ambiguous     int `json:"ambiguous"`
	Unverifiable  int `json:"unverifiable"`
}

// Summary is the batch-level report, results in input order.
type Summary struct {
	Timestamp           string       `json:"timestamp"`
	TotalClaims         int          `json:"total_claims"`
	Summary             StatusCounts `json:"summary"`
	TotalSourcesChecked int          `json:"total_sources_checked"`
	OverallTrustScore   float64      `json:"overall_trust_score"`
	ProcessingTime      float64      `json:"processing_time"`
	Results             []Result     `json:"results"`
}
