// Package verifier drives the claim verification pipeline: ambiguity
// filtering, web search, parallel scraping, source scoring, evidence
// analysis and confidence blending, then batch aggregation. Failures at any
// stage degrade into a normal-shaped result; nothing below the batch
// boundary aborts the batch.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/claimlens/claimlens/src/components/ambiguity"
	"github.com/claimlens/claimlens/src/components/analysis"
	"github.com/claimlens/claimlens/src/components/credibility"
	"github.com/claimlens/claimlens/src/components/scraper"
)

// ErrNoClaims reports an empty input batch, which is a caller error rather
// than a zero-result verification.
var ErrNoClaims = errors.New("no claims to verify")

const (
	maxSearchResults = 6
	maxSources       = 5
	maxTitleLen      = 80
	maxAnalyzedDocs  = 4

	llmWeight    = 0.7
	sourceWeight = 0.3
)

// Searcher resolves a claim to candidate source URLs.
type Searcher interface {
	ResolveWithFallback(ctx context.Context, query string, maxResults int) []string
}

// Fetcher retrieves usable pages for a set of URLs.
type Fetcher interface {
	FetchAll(ctx context.Context, urls []string) []scraper.Page
}

// Analyzer judges a claim against evidence excerpts.
type Analyzer interface {
	Analyze(ctx context.Context, claim string, docs []analysis.Document) analysis.Result
}

// ScoreFunc rates a URL's credibility. It must be total.
type ScoreFunc func(url string) credibility.SourceScore

type Verifier struct {
	search   Searcher
	scraper  Fetcher
	analyzer Analyzer
	score    ScoreFunc
}

func New(search Searcher, fetch Fetcher, analyzer Analyzer) *Verifier {
	return &Verifier{
		search:   search,
		scraper:  fetch,
		analyzer: analyzer,
		score:    credibility.Score,
	}
}

// NewWithScorer is for tests that need to pin source scores.
func NewWithScorer(search Searcher, fetch Fetcher, analyzer Analyzer, score ScoreFunc) *Verifier {
	return &Verifier{search: search, scraper: fetch, analyzer: analyzer, score: score}
}

// VerifySingle runs the full pipeline for one claim and always returns a
// complete result.
func (v *Verifier) VerifySingle(ctx context.Context, claim string) Result {
	start := time.Now()

	if isAmbiguous, matched := ambiguity.Classify(claim); isAmbiguous {
		return Result{
			Claim:           claim,
			Status:          StatusAmbiguous,
			ConfidenceScore: 0,
			Explanation:     "Contains vague terms: " + strings.Join(matched, ", ") + ". Cannot verify.",
			AmbiguousWords:  matched,
			KeyFacts:        []string{},
			Sources:         []Source{},
			ProcessingTime:  elapsed(start),
		}
	}

	urls := v.search.ResolveWithFallback(ctx, claim, maxSearchResults)
	if len(urls) == 0 {
		return v.unverifiable(claim, "Could not find web sources", start)
	}

	pages := v.scraper.FetchAll(ctx, urls)
	if len(pages) == 0 {
		return v.unverifiable(claim, "Could not retrieve content from sources", start)
	}

	evidence := make([]Evidence, 0, len(pages))
	for _, page := range pages {
		evidence = append(evidence, Evidence{Page: page, Score: v.score(page.URL)})
	}
	sort.SliceStable(evidence, func(i, j int) bool {
		return evidence[i].Score.Score > evidence[j].Score.Score
	})

	var scoreSum int
	for _, e := range evidence {
		scoreSum += e.Score.Score
	}
	avgSourceScore := float64(scoreSum) / float64(len(evidence))

	// The analyzer contract takes at most four excerpts, highest-credibility
	// first.
	analyzed := evidence
	if len(analyzed) > maxAnalyzedDocs {
		analyzed = analyzed[:maxAnalyzedDocs]
	}
	docs := make([]analysis.Document, 0, len(analyzed))
	for _, e := range analyzed {
		docs = append(docs, analysis.Document{Domain: e.Score.Domain, Content: e.Page.Content})
	}
	judgment := v.analyzer.Analyze(ctx, claim, docs)

	status, ok := verdictStatus[judgment.Verdict]
	if !ok {
		status = StatusUnverifiable
	}

	confidence := clamp(int(math.Round(judgment.Confidence*llmWeight + avgSourceScore*sourceWeight)))

	keyFacts := judgment.KeyFacts
	if keyFacts == nil {
		keyFacts = []string{}
	}

	return Result{
		Claim:                claim,
		Status:               status,
		ConfidenceScore:      confidence,
		Correction:           judgment.Correction,
		Explanation:          explanation(len(evidence)),
		KeyFacts:             keyFacts,
		Sources:              citations(evidence),
		SourcesChecked:       len(evidence),
		AvgSourceCredibility: round1(avgSourceScore),
		ProcessingTime:       elapsed(start),
	}
}

// VerifyAll processes claims strictly sequentially, in input order. A
// per-claim failure never aborts the batch; every claim yields exactly one
// result.
func (v *Verifier) VerifyAll(ctx context.Context, claims []string) (Summary, error) {
	if len(claims) == 0 {
		return Summary{}, ErrNoClaims
	}

	start := time.Now()
	results := make([]Result, 0, len(claims))
	var counts StatusCounts
	totalSources := 0

	for i, claim := range claims {
		log.Printf("verifier: claim %d/%d", i+1, len(claims))
		result := v.VerifySingle(ctx, claim)
		results = append(results, result)

		switch result.Status {
		case StatusVerified:
			counts.Verified++
		case StatusFalse:
			counts.False++
		case StatusPartiallyTrue:
			counts.PartiallyTrue++
		case StatusAmbiguous:
			counts.Ambiguous++
		case StatusUnverifiable:
			counts.Unverifiable++
		}
		totalSources += result.SourcesChecked
	}

	return Summary{
		Timestamp:           time.Now().Format("2006-01-02T15:04:05"),
		TotalClaims:         len(claims),
		Summary:             counts,
		TotalSourcesChecked: totalSources,
		OverallTrustScore:   trustScore(len(claims), counts),
		ProcessingTime:      elapsed(start),
		Results:             results,
	}, nil
}

// trustScore summarizes what fraction of the verifiable claims held up,
// counting partially-true claims at half weight.
func trustScore(total int, counts StatusCounts) float64 {
	verifiable := total - counts.Ambiguous - counts.Unverifiable
	if verifiable <= 0 {
		return 0
	}
	trust := 100 * (float64(counts.Verified) + 0.5*float64(counts.PartiallyTrue)) / float64(verifiable)
	return round1(trust)
}

func (v *Verifier) unverifiable(claim, reason string, start time.Time) Result {
	return Result{
		Claim:           claim,
		Status:          StatusUnverifiable,
		ConfidenceScore: 0,
		Explanation:     reason,
		KeyFacts:        []string{},
		Sources:         []Source{},
		ProcessingTime:  elapsed(start),
	}
}

// citations keeps the top entries of the already-sorted evidence set.
func citations(evidence []Evidence) []Source {
	n := len(evidence)
	if n > maxSources {
		n = maxSources
	}
	sources := make([]Source, 0, n)
	for _, e := range evidence[:n] {
		title := e.Page.Title
		if runes := []rune(title); len(runes) > maxTitleLen {
			title = string(runes[:maxTitleLen])
		}
		if title == "" {
			title = e.Score.Domain
		}
		sources = append(sources, Source{
			URL:         e.Page.URL,
			Title:       title,
			Domain:      e.Score.Domain,
			Credibility: e.Score.Tier,
			Score:       e.Score.Score,
		})
	}
	return sources
}

func explanation(sources int) string {
	return fmt.Sprintf("Based on %d sources", sources)
}

func clamp(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

func elapsed(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
