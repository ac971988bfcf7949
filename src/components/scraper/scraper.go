// Package scraper fetches web pages and extracts their readable content.
// Fetches never fail loudly: a page that cannot be retrieved or parsed comes
// back with Fetched=false and is dropped by the batch API, so callers must
// treat zero evidence as a first-class outcome.
package scraper

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/claimlens/claimlens/src/webclient"
)

const (
	maxTitleLen   = 200
	maxContentLen = 5000

	fetchTimeout  = 8 * time.Second
	batchDeadline = 30 * time.Second
	maxWorkers    = 5
)

// Page is the extracted content of one URL.
type Page struct {
	URL     string
	Title   string
	Content string
	Fetched bool
}

// boilerplate tags removed before content extraction.
const strippedTags = "script, style, nav, footer, header, aside, form, iframe"

// contentSelectors are tried in order; the first match supplies the page
// content, otherwise the full body text is used.
var contentSelectors = []string{
	"article", "main", ".content", "#content", ".post", ".entry", ".mw-parser-output",
}

var whitespaceRE = regexp.MustCompile(`\s+`)

type Scraper struct {
	httpClient *http.Client
	workers    int
	deadline   time.Duration
}

func New() *Scraper {
	return &Scraper{
		httpClient: webclient.NewDefault(fetchTimeout),
		workers:    maxWorkers,
		deadline:   batchDeadline,
	}
}

// NewWithClient builds a scraper around the supplied HTTP client and worker
// pool size. Tests use this to point fetches at local servers.
func NewWithClient(httpClient *http.Client, workers int, deadline time.Duration) *Scraper {
	if workers <= 0 {
		workers = maxWorkers
	}
	if deadline <= 0 {
		deadline = batchDeadline
	}
	return &Scraper{httpClient: httpClient, workers: workers, deadline: deadline}
}

// Fetch retrieves one URL and extracts its title and main content. All
// failure modes collapse into Fetched=false.
func (s *Scraper) Fetch(ctx context.Context, rawURL string) Page {
	failed := Page{URL: rawURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return failed
	}
	setBrowserHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("scraper: fetch failed for %s: %v", rawURL, err)
		return failed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("scraper: %s returned status %d", rawURL, resp.StatusCode)
		return failed
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("scraper: parse failed for %s: %v", rawURL, err)
		return failed
	}

	doc.Find(strippedTags).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	title = truncate(title, maxTitleLen)

	var content string
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content = sel.Text()
			break
		}
	}
	if content == "" {
		content = doc.Find("body").Text()
	}

	content = strings.TrimSpace(whitespaceRE.ReplaceAllString(content, " "))
	content = truncate(content, maxContentLen)

	return Page{URL: rawURL, Title: title, Content: content, Fetched: true}
}

// FetchAll fans the URLs out over a bounded worker pool under one aggregate
// deadline. Pages that fail, come back empty, or miss the deadline are
// dropped; the caller gets a best-effort subset, possibly empty. Completion
// order is irrelevant because results are re-sorted downstream.
func (s *Scraper) FetchAll(ctx context.Context, urls []string) []Page {
	ctx, cancel := context.WithTimeout(ctx, s.deadline)
	defer cancel()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	pages := make([]Page, len(urls))
	semaphore := make(chan struct{}, s.workers)

	for i, u := range urls {
		wg.Add(1)
		go func(index int, pageURL string) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				return
			}

			page := s.Fetch(ctx, pageURL)
			mu.Lock()
			pages[index] = page
			mu.Unlock()
		}(i, u)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("scraper: batch deadline reached after %v", s.deadline)
	}

	// Workers may still be finishing when the deadline fires; snapshot under
	// the lock so late assignments cannot tear the drain.
	mu.Lock()
	snapshot := make([]Page, len(pages))
	copy(snapshot, pages)
	mu.Unlock()

	var usable []Page
	for _, p := range snapshot {
		if p.Fetched && p.Content != "" {
			usable = append(usable, p)
		}
	}
	return usable
}

// truncate caps s at max characters without splitting a rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
}
