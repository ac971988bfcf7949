// Package search resolves a free-text query to candidate source URLs by
// scraping the DuckDuckGo HTML interface. It never reports transport or
// parse problems to callers as hard failures; a bad day on the search
// surface is just an empty result list.
package search

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/claimlens/claimlens/src/webclient"
)

const defaultEndpoint = "https://html.duckduckgo.com/html/"

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func New() *Client {
	return &Client{
		endpoint:   defaultEndpoint,
		httpClient: webclient.NewDefault(10 * time.Second),
	}
}

// NewWithEndpoint points the client at an alternate search surface. Used by
// tests and by deployments that proxy the search engine.
func NewWithEndpoint(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = webclient.NewDefault(10 * time.Second)
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// Resolve issues one search request and parses result links out of the
// response HTML. Any transport or parse error yields an empty list; the
// caller decides whether to fall back.
func (c *Client) Resolve(ctx context.Context, query string, maxResults int) []string {
	searchURL := fmt.Sprintf("%s?q=%s", c.endpoint, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		log.Printf("search: bad request for %q: %v", query, err)
		return nil
	}
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("search: request failed for %q: %v", query, err)
		return nil
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("search: parse failed for %q: %v", query, err)
		return nil
	}

	var results []string
	doc.Find(".result").Each(func(_ int, result *goquery.Selection) {
		// First strategy: the visible result URL text.
		if href := strings.TrimSpace(result.Find(".result__url").First().Text()); href != "" {
			if !strings.HasPrefix(href, "http") {
				href = "https://" + href
			}
			results = append(results, href)
			return
		}

		// Second strategy: the anchor href, which may be a redirect wrapping
		// the target in a uddg parameter.
		link := result.Find(".result__a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		if strings.Contains(href, "uddg=") {
			if unwrapped := unwrapRedirect(href); unwrapped != "" {
				href = unwrapped
			}
		}
		if strings.HasPrefix(href, "http") {
			results = append(results, href)
		}
	})

	return dedupe(results, maxResults)
}

// ResolveWithFallback guarantees the pipeline has something to scrape: when
// the primary search yields nothing, it emits an encyclopedia article URL
// and a general-reference search URL built from the query text. The
// fallback may be irrelevant to the claim; that trade-off is accepted
// instead of retry loops.
func (c *Client) ResolveWithFallback(ctx context.Context, query string, maxResults int) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	results := c.Resolve(ctx, query, maxResults)
	if len(results) > 0 {
		return results
	}

	wikiTitle := strings.ReplaceAll(query, " ", "_")
	return []string{
		"https://en.wikipedia.org/wiki/" + url.QueryEscape(wikiTitle),
		"https://www.britannica.com/search?query=" + url.QueryEscape(query),
	}
}

func unwrapRedirect(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("uddg")
}

func dedupe(urls []string, max int) []string {
	seen := make(map[string]struct{}, len(urls))
	var unique []string
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
		if max > 0 && len(unique) == max {
			break
		}
	}
	return unique
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
}
