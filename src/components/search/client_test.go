package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const resultsPage = `<html><body>
<div class="result">
  <a class="result__a" href="https://duckduckgo.com/l/?uddg=https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FTesla">Tesla</a>
</div>
<div class="result">
  <span class="result__url"> www.reuters.com/article/tesla </span>
</div>
<div class="result">
  <span class="result__url">https://www.reuters.com/article/tesla</span>
</div>
<div class="result">
  <a class="result__a" href="/relative/no-good">broken</a>
</div>
</body></html>`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewWithEndpoint(srv.URL, srv.Client()), srv
}

func TestResolveParsesBothSelectorStrategies(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tesla founding", r.URL.Query().Get("q"))
		w.Write([]byte(resultsPage))
	})
	defer srv.Close()

	urls := c.Resolve(context.Background(), "tesla founding", 8)

	assert.Equal(t, []string{
		"https://en.wikipedia.org/wiki/Tesla",
		"https://www.reuters.com/article/tesla",
	}, urls)
}

func TestResolveCapsResults(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<div class="result"><span class="result__url">https://a.test/1</span></div>` +
			`<div class="result"><span class="result__url">https://a.test/2</span></div>` +
			`<div class="result"><span class="result__url">https://a.test/3</span></div>`))
	})
	defer srv.Close()

	urls := c.Resolve(context.Background(), "q", 2)
	assert.Len(t, urls, 2)
}

func TestResolveTransportErrorYieldsEmpty(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // connection refused from here on

	urls := c.Resolve(context.Background(), "anything", 5)
	assert.Empty(t, urls)
}

func TestResolveNoMatchingElementsIsNormal(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>no results today</p></body></html>`))
	})
	defer srv.Close()

	urls := c.Resolve(context.Background(), "obscure", 5)
	assert.Empty(t, urls)
}

func TestResolveWithFallbackEmitsReferenceURLs(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html></html>`))
	})
	defer srv.Close()

	urls := c.ResolveWithFallback(context.Background(), "Tesla founding year", 6)

	assert.Equal(t, []string{
		"https://en.wikipedia.org/wiki/Tesla_founding_year",
		"https://www.britannica.com/search?query=Tesla+founding+year",
	}, urls)
}

func TestResolveWithFallbackEmptyQuery(t *testing.T) {
	c := New()
	assert.Empty(t, c.ResolveWithFallback(context.Background(), "   ", 6))
}

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c"}, 0)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
