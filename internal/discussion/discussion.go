// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discussion fetches informal student chatter about a course from a
// public search endpoint through an ordered chain of proxy strategies,
// degrading to a deterministic synthetic dataset when every strategy fails.
package discussion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/phantasm/pkg/types"
)

// searchBase is the public search endpoint queried through the proxy chain.
// Package-level var for test substitution.
var searchBase = "https://www.reddit.com/search.json"

// ErrNoResults reports an empty-but-well-formed listing. It is a different
// condition than a transport failure: "no results for this course" versus
// "could not reach the data source". The pipeline currently folds both into
// the synthetic fallback, but callers inspecting strategy errors can still
// tell them apart.
var ErrNoResults = errors.New("no results found for this course")

// Query holds the search terms for a discussion fetch.
type Query struct {
	University string
	CourseCode string
	Professor  string
}

// Text joins the non-empty query parts into the search string.
func (q Query) Text() string {
	parts := []string{q.University, q.CourseCode}
	if strings.TrimSpace(q.Professor) != "" {
		parts = append(parts, q.Professor)
	}
	return strings.Join(parts, " ")
}

// Fetch runs the proxy chain for the query and always returns a usable
// result: live discussion text on the first strategy that yields at least
// one post, or the synthetic dataset tagged MOCK when every strategy is
// exhausted. Strategies are attempted serially, one request each, in order.
// Progress and warnings are written to w.
func Fetch(ctx context.Context, client *http.Client, q Query, cfg types.DiscussionConfig, w io.Writer) types.SearchResult {
	target := searchURL(q, cfg)

	for _, strategy := range strategies() {
		text, err := attempt(ctx, client, strategy, target, cfg)
		if err != nil {
			fmt.Fprintf(w, "warning: proxy %s failed: %v\n", strategy.name, err)
			continue
		}
		return types.SearchResult{RawText: text, Provenance: types.ProvenanceLive}
	}

	fmt.Fprintln(w, "warning: all proxies failed, switching to simulated data")
	return types.SearchResult{
		RawText:    mockData(q),
		Provenance: types.ProvenanceMock,
	}
}

// searchURL builds the search endpoint URL for the query.
func searchURL(q Query, cfg types.DiscussionConfig) string {
	maxPosts := cfg.MaxPosts
	if maxPosts <= 0 {
		maxPosts = 10
	}
	v := url.Values{}
	v.Set("q", q.Text())
	v.Set("sort", "relevance")
	v.Set("limit", fmt.Sprintf("%d", maxPosts))
	v.Set("type", "link")
	return searchBase + "?" + v.Encode()
}

// attempt issues one request through a single proxy strategy. A non-success
// status, transport error, transform parse error, or empty listing all fail
// the strategy; the caller advances to the next one without retrying.
func attempt(ctx context.Context, client *http.Client, s proxyStrategy, target string, cfg types.DiscussionConfig) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.buildURL(target), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("proxy request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("proxy returned HTTP %d", resp.StatusCode)
	}

	posts, err := s.transform(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing proxy response: %w", err)
	}

	return renderPosts(posts, cfg.ExcerptLimit)
}

// renderPosts normalizes a listing into the text block handed to synthesis.
// An empty listing returns ErrNoResults.
func renderPosts(l listing, excerptLimit int) (string, error) {
	if len(l.Data.Children) == 0 {
		return "", ErrNoResults
	}
	if excerptLimit <= 0 {
		excerptLimit = 500
	}

	blocks := make([]string, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		post := child.Data

		sub := post.SubredditNamePrefixed
		if sub == "" && post.Subreddit != "" {
			sub = "r/" + post.Subreddit
		}
		if sub == "" {
			sub = "r/college"
		}

		body := "(no text content)"
		if post.Selftext != "" {
			body = post.Selftext
			if len(body) > excerptLimit {
				body = body[:excerptLimit] + "..."
			}
		}

		blocks = append(blocks, fmt.Sprintf("[Source: %s] Title: %s\nDiscussion: %s", sub, post.Title, body))
	}

	return strings.Join(blocks, "\n\n"), nil
}
