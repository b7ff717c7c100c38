// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discussion

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
)

// Proxy endpoint bases. Package-level vars for test substitution.
var (
	passthroughProxyBase = "https://corsproxy.io/?"
	envelopeProxyBase    = "https://api.allorigins.win/get?url="
)

// proxyStrategy pairs a request builder with a response transformer. Each
// strategy is tried at most once per fetch.
type proxyStrategy struct {
	name      string
	buildURL  func(target string) string
	transform func(r io.Reader) (listing, error)
}

// strategies returns the proxy chain in attempt order.
func strategies() []proxyStrategy {
	return []proxyStrategy{
		{
			// Passthrough proxy: relays the search endpoint's JSON unchanged.
			name: "passthrough",
			buildURL: func(target string) string {
				return passthroughProxyBase + url.QueryEscape(target)
			},
			transform: func(r io.Reader) (listing, error) {
				var l listing
				if err := json.NewDecoder(r).Decode(&l); err != nil {
					return listing{}, err
				}
				return l, nil
			},
		},
		{
			// Envelope proxy: wraps the upstream body in {"contents": "..."},
			// requiring a second decode of the inner JSON string.
			name: "envelope",
			buildURL: func(target string) string {
				return envelopeProxyBase + url.QueryEscape(target)
			},
			transform: func(r io.Reader) (listing, error) {
				var wrapper struct {
					Contents string `json:"contents"`
				}
				if err := json.NewDecoder(r).Decode(&wrapper); err != nil {
					return listing{}, err
				}
				if wrapper.Contents == "" {
					return listing{}, fmt.Errorf("envelope proxy returned empty contents")
				}
				var l listing
				if err := json.Unmarshal([]byte(wrapper.Contents), &l); err != nil {
					return listing{}, err
				}
				return l, nil
			},
		},
	}
}

// listing mirrors the subset of the search endpoint's JSON the pipeline reads.
type listing struct {
	Data struct {
		Children []struct {
			Data post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// post is one discussion post within a listing.
type post struct {
	Title                 string `json:"title"`
	Selftext              string `json:"selftext"`
	Subreddit             string `json:"subreddit"`
	SubredditNamePrefixed string `json:"subreddit_name_prefixed"`
}
