// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger syncs whispers and survival plans with an external
// Memos-compatible note server. The server is an optional collaborator:
// listing degrades to empty results when it is unreachable, while explicit
// saves surface their errors.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/phantasm/internal/httputil"
	"github.com/pdiddy/phantasm/pkg/types"
)

const (
	defaultPageSize   = 100
	defaultVisibility = "PUBLIC"

	whisperTag = "#Whisper"
	planTag    = "#SurvivalPlan"
)

// Whisper is a free-form course note stored on the ledger.
type Whisper struct {
	ID        int64
	Content   string
	CreatedTs int64
}

// Client talks to a Memos-compatible server.
type Client struct {
	cfg    types.LedgerConfig
	client *http.Client
}

// NewClient builds a ledger client, applying page size and visibility
// defaults.
func NewClient(cfg types.LedgerConfig, client *http.Client) *Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.Visibility == "" {
		cfg.Visibility = defaultVisibility
	}
	if client == nil {
		client = httputil.NewClient(types.HTTPConfig{})
	}
	return &Client{cfg: cfg, client: client}
}

// Enabled reports whether the ledger is configured with a token.
func (c *Client) Enabled() bool {
	return c.cfg.Token != ""
}

// CourseTag converts a course code to its ledger tag: all whitespace
// stripped (e.g. "CS 101" -> "CS101").
func CourseTag(courseCode string) string {
	return strings.Join(strings.Fields(courseCode), "")
}

// apiURL normalizes the configured base URL to the memos endpoint.
// Accepts bare hosts (scheme defaults to https), trailing slashes, and
// URLs that already point at the endpoint.
func (c *Client) apiURL() string {
	url := strings.TrimSpace(c.cfg.URL)
	url = strings.TrimSuffix(url, "/")
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}
	if !strings.HasSuffix(url, "/api/v1/memos") {
		url += "/api/v1/memos"
	}
	return url
}

// memo is the wire representation of one note.
type memo struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedTs int64  `json:"createdTs"`
}

// normalizeListing decodes the listing body into a memo slice. Server
// versions differ: some return a bare array, some wrap it in "memos",
// some in "data".
func normalizeListing(body []byte) ([]memo, error) {
	var bare []memo
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Memos []memo `json:"memos"`
		Data  []memo `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decoding memo listing: %w", err)
	}
	if wrapped.Memos != nil {
		return wrapped.Memos, nil
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	return []memo{}, nil
}

// list fetches one page of memos and keeps those carrying both tags.
func (c *Client) list(ctx context.Context, kindTag, courseTag string) ([]memo, error) {
	url := fmt.Sprintf("%s?limit=%d", c.apiURL(), c.cfg.PageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := httputil.DoWithRetry(ctx, c.client, req, 2)
	if err != nil {
		return nil, fmt.Errorf("listing memos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ledger returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}

	memos, err := normalizeListing(body)
	if err != nil {
		return nil, err
	}

	var matched []memo
	for _, m := range memos {
		if strings.Contains(m.Content, kindTag) && strings.Contains(m.Content, "#"+courseTag) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// create posts a new memo with the configured visibility.
func (c *Client) create(ctx context.Context, content string) error {
	if !c.Enabled() {
		return fmt.Errorf("ledger not connected")
	}

	payload, err := json.Marshal(map[string]string{
		"content":    content,
		"visibility": c.cfg.Visibility,
	})
	if err != nil {
		return fmt.Errorf("marshaling memo: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := httputil.DoWithRetry(ctx, c.client, req, 2)
	if err != nil {
		return fmt.Errorf("saving memo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ledger returned %d", resp.StatusCode)
	}
	return nil
}

// ListWhispers returns course notes from the ledger, tag lines stripped.
// Connectivity failures yield an empty list with a warning on w; the
// feature simply hides when the server is away.
func (c *Client) ListWhispers(ctx context.Context, courseCode string, w io.Writer) []Whisper {
	if !c.Enabled() {
		return nil
	}

	tag := CourseTag(courseCode)
	memos, err := c.list(ctx, whisperTag, tag)
	if err != nil {
		fmt.Fprintf(w, "warning: whispers unavailable: %v\n", err)
		return nil
	}

	whispers := make([]Whisper, 0, len(memos))
	for _, m := range memos {
		content := strings.Replace(m.Content, whisperTag, "", 1)
		content = strings.Replace(content, "#"+tag, "", 1)
		whispers = append(whispers, Whisper{
			ID:        m.ID,
			Content:   strings.TrimSpace(content),
			CreatedTs: m.CreatedTs,
		})
	}
	return whispers
}

// SaveWhisper posts a note tagged for the course.
func (c *Client) SaveWhisper(ctx context.Context, courseCode, content string) error {
	tag := CourseTag(courseCode)
	return c.create(ctx, fmt.Sprintf("%s\n\n%s #%s", content, whisperTag, tag))
}

// ListPlans returns survival plans stored on the ledger for the course.
// Each memo embeds the plan as a fenced JSON block; memos whose block is
// missing or unparseable are skipped. The memo id and creation timestamp
// are attached to the decoded plan.
func (c *Client) ListPlans(ctx context.Context, courseCode string, w io.Writer) []types.CramPlan {
	if !c.Enabled() {
		return nil
	}

	memos, err := c.list(ctx, planTag, CourseTag(courseCode))
	if err != nil {
		fmt.Fprintf(w, "warning: survival plans unavailable: %v\n", err)
		return nil
	}

	plans := make([]types.CramPlan, 0, len(memos))
	for _, m := range memos {
		raw, ok := extractJSONBlock(m.Content)
		if !ok {
			continue
		}
		var plan types.CramPlan
		if err := json.Unmarshal([]byte(raw), &plan); err != nil {
			continue
		}
		plan.ID = m.ID
		plan.CreatedTs = m.CreatedTs
		plans = append(plans, plan)
	}
	return plans
}

// SavePlan posts a survival plan as a tagged memo with a human-readable
// protocol header and the plan itself in a fenced JSON block, so ListPlans
// can parse it back.
func (c *Client) SavePlan(ctx context.Context, courseCode string, plan types.CramPlan) error {
	encoded, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}

	content := fmt.Sprintf("%s #%s\n\n**Protocol: %s (%s)**\n> %s\n\n```json\n%s\n```",
		planTag, CourseTag(courseCode), plan.ExamType, plan.TotalHours, plan.Strategy, encoded)
	return c.create(ctx, content)
}

// extractJSONBlock pulls the contents of the first ```json fenced block.
func extractJSONBlock(content string) (string, bool) {
	const open = "```json\n"
	start := strings.Index(content, open)
	if start < 0 {
		return "", false
	}
	rest := content[start+len(open):]
	end := strings.Index(rest, "\n```")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
