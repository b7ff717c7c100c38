// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the phantasm pipeline:
// discussion search results, syllabus sections, cram plans, professor
// ratings, and per-stage configuration.
package types

import "time"

// Provenance tags whether discussion data came from the live search source
// or the synthetic fallback. Once a request degrades to MOCK it never
// reverts to LIVE within that request cycle.
type Provenance string

const (
	ProvenanceLive Provenance = "LIVE"
	ProvenanceMock Provenance = "MOCK"
)

// SearchResult is the outcome of the discussion fetch pipeline: normalized
// discussion text plus a trust signal for the end user.
type SearchResult struct {
	// RawText is the normalized discussion text handed to synthesis.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Provenance records whether RawText is live data or a synthetic stand-in.
	Provenance Provenance `json:"provenance" yaml:"provenance"`
}

// DocumentSection is one named slice of a generated syllabus document.
// Sections are recomputed from the full document on every render and are
// never persisted independently.
type DocumentSection struct {
	// Header is one of the fixed known section headers.
	Header string `json:"header" yaml:"header"`

	// Body is the raw text between this header and the next recognized
	// header, trimmed.
	Body string `json:"body" yaml:"body"`
}

// ChecklistItem is a togglable row rendered from a bullet line. Identity is
// the item's literal trimmed text: two bullets with identical text share
// checked state, and renaming a bullet forfeits its prior state.
type ChecklistItem struct {
	Text    string `json:"text" yaml:"text"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// SyllabusData is an archived generation result for one course.
type SyllabusData struct {
	// CourseCode is the course the syllabus was generated for.
	CourseCode string `json:"course_code" yaml:"course_code"`

	// University is the institution given at generation time.
	University string `json:"university" yaml:"university"`

	// Content is the full generated Markdown document.
	Content string `json:"content" yaml:"content"`

	// Provenance records the discussion data source used for generation.
	Provenance Provenance `json:"provenance" yaml:"provenance"`

	// Timestamp is when the syllabus was generated.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
