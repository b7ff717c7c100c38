// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syllabus

import (
	"regexp"
	"strings"
)

// Placeholder texts rendered when a section body is too short to be useful.
const (
	PlaceholderList    = "No data found in the archives."
	PlaceholderLibrary = "No visual reels available."
)

// minBodyLength is the shortest body considered renderable content.
const minBodyLength = 10

// LineKind classifies a rendered line of a section body.
type LineKind int

const (
	// LinePlaceholder is the fixed "not found" stand-in for an empty section.
	LinePlaceholder LineKind = iota
	// LineChecklist is a togglable checklist row keyed by its trimmed text.
	LineChecklist
	// LineParagraph is a plain text paragraph.
	LineParagraph
)

// Line is one rendered row of a section body.
type Line struct {
	Kind LineKind
	Text string
}

var bulletPattern = regexp.MustCompile(`^[-*•]\s`)

// RenderBody classifies a section body for list rendering: bullet lines
// become checklist rows, other non-blank lines become paragraphs. A body
// shorter than ten characters renders as the fixed placeholder. Pure
// function of the body; no network or AI involvement.
func RenderBody(body string) []Line {
	if len(body) < minBodyLength {
		return []Line{{Kind: LinePlaceholder, Text: PlaceholderList}}
	}

	var lines []Line
	for _, raw := range strings.Split(body, "\n") {
		clean := strings.TrimSpace(raw)
		if clean == "" {
			continue
		}
		if bulletPattern.MatchString(clean) {
			text := strings.TrimSpace(bulletPattern.ReplaceAllString(clean, ""))
			lines = append(lines, Line{Kind: LineChecklist, Text: text})
			continue
		}
		lines = append(lines, Line{Kind: LineParagraph, Text: clean})
	}
	return lines
}

// LibraryKind classifies a rendered entry of the library section.
type LibraryKind int

const (
	// LibraryPlaceholder is the fixed stand-in for an empty library.
	LibraryPlaceholder LibraryKind = iota
	// LibraryGroup is a sub-header grouping the entries that follow it.
	LibraryGroup
	// LibraryLink is a structured external-link entry.
	LibraryLink
	// LibraryCaption is a plain descriptive line.
	LibraryCaption
)

// LibraryEntry is one rendered entry of the library section.
type LibraryEntry struct {
	Kind  LibraryKind
	Title string
	URL   string
}

var (
	groupPattern    = regexp.MustCompile(`(?i)^(Unit|Module)\s+\d+:`)
	linkPattern     = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	groupMarkupTrim = regexp.MustCompile(`^[#\-*]+`)
)

// RenderLibrary classifies a library section body: "###" or "Unit/Module N:"
// prefixes become group titles, Markdown links become structured link
// entries, plain non-bracketed lines become captions, and stray bracketed
// lines that are not links are dropped.
func RenderLibrary(body string) []LibraryEntry {
	if len(body) < minBodyLength {
		return []LibraryEntry{{Kind: LibraryPlaceholder, Title: PlaceholderLibrary}}
	}

	var entries []LibraryEntry
	for _, raw := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "###") || groupPattern.MatchString(trimmed) {
			title := strings.TrimSpace(groupMarkupTrim.ReplaceAllString(trimmed, ""))
			entries = append(entries, LibraryEntry{Kind: LibraryGroup, Title: title})
			continue
		}

		if m := linkPattern.FindStringSubmatch(trimmed); m != nil {
			entries = append(entries, LibraryEntry{Kind: LibraryLink, Title: m[1], URL: m[2]})
			continue
		}

		if !strings.HasPrefix(trimmed, "[") {
			entries = append(entries, LibraryEntry{Kind: LibraryCaption, Title: trimmed})
		}
		// Bracketed lines that are not links are dropped.
	}
	return entries
}
