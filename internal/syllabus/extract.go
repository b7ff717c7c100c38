// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package syllabus partitions a generated Markdown document into named
// sections and classifies section bodies for rendering. Section boundaries
// are detected heuristically: a known header at the start of a line, with
// optional Markdown markup, ends the previous section wherever it appears.
package syllabus

import (
	"regexp"
	"strings"

	"github.com/pdiddy/phantasm/pkg/types"
)

// KnownHeaders is the fixed, ordered set of section headers a generated
// document may contain. "Syllabus vs Reality" only appears when an official
// source document was attached to the generation request.
var KnownHeaders = []string{
	"Syllabus vs Reality",
	"Reality Check",
	"Hidden Prerequisites",
	"Panic Zones",
	"Golden Resources",
	"Phantom Library",
}

// headerPattern compiles a case-insensitive pattern matching the header at
// the start of a line, allowing optional leading markup: "#" or "*" runs,
// or a numeric "N." prefix, then whitespace, then the literal header text.
func headerPattern(header string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^(?:[#*]*|\d+\.)[ \t]*` + regexp.QuoteMeta(header))
}

// ExtractSection returns the trimmed body text belonging to header: the raw
// substring between the header's line and the first following occurrence of
// any other known header (or end of document). Returns "" when the header is
// absent. Sections may appear in any order or be omitted entirely; a header
// name occurring as ordinary prose is indistinguishable from a boundary.
func ExtractSection(doc, header string) string {
	if doc == "" {
		return ""
	}
	norm := strings.ReplaceAll(doc, "\r\n", "\n")

	loc := headerPattern(header).FindStringIndex(norm)
	if loc == nil {
		return ""
	}

	// Skip the remainder of the header line.
	rest := norm[loc[1]:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		rest = ""
	}

	// The body ends at the earliest boundary of any other known header.
	end := len(rest)
	for _, other := range KnownHeaders {
		if strings.EqualFold(other, header) {
			continue
		}
		if l := headerPattern(other).FindStringIndex(rest); l != nil && l[0] < end {
			end = l[0]
		}
	}

	return strings.TrimSpace(rest[:end])
}

// Sections extracts every known header present in the document, in the
// canonical header order. Sections are recomputed from the full document on
// every call; nothing is persisted.
func Sections(doc string) []types.DocumentSection {
	var sections []types.DocumentSection
	for _, header := range KnownHeaders {
		if headerPattern(header).FindStringIndex(strings.ReplaceAll(doc, "\r\n", "\n")) == nil {
			continue
		}
		sections = append(sections, types.DocumentSection{
			Header: header,
			Body:   ExtractSection(doc, header),
		})
	}
	return sections
}
