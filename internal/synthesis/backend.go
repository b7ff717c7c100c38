// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synthesis calls the Generative AI API to produce syllabus
// documents, cram plans, audio briefings, and professor ratings. The API is
// an external collaborator: every response is treated as untrusted input and
// normalized before it reaches the rest of the application.
package synthesis

import (
	"context"

	"github.com/pdiddy/phantasm/pkg/types"
)

// Backend abstracts the Generative AI API so tests can supply a mock.
type Backend interface {
	// GenerateSyllabus synthesizes a Markdown syllabus document from raw
	// discussion text. An empty model response yields a fixed placeholder
	// document, not an error.
	GenerateSyllabus(ctx context.Context, req SyllabusRequest) (string, error)

	// GenerateCramPlan synthesizes a structured exam-preparation schedule.
	// A response with no text at all is the one synthesis failure surfaced
	// to the user.
	GenerateCramPlan(ctx context.Context, req CramRequest) (types.CramPlan, error)

	// GenerateBriefing synthesizes an audio news-flash summary of the
	// syllabus text, returned as base64-encoded PCM16 mono samples.
	GenerateBriefing(ctx context.Context, syllabusText string) (string, error)

	// ProfessorRating looks up review scores for a professor. Never returns
	// Found true with non-numeric quality or difficulty.
	ProfessorRating(ctx context.Context, university, professor string) (types.ProfessorRating, error)
}

// SyllabusRequest holds the inputs for one syllabus generation.
type SyllabusRequest struct {
	University string
	CourseCode string
	Professor  string

	// Discussion is the normalized discussion text from the fetch pipeline.
	Discussion string

	// Attachment is an optional official syllabus document (image or PDF).
	// When present, generation adds the "Syllabus vs Reality" section.
	Attachment *Attachment
}

// CramRequest holds the inputs for one cram plan generation.
type CramRequest struct {
	CourseCode     string
	ExamType       string
	HoursAvailable string

	// Context is the archived syllabus content, if any. Truncated before
	// prompting to bound token usage.
	Context string
}
