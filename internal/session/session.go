// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session coordinates one generation cycle: concurrent discussion
// fetch and professor rating, syllabus synthesis, and archival. Each cycle
// carries a monotonic request token; a cycle superseded by a newer one is
// discarded instead of rendered.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pdiddy/phantasm/internal/discussion"
	"github.com/pdiddy/phantasm/internal/store"
	"github.com/pdiddy/phantasm/internal/synthesis"
	"github.com/pdiddy/phantasm/pkg/types"
)

// ErrStale marks a generation cycle that was superseded by a newer request
// before it finished. Its result must not be rendered or archived.
var ErrStale = errors.New("generation superseded by newer request")

// FetchFunc fetches discussion data for a query, writing warnings to w.
type FetchFunc func(ctx context.Context, q discussion.Query, w io.Writer) types.SearchResult

// GenerateRequest describes one generation cycle.
type GenerateRequest struct {
	University string
	CourseCode string
	Professor  string

	// Attachment is an optional official syllabus document.
	Attachment *synthesis.Attachment
}

// RatingOutcome is the professor-rating branch of a cycle. The branch
// reports independently: its failure does not void the discussion fetch or
// the syllabus.
type RatingOutcome struct {
	Rating    types.ProfessorRating
	Err       error
	Requested bool
}

// Result is a completed generation cycle.
type Result struct {
	Syllabus   string
	Discussion types.SearchResult
	Rating     RatingOutcome
	Archived   types.SyllabusData
}

// Generator runs generation cycles against the AI collaborator.
type Generator struct {
	fetch   FetchFunc
	ai      synthesis.Backend
	store   store.Store
	cfg     types.DiscussionConfig
	client  *http.Client
	now     func() time.Time
	current atomic.Uint64
}

// NewGenerator wires the production pipeline: live discussion fetch, the
// given AI backend, and the given store for archival.
func NewGenerator(client *http.Client, cfg types.DiscussionConfig, ai synthesis.Backend, st store.Store) *Generator {
	g := &Generator{
		ai:     ai,
		store:  st,
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
	g.fetch = func(ctx context.Context, q discussion.Query, w io.Writer) types.SearchResult {
		return discussion.Fetch(ctx, client, q, cfg, w)
	}
	return g
}

// Generate runs one cycle: discussion fetch and professor rating fan out
// concurrently, then the syllabus is synthesized from the fetched
// discussion and archived. Warnings stream to w.
//
// Syllabus synthesis failure is the only fatal error; a failed rating
// branch is reported in Result.Rating. A cycle superseded by a newer
// Generate call returns ErrStale.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest, w io.Writer) (Result, error) {
	token := g.current.Add(1)

	q := discussion.Query{
		University: req.University,
		CourseCode: req.CourseCode,
		Professor:  req.Professor,
	}

	var (
		wg     sync.WaitGroup
		result Result
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Discussion = g.fetch(ctx, q, w)
	}()

	if req.Professor != "" {
		result.Rating.Requested = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Rating.Rating, result.Rating.Err = g.ai.ProfessorRating(ctx, req.University, req.Professor)
		}()
	}

	wg.Wait()

	if g.stale(token) {
		return Result{}, ErrStale
	}

	syllabusText, err := g.ai.GenerateSyllabus(ctx, synthesis.SyllabusRequest{
		University: req.University,
		CourseCode: req.CourseCode,
		Professor:  req.Professor,
		Discussion: result.Discussion.RawText,
		Attachment: req.Attachment,
	})
	if err != nil {
		return Result{}, fmt.Errorf("synthesizing syllabus: %w", err)
	}
	result.Syllabus = syllabusText

	if g.stale(token) {
		return Result{}, ErrStale
	}

	result.Archived = types.SyllabusData{
		CourseCode: req.CourseCode,
		University: req.University,
		Content:    syllabusText,
		Provenance: result.Discussion.Provenance,
		Timestamp:  g.now().UTC(),
	}
	if g.store != nil {
		if err := g.store.SaveSyllabus(result.Archived); err != nil {
			fmt.Fprintf(w, "warning: archiving syllabus: %v\n", err)
		}
	}

	return result, nil
}

// stale reports whether a newer cycle has been issued since token.
func (g *Generator) stale(token uint64) bool {
	return g.current.Load() != token
}
