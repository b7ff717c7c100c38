// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pdiddy/phantasm/internal/discussion"
	"github.com/pdiddy/phantasm/internal/store"
	"github.com/pdiddy/phantasm/internal/synthesis"
	"github.com/pdiddy/phantasm/pkg/types"
)

// mockBackend implements synthesis.Backend with configurable responses.
type mockBackend struct {
	syllabus    string
	syllabusErr error
	rating      types.ProfessorRating
	ratingErr   error

	mu          sync.Mutex
	syllabusReq synthesis.SyllabusRequest
	ratingCalls int
}

func (m *mockBackend) GenerateSyllabus(ctx context.Context, req synthesis.SyllabusRequest) (string, error) {
	m.mu.Lock()
	m.syllabusReq = req
	m.mu.Unlock()
	return m.syllabus, m.syllabusErr
}

func (m *mockBackend) GenerateCramPlan(ctx context.Context, req synthesis.CramRequest) (types.CramPlan, error) {
	return types.CramPlan{}, nil
}

func (m *mockBackend) GenerateBriefing(ctx context.Context, text string) (string, error) {
	return "", nil
}

func (m *mockBackend) ProfessorRating(ctx context.Context, university, professor string) (types.ProfessorRating, error) {
	m.mu.Lock()
	m.ratingCalls++
	m.mu.Unlock()
	return m.rating, m.ratingErr
}

func liveFetch(text string) FetchFunc {
	return func(ctx context.Context, q discussion.Query, w io.Writer) types.SearchResult {
		return types.SearchResult{RawText: text, Provenance: types.ProvenanceLive}
	}
}

func testGenerator(backend *mockBackend, fetch FetchFunc, st store.Store) *Generator {
	return &Generator{
		fetch: fetch,
		ai:    backend,
		store: st,
		now:   func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func TestGenerate(t *testing.T) {
	backend := &mockBackend{
		syllabus: "## Reality Check\nIt's hard.",
		rating:   types.ProfessorRating{Found: true, Name: "Dr. Smith", Quality: "4.1"},
	}
	st := store.NewMemoryStore()
	g := testGenerator(backend, liveFetch("students say it's hard"), st)

	got, err := g.Generate(context.Background(), GenerateRequest{
		University: "State U",
		CourseCode: "CS101",
		Professor:  "smith",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	if got.Syllabus != "## Reality Check\nIt's hard." {
		t.Errorf("Syllabus = %q", got.Syllabus)
	}
	if got.Discussion.Provenance != types.ProvenanceLive {
		t.Errorf("Provenance = %s", got.Discussion.Provenance)
	}
	if !got.Rating.Requested || got.Rating.Err != nil || !got.Rating.Rating.Found {
		t.Errorf("Rating = %+v", got.Rating)
	}
	if backend.syllabusReq.Discussion != "students say it's hard" {
		t.Errorf("synthesis got discussion %q", backend.syllabusReq.Discussion)
	}

	archived, err := st.LatestSyllabus("CS101")
	if err != nil {
		t.Fatal(err)
	}
	if archived.Content != got.Syllabus || archived.Provenance != types.ProvenanceLive {
		t.Errorf("archived = %+v", archived)
	}
	if !archived.Timestamp.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("archived timestamp = %v", archived.Timestamp)
	}
}

func TestGenerateNoProfessorSkipsRating(t *testing.T) {
	backend := &mockBackend{syllabus: "doc"}
	g := testGenerator(backend, liveFetch("x"), store.NewMemoryStore())

	got, err := g.Generate(context.Background(), GenerateRequest{CourseCode: "CS101"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if got.Rating.Requested {
		t.Error("rating should not be requested without a professor")
	}
	if backend.ratingCalls != 0 {
		t.Errorf("rating calls = %d, want 0", backend.ratingCalls)
	}
}

func TestGenerateRatingFailureIsIndependent(t *testing.T) {
	backend := &mockBackend{
		syllabus:  "doc",
		ratingErr: errors.New("rating backend down"),
	}
	g := testGenerator(backend, liveFetch("live data"), store.NewMemoryStore())

	got, err := g.Generate(context.Background(), GenerateRequest{
		CourseCode: "CS101",
		Professor:  "smith",
	}, io.Discard)
	if err != nil {
		t.Fatal("rating failure must not fail the cycle")
	}
	if got.Rating.Err == nil {
		t.Error("rating error not reported")
	}
	if got.Syllabus != "doc" || got.Discussion.RawText != "live data" {
		t.Errorf("surviving branches = %q / %q", got.Syllabus, got.Discussion.RawText)
	}
}

func TestGenerateSyllabusFailureIsFatal(t *testing.T) {
	backend := &mockBackend{syllabusErr: errors.New("model unavailable")}
	st := store.NewMemoryStore()
	g := testGenerator(backend, liveFetch("x"), st)

	_, err := g.Generate(context.Background(), GenerateRequest{CourseCode: "CS101"}, io.Discard)
	if err == nil {
		t.Fatal("syllabus failure must fail the cycle")
	}
	if _, err := st.LatestSyllabus("CS101"); !errors.Is(err, store.ErrNotFound) {
		t.Error("failed cycle must not archive")
	}
}

func TestGenerateStaleCycleDiscarded(t *testing.T) {
	release := make(chan struct{})
	fetch := func(ctx context.Context, q discussion.Query, w io.Writer) types.SearchResult {
		if q.Professor == "slow" {
			<-release
		}
		return types.SearchResult{RawText: "data", Provenance: types.ProvenanceLive}
	}

	backend := &mockBackend{syllabus: "doc"}
	st := store.NewMemoryStore()
	g := testGenerator(backend, fetch, st)

	firstErr := make(chan error, 1)
	go func() {
		_, err := g.Generate(context.Background(), GenerateRequest{CourseCode: "CS101", Professor: "slow"}, io.Discard)
		firstErr <- err
	}()

	// Wait until the first cycle has taken its token, then supersede it.
	for g.current.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	second, err := g.Generate(context.Background(), GenerateRequest{CourseCode: "CS101"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if second.Syllabus != "doc" {
		t.Errorf("second cycle syllabus = %q", second.Syllabus)
	}

	close(release)
	if err := <-firstErr; !errors.Is(err, ErrStale) {
		t.Errorf("first cycle err = %v, want ErrStale", err)
	}
}

func TestGenerateArchiveFailureWarns(t *testing.T) {
	backend := &mockBackend{syllabus: "doc"}
	g := testGenerator(backend, liveFetch("x"), failingStore{})

	var warnings strings.Builder
	_, err := g.Generate(context.Background(), GenerateRequest{CourseCode: "CS101"}, &warnings)
	if err != nil {
		t.Fatal("archive failure must not fail the cycle")
	}
	if !strings.Contains(warnings.String(), "warning:") {
		t.Error("expected archive warning")
	}
}

// failingStore rejects every write.
type failingStore struct{}

func (failingStore) Setting(string) (string, error)               { return "", store.ErrNotFound }
func (failingStore) SetSetting(string, string) error              { return errors.New("disk full") }
func (failingStore) Checklist(string) (map[string]bool, error)    { return nil, nil }
func (failingStore) SaveChecklist(string, map[string]bool) error  { return errors.New("disk full") }
func (failingStore) SaveSyllabus(types.SyllabusData) error        { return errors.New("disk full") }
func (failingStore) LatestSyllabus(string) (types.SyllabusData, error) {
	return types.SyllabusData{}, store.ErrNotFound
}
func (failingStore) SavePlan(string, types.CramPlan) (int64, error) {
	return 0, errors.New("disk full")
}
func (failingStore) Plans(string) ([]types.CramPlan, error) { return nil, nil }
func (failingStore) Close() error                           { return nil }
