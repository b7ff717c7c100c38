// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesis

import (
	"reflect"
	"testing"

	"github.com/pdiddy/phantasm/pkg/types"
)

// --- stripFences ---

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}  ", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- UnwrapEnvelope ---

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want map[string]any
	}{
		{
			name: "plan-shaped object unchanged",
			in:   map[string]any{"strategy": "s", "schedule": []any{}},
			want: map[string]any{"strategy": "s", "schedule": []any{}},
		},
		{
			name: "single-key object envelope unwrapped",
			in:   map[string]any{"result": map[string]any{"strategy": "s"}},
			want: map[string]any{"strategy": "s"},
		},
		{
			name: "single-key array not unwrapped",
			in:   map[string]any{"items": []any{"a"}},
			want: map[string]any{"items": []any{"a"}},
		},
		{
			name: "multi-key object unchanged",
			in:   map[string]any{"a": map[string]any{}, "b": map[string]any{}},
			want: map[string]any{"a": map[string]any{}, "b": map[string]any{}},
		},
		{
			name: "schedule alone counts as plan-shaped",
			in:   map[string]any{"schedule": []any{}},
			want: map[string]any{"schedule": []any{}},
		},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnwrapEnvelope(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnwrapEnvelope() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- NormalizeCramPlan ---

func TestNormalizeCramPlanComplete(t *testing.T) {
	raw := "```json\n" + `{
		"examType": "Final",
		"totalHours": "6 hours",
		"strategy": "Ruthless triage.",
		"schedule": [
			{"timeblock": "Hour 1", "action": "Memorize formulas", "priority": "CRITICAL",
			 "notes": "Worth 40%", "videoSuggestion": {"title": "Learn X", "url": "https://youtube.com/x"}}
		]
	}` + "\n```"

	plan, err := NormalizeCramPlan(raw, "Midterm", "3 hours")
	if err != nil {
		t.Fatal(err)
	}
	if plan.ExamType != "Final" || plan.TotalHours != "6 hours" {
		t.Errorf("plan header = %q/%q", plan.ExamType, plan.TotalHours)
	}
	if len(plan.Schedule) != 1 {
		t.Fatalf("len(schedule) = %d, want 1", len(plan.Schedule))
	}
	item := plan.Schedule[0]
	if item.Priority != "CRITICAL" || item.VideoSuggestion == nil || item.VideoSuggestion.Title != "Learn X" {
		t.Errorf("schedule item = %+v", item)
	}
}

func TestNormalizeCramPlanDefaults(t *testing.T) {
	plan, err := NormalizeCramPlan(`{}`, "Midterm", "3 hours")
	if err != nil {
		t.Fatal(err)
	}
	if plan.ExamType != "Midterm" {
		t.Errorf("ExamType = %q, want request default", plan.ExamType)
	}
	if plan.TotalHours != "3 hours" {
		t.Errorf("TotalHours = %q, want request default", plan.TotalHours)
	}
	if plan.Strategy == "" {
		t.Error("Strategy default missing")
	}
	if plan.Schedule == nil || len(plan.Schedule) != 0 {
		t.Errorf("Schedule = %v, want empty non-nil", plan.Schedule)
	}
}

func TestNormalizeCramPlanEnvelope(t *testing.T) {
	raw := `{"cramPlan": {"strategy": "Inner strategy.", "schedule": []}}`
	plan, err := NormalizeCramPlan(raw, "Final", "2 hours")
	if err != nil {
		t.Fatal(err)
	}
	if plan.Strategy != "Inner strategy." {
		t.Errorf("Strategy = %q, envelope not unwrapped", plan.Strategy)
	}
}

func TestNormalizeCramPlanFailures(t *testing.T) {
	if _, err := NormalizeCramPlan("", "Final", "2h"); err == nil {
		t.Error("empty response should fail")
	}
	if _, err := NormalizeCramPlan("not json at all", "Final", "2h"); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestNormalizeCramPlanNonArraySchedule(t *testing.T) {
	plan, err := NormalizeCramPlan(`{"strategy": "s", "schedule": "oops"}`, "Final", "2h")
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Schedule) != 0 {
		t.Errorf("Schedule = %v, want empty", plan.Schedule)
	}
}

// --- ParseRating ---

func TestParseRatingVerified(t *testing.T) {
	raw := `{"found": true, "name": "Dr. Ada Lovelace", "quality": "4.2", "difficulty": "3.5", "takeAgain": "80%", "summary": "Tough but fair."}`
	got := ParseRating(raw, "lovelace")

	want := types.ProfessorRating{
		Found: true, Name: "Dr. Ada Lovelace",
		Quality: "4.2", Difficulty: "3.5", TakeAgain: "80%", Summary: "Tough but fair.",
	}
	if got != want {
		t.Errorf("ParseRating() = %+v, want %+v", got, want)
	}
}

func TestParseRatingHallucinationGuard(t *testing.T) {
	raw := `{"found": true, "quality": "abc", "difficulty": "3.0", "takeAgain": "80%", "summary": "x"}`
	got := ParseRating(raw, "smith")

	if got.Found {
		t.Fatal("non-numeric quality must downgrade to not-found")
	}
	if got.Summary != "Could not verify numeric scores." {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestParseRatingNumericScoresAsJSONNumbers(t *testing.T) {
	// The model sometimes emits numbers instead of strings.
	raw := `{"found": true, "name": "Dr. X", "quality": 4.2, "difficulty": 3, "takeAgain": "90%", "summary": "s"}`
	got := ParseRating(raw, "x")

	if !got.Found {
		t.Fatal("numeric JSON scores should verify")
	}
	if got.Quality != "4.2" || got.Difficulty != "3" {
		t.Errorf("scores = %q/%q", got.Quality, got.Difficulty)
	}
}

func TestParseRatingNotFoundAndFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"found false", `{"found": false, "quality": "4.9"}`},
		{"empty response", ""},
		{"malformed", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRating(tt.raw, "smith")
			if got.Found {
				t.Fatal("must not report found")
			}
			// Placeholders only, never meaningful numerics.
			if got.Quality != "0" || got.Difficulty != "0" || got.TakeAgain != "0%" {
				t.Errorf("placeholders = %q/%q/%q", got.Quality, got.Difficulty, got.TakeAgain)
			}
			if got.Name != "smith" {
				t.Errorf("Name = %q, want fallback", got.Name)
			}
		})
	}
}
