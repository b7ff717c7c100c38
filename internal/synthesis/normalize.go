// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/phantasm/pkg/types"
)

// fencePattern strips Markdown code fencing the model sometimes wraps
// around JSON responses.
var fencePattern = regexp.MustCompile("```json\n?|\n?```")

// stripFences removes Markdown code fences and surrounding whitespace.
func stripFences(s string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(s, ""))
}

// UnwrapEnvelope undoes the model's occasional habit of wrapping the payload
// in a single-key root object like {"result": {...}} or {"cramPlan": {...}}.
// If the object already looks like a plan (has strategy or schedule) it is
// returned unchanged; otherwise, when it holds exactly one key whose value
// is an object (not an array), the inner object is returned.
func UnwrapEnvelope(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	if _, ok := data["strategy"]; ok {
		return data
	}
	if _, ok := data["schedule"]; ok {
		return data
	}
	if len(data) != 1 {
		return data
	}
	for _, v := range data {
		if inner, ok := v.(map[string]any); ok {
			return inner
		}
	}
	return data
}

// NormalizeCramPlan parses a model response into a CramPlan, unwrapping a
// single-key envelope and substituting defaults for missing required fields.
// An empty response or unparseable JSON is the one synthesis failure
// surfaced to the caller.
func NormalizeCramPlan(raw, examType, hoursAvailable string) (types.CramPlan, error) {
	text := stripFences(raw)
	if text == "" {
		return types.CramPlan{}, fmt.Errorf("empty cram plan response")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return types.CramPlan{}, fmt.Errorf("parsing cram plan JSON: %w", err)
	}
	data = UnwrapEnvelope(data)

	plan := types.CramPlan{
		ExamType:   stringField(data, "examType", examType),
		TotalHours: stringField(data, "totalHours", hoursAvailable),
		Strategy:   stringField(data, "strategy", "Survive at all costs. (Strategy details missing from report)"),
		Schedule:   []types.CramItem{},
	}

	// Schedule is decoded tolerantly: a non-array stays empty rather than
	// failing the whole plan.
	if rawSchedule, ok := data["schedule"].([]any); ok {
		encoded, err := json.Marshal(rawSchedule)
		if err == nil {
			var items []types.CramItem
			if err := json.Unmarshal(encoded, &items); err == nil {
				plan.Schedule = items
			}
		}
	}

	return plan, nil
}

// notFoundRating is the placeholder returned whenever a profile cannot be
// verified. Numeric fields are meaningless here; Found gates them.
func notFoundRating(name, summary string) types.ProfessorRating {
	return types.ProfessorRating{
		Found:      false,
		Name:       name,
		Quality:    "0",
		Difficulty: "0",
		TakeAgain:  "0%",
		Summary:    summary,
	}
}

// ParseRating parses a rating response with a hallucination guard: a
// response claiming found with quality or difficulty that do not parse as
// numbers is downgraded to not-found before it reaches the caller.
func ParseRating(raw, fallbackName string) types.ProfessorRating {
	text := stripFences(raw)
	if text == "" {
		return notFoundRating(fallbackName, "Profile not found.")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return notFoundRating(fallbackName, "Profile not found.")
	}

	found, _ := data["found"].(bool)
	name := stringField(data, "name", fallbackName)

	if !found {
		return notFoundRating(fallbackName, "Profile not found.")
	}

	quality := stringField(data, "quality", "")
	difficulty := stringField(data, "difficulty", "")
	if !isNumeric(quality) || !isNumeric(difficulty) {
		return notFoundRating(name, "Could not verify numeric scores.")
	}

	return types.ProfessorRating{
		Found:      true,
		Name:       name,
		Quality:    quality,
		Difficulty: difficulty,
		TakeAgain:  stringField(data, "takeAgain", ""),
		Summary:    stringField(data, "summary", ""),
	}
}

// stringField reads a field from a duck-typed JSON object, coercing numbers
// to their string form and falling back when absent or empty.
func stringField(data map[string]any, key, fallback string) string {
	switch v := data[key].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fallback
}

// isNumeric reports whether s parses as a float.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
