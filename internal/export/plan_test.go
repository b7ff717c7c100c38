// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/phantasm/pkg/types"
)

func TestPlanYAML(t *testing.T) {
	dir := t.TempDir()
	plan := types.CramPlan{
		ExamType:   "Final",
		TotalHours: "6 hours",
		Strategy:   "Triage.",
		Schedule: []types.CramItem{
			{Timeblock: "Hour 1", Action: "Memorize", Priority: "CRITICAL", Notes: "n",
				VideoSuggestion: &types.VideoSuggestion{Title: "t", URL: "u"}},
		},
	}

	path, err := PlanYAML(dir, "CS 101", plan)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "SURVIVAL_PLAN_CS_101.yaml" {
		t.Errorf("path = %q", path)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded types.CramPlan
	if err := yaml.Unmarshal(written, &decoded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, plan) {
		t.Errorf("decoded = %+v, want %+v", decoded, plan)
	}
}
