// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/phantasm/pkg/types"
)

// PlanYAML writes a cram plan to dir as a human-readable YAML file
// (SURVIVAL_PLAN_<course>.yaml) and returns the written path.
func PlanYAML(dir, courseCode string, plan types.CramPlan) (string, error) {
	encoded, err := yaml.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("marshaling plan: %w", err)
	}

	course := strings.ReplaceAll(strings.TrimSpace(courseCode), " ", "_")
	path := filepath.Join(dir, fmt.Sprintf("SURVIVAL_PLAN_%s.yaml", course))
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("writing plan export: %w", err)
	}
	return path, nil
}
