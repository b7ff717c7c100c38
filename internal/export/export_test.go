// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/phantasm/pkg/types"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		course string
		ext    string
		want   string
	}{
		{"CS101", "md", "GHOST_SYLLABUS_CS101.md"},
		{"CS 101", "md", "GHOST_SYLLABUS_CS_101.md"},
		{" MATH 240 ", "html", "GHOST_SYLLABUS_MATH_240.html"},
	}
	for _, tt := range tests {
		if got := FileName(tt.course, tt.ext); got != tt.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", tt.course, tt.ext, got, tt.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	dir := t.TempDir()
	data := types.SyllabusData{CourseCode: "CS 101", Content: "## Reality Check\nIt's hard."}

	path, err := Markdown(dir, data)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "GHOST_SYLLABUS_CS_101.md" {
		t.Errorf("path = %q", path)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != data.Content {
		t.Errorf("content = %q, want verbatim document", written)
	}
}

func TestHTML(t *testing.T) {
	dir := t.TempDir()
	data := types.SyllabusData{
		CourseCode: "CS<101>",
		Content:    "## Reality Check\n\nIt's **hard**.",
	}

	path, err := HTML(dir, data)
	if err != nil {
		t.Fatal(err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	page := string(written)

	if !strings.Contains(page, "<h2") || !strings.Contains(page, "<strong>hard</strong>") {
		t.Errorf("markdown not rendered: %q", page)
	}
	if !strings.Contains(page, "CS&lt;101&gt;") {
		t.Error("title not escaped")
	}
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
}
