// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes archived syllabi to local files: raw Markdown, or
// a standalone HTML page rendered with goldmark.
package export

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pdiddy/phantasm/pkg/types"
)

// FileName builds the export file name for a course:
// GHOST_SYLLABUS_<course>.<ext> with spaces replaced by underscores.
func FileName(courseCode, ext string) string {
	course := strings.ReplaceAll(strings.TrimSpace(courseCode), " ", "_")
	return fmt.Sprintf("GHOST_SYLLABUS_%s.%s", course, ext)
}

// Markdown writes the syllabus document to dir as a .md file and returns
// the written path.
func Markdown(dir string, data types.SyllabusData) (string, error) {
	path := filepath.Join(dir, FileName(data.CourseCode, "md"))
	if err := os.WriteFile(path, []byte(data.Content), 0o644); err != nil {
		return "", fmt.Errorf("writing markdown export: %w", err)
	}
	return path, nil
}

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Ghost Syllabus — %s</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: Georgia, serif; line-height: 1.6; }
h1, h2, h3 { font-family: Futura, sans-serif; }
code, pre { background: #f4f4f4; }
</style>
</head>
<body>
<h1>%s</h1>
%s</body>
</html>
`

// HTML renders the syllabus Markdown to a standalone HTML page in dir and
// returns the written path.
func HTML(dir string, data types.SyllabusData) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(data.Content), &body); err != nil {
		return "", fmt.Errorf("rendering syllabus: %w", err)
	}

	title := html.EscapeString(data.CourseCode)
	page := fmt.Sprintf(htmlPage, title, title, body.String())

	path := filepath.Join(dir, FileName(data.CourseCode, "html"))
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("writing html export: %w", err)
	}
	return path, nil
}
