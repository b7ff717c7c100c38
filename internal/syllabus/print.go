// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syllabus

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/phantasm/pkg/types"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	checkedColor = color.New(color.FgGreen)
	captionColor = color.New(color.Faint)
	bannerColor  = color.New(color.FgYellow, color.Bold)
	linkColor    = color.New(color.FgBlue, color.Underline)
)

// PrintMockBanner writes the simulation-mode warning shown whenever the
// rendered document was generated from synthetic discussion data.
func PrintMockBanner(w io.Writer) {
	bannerColor.Fprintln(w, "⚠ SIMULATION MODE: live connection severed, discussion data is synthetic")
}

// PrintDocument renders every known section of the document to w: checklist
// rows with their persisted checked-state, paragraphs, and the library
// section as a grouped link gallery.
func PrintDocument(w io.Writer, doc string, checks Checklist) {
	for _, section := range Sections(doc) {
		headerColor.Fprintf(w, "\n== %s ==\n", section.Header)

		if section.Header == "Phantom Library" {
			printLibrary(w, section.Body)
			continue
		}
		printList(w, section.Body, checks)
	}
}

func printList(w io.Writer, body string, checks Checklist) {
	for _, line := range RenderBody(body) {
		switch line.Kind {
		case LinePlaceholder:
			captionColor.Fprintln(w, line.Text)
		case LineChecklist:
			if checks.Checked(line.Text) {
				checkedColor.Fprintf(w, "  [x] %s\n", line.Text)
			} else {
				fmt.Fprintf(w, "  [ ] %s\n", line.Text)
			}
		case LineParagraph:
			fmt.Fprintf(w, "  %s\n", line.Text)
		}
	}
}

func printLibrary(w io.Writer, body string) {
	for _, entry := range RenderLibrary(body) {
		switch entry.Kind {
		case LibraryPlaceholder:
			captionColor.Fprintln(w, entry.Title)
		case LibraryGroup:
			fmt.Fprintf(w, "  %s\n", strings.ToUpper(entry.Title))
		case LibraryLink:
			fmt.Fprintf(w, "    ▶ %s  ", entry.Title)
			linkColor.Fprintln(w, entry.URL)
		case LibraryCaption:
			captionColor.Fprintf(w, "    %s\n", entry.Title)
		}
	}
}

// PrintRating writes a professor rating card. Consumers must branch on
// Found before reading scores; a not-found rating renders only the summary.
func PrintRating(w io.Writer, r types.ProfessorRating) {
	headerColor.Fprintf(w, "\n== Professor: %s ==\n", r.Name)
	if !r.Found {
		captionColor.Fprintf(w, "  %s\n", r.Summary)
		return
	}
	fmt.Fprintf(w, "  Quality:    %s / 5\n", r.Quality)
	fmt.Fprintf(w, "  Difficulty: %s / 5\n", r.Difficulty)
	fmt.Fprintf(w, "  Take again: %s\n", r.TakeAgain)
	fmt.Fprintf(w, "  %s\n", r.Summary)
}
