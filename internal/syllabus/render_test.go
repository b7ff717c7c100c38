// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syllabus

import (
	"reflect"
	"testing"
)

func TestRenderBodyPlaceholder(t *testing.T) {
	for _, body := range []string{"", "short", "123456789"} {
		got := RenderBody(body)
		if len(got) != 1 || got[0].Kind != LinePlaceholder || got[0].Text != PlaceholderList {
			t.Errorf("RenderBody(%q) = %v, want single placeholder", body, got)
		}
	}
}

func TestRenderBodyClassification(t *testing.T) {
	body := "Intro paragraph here.\n\n- first item\n* second item\n• third item\nClosing note."
	got := RenderBody(body)

	want := []Line{
		{Kind: LineParagraph, Text: "Intro paragraph here."},
		{Kind: LineChecklist, Text: "first item"},
		{Kind: LineChecklist, Text: "second item"},
		{Kind: LineChecklist, Text: "third item"},
		{Kind: LineParagraph, Text: "Closing note."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderBody() = %v, want %v", got, want)
	}
}

func TestRenderBodyBulletNeedsSpace(t *testing.T) {
	// A dash glued to text is prose, not a bullet marker.
	got := RenderBody("-glued dash line\nplain line here")
	if got[0].Kind != LineParagraph {
		t.Errorf("glued dash classified as %v, want paragraph", got[0].Kind)
	}
}

func TestRenderLibraryPlaceholder(t *testing.T) {
	got := RenderLibrary("tiny")
	if len(got) != 1 || got[0].Kind != LibraryPlaceholder || got[0].Title != PlaceholderLibrary {
		t.Errorf("RenderLibrary(short) = %v, want placeholder", got)
	}
}

func TestRenderLibraryClassification(t *testing.T) {
	body := "### Unit 1: Foundations\n" +
		"- [Intro Video](https://youtube.com/watch?v=abc)\n" +
		"Module 2: Advanced Topics\n" +
		"[Deep Dive](https://youtube.com/watch?v=def)\n" +
		"A helpful caption line\n" +
		"[stray bracket without link\n"

	got := RenderLibrary(body)
	want := []LibraryEntry{
		{Kind: LibraryGroup, Title: "Unit 1: Foundations"},
		{Kind: LibraryLink, Title: "Intro Video", URL: "https://youtube.com/watch?v=abc"},
		{Kind: LibraryGroup, Title: "Module 2: Advanced Topics"},
		{Kind: LibraryLink, Title: "Deep Dive", URL: "https://youtube.com/watch?v=def"},
		{Kind: LibraryCaption, Title: "A helpful caption line"},
		// The stray bracketed line is dropped.
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderLibrary() =\n%v\nwant\n%v", got, want)
	}
}

func TestChecklistDoubleToggleIdempotent(t *testing.T) {
	c := Checklist{}
	texts := []string{"grind the past papers", "memorize edge cases", ""}

	for _, text := range texts {
		before := c.Checked(text)
		c.Toggle(text)
		if c.Checked(text) == before {
			t.Errorf("Toggle(%q) did not flip state", text)
		}
		c.Toggle(text)
		if c.Checked(text) != before {
			t.Errorf("double Toggle(%q) did not restore state", text)
		}
	}

	// Untoggled entries leave no residue.
	if len(c) != 0 {
		t.Errorf("checklist retains %d entries after restore, want 0", len(c))
	}
}

func TestChecklistIdentityIsLiteralText(t *testing.T) {
	c := Checklist{}
	c.Toggle("read chapter 3")

	// Identical text shares state.
	if !c.Checked("read chapter 3") {
		t.Error("identical text should share checked state")
	}
	// A renamed bullet forfeits prior state.
	if c.Checked("read chapter 3!") {
		t.Error("renamed text must not inherit state")
	}
}
