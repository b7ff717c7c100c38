// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syllabus

// Checklist holds checked-state keyed by an item's literal trimmed text.
// Two items with identical text share state, and renaming a bullet forfeits
// its prior checked-state. Known limitation, kept on purpose: item identity
// is the text itself, not a stable identifier.
type Checklist map[string]bool

// Toggle flips the checked-state for the item text. Toggling twice returns
// the state to its original value.
func (c Checklist) Toggle(text string) {
	if c[text] {
		delete(c, text)
		return
	}
	c[text] = true
}

// Checked reports whether the item text is currently checked.
func (c Checklist) Checked(text string) bool {
	return c[text]
}
