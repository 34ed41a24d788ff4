// Package model defines core data structures for nglazy.
package model

// Edit is a single text edit against the original bytes of one file.
// It removes RemoveLength bytes starting at Start and inserts Text in
// their place. A pure insertion has RemoveLength 0.
type Edit struct {
	Start        int
	RemoveLength int
	Text         string
}

// End returns the first offset past the removed range.
func (e Edit) End() int {
	return e.Start + e.RemoveLength
}

// ChangesByFile maps a file path (slash-separated, relative to the
// project root) to its edits, ordered by increasing start offset.
// Offsets always refer to the unmodified original text; the edits for
// one file never overlap.
type ChangesByFile map[string][]Edit
