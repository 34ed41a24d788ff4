// Package track accumulates logical edits against immutable source
// trees and resolves them into ordered, non-overlapping byte-range
// edits per file.
package track

import (
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/nglazy/internal/model"
)

type opKind int

const (
	opReplace opKind = iota
	opRemove
	opInsert
)

// span keys a pending operation by file and byte range. Operations are
// never keyed by node identity: re-scheduling the same logical edit
// lands on the same key and stays idempotent.
type span struct {
	path  string
	start uint32
	end   uint32
}

type pending struct {
	kind opKind
	text string
	seq  int
}

// Tracker collects pending operations for one migration pass. One
// Tracker instance must be scoped to exactly one pass; it is not safe
// for concurrent use.
type Tracker struct {
	ops map[span]pending
	seq int
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{ops: make(map[span]pending)}
}

// ReplaceNode schedules node's byte range to be replaced with text.
func (t *Tracker) ReplaceNode(path string, node *sitter.Node, text string) {
	t.schedule(span{path, node.StartByte(), node.EndByte()}, pending{kind: opReplace, text: text})
}

// RemoveNode schedules node's byte range for removal.
func (t *Tracker) RemoveNode(path string, node *sitter.Node) {
	t.RemoveRange(path, node.StartByte(), node.EndByte())
}

// RemoveRange schedules an explicit byte range for removal.
func (t *Tracker) RemoveRange(path string, start, end uint32) {
	t.schedule(span{path, start, end}, pending{kind: opRemove})
}

// Insert schedules text to be inserted at pos. An insertion may share a
// boundary with another edit without conflict.
func (t *Tracker) Insert(path string, pos uint32, text string) {
	t.schedule(span{path, pos, pos}, pending{kind: opInsert, text: text})
}

func (t *Tracker) schedule(s span, p pending) {
	t.seq++
	p.seq = t.seq
	t.ops[s] = p // last scheduled operation for an exact range wins
}

// RecordChanges resolves all pending operations into per-file edit
// lists ordered by start offset. Distinct overlapping ranges are a
// programming defect in the scheduling code and fail loudly: a silently
// dropped or merged edit would corrupt the guarantee that the returned
// changes are safe to apply verbatim.
func (t *Tracker) RecordChanges() (model.ChangesByFile, error) {
	type entry struct {
		span
		pending
	}

	byFile := make(map[string][]entry)
	for s, p := range t.ops {
		byFile[s.path] = append(byFile[s.path], entry{s, p})
	}

	changes := make(model.ChangesByFile)
	for filePath, entries := range byFile {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].start != entries[j].start {
				return entries[i].start < entries[j].start
			}
			if entries[i].end != entries[j].end {
				return entries[i].end < entries[j].end
			}
			return entries[i].seq < entries[j].seq
		})

		var coveredEnd uint32
		edits := make([]model.Edit, 0, len(entries))
		for _, e := range entries {
			if e.start < coveredEnd {
				return nil, fmt.Errorf(
					"conflicting edits in %s: range [%d,%d) overlaps an edit ending at %d",
					filePath, e.start, e.end, coveredEnd)
			}
			if e.end > coveredEnd {
				coveredEnd = e.end
			}
			edits = append(edits, model.Edit{
				Start:        int(e.start),
				RemoveLength: int(e.end - e.start),
				Text:         e.text,
			})
		}
		changes[filePath] = edits
	}

	return changes, nil
}
