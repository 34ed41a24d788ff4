package track

import (
	"strings"
	"testing"
)

func TestRecordChangesOrdered(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.RemoveRange("a.ts", 40, 50)
	tr.RemoveRange("a.ts", 0, 10)
	tr.Insert("a.ts", 20, "x")

	changes, err := tr.RecordChanges()
	if err != nil {
		t.Fatalf("RecordChanges: %v", err)
	}

	edits := changes["a.ts"]
	if len(edits) != 3 {
		t.Fatalf("expected 3 edits, got %d", len(edits))
	}
	for i := 1; i < len(edits); i++ {
		if edits[i].Start < edits[i-1].Start {
			t.Errorf("edit %d starts at %d, before previous at %d", i, edits[i].Start, edits[i-1].Start)
		}
	}
	if edits[1].Start != 20 || edits[1].RemoveLength != 0 || edits[1].Text != "x" {
		t.Errorf("insert edit = %+v", edits[1])
	}
}

func TestRescheduleSameRangeIsIdempotent(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.RemoveRange("a.ts", 5, 9)
	tr.RemoveRange("a.ts", 5, 9)

	changes, err := tr.RecordChanges()
	if err != nil {
		t.Fatalf("RecordChanges: %v", err)
	}
	if len(changes["a.ts"]) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(changes["a.ts"]))
	}
}

func TestLastScheduledWinsForExactRange(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.RemoveRange("a.ts", 5, 9)
	s := span{"a.ts", 5, 9}
	tr.schedule(s, pending{kind: opReplace, text: "new"})

	changes, err := tr.RecordChanges()
	if err != nil {
		t.Fatalf("RecordChanges: %v", err)
	}
	edits := changes["a.ts"]
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if edits[0].Text != "new" {
		t.Errorf("text = %q, want the later-scheduled replacement", edits[0].Text)
	}
}

func TestOverlappingRangesConflict(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.RemoveRange("a.ts", 0, 10)
	tr.RemoveRange("a.ts", 5, 15)

	_, err := tr.RecordChanges()
	if err == nil {
		t.Fatal("expected conflict error for overlapping ranges")
	}
	if !strings.Contains(err.Error(), "conflicting edits") {
		t.Errorf("error = %v", err)
	}
}

func TestInsertInsideRemovedRangeConflicts(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.RemoveRange("a.ts", 0, 10)
	tr.Insert("a.ts", 5, "x")

	if _, err := tr.RecordChanges(); err == nil {
		t.Fatal("expected conflict error for insert inside removed range")
	}
}

func TestInsertAtBoundaryIsFine(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.RemoveRange("a.ts", 5, 10)
	tr.Insert("a.ts", 5, "before")
	tr.Insert("a.ts", 10, "after")

	changes, err := tr.RecordChanges()
	if err != nil {
		t.Fatalf("RecordChanges: %v", err)
	}
	if len(changes["a.ts"]) != 3 {
		t.Fatalf("expected 3 edits, got %d", len(changes["a.ts"]))
	}
}

func TestFilesAreIndependent(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.RemoveRange("a.ts", 0, 10)
	tr.RemoveRange("b.ts", 5, 15) // would overlap in a.ts, but is another file

	changes, err := tr.RecordChanges()
	if err != nil {
		t.Fatalf("RecordChanges: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected changes for 2 files, got %d", len(changes))
	}
}

func TestEmptyTracker(t *testing.T) {
	t.Parallel()

	changes, err := New().RecordChanges()
	if err != nil {
		t.Fatalf("RecordChanges: %v", err)
	}
	if len(changes) != 0 {
		t.Errorf("expected no changes, got %d files", len(changes))
	}
}
