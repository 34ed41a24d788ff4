package apply

import (
	"testing"

	"github.com/phobologic/nglazy/internal/model"
)

func TestEditsSplice(t *testing.T) {
	t.Parallel()

	source := []byte("const routes = [];")
	edits := []model.Edit{
		{Start: 6, RemoveLength: 6, Text: "paths"},
		{Start: 15, RemoveLength: 2, Text: "[{}]"},
	}

	got, err := Edits(source, edits)
	if err != nil {
		t.Fatalf("Edits: %v", err)
	}
	if string(got) != "const paths = [{}];" {
		t.Errorf("result = %q", got)
	}
}

func TestEditsInsertOnly(t *testing.T) {
	t.Parallel()

	got, err := Edits([]byte("ac"), []model.Edit{{Start: 1, Text: "b"}})
	if err != nil {
		t.Fatalf("Edits: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("result = %q", got)
	}
}

func TestEditsEmpty(t *testing.T) {
	t.Parallel()

	source := []byte("unchanged")
	got, err := Edits(source, nil)
	if err != nil {
		t.Fatalf("Edits: %v", err)
	}
	if string(got) != "unchanged" {
		t.Errorf("result = %q", got)
	}
	if &got[0] == &source[0] {
		t.Error("result aliases the input")
	}
}

func TestEditsRejectUnordered(t *testing.T) {
	t.Parallel()

	edits := []model.Edit{
		{Start: 5, RemoveLength: 1},
		{Start: 0, RemoveLength: 1},
	}
	if _, err := Edits([]byte("0123456789"), edits); err == nil {
		t.Fatal("expected error for unordered edits")
	}
}

func TestEditsRejectOutOfBounds(t *testing.T) {
	t.Parallel()

	if _, err := Edits([]byte("abc"), []model.Edit{{Start: 2, RemoveLength: 5}}); err == nil {
		t.Fatal("expected error for out-of-bounds edit")
	}
}
