package rewrite

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/nglazy/internal/program"
	"github.com/phobologic/nglazy/internal/track"
	"github.com/phobologic/nglazy/internal/ts"
)

// removeImports schedules the removal of the orphaned named-import
// bindings of one import statement. The statement's orphans are handled
// together so their edit ranges stay disjoint: when every binding is
// orphaned the whole statement goes (or just the named braces when a
// default or namespace binding remains), otherwise each maximal run of
// consecutive orphaned specifiers is removed with its separating comma.
// Components are referenced through named imports; default and
// namespace bindings are never scheduled here.
func removeImports(f *program.File, orphans []*program.Import, tracker *track.Tracker) {
	orphaned := make(map[uint32]bool, len(orphans))
	var named *sitter.Node
	for _, imp := range orphans {
		if imp.Spec.Type() != "import_specifier" {
			continue
		}
		orphaned[imp.Spec.StartByte()] = true
		named = imp.Spec.Parent() // the named_imports braces
	}
	if named == nil {
		return
	}
	specs := ts.ChildrenOfType(named, "import_specifier")

	if len(orphaned) == len(specs) {
		// With a default or namespace binding alongside
		// (`import Foo, { Bar } from ...`) only the braces go;
		// otherwise the whole statement does.
		for _, sibling := range ts.NamedChildren(orphans[0].Clause) {
			if sibling.Type() == "named_imports" {
				continue
			}
			tracker.RemoveRange(f.Path, sibling.EndByte(), named.EndByte())
			return
		}
		stmt := orphans[0].Stmt
		tracker.RemoveRange(f.Path, stmt.StartByte(), statementEnd(f, stmt))
		return
	}

	// A run followed by a survivor extends to the survivor's start; the
	// run that ends the list reaches back over the preceding comma.
	for i := 0; i < len(specs); {
		if !orphaned[specs[i].StartByte()] {
			i++
			continue
		}
		j := i
		for j+1 < len(specs) && orphaned[specs[j+1].StartByte()] {
			j++
		}
		if j < len(specs)-1 {
			tracker.RemoveRange(f.Path, specs[i].StartByte(), specs[j+1].StartByte())
		} else {
			tracker.RemoveRange(f.Path, specs[i-1].EndByte(), specs[j].EndByte())
		}
		i = j + 1
	}
}

// statementEnd extends a statement's range past its trailing newline so
// removing an import does not leave a blank line behind.
func statementEnd(f *program.File, stmt *sitter.Node) uint32 {
	end := stmt.EndByte()
	if int(end) < len(f.Source) && f.Source[end] == '\n' {
		end++
	}
	return end
}
