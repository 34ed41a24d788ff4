// Package rewrite turns eager standalone-component route definitions
// into their lazy-loading form and schedules the resulting edits.
package rewrite

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/nglazy/internal/program"
	"github.com/phobologic/nglazy/internal/standalone"
	"github.com/phobologic/nglazy/internal/synth"
	"github.com/phobologic/nglazy/internal/track"
	"github.com/phobologic/nglazy/internal/ts"
)

// File inspects every route object of the located arrays in f and
// schedules, per migratable route, the replacement of its
// `component: X` property with a lazy `loadComponent` closure plus the
// removal of the import binding the rewrite orphans. Returns the number
// of routes migrated.
//
// A route is skipped without error when its `component` property is
// absent, not a bare identifier, does not resolve to a class, or the
// class is not a standalone component. Child route arrays nested under
// `children` are not descended into; they are located and rewritten
// only when registered through their own recognized call.
func File(p *program.Program, f *program.File, arrays []*sitter.Node, tracker *track.Tracker) int {
	migrated := 0
	uses := make(map[string]int)

	for _, arr := range arrays {
		for _, route := range ts.NamedChildren(arr) {
			if route.Type() != "object" {
				continue
			}
			pair := ts.ObjectPair(route, "component", f.Source)
			if pair == nil {
				continue
			}
			value := pair.ChildByFieldName("value")
			if value == nil || value.Type() != "identifier" {
				continue
			}
			local := ts.NodeText(value, f.Source)

			class, ok := p.ResolveClass(f, local)
			if !ok || !standalone.IsStandalone(class) {
				continue
			}

			imp := f.Imports[local]
			if imp == nil {
				// The class is declared in this very file; lazily
				// importing a file from itself defers nothing.
				continue
			}

			tracker.ReplaceNode(f.Path, pair, synth.LoadComponent(imp.Specifier, class.Name))
			uses[local]++
			migrated++
		}
	}

	// An import binding is orphaned only when every remaining reference
	// to it is one of the component properties rewritten above. Orphans
	// are grouped by their import statement and removed together.
	orphans := make(map[uint32][]*program.Import)
	for local, rewritten := range uses {
		if program.CountReferences(f, local) == rewritten {
			imp := f.Imports[local]
			orphans[imp.Stmt.StartByte()] = append(orphans[imp.Stmt.StartByte()], imp)
		}
	}
	for _, group := range orphans {
		removeImports(f, group, tracker)
	}

	return migrated
}
