package program

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/nglazy/internal/ts"
)

// indexFile builds the import and class tables from the top-level
// statements of a file. Nested declarations are not indexed: route
// component references resolve to top-level exported classes.
func indexFile(f *File) {
	for _, stmt := range ts.NamedChildren(f.Root) {
		switch stmt.Type() {
		case "import_statement":
			indexImport(f, stmt)
		case "class_declaration", "abstract_class_declaration":
			indexClass(f, stmt, stmt, false)
		case "export_statement":
			decl := stmt.ChildByFieldName("declaration")
			if decl == nil {
				continue
			}
			switch decl.Type() {
			case "class_declaration", "abstract_class_declaration":
				indexClass(f, decl, stmt, true)
			}
		}
	}
}

// indexClass records a class declaration. Decorators may be attached to
// the class node itself or, for `@Dec export class`, to the enclosing
// export statement.
func indexClass(f *File, decl, outer *sitter.Node, exported bool) {
	nameNode := decl.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := ts.NodeText(nameNode, f.Source)

	decorators := ts.ChildrenOfType(decl, "decorator")
	if outer != decl {
		decorators = append(ts.ChildrenOfType(outer, "decorator"), decorators...)
	}

	f.Classes[name] = &Class{
		Name:       name,
		File:       f,
		Node:       decl,
		Decorators: decorators,
		Exported:   exported,
	}
}

// indexImport records every binding of one import statement.
func indexImport(f *File, stmt *sitter.Node) {
	source := ts.StringValue(stmt.ChildByFieldName("source"), f.Source)
	if source == "" {
		return
	}

	clause := ts.FindChildOfType(stmt, "import_clause")
	if clause == nil {
		return // side-effect import, no bindings
	}

	add := func(local, imported string, spec *sitter.Node) {
		f.Imports[local] = &Import{
			Local:     local,
			Imported:  imported,
			Specifier: source,
			Stmt:      stmt,
			Clause:    clause,
			Spec:      spec,
		}
	}

	for _, binding := range ts.NamedChildren(clause) {
		switch binding.Type() {
		case "identifier":
			// Default import: `import Foo from './foo'`.
			add(ts.NodeText(binding, f.Source), "default", binding)

		case "namespace_import":
			if id := ts.FindChildOfType(binding, "identifier"); id != nil {
				add(ts.NodeText(id, f.Source), "*", binding)
			}

		case "named_imports":
			for _, spec := range ts.ChildrenOfType(binding, "import_specifier") {
				nameNode := spec.ChildByFieldName("name")
				if nameNode == nil {
					continue
				}
				imported := ts.NodeText(nameNode, f.Source)
				local := imported
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					local = ts.NodeText(alias, f.Source)
				}
				add(local, imported, spec)
			}
		}
	}
}
