package ts

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
)

func parseSource(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	lang := LanguageFor("test.ts")
	tree, err := Parse(lang, []byte(source))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree.RootNode(), []byte(source)
}

func TestLanguageFor(t *testing.T) {
	t.Parallel()

	if LanguageFor("app/routes.ts") == nil {
		t.Error("expected a grammar for .ts")
	}
	if LanguageFor("app/view.tsx") == nil {
		t.Error("expected a grammar for .tsx")
	}
	if LanguageFor("app/types.d.ts") != nil {
		t.Error("declaration files must not be parsed")
	}
	if LanguageFor("app/main.js") != nil {
		t.Error("expected no grammar for .js")
	}
}

func TestNodeText(t *testing.T) {
	t.Parallel()

	root, source := parseSource(t, "const x = 1;\n")
	if got := NodeText(root, source); got != "const x = 1;\n" {
		t.Errorf("NodeText(root) = %q", got)
	}
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	root, source := parseSource(t, "import { A } from './a';\n")
	stmt := root.NamedChild(0)
	if stmt.Type() != "import_statement" {
		t.Fatalf("node type = %q", stmt.Type())
	}
	if got := StringValue(stmt.ChildByFieldName("source"), source); got != "./a" {
		t.Errorf("StringValue = %q, want ./a", got)
	}
}

func TestObjectPair(t *testing.T) {
	t.Parallel()

	root, source := parseSource(t, "const r = { path: 'x', component: Foo, 'other': 1 };\n")

	var object *sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if n.Type() == "object" {
			object = n
			return false
		}
		return true
	})
	if object == nil {
		t.Fatal("no object literal found")
	}

	pair := ObjectPair(object, "component", source)
	if pair == nil {
		t.Fatal("component pair not found")
	}
	if got := NodeText(pair, source); got != "component: Foo" {
		t.Errorf("pair text = %q", got)
	}

	if ObjectPair(object, "other", source) != nil {
		t.Error("string-keyed property must not match")
	}
	if ObjectPair(object, "missing", source) != nil {
		t.Error("missing key must not match")
	}
}

func TestWalkPrunes(t *testing.T) {
	t.Parallel()

	root, _ := parseSource(t, "function f() { return 1; }\n")
	visited := 0
	Walk(root, func(n *sitter.Node) bool {
		visited++
		return n.Type() != "function_declaration"
	})
	if visited < 2 {
		t.Errorf("visited %d nodes, expected the root and the function", visited)
	}
	Walk(root, func(n *sitter.Node) bool {
		if n.Type() == "return_statement" {
			t.Error("walk descended into a pruned subtree")
		}
		return n.Type() != "function_declaration"
	})
}
