// Package ts wraps the tree-sitter TypeScript grammars and provides the
// CST helpers shared by the analysis packages.
package ts

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// LanguageFor returns the grammar for a file path, or nil for files
// nglazy does not parse. Declaration files (.d.ts) carry no runtime
// route configuration and are excluded.
func LanguageFor(filePath string) *sitter.Language {
	switch {
	case strings.HasSuffix(filePath, ".d.ts"):
		return nil
	case strings.HasSuffix(filePath, ".ts"):
		return typescript.GetLanguage()
	case strings.HasSuffix(filePath, ".tsx"):
		return tsx.GetLanguage()
	}
	return nil
}

// NewParser creates a fresh parser for the given grammar.
// Each goroutine must use its own parser (not thread-safe).
func NewParser(lang *sitter.Language) *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return p
}

// Parse parses source with a one-shot parser and returns the tree.
func Parse(lang *sitter.Language, source []byte) (*sitter.Tree, error) {
	p := NewParser(lang)
	tree, err := p.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	return tree, nil
}

// NodeText returns the source text of a tree-sitter node.
func NodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// NamedChildren returns all named children of a node.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// ChildrenOfType returns the direct children (named or not) of the given type.
func ChildrenOfType(node *sitter.Node, nodeType string) []*sitter.Node {
	var matched []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			matched = append(matched, child)
		}
	}
	return matched
}

// FindChildOfType returns the first direct child of the given type, or nil.
func FindChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// StringValue returns the unquoted value of a string literal node.
// Template strings and strings with interpolation return "".
func StringValue(node *sitter.Node, source []byte) string {
	if node == nil || node.Type() != "string" {
		return ""
	}
	fragment := FindChildOfType(node, "string_fragment")
	if fragment == nil {
		return "" // empty string literal
	}
	return NodeText(fragment, source)
}

// ObjectPair returns the pair of an object literal whose key is the
// given plain identifier, or nil. String-keyed and computed properties
// never match.
func ObjectPair(object *sitter.Node, key string, source []byte) *sitter.Node {
	for _, member := range NamedChildren(object) {
		if member.Type() != "pair" {
			continue
		}
		k := member.ChildByFieldName("key")
		if k == nil || k.Type() != "property_identifier" || NodeText(k, source) != key {
			continue
		}
		return member
	}
	return nil
}

// Walk calls visit for node and all of its descendants in document
// order. Returning false from visit prunes the subtree.
func Walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil || !visit(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(i), visit)
	}
}
