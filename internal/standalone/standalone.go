// Package standalone decides whether a referenced class is a
// standalone Angular component.
package standalone

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/nglazy/internal/program"
	"github.com/phobologic/nglazy/internal/ts"
)

// IsStandalone reports whether c was declared as a standalone
// component: a @Component decorator whose metadata carries a literal
// `standalone: true`. A class with no extractable component metadata is
// not standalone — skipping a rewrite is always safer than an incorrect
// one.
func IsStandalone(c *program.Class) bool {
	for _, dec := range c.Decorators {
		meta := componentMetadata(dec, c.File.Source)
		if meta == nil {
			continue
		}
		pair := ts.ObjectPair(meta, "standalone", c.File.Source)
		if pair == nil {
			return false
		}
		value := pair.ChildByFieldName("value")
		return value != nil && value.Type() == "true"
	}
	return false
}

// componentMetadata returns the object literal argument of a
// `@Component({...})` decorator, or nil if dec is something else.
func componentMetadata(dec *sitter.Node, source []byte) *sitter.Node {
	call := ts.FindChildOfType(dec, "call_expression")
	if call == nil {
		return nil
	}
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != "identifier" || ts.NodeText(fn, source) != "Component" {
		return nil
	}
	args := call.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return nil
	}
	obj := args.NamedChild(0)
	if obj.Type() != "object" {
		return nil
	}
	return obj
}
