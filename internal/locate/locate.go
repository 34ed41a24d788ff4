// Package locate finds route-registration calls and extracts their
// inline route arrays.
package locate

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/nglazy/internal/program"
	"github.com/phobologic/nglazy/internal/ts"
)

// callShape classifies a call expression against the closed set of
// recognized route-registration entry points. Resolving the symbol
// first and dispatching on the shape keeps each method check scoped to
// its own receiver symbol.
type callShape int

const (
	shapeNone callShape = iota
	shapeForRoot       // RouterModule.forRoot(routes)
	shapeForChild      // RouterModule.forChild(routes)
	shapeResetConfig   // router.resetConfig(routes)
	shapeProvideRouter // provideRouter(routes)
)

// Arrays returns the inline route arrays of f: for every recognized
// route-registration call whose first argument is syntactically an
// array literal, the array node is a candidate. Indirect route
// arguments (identifiers, spreads, call results) are intentionally not
// followed; resolving them risks rewriting unrelated arrays.
func Arrays(p *program.Program, f *program.File) []*sitter.Node {
	var arrays []*sitter.Node

	ts.Walk(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		if classify(p, f, n) == shapeNone {
			return true
		}
		if arr := firstArrayArgument(n); arr != nil {
			arrays = append(arrays, arr)
		}
		return true
	})

	return arrays
}

func classify(p *program.Program, f *program.File, call *sitter.Node) callShape {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return shapeNone
	}

	switch fn.Type() {
	case "identifier":
		if p.SymbolName(f, ts.NodeText(fn, f.Source)) == "provideRouter" {
			return shapeProvideRouter
		}

	case "member_expression":
		property := fn.ChildByFieldName("property")
		object := fn.ChildByFieldName("object")
		if property == nil || object == nil {
			return shapeNone
		}
		method := ts.NodeText(property, f.Source)

		if object.Type() == "identifier" {
			switch p.SymbolName(f, ts.NodeText(object, f.Source)) {
			case "RouterModule":
				switch method {
				case "forRoot":
					return shapeForRoot
				case "forChild":
					return shapeForChild
				}
				return shapeNone
			case "Router":
				if method == "resetConfig" {
					return shapeResetConfig
				}
				return shapeNone
			}
		}

		// resetConfig is usually called on an injected Router instance
		// (`this.router.resetConfig(...)` or a local variable). The
		// receiver must be tied to a Router declaration in this file;
		// unresolvable receivers are skipped.
		if method == "resetConfig" && receiverIsRouter(p, f, object) {
			return shapeResetConfig
		}
	}

	return shapeNone
}

// receiverIsRouter reports whether the receiver of an instance call is
// a binding declared with the Router type. The binding name — the
// identifier itself, or the final property of a member chain like
// `this.router` — must be declared somewhere in the file with a Router
// type annotation, an inject(Router) initializer, or a new Router()
// initializer.
func receiverIsRouter(p *program.Program, f *program.File, object *sitter.Node) bool {
	var name string
	switch object.Type() {
	case "identifier":
		name = ts.NodeText(object, f.Source)
	case "member_expression":
		prop := object.ChildByFieldName("property")
		if prop == nil {
			return false
		}
		name = ts.NodeText(prop, f.Source)
	default:
		return false
	}

	found := false
	ts.Walk(f.Root, func(n *sitter.Node) bool {
		if found {
			return false
		}
		switch n.Type() {
		case "required_parameter", "optional_parameter":
			pattern := n.ChildByFieldName("pattern")
			if pattern == nil || ts.NodeText(pattern, f.Source) != name {
				return true
			}
		case "variable_declarator", "public_field_definition", "property_signature":
			id := n.ChildByFieldName("name")
			if id == nil || ts.NodeText(id, f.Source) != name {
				return true
			}
		default:
			return true
		}
		if routerType(p, f, n.ChildByFieldName("type")) || routerInitializer(p, f, n.ChildByFieldName("value")) {
			found = true
		}
		return true
	})
	return found
}

// routerType reports whether a type annotation names the Router symbol.
func routerType(p *program.Program, f *program.File, annotation *sitter.Node) bool {
	if annotation == nil {
		return false
	}
	id := ts.FindChildOfType(annotation, "type_identifier")
	return id != nil && p.SymbolName(f, ts.NodeText(id, f.Source)) == "Router"
}

// routerInitializer reports whether an initializer expression produces
// a Router: `inject(Router)` or `new Router(...)`.
func routerInitializer(p *program.Program, f *program.File, value *sitter.Node) bool {
	if value == nil {
		return false
	}
	switch value.Type() {
	case "call_expression":
		fn := value.ChildByFieldName("function")
		if fn == nil || fn.Type() != "identifier" || p.SymbolName(f, ts.NodeText(fn, f.Source)) != "inject" {
			return false
		}
		args := value.ChildByFieldName("arguments")
		if args == nil || args.NamedChildCount() == 0 {
			return false
		}
		arg := args.NamedChild(0)
		return arg.Type() == "identifier" && p.SymbolName(f, ts.NodeText(arg, f.Source)) == "Router"
	case "new_expression":
		ctor := value.ChildByFieldName("constructor")
		return ctor != nil && ctor.Type() == "identifier" && p.SymbolName(f, ts.NodeText(ctor, f.Source)) == "Router"
	}
	return false
}

// firstArrayArgument returns the call's first argument if it is an
// array literal, nil otherwise.
func firstArrayArgument(call *sitter.Node) *sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return nil
	}
	first := args.NamedChild(0)
	if first.Type() != "array" {
		return nil
	}
	return first
}
