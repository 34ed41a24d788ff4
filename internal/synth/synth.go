// Package synth builds synthesized TypeScript expressions and renders
// them to literal text for insertion by the change tracker.
package synth

import "strings"

// Expr is a synthesized expression node.
type Expr interface {
	render(b *strings.Builder)
}

// Ident is a bare identifier.
type Ident string

func (e Ident) render(b *strings.Builder) {
	b.WriteString(string(e))
}

// Str is a single-quoted string literal.
type Str string

func (e Str) render(b *strings.Builder) {
	b.WriteByte('\'')
	b.WriteString(strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(string(e)))
	b.WriteByte('\'')
}

// Member is a property access `Object.Property`.
type Member struct {
	Object   Expr
	Property string
}

func (e Member) render(b *strings.Builder) {
	e.Object.render(b)
	b.WriteByte('.')
	b.WriteString(e.Property)
}

// Call is a call expression.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (e Call) render(b *strings.Builder) {
	e.Callee.render(b)
	b.WriteByte('(')
	for i, arg := range e.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.render(b)
	}
	b.WriteByte(')')
}

// Arrow is an arrow function with an expression body. A single
// parameter renders without parentheses.
type Arrow struct {
	Params []string
	Body   Expr
}

func (e Arrow) render(b *strings.Builder) {
	if len(e.Params) == 1 {
		b.WriteString(e.Params[0])
	} else {
		b.WriteByte('(')
		b.WriteString(strings.Join(e.Params, ", "))
		b.WriteByte(')')
	}
	b.WriteString(" => ")
	e.Body.render(b)
}

// Property is an object property assignment `Key: Value`.
type Property struct {
	Key   string
	Value Expr
}

func (e Property) render(b *strings.Builder) {
	b.WriteString(e.Key)
	b.WriteString(": ")
	e.Value.render(b)
}

// Render pretty-prints a synthesized expression.
func Render(e Expr) string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

// LoadComponent builds the lazy-loading property assignment
//
//	loadComponent: () => import('<specifier>').then(m => m.<ClassName>)
//
// that replaces an eager `component: <ClassName>` assignment.
func LoadComponent(specifier, className string) string {
	return Render(Property{
		Key: "loadComponent",
		Value: Arrow{
			Body: Call{
				Callee: Member{
					Object: Call{
						Callee: Ident("import"),
						Args:   []Expr{Str(specifier)},
					},
					Property: "then",
				},
				Args: []Expr{Arrow{
					Params: []string{"m"},
					Body:   Member{Object: Ident("m"), Property: className},
				}},
			},
		},
	})
}
