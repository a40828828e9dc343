package semant

import (
	"strings"

	"github.com/metaphox/tiger-lang/ast"
)

// Program is the in-progress representation of one Tiger program. The parser
// creates it with Allocate, fills it while recognising the source and hands
// it to the caller, who owns it from then on.
type Program struct {
	// Body is the single top-level expression.
	Body ast.Expression
	// Symbols lists every user declaration in source order.
	Symbols []Symbol
	// Incomplete is set when parsing stopped before reaching the end of input.
	Incomplete bool
}

// Allocate returns an empty program.
func Allocate() *Program { return &Program{} }

// Declared returns the symbols named name in declaration order.
func (p *Program) Declared(name string) []Symbol {
	var out []Symbol
	for _, s := range p.Symbols {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// String renders the body on a single line.
func (p *Program) String() string {
	if p.Body == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(p.Body.String())
	b.WriteByte('\n')
	return b.String()
}
