// Package semant holds the semantic-analysis state the parser drives while it
// recognises a program: the type-check [Context] with its nested scopes, and
// the [Program] accumulator handed back to the caller.
package semant

import (
	"errors"

	"github.com/metaphox/tiger-lang/ast"
)

// ErrActive is returned by Init on a context that is already initialised.
var ErrActive = errors.New("semant: context already initialised")

// Kind classifies a bound name.
type Kind int

const (
	KindType Kind = iota
	KindVar
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindVar:
		return "var"
	case KindFunc:
		return "function"
	}
	return "unknown"
}

// Symbol is a bound name. Builtin symbols have Line == 0.
type Symbol struct {
	Name  string
	Kind  Kind
	Depth int // scope depth; 0 is the standard library
	Line  int
	Col   int
}

// scope has separate namespaces for types and values, as in Tiger.
type scope struct {
	types  map[string]*Symbol
	values map[string]*Symbol
}

func newScope() *scope {
	return &scope{types: map[string]*Symbol{}, values: map[string]*Symbol{}}
}

var (
	baseTypes = []string{"int", "string", "float"}
	baseFuncs = []string{
		"print", "flush", "getchar", "ord", "chr", "size",
		"substring", "concat", "not", "exit",
	}
)

// Context is the type-check context for one parse. It is not safe for
// concurrent use and must be bracketed by Init and Teardown.
type Context struct {
	scopes []*scope
	prog   *Program
	active bool
}

// NewContext returns an uninitialised context.
func NewContext() *Context { return &Context{} }

// Init opens the standard-library scope.
func (c *Context) Init() error {
	if c.active {
		return ErrActive
	}
	c.active = true
	base := newScope()
	for _, n := range baseTypes {
		base.types[n] = &Symbol{Name: n, Kind: KindType}
	}
	for _, n := range baseFuncs {
		base.values[n] = &Symbol{Name: n, Kind: KindFunc}
	}
	c.scopes = []*scope{base}
	return nil
}

// Teardown drops every scope. Hooks called afterwards are no-ops.
func (c *Context) Teardown() {
	c.scopes = nil
	c.prog = nil
	c.active = false
}

// Active reports whether the context is between Init and Teardown.
func (c *Context) Active() bool { return c.active }

// Attach makes prog the recipient of every declaration recorded from now on.
func (c *Context) Attach(prog *Program) { c.prog = prog }

// Depth returns the current scope depth; 0 is the standard library.
func (c *Context) Depth() int { return len(c.scopes) - 1 }

// BeginScope opens a nested scope.
func (c *Context) BeginScope() {
	if !c.active {
		return
	}
	c.scopes = append(c.scopes, newScope())
}

// EndScope closes the innermost scope. The standard-library scope is never
// closed.
func (c *Context) EndScope() {
	if !c.active || len(c.scopes) <= 1 {
		return
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// DeclareType binds a type name in the innermost scope.
func (c *Context) DeclareType(tok ast.Token) { c.declare(tok, KindType) }

// DeclareVar binds a variable, parameter or loop index in the innermost scope.
func (c *Context) DeclareVar(tok ast.Token) { c.declare(tok, KindVar) }

// DeclareFunc binds a function name in the innermost scope.
func (c *Context) DeclareFunc(tok ast.Token) { c.declare(tok, KindFunc) }

func (c *Context) declare(tok ast.Token, kind Kind) {
	if !c.active {
		return
	}
	sym := &Symbol{Name: tok.Literal, Kind: kind, Depth: c.Depth(), Line: tok.Line, Col: tok.Col}
	top := c.scopes[len(c.scopes)-1]
	if kind == KindType {
		top.types[sym.Name] = sym
	} else {
		top.values[sym.Name] = sym
	}
	if c.prog != nil {
		c.prog.Symbols = append(c.prog.Symbols, *sym)
	}
}

// Lookup finds the innermost binding of name in the type namespace (when
// kind is KindType) or the value namespace (otherwise).
func (c *Context) Lookup(name string, kind Kind) (Symbol, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		env := c.scopes[i].values
		if kind == KindType {
			env = c.scopes[i].types
		}
		if sym, ok := env[name]; ok {
			return *sym, true
		}
	}
	return Symbol{}, false
}
