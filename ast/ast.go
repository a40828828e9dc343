// Package ast defines the syntax tree nodes and tokens for Tiger.
//
// Tiger is expression-oriented: a program is a single expression, and every
// construct except a declaration or a type definition yields a value (possibly
// "no value"). The hierarchy is:
//
//	Node (interface)
//	  Expression (interface)
//	    NilLiteral, IntLiteral, FloatLiteral, StringLiteral, BreakExpr
//	    NegExpr, InfixExpr, SeqExpr
//	    IfExpr, WhileExpr, ForExpr, LetExpr
//	    CallExpr, RecordExpr, ArrayExpr, AssignExpr
//	    Lvalue (interface): SimpleVar, FieldVar, IndexVar
//	    BadExpr
//	  Declaration (interface)
//	    TypeDecl, VarDecl, FuncDecl
//	  TypeDef (interface)
//	    NameType, RecordType, ArrayType
//
// Every node keeps the token at which it starts; Pos returns its position.
package ast

import (
	"fmt"
	"strings"
)

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element in the Tiger syntax tree.
type Node interface {
	// TokenLiteral returns the literal string of the token that began this node.
	TokenLiteral() string
	// Pos returns the 1-based line and column of the node's first token.
	Pos() (line, col int)
	// String returns a compact, fully parenthesised rendering for tests and
	// debugging. It is not a pretty-printer.
	String() string
}

// Expression is a Node that evaluates to a value (or to no value).
type Expression interface {
	Node
	expressionNode()
}

// Lvalue is an Expression that denotes a storage location.
type Lvalue interface {
	Expression
	lvalueNode()
}

// Declaration appears in the declaration list of a let expression.
type Declaration interface {
	Node
	declarationNode()
}

// TypeDef is the right-hand side of a type declaration.
type TypeDef interface {
	Node
	typeDefNode()
}

// Base carries the starting token shared by every node.
type Base struct {
	Token Token
}

func (b Base) TokenLiteral() string { return b.Token.Literal }
func (b Base) Pos() (int, int)      { return b.Token.Line, b.Token.Col }

// ── Support types ─────────────────────────────────────────────────────────────

// Field is one `name : type` entry of a record type or a parameter list.
type Field struct {
	Name     string
	TypeName string
	Token    Token // the name token
}

func (f Field) String() string { return f.Name + ": " + f.TypeName }

// FieldInit is one `name = expr` entry of a record literal.
type FieldInit struct {
	Name  string
	Value Expression
	Token Token // the name token
}

func (f FieldInit) String() string { return f.Name + "=" + f.Value.String() }

func joinFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}

func joinExprs(exprs []Expression, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

// ── Type definitions ──────────────────────────────────────────────────────────

// NameType refers to a type by name: type myint = int
type NameType struct {
	Base
	Name string
}

func (t *NameType) typeDefNode()   {}
func (t *NameType) String() string { return t.Name }

// RecordType is a record type definition: { name: string, age: int }
type RecordType struct {
	Base
	Fields []Field
}

func (t *RecordType) typeDefNode()   {}
func (t *RecordType) String() string { return "{" + joinFields(t.Fields) + "}" }

// ArrayType is an array type definition: array of int
type ArrayType struct {
	Base
	Elem string
}

func (t *ArrayType) typeDefNode()   {}
func (t *ArrayType) String() string { return "array of " + t.Elem }

// ── Declarations ──────────────────────────────────────────────────────────────

// TypeDecl binds a type name.
//
//	type list = {first: int, rest: list}
type TypeDecl struct {
	Base
	Name string
	Type TypeDef
}

func (d *TypeDecl) declarationNode() {}
func (d *TypeDecl) String() string {
	return fmt.Sprintf("type %s = %s", d.Name, d.Type.String())
}

// VarDecl declares a variable. TypeName is empty when the type is inferred.
//
//	var x := 0
//	var y : int := 1
type VarDecl struct {
	Base
	Name     string
	TypeName string
	Value    Expression
}

func (d *VarDecl) declarationNode() {}
func (d *VarDecl) String() string {
	if d.TypeName == "" {
		return fmt.Sprintf("var %s := %s", d.Name, d.Value.String())
	}
	return fmt.Sprintf("var %s: %s := %s", d.Name, d.TypeName, d.Value.String())
}

// FuncDecl declares a function or procedure. Result is empty for procedures.
//
//	function add(a: int, b: int): int = a + b
type FuncDecl struct {
	Base
	Name   string
	Params []Field
	Result string
	Body   Expression
}

func (d *FuncDecl) declarationNode() {}
func (d *FuncDecl) String() string {
	res := ""
	if d.Result != "" {
		res = ": " + d.Result
	}
	return fmt.Sprintf("function %s(%s)%s = %s", d.Name, joinFields(d.Params), res, d.Body.String())
}

// ── Literals ──────────────────────────────────────────────────────────────────

// NilLiteral is the `nil` record value.
type NilLiteral struct{ Base }

func (e *NilLiteral) expressionNode() {}
func (e *NilLiteral) String() string  { return "nil" }

// IntLiteral is a decimal integer literal.
type IntLiteral struct {
	Base
	Value int64
}

func (e *IntLiteral) expressionNode() {}
func (e *IntLiteral) String() string  { return e.Token.Literal }

// FloatLiteral is a decimal floating-point literal.
type FloatLiteral struct {
	Base
	Value float64
}

func (e *FloatLiteral) expressionNode() {}
func (e *FloatLiteral) String() string  { return e.Token.Literal }

// StringLiteral holds the decoded string value.
type StringLiteral struct {
	Base
	Value string
}

func (e *StringLiteral) expressionNode() {}
func (e *StringLiteral) String() string  { return fmt.Sprintf("%q", e.Value) }

// BreakExpr exits the nearest enclosing while or for loop.
type BreakExpr struct{ Base }

func (e *BreakExpr) expressionNode() {}
func (e *BreakExpr) String() string  { return "break" }

// BadExpr stands in for an expression that could not be recognised.
type BadExpr struct{ Base }

func (e *BadExpr) expressionNode() {}
func (e *BadExpr) String() string  { return "<bad>" }

// ── Operators ─────────────────────────────────────────────────────────────────

// NegExpr is unary minus: -x
type NegExpr struct {
	Base
	Right Expression
}

func (e *NegExpr) expressionNode() {}
func (e *NegExpr) String() string  { return "(-" + e.Right.String() + ")" }

// InfixExpr is a binary expression. Op is the operator's token type.
type InfixExpr struct {
	Base  // the operator token
	Left  Expression
	Op    TokenType
	Right Expression
}

func (e *InfixExpr) expressionNode() {}
func (e *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op.Display(), e.Right.String())
}

// ── Compound expressions ──────────────────────────────────────────────────────

// SeqExpr is a parenthesised, ';'-separated sequence. An empty sequence
// produces no value; otherwise the value is that of the last element.
type SeqExpr struct {
	Base  // the '(' token, or the 'in' token of a let body
	Exprs []Expression
}

func (e *SeqExpr) expressionNode() {}
func (e *SeqExpr) String() string  { return "(" + joinExprs(e.Exprs, "; ") + ")" }

// IfExpr is `if cond then a [else b]`. Else is nil without an else branch.
type IfExpr struct {
	Base
	Cond Expression
	Then Expression
	Else Expression
}

func (e *IfExpr) expressionNode() {}
func (e *IfExpr) String() string {
	if e.Else == nil {
		return fmt.Sprintf("if %s then %s", e.Cond.String(), e.Then.String())
	}
	return fmt.Sprintf("if %s then %s else %s", e.Cond.String(), e.Then.String(), e.Else.String())
}

// WhileExpr is `while cond do body`.
type WhileExpr struct {
	Base
	Cond Expression
	Body Expression
}

func (e *WhileExpr) expressionNode() {}
func (e *WhileExpr) String() string {
	return fmt.Sprintf("while %s do %s", e.Cond.String(), e.Body.String())
}

// ForExpr is `for v := lo to hi do body`.
type ForExpr struct {
	Base
	Var  string
	Lo   Expression
	Hi   Expression
	Body Expression
}

func (e *ForExpr) expressionNode() {}
func (e *ForExpr) String() string {
	return fmt.Sprintf("for %s := %s to %s do %s", e.Var, e.Lo.String(), e.Hi.String(), e.Body.String())
}

// LetExpr is `let decls in body end`.
type LetExpr struct {
	Base
	Decls []Declaration
	Body  *SeqExpr
}

func (e *LetExpr) expressionNode() {}
func (e *LetExpr) String() string {
	parts := make([]string, len(e.Decls))
	for i, d := range e.Decls {
		parts[i] = d.String()
	}
	return fmt.Sprintf("let %s in %s end", strings.Join(parts, " "), joinExprs(e.Body.Exprs, "; "))
}

// CallExpr is a function call: f(a, b)
type CallExpr struct {
	Base // the function name token
	Func string
	Args []Expression
}

func (e *CallExpr) expressionNode() {}
func (e *CallExpr) String() string  { return e.Func + "(" + joinExprs(e.Args, ", ") + ")" }

// RecordExpr creates a record: point {x = 1, y = 2}
type RecordExpr struct {
	Base   // the type name token
	Type   string
	Fields []FieldInit
}

func (e *RecordExpr) expressionNode() {}
func (e *RecordExpr) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return e.Type + "{" + strings.Join(parts, ", ") + "}"
}

// ArrayExpr creates an array: intArray [10] of 0
type ArrayExpr struct {
	Base // the type name token
	Type string
	Size Expression
	Init Expression
}

func (e *ArrayExpr) expressionNode() {}
func (e *ArrayExpr) String() string {
	return fmt.Sprintf("%s[%s] of %s", e.Type, e.Size.String(), e.Init.String())
}

// AssignExpr stores a value into an lvalue: a[i].f := v
type AssignExpr struct {
	Base   // the ':=' token
	Target Lvalue
	Value  Expression
}

func (e *AssignExpr) expressionNode() {}
func (e *AssignExpr) String() string {
	return fmt.Sprintf("%s := %s", e.Target.String(), e.Value.String())
}

// ── Lvalues ───────────────────────────────────────────────────────────────────

// SimpleVar names a variable.
type SimpleVar struct {
	Base
	Name string
}

func (v *SimpleVar) expressionNode() {}
func (v *SimpleVar) lvalueNode()     {}
func (v *SimpleVar) String() string  { return v.Name }

// FieldVar selects a record field: p.x
type FieldVar struct {
	Base   // the '.' token
	Object Lvalue
	Field  string
}

func (v *FieldVar) expressionNode() {}
func (v *FieldVar) lvalueNode()     {}
func (v *FieldVar) String() string  { return v.Object.String() + "." + v.Field }

// IndexVar subscripts an array: a[i]
type IndexVar struct {
	Base   // the '[' token
	Object Lvalue
	Index  Expression
}

func (v *IndexVar) expressionNode() {}
func (v *IndexVar) lvalueNode()     {}
func (v *IndexVar) String() string  { return v.Object.String() + "[" + v.Index.String() + "]" }
