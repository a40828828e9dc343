// Package parser implements the Tiger recursive-descent parser.
//
// The parser pulls tokens from a [TokenSource] one at a time and recognises a
// whole program in a single pass with exactly one token of lookahead and no
// backtracking. Expression precedence is encoded by a ladder of functions,
// one per binary-operator level, instead of a table.
//
// Usage:
//
//	var errs diag.List
//	p := parser.New(lexer.New("prog.tig", source), &errs)
//	prog := p.Parse()
//	if err := errs.Err(); err != nil { ... }
//
// Error handling: every problem is reported to the [diag.Sink] as
// "expected <construct>" at the offending token. A failed check does not
// consume that token and parsing carries on as if it had matched, so one
// mistake can be followed by a few more diagnostics. Use [WithMaxErrors] to
// stop after a fixed number of reports.
package parser

import (
	"fmt"

	"github.com/metaphox/tiger-lang/ast"
	"github.com/metaphox/tiger-lang/diag"
	"github.com/metaphox/tiger-lang/lexer"
	"github.com/metaphox/tiger-lang/semant"
)

// TokenSource is the scanner the parser reads from. *lexer.Lexer satisfies it.
type TokenSource interface {
	NextToken() ast.Token
	Filename() string
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxErrors stops the parse once n diagnostics have been reported.
// The returned program is then marked Incomplete. n <= 0 means no limit.
func WithMaxErrors(n int) Option {
	return func(p *Parser) { p.maxErrors = n }
}

// bailout is the panic value used to abandon a parse early.
type bailout struct{}

// Parser holds the state of one parse. Create one with [New] and call
// [Parser.Parse] once.
type Parser struct {
	src  TokenSource
	sink diag.Sink
	ctx  *semant.Context

	cur ast.Token // the single token of lookahead

	errors    int
	maxErrors int
}

// New creates a Parser that reads tokens from src and reports to sink.
// A nil sink discards diagnostics.
func New(src TokenSource, sink diag.Sink, opts ...Option) *Parser {
	if sink == nil {
		sink = diag.Discard
	}
	p := &Parser{src: src, sink: sink}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseString parses text and returns the program together with every
// diagnostic reported.
func ParseString(filename, text string, opts ...Option) (*semant.Program, diag.List) {
	var errs diag.List
	prog := New(lexer.New(filename, text), &errs, opts...).Parse()
	return prog, errs
}

// Parse recognises one complete Tiger program: a single expression followed
// by end of input. It always returns a program; syntax errors go to the sink.
func (p *Parser) Parse() (prog *semant.Program) {
	p.ctx = semant.NewContext()
	if err := p.ctx.Init(); err != nil {
		panic("parser: " + err.Error())
	}
	defer p.ctx.Teardown()

	prog = semant.Allocate()
	p.ctx.Attach(prog)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			prog.Incomplete = true
		}
	}()

	p.cur = p.src.NextToken()
	prog.Body = p.parseExpression()
	if !p.curIs(ast.EOF) {
		p.errorAt(p.cur, "trailing code after the main expression")
	}
	return prog
}

// HadErrors reports whether any diagnostic was issued.
func (p *Parser) HadErrors() bool { return p.errors > 0 }

// ErrorCount returns the number of diagnostics issued.
func (p *Parser) ErrorCount() int { return p.errors }

// ── Token cursor ──────────────────────────────────────────────────────────────

// advance fetches the next token. It never reads past EOF.
func (p *Parser) advance() {
	if p.cur.Type == ast.EOF {
		return
	}
	p.cur = p.src.NextToken()
}

// expect consumes the current token if it has type tt. Otherwise it reports
// "expected tt" at the current token, leaves it in place and returns false.
func (p *Parser) expect(tt ast.TokenType) bool {
	if p.cur.Type == tt {
		p.advance()
		return true
	}
	p.errorAt(p.cur, "expected "+tt.Display())
	return false
}

// ident consumes an identifier and returns its token. On mismatch the
// returned token is positioned at the current token and has no name.
func (p *Parser) ident() (ast.Token, bool) {
	tok := p.cur
	if !p.expect(ast.IDENT) {
		return ast.Token{Type: ast.IDENT, Line: tok.Line, Col: tok.Col}, false
	}
	return tok, true
}

// curIs reports whether the current token has the given type.
func (p *Parser) curIs(tt ast.TokenType) bool { return p.cur.Type == tt }

// curIn reports whether the current token has one of the given types.
func (p *Parser) curIn(tts []ast.TokenType) bool {
	for _, tt := range tts {
		if p.cur.Type == tt {
			return true
		}
	}
	return false
}

// errorAt reports msg at tok's position.
func (p *Parser) errorAt(tok ast.Token, msg string) {
	p.sink.Report(p.src.Filename(), tok.Line, tok.Col, msg)
	p.errors++
	if p.maxErrors > 0 && p.errors >= p.maxErrors {
		panic(bailout{})
	}
}

func (p *Parser) errorf(tok ast.Token, format string, args ...any) {
	p.errorAt(tok, fmt.Sprintf(format, args...))
}

// ── List grammars ─────────────────────────────────────────────────────────────

// parseList parses zero or more elements separated by sep and closed by
// term. An immediate term is the empty list.
func parseList[T any](p *Parser, sep, term ast.TokenType, elem func() T) []T {
	if p.curIs(term) {
		p.advance()
		return nil
	}
	items := []T{elem()}
	for p.curIs(sep) {
		p.advance()
		items = append(items, elem())
	}
	p.expect(term)
	return items
}

// parseExprSeq parses `expr ; expr ; ... term`.
func (p *Parser) parseExprSeq(term ast.TokenType) []ast.Expression {
	return parseList(p, ast.SEMICOLON, term, p.parseExpression)
}

// parseExprList parses `expr , expr , ... term`.
func (p *Parser) parseExprList(term ast.TokenType) []ast.Expression {
	return parseList(p, ast.COMMA, term, p.parseExpression)
}

// parseFieldList parses `id = expr , ... term` inside a record literal.
func (p *Parser) parseFieldList(term ast.TokenType) []ast.FieldInit {
	return parseList(p, ast.COMMA, term, p.parseFieldInit)
}

// parseTypeFields parses `id : id , ... term` for record types and
// parameter lists.
func (p *Parser) parseTypeFields(term ast.TokenType) []ast.Field {
	return parseList(p, ast.COMMA, term, p.parseTypeField)
}

func (p *Parser) parseFieldInit() ast.FieldInit {
	name, _ := p.ident()
	p.expect(ast.EQ)
	return ast.FieldInit{Name: name.Literal, Value: p.parseExpression(), Token: name}
}

func (p *Parser) parseTypeField() ast.Field {
	name, _ := p.ident()
	p.expect(ast.COLON)
	typ, _ := p.ident()
	return ast.Field{Name: name.Literal, TypeName: typ.Literal, Token: name}
}
