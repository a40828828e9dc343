package parser

import (
	"strconv"

	"github.com/metaphox/tiger-lang/ast"
)

// ── Operator ladder ───────────────────────────────────────────────────────────
//
// Loosest to tightest:
//
//	|   &   = <> < <= > >=   + -   * /   unary -
//
// Every binary level is left-associative.

var (
	orOps         = []ast.TokenType{ast.OR}
	andOps        = []ast.TokenType{ast.AND}
	comparisonOps = []ast.TokenType{ast.EQ, ast.NEQ, ast.LT, ast.LTE, ast.GT, ast.GTE}
	additiveOps   = []ast.TokenType{ast.PLUS, ast.MINUS}
	productOps    = []ast.TokenType{ast.TIMES, ast.SLASH}
)

// parseExpression parses a full expression.
func (p *Parser) parseExpression() ast.Expression { return p.parseOr() }

func (p *Parser) parseOr() ast.Expression { return p.parseBinary(p.parseAnd, orOps) }

func (p *Parser) parseAnd() ast.Expression { return p.parseBinary(p.parseComparison, andOps) }

func (p *Parser) parseComparison() ast.Expression {
	return p.parseBinary(p.parseAdditive, comparisonOps)
}

func (p *Parser) parseAdditive() ast.Expression {
	return p.parseBinary(p.parseMultiplicative, additiveOps)
}

func (p *Parser) parseMultiplicative() ast.Expression {
	return p.parseBinary(p.parseUnary, productOps)
}

// parseBinary parses one operand with next, then folds in every following
// (operator, operand) pair whose operator is in ops.
func (p *Parser) parseBinary(next func() ast.Expression, ops []ast.TokenType) ast.Expression {
	left := next()
	for p.curIn(ops) {
		tok := p.cur
		p.advance()
		left = &ast.InfixExpr{Base: ast.Base{Token: tok}, Left: left, Op: tok.Type, Right: next()}
	}
	return left
}

// parseUnary handles prefix minus, which binds tighter than any binary
// operator: `-1 + 2` is `((-1) + 2)`, not `(-(1 + 2))`. Both readings accept
// the same programs; only the tree differs.
func (p *Parser) parseUnary() ast.Expression {
	if p.curIs(ast.MINUS) {
		tok := p.cur
		p.advance()
		return &ast.NegExpr{Base: ast.Base{Token: tok}, Right: p.parseUnary()}
	}
	return p.parsePrimary()
}

// ── Primary expressions ───────────────────────────────────────────────────────

// parsePrimary dispatches on the current token. A token that starts no
// expression is reported and left unconsumed.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur
	switch tok.Type {
	case ast.INT:
		return p.parseIntLiteral()
	case ast.FLOAT:
		return p.parseFloatLiteral()
	case ast.STRING:
		p.advance()
		return &ast.StringLiteral{Base: ast.Base{Token: tok}, Value: tok.Literal}
	case ast.NIL:
		p.advance()
		return &ast.NilLiteral{Base: ast.Base{Token: tok}}
	case ast.BREAK:
		p.advance()
		return &ast.BreakExpr{Base: ast.Base{Token: tok}}
	case ast.LPAREN:
		p.advance()
		return &ast.SeqExpr{Base: ast.Base{Token: tok}, Exprs: p.parseExprSeq(ast.RPAREN)}
	case ast.IF:
		return p.parseIf()
	case ast.WHILE:
		return p.parseWhile()
	case ast.FOR:
		return p.parseFor()
	case ast.LET:
		return p.parseLet()
	case ast.IDENT:
		return p.parseIdentLed()
	}
	p.errorAt(tok, "expected expression")
	return &ast.BadExpr{Base: ast.Base{Token: tok}}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf(tok, "integer literal %s out of range", tok.Literal)
	}
	return &ast.IntLiteral{Base: ast.Base{Token: tok}, Value: val}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok, "float literal %s out of range", tok.Literal)
	}
	return &ast.FloatLiteral{Base: ast.Base{Token: tok}, Value: val}
}

// parseIf parses `if cond then expr [else expr]`. An else binds to the
// nearest if.
func (p *Parser) parseIf() ast.Expression {
	tok := p.cur
	p.advance() // 'if'

	cond := p.parseExpression()
	p.expect(ast.THEN)
	then := p.parseExpression()

	var els ast.Expression
	if p.curIs(ast.ELSE) {
		p.advance()
		els = p.parseExpression()
	}
	return &ast.IfExpr{Base: ast.Base{Token: tok}, Cond: cond, Then: then, Else: els}
}

// parseWhile parses `while cond do body`.
func (p *Parser) parseWhile() ast.Expression {
	tok := p.cur
	p.advance() // 'while'

	cond := p.parseExpression()
	p.expect(ast.DO)
	return &ast.WhileExpr{Base: ast.Base{Token: tok}, Cond: cond, Body: p.parseExpression()}
}

// parseFor parses `for id := lo to hi do body`. The index variable is only
// visible in the body.
func (p *Parser) parseFor() ast.Expression {
	tok := p.cur
	p.advance() // 'for'

	name, ok := p.ident()
	p.expect(ast.ASSIGN)
	lo := p.parseExpression()
	p.expect(ast.TO)
	hi := p.parseExpression()
	p.expect(ast.DO)

	p.ctx.BeginScope()
	defer p.ctx.EndScope()
	if ok {
		p.ctx.DeclareVar(name)
	}
	return &ast.ForExpr{Base: ast.Base{Token: tok}, Var: name.Literal, Lo: lo, Hi: hi, Body: p.parseExpression()}
}

// parseLet parses `let decls in exprseq end`. A `let` directly followed by
// `in` is reported, the `in` is consumed and the body is still parsed.
func (p *Parser) parseLet() ast.Expression {
	tok := p.cur
	p.advance() // 'let'

	p.ctx.BeginScope()
	defer p.ctx.EndScope()

	var decls []ast.Declaration
	in := p.cur
	if p.curIs(ast.IN) {
		p.errorAt(in, "expected declaration")
		p.advance()
	} else {
		decls = p.parseDeclarations()
		in = p.cur
		p.expect(ast.IN)
	}
	body := &ast.SeqExpr{Base: ast.Base{Token: in}, Exprs: p.parseExprSeq(ast.END)}
	return &ast.LetExpr{Base: ast.Base{Token: tok}, Decls: decls, Body: body}
}

// ── Identifier-led forms ──────────────────────────────────────────────────────

// bracketKind tells what a `[ expr ]` after an identifier turned out to be.
type bracketKind int

const (
	pendingIndex  bracketKind = iota // first subscript of an lvalue
	arrayCreation                    // size of `type [size] of init`
)

// parseIdentLed parses the forms that start with an identifier:
//
//	id { field = expr, ... }    record literal
//	id [ expr ] of expr         array literal
//	id ( expr, ... )            call
//	lvalue [:= expr]            variable, field, subscript, assignment
func (p *Parser) parseIdentLed() ast.Expression {
	id := p.cur
	p.advance()

	switch p.cur.Type {
	case ast.LBRACE:
		p.advance()
		return &ast.RecordExpr{Base: ast.Base{Token: id}, Type: id.Literal, Fields: p.parseFieldList(ast.RBRACE)}

	case ast.LPAREN:
		p.advance()
		return &ast.CallExpr{Base: ast.Base{Token: id}, Func: id.Literal, Args: p.parseExprList(ast.RPAREN)}

	case ast.LBRACKET:
		open, inner, kind := p.parseBracket()
		if kind == arrayCreation {
			p.advance() // 'of'
			return &ast.ArrayExpr{Base: ast.Base{Token: id}, Type: id.Literal, Size: inner, Init: p.parseExpression()}
		}
		first := &ast.IndexVar{
			Base:   ast.Base{Token: open},
			Object: &ast.SimpleVar{Base: ast.Base{Token: id}, Name: id.Literal},
			Index:  inner,
		}
		return p.parseLvalueTail(first)
	}

	return p.parseLvalueTail(&ast.SimpleVar{Base: ast.Base{Token: id}, Name: id.Literal})
}

// parseBracket consumes `[ expr ]` and looks at the one token after the
// closing bracket: `of` makes it an array size, anything else the first
// subscript of an lvalue. The `of` itself is left for the caller.
func (p *Parser) parseBracket() (open ast.Token, inner ast.Expression, kind bracketKind) {
	open = p.cur
	p.advance() // '['
	inner = p.parseExpression()
	p.expect(ast.RBRACKET)
	if p.curIs(ast.OF) {
		return open, inner, arrayCreation
	}
	return open, inner, pendingIndex
}

// parseLvalueTail extends v with any suffixes and turns a following `:=`
// into an assignment.
func (p *Parser) parseLvalueTail(v ast.Lvalue) ast.Expression {
	v = p.parseLvalueSuffixes(v)
	if !p.curIs(ast.ASSIGN) {
		return v
	}
	tok := p.cur
	p.advance()
	return &ast.AssignExpr{Base: ast.Base{Token: tok}, Target: v, Value: p.parseExpression()}
}

// parseLvalueSuffixes applies `.id` and `[expr]` suffixes left to right.
func (p *Parser) parseLvalueSuffixes(v ast.Lvalue) ast.Lvalue {
	for {
		tok := p.cur
		switch tok.Type {
		case ast.DOT:
			p.advance()
			field, _ := p.ident()
			v = &ast.FieldVar{Base: ast.Base{Token: tok}, Object: v, Field: field.Literal}
		case ast.LBRACKET:
			p.advance()
			index := p.parseExpression()
			p.expect(ast.RBRACKET)
			v = &ast.IndexVar{Base: ast.Base{Token: tok}, Object: v, Index: index}
		default:
			return v
		}
	}
}
