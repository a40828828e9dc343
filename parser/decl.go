package parser

import "github.com/metaphox/tiger-lang/ast"

// ── Declarations ──────────────────────────────────────────────────────────────

// parseDeclarations parses the longest run of type, var and function
// declarations. It stops, without consuming, at any other token.
func (p *Parser) parseDeclarations() []ast.Declaration {
	var decls []ast.Declaration
	for {
		switch p.cur.Type {
		case ast.TYPE:
			decls = append(decls, p.parseTypeDecl())
		case ast.VAR:
			decls = append(decls, p.parseVarDecl())
		case ast.FUNCTION:
			decls = append(decls, p.parseFuncDecl())
		default:
			return decls
		}
	}
}

// parseTypeDecl parses `type id = ty`. The name is bound before the
// definition so recursive types see themselves.
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	tok := p.cur
	p.advance() // 'type'

	name, ok := p.ident()
	if ok {
		p.ctx.DeclareType(name)
	}
	p.expect(ast.EQ)
	return &ast.TypeDecl{Base: ast.Base{Token: tok}, Name: name.Literal, Type: p.parseTypeDef()}
}

// parseTypeDef parses a record type, an array type or a type name.
func (p *Parser) parseTypeDef() ast.TypeDef {
	tok := p.cur
	switch tok.Type {
	case ast.LBRACE:
		p.advance()
		return &ast.RecordType{Base: ast.Base{Token: tok}, Fields: p.parseTypeFields(ast.RBRACE)}
	case ast.ARRAY:
		p.advance()
		p.expect(ast.OF)
		elem, _ := p.ident()
		return &ast.ArrayType{Base: ast.Base{Token: tok}, Elem: elem.Literal}
	case ast.IDENT:
		p.advance()
		return &ast.NameType{Base: ast.Base{Token: tok}, Name: tok.Literal}
	}
	p.errorAt(tok, "expected type definition")
	return &ast.NameType{Base: ast.Base{Token: tok}}
}

// parseVarDecl parses `var id [: id] := expr`. The variable is in scope only
// after its initialiser.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	tok := p.cur
	p.advance() // 'var'

	name, ok := p.ident()
	var typeName string
	if p.curIs(ast.COLON) {
		p.advance()
		t, _ := p.ident()
		typeName = t.Literal
	}
	p.expect(ast.ASSIGN)
	value := p.parseExpression()
	if ok {
		p.ctx.DeclareVar(name)
	}
	return &ast.VarDecl{Base: ast.Base{Token: tok}, Name: name.Literal, TypeName: typeName, Value: value}
}

// parseFuncDecl parses `function id ( typefields ) [: id] = expr`. The
// parameters live in a scope of their own around the body.
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	tok := p.cur
	p.advance() // 'function'

	name, ok := p.ident()
	if ok {
		p.ctx.DeclareFunc(name)
	}
	p.expect(ast.LPAREN)

	p.ctx.BeginScope()
	defer p.ctx.EndScope()

	params := p.parseTypeFields(ast.RPAREN)
	for _, f := range params {
		if f.Name != "" {
			p.ctx.DeclareVar(f.Token)
		}
	}

	var result string
	if p.curIs(ast.COLON) {
		p.advance()
		r, _ := p.ident()
		result = r.Literal
	}
	p.expect(ast.EQ)

	return &ast.FuncDecl{
		Base:   ast.Base{Token: tok},
		Name:   name.Literal,
		Params: params,
		Result: result,
		Body:   p.parseExpression(),
	}
}
