package ast_test

import (
	"strings"
	"testing"

	"github.com/metaphox/tiger-lang/ast"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  ast.TokenType
	}{
		{"let", ast.LET},
		{"function", ast.FUNCTION},
		{"of", ast.OF},
		{"nil", ast.NIL},
		{"letter", ast.IDENT},
		{"Let", ast.IDENT},
	}
	for _, tt := range tests {
		if got := ast.LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		tt   ast.TokenType
		want string
	}{
		{ast.OF, "'of'"},
		{ast.THEN, "'then'"},
		{ast.ASSIGN, ":="},
		{ast.NEQ, "<>"},
		{ast.RPAREN, ")"},
		{ast.IDENT, "identifier"},
		{ast.EOF, "end of file"},
		{ast.TokenType(-1), "unknown token"},
		{ast.TokenType(1000), "unknown token"},
	}
	for _, tt := range tests {
		if got := tt.tt.Display(); got != tt.want {
			t.Errorf("Display(%d) = %q, want %q", tt.tt, got, tt.want)
		}
	}
}

// Every terminal between ILLEGAL and OR must have a display name, and every
// keyword must display as its quoted spelling.
func TestDisplay_Complete(t *testing.T) {
	for tt := ast.ILLEGAL; tt <= ast.OR; tt++ {
		if tt.Display() == "" {
			t.Errorf("token type %d has no display name", int(tt))
		}
	}
	for _, kw := range strings.Fields("array break do else end for function if in let nil of then to type var while") {
		if got := ast.LookupIdent(kw).Display(); got != "'"+kw+"'" {
			t.Errorf("keyword %s displays as %s", kw, got)
		}
	}
}
