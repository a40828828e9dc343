// Package ast defines the token types, the Token struct and the syntax tree
// nodes shared by the Tiger lexer and parser.
//
// Tokens are the smallest meaningful units of a Tiger source file. Every token
// carries its type, the source text (or decoded value) it stands for, and its
// position. Position is 1-based: the first character of a file is Line 1, Col 1.
package ast

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL is a character or sequence the lexer could not recognise, such as
	// an unterminated string or comment.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input stream.
	EOF

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z][a-zA-Z0-9_]*
	IDENT
	// INT is a decimal integer literal.
	INT
	// FLOAT is a decimal literal containing a '.', e.g. 3.25.
	FLOAT
	// STRING is a double-quoted string literal. Literal holds the decoded value.
	STRING

	// ── Keywords ───────────────────────────────────────────────────────────────

	ARRAY
	BREAK
	DO
	ELSE
	END
	FOR
	FUNCTION
	IF
	IN
	LET
	NIL
	OF
	THEN
	TO
	TYPE
	VAR
	WHILE

	// ── Punctuation ────────────────────────────────────────────────────────────

	COMMA     // ,
	COLON     // :
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	LBRACE    // {
	RBRACE    // }
	DOT       // .
	ASSIGN    // :=

	// ── Operators ──────────────────────────────────────────────────────────────

	PLUS  // +
	MINUS // -
	TIMES // *
	SLASH // /
	EQ    // =
	NEQ   // <>
	LT    // <
	LTE   // <=
	GT    // >
	GTE   // >=
	AND   // &
	OR    // |

	numTokenTypes
)

// keywords maps the literal text of every Tiger keyword to its TokenType.
var keywords = map[string]TokenType{
	"array":    ARRAY,
	"break":    BREAK,
	"do":       DO,
	"else":     ELSE,
	"end":      END,
	"for":      FOR,
	"function": FUNCTION,
	"if":       IF,
	"in":       IN,
	"let":      LET,
	"nil":      NIL,
	"of":       OF,
	"then":     THEN,
	"to":       TO,
	"type":     TYPE,
	"var":      VAR,
	"while":    WHILE,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// displayNames is how each terminal is spelled in diagnostics.
var displayNames = [numTokenTypes]string{
	ILLEGAL: "illegal token",
	EOF:     "end of file",

	IDENT:  "identifier",
	INT:    "integer",
	FLOAT:  "float",
	STRING: "string",

	ARRAY:    "'array'",
	BREAK:    "'break'",
	DO:       "'do'",
	ELSE:     "'else'",
	END:      "'end'",
	FOR:      "'for'",
	FUNCTION: "'function'",
	IF:       "'if'",
	IN:       "'in'",
	LET:      "'let'",
	NIL:      "'nil'",
	OF:       "'of'",
	THEN:     "'then'",
	TO:       "'to'",
	TYPE:     "'type'",
	VAR:      "'var'",
	WHILE:    "'while'",

	COMMA:     ",",
	COLON:     ":",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	LBRACE:    "{",
	RBRACE:    "}",
	DOT:       ".",
	ASSIGN:    ":=",

	PLUS:  "+",
	MINUS: "-",
	TIMES: "*",
	SLASH: "/",
	EQ:    "=",
	NEQ:   "<>",
	LT:    "<",
	LTE:   "<=",
	GT:    ">",
	GTE:   ">=",
	AND:   "&",
	OR:    "|",
}

// Display returns the grammar-level name of tt as it appears in an
// "expected ..." diagnostic.
func (tt TokenType) Display() string {
	if tt < 0 || tt >= numTokenTypes {
		return "unknown token"
	}
	return displayNames[tt]
}

// String is the same as Display; it keeps %v readable in test failures.
func (tt TokenType) String() string { return tt.Display() }

// Token is a single lexical unit produced by the lexer.
//
// Literal is the identifier name, the digits of a number, or the decoded
// contents of a string. For keywords and punctuation it is the source text.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

// String returns the literal text of the token.
func (t Token) String() string {
	return t.Literal
}
