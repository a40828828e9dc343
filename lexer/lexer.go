// Package lexer implements the Tiger lexer (tokeniser).
//
// The lexer converts Tiger source text into a flat stream of [ast.Token] values.
// Call [New] to create a lexer and then call [Lexer.NextToken] repeatedly until
// you receive a token with Type == [ast.EOF].
//
// Design notes:
//   - Single-pass, character-by-character scanning using a read position cursor.
//   - Line and column numbers are tracked for every token (1-based).
//   - Comments (/* … */) nest and are consumed silently.
//   - Identifiers are scanned first and then classified as keywords via
//     [ast.LookupIdent].
//   - Two-character operators (:=, <>, <=, >=) need one character of
//     look-ahead and are handled by peekChar.
//   - Errors do not stop the lexer: the offending text comes back as an
//     [ast.ILLEGAL] token and scanning resumes after it.
package lexer

import (
	"strings"

	"github.com/metaphox/tiger-lang/ast"
)

// Lexer holds all state required to tokenise a single Tiger source file.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	filename string
	input    string
	pos      int  // current read position (index of ch)
	readPos  int  // next read position (pos + 1)
	ch       byte // current character under examination

	line int // current 1-based line number
	col  int // 1-based column of ch
}

// New creates a [Lexer] over input. filename is only used to label
// diagnostics and may be empty.
func New(filename, input string) *Lexer {
	l := &Lexer{
		filename: filename,
		input:    input,
		line:     1,
		col:      0,
	}
	l.readChar()
	return l
}

// Filename returns the name the lexer was created with.
func (l *Lexer) Filename() string { return l.filename }

// NextToken returns the next token from the input. Once the input is
// exhausted every call returns an [ast.EOF] token.
func (l *Lexer) NextToken() ast.Token {
	if bad, ok := l.skipWhitespaceAndComments(); !ok {
		return bad
	}

	var tok ast.Token

	switch l.ch {
	case 0:
		return l.makeToken(ast.EOF, "")

	case '"':
		return l.readString()

	case ',':
		tok = l.makeToken(ast.COMMA, ",")
	case ';':
		tok = l.makeToken(ast.SEMICOLON, ";")
	case '(':
		tok = l.makeToken(ast.LPAREN, "(")
	case ')':
		tok = l.makeToken(ast.RPAREN, ")")
	case '[':
		tok = l.makeToken(ast.LBRACKET, "[")
	case ']':
		tok = l.makeToken(ast.RBRACKET, "]")
	case '{':
		tok = l.makeToken(ast.LBRACE, "{")
	case '}':
		tok = l.makeToken(ast.RBRACE, "}")
	case '.':
		tok = l.makeToken(ast.DOT, ".")
	case '+':
		tok = l.makeToken(ast.PLUS, "+")
	case '-':
		tok = l.makeToken(ast.MINUS, "-")
	case '*':
		tok = l.makeToken(ast.TIMES, "*")
	case '/':
		tok = l.makeToken(ast.SLASH, "/")
	case '=':
		tok = l.makeToken(ast.EQ, "=")
	case '&':
		tok = l.makeToken(ast.AND, "&")
	case '|':
		tok = l.makeToken(ast.OR, "|")

	case ':':
		if l.peekChar() == '=' {
			tok = l.makeToken(ast.ASSIGN, ":=")
			l.readChar()
		} else {
			tok = l.makeToken(ast.COLON, ":")
		}
	case '<':
		switch l.peekChar() {
		case '>':
			tok = l.makeToken(ast.NEQ, "<>")
			l.readChar()
		case '=':
			tok = l.makeToken(ast.LTE, "<=")
			l.readChar()
		default:
			tok = l.makeToken(ast.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.makeToken(ast.GTE, ">=")
			l.readChar()
		} else {
			tok = l.makeToken(ast.GT, ">")
		}

	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = l.makeToken(ast.ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// readChar advances the lexer by one character. At end of input l.ch is 0.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// makeToken builds a token at the current position. It does not advance.
func (l *Lexer) makeToken(tt ast.TokenType, literal string) ast.Token {
	return ast.Token{Type: tt, Literal: literal, Line: l.line, Col: l.col}
}

// skipWhitespaceAndComments advances past blanks and comments. An
// unterminated comment is returned as an ILLEGAL token with ok == false.
func (l *Lexer) skipWhitespaceAndComments() (ast.Token, bool) {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n', '\f':
			l.readChar()
		case '/':
			if l.peekChar() != '*' {
				return ast.Token{}, true
			}
			start := l.makeToken(ast.ILLEGAL, "/*")
			if !l.skipComment() {
				return start, false
			}
		default:
			return ast.Token{}, true
		}
	}
}

// skipComment consumes a comment starting at "/*", honouring nesting.
// It reports false if the input ends first.
func (l *Lexer) skipComment() bool {
	depth := 0
	for {
		switch {
		case l.ch == 0:
			return false
		case l.ch == '/' && l.peekChar() == '*':
			depth++
			l.readChar()
		case l.ch == '*' && l.peekChar() == '/':
			depth--
			l.readChar()
			if depth == 0 {
				l.readChar()
				return true
			}
		}
		l.readChar()
	}
}

// readIdentifier scans an identifier or keyword. Like readNumber it leaves
// the cursor on the first character after the token.
func (l *Lexer) readIdentifier() ast.Token {
	startCol, startLine, start := l.col, l.line, l.pos

	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	literal := l.input[start:l.pos]
	return ast.Token{Type: ast.LookupIdent(literal), Literal: literal, Line: startLine, Col: startCol}
}

// readNumber scans an integer, or a float when a '.' is followed by a digit.
func (l *Lexer) readNumber() ast.Token {
	startCol, startLine, start := l.col, l.line, l.pos
	tt := ast.INT

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		tt = ast.FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return ast.Token{Type: tt, Literal: l.input[start:l.pos], Line: startLine, Col: startCol}
}

// readString scans a double-quoted string literal and decodes its escapes:
//
//	\n  \t  \"  \\  \ddd (decimal code)  \^c (control character)
//	\f___f\  (a run of formatting characters, ignored)
//
// An unterminated string or a malformed escape yields an ILLEGAL token.
func (l *Lexer) readString() ast.Token {
	startCol, startLine := l.col, l.line
	illegal := func(msg string) ast.Token {
		return ast.Token{Type: ast.ILLEGAL, Literal: msg, Line: startLine, Col: startCol}
	}

	l.readChar() // opening '"'

	var buf strings.Builder
	for {
		switch l.ch {
		case '"':
			l.readChar()
			return ast.Token{Type: ast.STRING, Literal: buf.String(), Line: startLine, Col: startCol}

		case 0, '\n':
			return illegal("unterminated string")

		case '\\':
			l.readChar()
			switch {
			case l.ch == 'n':
				buf.WriteByte('\n')
			case l.ch == 't':
				buf.WriteByte('\t')
			case l.ch == '"':
				buf.WriteByte('"')
			case l.ch == '\\':
				buf.WriteByte('\\')
			case l.ch == '^':
				l.readChar()
				if l.ch < '@' || l.ch > '_' {
					return l.abandonString(illegal("bad control escape"))
				}
				buf.WriteByte(l.ch - '@')
			case isDigit(l.ch):
				code := 0
				for i := 0; i < 3; i++ {
					if !isDigit(l.ch) {
						return l.abandonString(illegal("bad decimal escape"))
					}
					code = code*10 + int(l.ch-'0')
					if i < 2 {
						l.readChar()
					}
				}
				if code > 255 {
					return l.abandonString(illegal("decimal escape out of range"))
				}
				buf.WriteByte(byte(code))
			case isFormatChar(l.ch):
				for isFormatChar(l.ch) {
					l.readChar()
				}
				if l.ch != '\\' {
					return l.abandonString(illegal("unterminated format escape"))
				}
			default:
				return l.abandonString(illegal("unknown escape sequence"))
			}
			l.readChar()

		default:
			buf.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// abandonString skips to the end of a broken string literal so that
// scanning can resume after it, and returns tok.
func (l *Lexer) abandonString(tok ast.Token) ast.Token {
	for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar()
	}
	return tok
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isFormatChar(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
