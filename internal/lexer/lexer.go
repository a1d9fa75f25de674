package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/badlam/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
	}
	l.column++
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	if l.atEOF() {
		return token.Token{Type: token.EOF, Lexeme: "", Offset: len(l.input), Line: l.line, Column: l.column}
	}

	tok := token.Token{Offset: l.position, Line: l.line, Column: l.column}
	switch {
	case l.ch == '\\' || l.ch == 'λ':
		tok.Type = token.LAMBDA
		tok.Lexeme = string(l.ch)
	case l.ch == '.':
		tok.Type = token.DOT
		tok.Lexeme = "."
	case l.ch == '(':
		tok.Type = token.LPAREN
		tok.Lexeme = "("
	case l.ch == ')':
		tok.Type = token.RPAREN
		tok.Lexeme = ")"
	case isIdentStart(l.ch):
		tok.Type = token.IDENT
		tok.Lexeme = l.readIdentifier()
		// readIdentifier already advanced past the identifier
		return tok
	default:
		tok.Type = token.ILLEGAL
		tok.Lexeme = string(l.ch)
	}
	l.readChar()
	return tok
}

// Tokenize returns all tokens up to and including EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '#':
			for !l.atEOF() && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.atEOF() && isIdentPart(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isIdentStart(ch rune) bool {
	return ch != 'λ' && (unicode.IsLetter(ch) || ch == '_')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch) || ch == '\''
}
