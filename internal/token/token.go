package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT TokenType = "IDENT"

	LAMBDA TokenType = "LAMBDA" // \ or λ
	DOT    TokenType = "."
	LPAREN TokenType = "("
	RPAREN TokenType = ")"
)

// Position is a location in source text.
// Offset is a 0-based byte offset, Line and Column are 1-based (Column counts runes).
// The zero Position is "unknown".
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Type   TokenType
	Lexeme string
	Offset int
	Line   int
	Column int
}

func (t Token) Pos() Position {
	return Position{Offset: t.Offset, Line: t.Line, Column: t.Column}
}

func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Lexeme)
}
