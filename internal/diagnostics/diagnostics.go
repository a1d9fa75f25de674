package diagnostics

import (
	"fmt"

	"github.com/funvibe/badlam/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // unexpected character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected token
	ErrP003 ErrorCode = "P003" // unexpected end of input
	ErrP006 ErrorCode = "P006" // nesting too deep

	// Runtime
	ErrR001 ErrorCode = "R001"
)

// DiagnosticError is a positioned error produced by a pipeline stage.
type DiagnosticError struct {
	Code    ErrorCode
	File    string
	Token   token.Token
	Message string
}

func NewError(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

// NewErrorf is NewError with a formatted message.
func NewErrorf(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return NewError(code, tok, fmt.Sprintf(format, args...))
}

func (e *DiagnosticError) Error() string {
	loc := ""
	if e.File != "" {
		loc = e.File + ":"
	}
	if e.Token.Line > 0 {
		loc += fmt.Sprintf("%d:%d: ", e.Token.Line, e.Token.Column)
	} else if loc != "" {
		loc += " "
	}
	return fmt.Sprintf("%serror [%s]: %s", loc, e.Code, e.Message)
}

// IsSyntax reports whether the error comes from the lexer or the parser.
func (e *DiagnosticError) IsSyntax() bool {
	return len(e.Code) > 0 && (e.Code[0] == 'L' || e.Code[0] == 'P')
}
