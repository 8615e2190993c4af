// Package lang implements the calculator's expression language: a lexer,
// a recursive-descent parser, and an evaluator for a closed arithmetic
// grammar over the operators + - * / // % ** with parentheses and unary
// signs. The grammar admits only arithmetic by construction; there is no
// dynamic code execution anywhere in the pipeline.
package lang

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TOKEN_NUMBER TokenType = iota
	TOKEN_PLUS
	TOKEN_MINUS
	TOKEN_STAR
	TOKEN_STARSTAR
	TOKEN_SLASH
	TOKEN_SLASHSLASH
	TOKEN_PERCENT
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_EOF
)

// Token represents a single lexer token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the normalized input
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q, %d)", t.Type, t.Literal, t.Pos)
}
