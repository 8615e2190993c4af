package lang

import (
	"strings"
	"unicode/utf8"
)

// normalizer rewrites the unicode multiplication and division signs to
// their ASCII operators before scanning.
var normalizer = strings.NewReplacer("×", "*", "÷", "/")

// Lex tokenizes an expression into a slice of tokens terminated by
// TOKEN_EOF. The glyphs × and ÷ are normalized to * and / first, so token
// positions refer to the normalized text.
func Lex(input string) ([]Token, error) {
	input = normalizer.Replace(input)
	var tokens []Token
	i := 0
	for i < len(input) {
		ch := input[i]

		// Skip whitespace
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			i++
			continue
		}

		switch ch {
		case '+':
			tokens = append(tokens, Token{Type: TOKEN_PLUS, Literal: "+", Pos: i})
			i++
		case '-':
			tokens = append(tokens, Token{Type: TOKEN_MINUS, Literal: "-", Pos: i})
			i++
		case '*':
			// ** before *
			if i+1 < len(input) && input[i+1] == '*' {
				tokens = append(tokens, Token{Type: TOKEN_STARSTAR, Literal: "**", Pos: i})
				i += 2
			} else {
				tokens = append(tokens, Token{Type: TOKEN_STAR, Literal: "*", Pos: i})
				i++
			}
		case '/':
			// // before /
			if i+1 < len(input) && input[i+1] == '/' {
				tokens = append(tokens, Token{Type: TOKEN_SLASHSLASH, Literal: "//", Pos: i})
				i += 2
			} else {
				tokens = append(tokens, Token{Type: TOKEN_SLASH, Literal: "/", Pos: i})
				i++
			}
		case '%':
			tokens = append(tokens, Token{Type: TOKEN_PERCENT, Literal: "%", Pos: i})
			i++
		case '(':
			tokens = append(tokens, Token{Type: TOKEN_LPAREN, Literal: "(", Pos: i})
			i++
		case ')':
			tokens = append(tokens, Token{Type: TOKEN_RPAREN, Literal: ")", Pos: i})
			i++
		default:
			if isDigit(ch) || ch == '.' {
				start := i
				for i < len(input) && isDigit(input[i]) {
					i++
				}
				if i < len(input) && input[i] == '.' {
					dot := i
					i++
					// The dot needs at least one digit after it; ".5" is a
					// number, "5." and "." are not.
					if i >= len(input) || !isDigit(input[i]) {
						return nil, &LexError{Col: dot, Char: '.'}
					}
					for i < len(input) && isDigit(input[i]) {
						i++
					}
				}
				tokens = append(tokens, Token{Type: TOKEN_NUMBER, Literal: input[start:i], Pos: start})
				continue
			}
			r, _ := utf8.DecodeRuneInString(input[i:])
			return nil, &LexError{Col: i, Char: r}
		}
	}
	tokens = append(tokens, Token{Type: TOKEN_EOF, Literal: "", Pos: i})
	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
