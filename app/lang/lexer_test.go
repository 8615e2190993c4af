package lang

import (
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"", []Token{{TOKEN_EOF, "", 0}}},
		{"  \t ", []Token{{TOKEN_EOF, "", 4}}},
		{"0", []Token{{TOKEN_NUMBER, "0", 0}, {TOKEN_EOF, "", 1}}},
		{"9876543210", []Token{{TOKEN_NUMBER, "9876543210", 0}, {TOKEN_EOF, "", 10}}},
		{"1.5", []Token{{TOKEN_NUMBER, "1.5", 0}, {TOKEN_EOF, "", 3}}},
		{".5", []Token{{TOKEN_NUMBER, ".5", 0}, {TOKEN_EOF, "", 2}}},
		{"2+3", []Token{{TOKEN_NUMBER, "2", 0}, {TOKEN_PLUS, "+", 1}, {TOKEN_NUMBER, "3", 2}, {TOKEN_EOF, "", 3}}},
		{"2 - 3", []Token{{TOKEN_NUMBER, "2", 0}, {TOKEN_MINUS, "-", 2}, {TOKEN_NUMBER, "3", 4}, {TOKEN_EOF, "", 5}}},
		{"7//2", []Token{{TOKEN_NUMBER, "7", 0}, {TOKEN_SLASHSLASH, "//", 1}, {TOKEN_NUMBER, "2", 3}, {TOKEN_EOF, "", 4}}},
		{"7/2", []Token{{TOKEN_NUMBER, "7", 0}, {TOKEN_SLASH, "/", 1}, {TOKEN_NUMBER, "2", 2}, {TOKEN_EOF, "", 3}}},
		{"2**3", []Token{{TOKEN_NUMBER, "2", 0}, {TOKEN_STARSTAR, "**", 1}, {TOKEN_NUMBER, "3", 3}, {TOKEN_EOF, "", 4}}},
		{"2*3", []Token{{TOKEN_NUMBER, "2", 0}, {TOKEN_STAR, "*", 1}, {TOKEN_NUMBER, "3", 2}, {TOKEN_EOF, "", 3}}},
		{"5%2", []Token{{TOKEN_NUMBER, "5", 0}, {TOKEN_PERCENT, "%", 1}, {TOKEN_NUMBER, "2", 2}, {TOKEN_EOF, "", 3}}},
		{"( 1 )", []Token{{TOKEN_LPAREN, "(", 0}, {TOKEN_NUMBER, "1", 2}, {TOKEN_RPAREN, ")", 4}, {TOKEN_EOF, "", 5}}},
		{"-+", []Token{{TOKEN_MINUS, "-", 0}, {TOKEN_PLUS, "+", 1}, {TOKEN_EOF, "", 2}}},
		// × and ÷ are rewritten before scanning, so positions refer to
		// the normalized text.
		{"6÷2×3", []Token{{TOKEN_NUMBER, "6", 0}, {TOKEN_SLASH, "/", 1}, {TOKEN_NUMBER, "2", 2}, {TOKEN_STAR, "*", 3}, {TOKEN_NUMBER, "3", 4}, {TOKEN_EOF, "", 5}}},
	}

	for _, tt := range tests {
		got, err := Lex(tt.input)
		if err != nil {
			t.Errorf("Lex(%q) error: %v", tt.input, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Lex(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Lex(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		col   int
		char  rune
	}{
		{"a", 0, 'a'},
		{"2a", 1, 'a'},
		{"2$3", 1, '$'},
		{"=", 0, '='},
		{"π", 0, 'π'},
		{".", 0, '.'},
		{"5.", 1, '.'},
		{"1..2", 1, '.'},
	}

	for _, tt := range tests {
		_, err := Lex(tt.input)
		if err == nil {
			t.Errorf("Lex(%q) succeeded, want error", tt.input)
			continue
		}
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("Lex(%q) error is %#v, not *LexError", tt.input, err)
			continue
		}
		if lexErr.Col != tt.col || lexErr.Char != tt.char {
			t.Errorf("Lex(%q) = LexError{Col: %d, Char: %q}, want {Col: %d, Char: %q}",
				tt.input, lexErr.Col, lexErr.Char, tt.col, tt.char)
		}
		var ie InputError
		if !errors.As(err, &ie) || ie.Pos() != tt.col {
			t.Errorf("Lex(%q) error does not report position %d", tt.input, tt.col)
		}
	}
}
