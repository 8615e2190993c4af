package main

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []Span
	}{
		{"", nil},
		{"42", []Span{{"42", SpanNumber}}},
		{"2+3", []Span{{"2", SpanNumber}, {"+", SpanOperator}, {"3", SpanNumber}}},
		{"(1)", []Span{{"(", SpanParen}, {"1", SpanNumber}, {")", SpanParen}}},
		{"2 ** 3", []Span{{"2", SpanNumber}, {" ", SpanPlain}, {"**", SpanOperator}, {" ", SpanPlain}, {"3", SpanNumber}}},
		// Glyph operators keep their on-screen text
		{"6÷2×3", []Span{{"6", SpanNumber}, {"÷", SpanOperator}, {"2", SpanNumber}, {"×", SpanOperator}, {"3", SpanNumber}}},
		// From the bad character onward is one error span
		{"2+$5", []Span{{"2", SpanNumber}, {"+", SpanOperator}, {"$5", SpanError}}},
		{"@", []Span{{"@", SpanError}}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.line)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %v, want %v", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}

// Span texts must concatenate back to the input, or the tape would render
// altered text.
func TestTokenizeLossless(t *testing.T) {
	lines := []string{
		"2+3*4", "6÷2×3", " 1 + 2 ", "2+$5", "1..2", "((", "×", "abc", "５",
	}
	for _, line := range lines {
		var b strings.Builder
		for _, sp := range Tokenize(line) {
			b.WriteString(sp.Text)
		}
		if b.String() != line {
			t.Errorf("Tokenize(%q) spans join to %q", line, b.String())
		}
	}
}
