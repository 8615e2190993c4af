package main

import (
	"errors"
	"image/color"
	"strings"
	"unicode/utf8"

	"deskcalc/app/lang"
)

// SpanKind is the coloring category of a piece of tape text.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanNumber
	SpanOperator
	SpanParen
	SpanError
)

// Span is a run of text with a single coloring category.
type Span struct {
	Text string
	Kind SpanKind
}

// spanColors is dark-theme oriented.
var spanColors = map[SpanKind]color.NRGBA{
	SpanPlain:    {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	SpanNumber:   {R: 0xB5, G: 0xCE, B: 0xA8, A: 0xFF}, // green
	SpanOperator: {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	SpanParen:    {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}, // yellow
	SpanError:    {R: 0xF4, G: 0x47, B: 0x47, A: 0xFF}, // red
}

// SpanColor returns the color for a span kind.
func SpanColor(kind SpanKind) color.NRGBA {
	if c, ok := spanColors[kind]; ok {
		return c
	}
	return spanColors[SpanPlain]
}

func spanKind(t lang.TokenType) SpanKind {
	switch t {
	case lang.TOKEN_NUMBER:
		return SpanNumber
	case lang.TOKEN_LPAREN, lang.TOKEN_RPAREN:
		return SpanParen
	case lang.TOKEN_EOF:
		return SpanPlain
	default:
		return SpanOperator
	}
}

// Tokenize splits a line into colored spans using the language lexer. On
// a lex error the text from the bad character onward becomes one red
// span. Span texts always concatenate back to the input line.
func Tokenize(line string) []Span {
	if line == "" {
		return nil
	}

	// Token positions refer to the normalized text, where × and ÷ are
	// single-byte operators. raw maps a normalized offset back to the
	// offset of the same character in the input line.
	norm, raw := normalizeOffsets(line)

	toks, err := lang.Lex(norm)
	if err != nil {
		var lexErr *lang.LexError
		if errors.As(err, &lexErr) && lexErr.Col > 0 {
			spans := Tokenize(line[:raw[lexErr.Col]])
			return append(spans, Span{Text: line[raw[lexErr.Col]:], Kind: SpanError})
		}
		return []Span{{Text: line, Kind: SpanError}}
	}

	var spans []Span
	lastEnd := 0
	for _, t := range toks {
		if t.Type == lang.TOKEN_EOF {
			break
		}
		start, end := raw[t.Pos], raw[t.Pos+len(t.Literal)]
		if start > lastEnd {
			spans = append(spans, Span{Text: line[lastEnd:start], Kind: SpanPlain})
		}
		spans = append(spans, Span{Text: line[start:end], Kind: spanKind(t.Type)})
		lastEnd = end
	}
	if lastEnd < len(line) {
		spans = append(spans, Span{Text: line[lastEnd:], Kind: SpanPlain})
	}
	return spans
}

// normalizeOffsets rewrites × and ÷ the way the lexer does and returns
// the normalized string plus a table mapping each normalized byte offset
// (including the end offset) to its byte offset in the input.
func normalizeOffsets(line string) (string, []int) {
	var b strings.Builder
	offs := make([]int, 0, len(line)+1)
	for i, r := range line {
		switch r {
		case '×':
			b.WriteByte('*')
			offs = append(offs, i)
		case '÷':
			b.WriteByte('/')
			offs = append(offs, i)
		default:
			for j := 0; j < utf8.RuneLen(r); j++ {
				offs = append(offs, i+j)
			}
			b.WriteRune(r)
		}
	}
	offs = append(offs, len(line))
	return b.String(), offs
}
