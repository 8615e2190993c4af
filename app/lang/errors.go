package lang

import "strconv"

// InputError is an error with position information. Every error caused by
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the offending character or token in
	// the normalized input.
	Pos() int
}

// LexError indicates a character the scanner does not recognize.
type LexError struct {
	// Col is the offset of the invalid character.
	Col int
	// Char is the invalid character.
	Char rune
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError indicates a malformed token sequence: a missing operand, an
// unmatched parenthesis, or trailing tokens after a complete expression.
type SyntaxError struct {
	// Col is the offset of the token that could not be parsed.
	Col int
	// Expected describes what the parser wanted to see.
	Expected string
	// Found is the literal of the token found instead, or "" at the end of
	// the input.
	Found string
}

func (err *SyntaxError) Error() string {
	if err.Found == "" {
		return errpos(err.Col, "expected "+err.Expected+" at end of expression")
	}
	return errpos(err.Col, "expected "+err.Expected+", found "+strconv.Quote(err.Found))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a /, //, or % whose right operand is zero.
type DivisionByZeroError struct {
	// Op is the operator that was applied.
	Op string
}

func (err *DivisionByZeroError) Error() string {
	return err.Op + ": division by zero"
}

// ExponentError indicates a ** whose exponent magnitude exceeds
// MaxExponent.
type ExponentError struct {
	// Exp is the offending exponent value.
	Exp float64
}

func (err *ExponentError) Error() string {
	return "exponent " + strconv.FormatFloat(err.Exp, 'g', -1, 64) + " too large"
}

// OverflowError indicates a float result that left the finite range, such
// as a product of two very large values.
type OverflowError struct{}

func (err *OverflowError) Error() string {
	return "result out of range"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
