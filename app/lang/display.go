package lang

import (
	"errors"
	"math"
	"strings"
)

// Result is the outcome of evaluating one expression for display. Text is
// always set; Value is meaningful only when Err is nil.
type Result struct {
	Value Value
	Text  string
	Err   error
}

// EvalLine lexes, parses, and evaluates a single expression, returning
// the typed value or the first typed error. Stages short-circuit: a lex
// error means no parse, a parse error means no evaluation.
func EvalLine(input string) (Value, error) {
	tokens, err := Lex(input)
	if err != nil {
		return Value{}, err
	}
	node, err := Parse(tokens)
	if err != nil {
		return Value{}, err
	}
	if node == nil {
		return Value{}, &SyntaxError{Expected: "an expression"}
	}
	v, err := Eval(node)
	if err != nil {
		return Value{}, err
	}
	// Inf and NaN have no display form the lexer accepts, so they are
	// reported as errors rather than shown.
	if v.IsFloat && (math.IsInf(v.Float, 0) || math.IsNaN(v.Float)) {
		return Value{}, &OverflowError{}
	}
	return v, nil
}

// Evaluate runs the full pipeline on raw input and formats the outcome
// the way the calculator shows it. Blank input displays as "0" without
// touching the lexer. Division by zero gets a dedicated message; every
// other failure collapses to "Error", though Err still carries the typed
// error for callers that want to distinguish.
func Evaluate(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Result{Value: IntValue(0), Text: "0"}
	}
	v, err := EvalLine(trimmed)
	if err != nil {
		return Result{Text: errorText(err), Err: err}
	}
	return Result{Value: v, Text: v.String()}
}

// Display is shorthand for Evaluate(input).Text.
func Display(input string) string {
	return Evaluate(input).Text
}

func errorText(err error) string {
	if errors.As(err, new(*DivisionByZeroError)) {
		return "Error: ÷ by 0"
	}
	return "Error"
}
