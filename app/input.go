package main

import (
	"strings"

	"deskcalc/app/lang"

	"gioui.org/widget"
)

// CalcState holds the calculator's input line, the last result, and the
// history tape.
type CalcState struct {
	Editor      widget.Editor
	Result      string
	ResultIsErr bool
	Tape        History
}

// NewCalcState creates a calculator showing 0 with an empty tape.
func NewCalcState() *CalcState {
	cs := &CalcState{Result: "0"}
	cs.Editor.SingleLine = true
	cs.Editor.Submit = true
	return cs
}

// Press inserts keypad text at the caret.
func (cs *CalcState) Press(insert string) {
	cs.Editor.Insert(insert)
}

// Clear empties the input line and resets the result to 0.
func (cs *CalcState) Clear() {
	cs.Editor.SetText("")
	cs.Result = "0"
	cs.ResultIsErr = false
}

// Backspace deletes one key's worth of input before the caret. The two
// stars of a ** typed as one keypad press go together.
func (cs *CalcState) Backspace() {
	caret, end := cs.Editor.Selection()
	if caret != end {
		cs.Editor.Delete(-1)
		return
	}
	cs.Editor.Delete(-backspaceRunes(cs.Editor.Text(), caret))
}

// Calculate evaluates the input line, shows the outcome, and appends it
// to the tape. A blank line shows 0 without recording anything.
func (cs *CalcState) Calculate() {
	expr := strings.TrimSpace(cs.Editor.Text())
	r := lang.Evaluate(expr)
	cs.Result = r.Text
	cs.ResultIsErr = r.Err != nil
	if expr == "" {
		return
	}
	cs.Tape.Add(Entry{Expr: expr, Result: r.Text, IsErr: r.Err != nil})
}

// backspaceRunes reports how many runes a backspace at the given rune
// offset should remove: 2 when the caret sits after "**", otherwise 1.
func backspaceRunes(text string, caret int) int {
	runes := []rune(text)
	if caret > len(runes) {
		caret = len(runes)
	}
	if caret >= 2 && runes[caret-1] == '*' && runes[caret-2] == '*' {
		return 2
	}
	if caret == 0 {
		return 0
	}
	return 1
}

// expandCaret rewrites each ^ in the input as **, keeping the caret in
// place relative to the text around it. The keypad's ^ key and a typed ^
// both go through here.
func expandCaret(text string, caret int) (string, int) {
	if !strings.ContainsRune(text, '^') {
		return text, caret
	}
	runes := []rune(text)
	if caret > len(runes) {
		caret = len(runes)
	}
	var b strings.Builder
	newCaret := caret
	for i, r := range runes {
		if r == '^' {
			b.WriteString("**")
			if i < caret {
				newCaret++
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), newCaret
}
