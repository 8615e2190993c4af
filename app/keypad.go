package main

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// KeyAction selects what a keypad key does when clicked.
type KeyAction int

const (
	ActionInsert KeyAction = iota
	ActionClear
	ActionBackspace
	ActionEquals
)

// Key is one keypad button. Insert is the text typed into the input line
// for ActionInsert keys; Span widens the button to that many cells.
type Key struct {
	Label  string
	Insert string
	Action KeyAction
	Span   int

	click widget.Clickable
}

// Keypad is the button grid. The ÷ and × keys insert the glyphs the
// language normalizes, and ^ inserts itself so the input hook can expand
// it to **.
type Keypad struct {
	Rows [][]Key
}

func NewKeypad() *Keypad {
	return &Keypad{Rows: [][]Key{
		{{Label: "C", Action: ActionClear}, {Label: "⌫", Action: ActionBackspace}, {Label: "(", Insert: "("}, {Label: ")", Insert: ")"}},
		{{Label: "7", Insert: "7"}, {Label: "8", Insert: "8"}, {Label: "9", Insert: "9"}, {Label: "÷", Insert: "÷"}},
		{{Label: "4", Insert: "4"}, {Label: "5", Insert: "5"}, {Label: "6", Insert: "6"}, {Label: "×", Insert: "×"}},
		{{Label: "1", Insert: "1"}, {Label: "2", Insert: "2"}, {Label: "3", Insert: "3"}, {Label: "−", Insert: "-"}},
		{{Label: "0", Insert: "0"}, {Label: ".", Insert: "."}, {Label: "%", Insert: "%"}, {Label: "+", Insert: "+"}},
		{{Label: "//", Insert: "//"}, {Label: "^", Insert: "^"}, {Label: "=", Action: ActionEquals, Span: 2}},
	}}
}

var (
	keypadDigitBg  = color.NRGBA{R: 0x2D, G: 0x2D, B: 0x30, A: 0xFF}
	keypadOpBg     = color.NRGBA{R: 0x3A, G: 0x3A, B: 0x3E, A: 0xFF}
	keypadEqBg     = color.NRGBA{R: 0x26, G: 0x4F, B: 0x78, A: 0xFF}
	keypadClearBg  = color.NRGBA{R: 0x5A, G: 0x2D, B: 0x2D, A: 0xFF}
	keypadLabelCol = color.NRGBA{R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}
)

func keyBg(k *Key) color.NRGBA {
	switch k.Action {
	case ActionClear, ActionBackspace:
		return keypadClearBg
	case ActionEquals:
		return keypadEqBg
	}
	if len(k.Insert) == 1 && (k.Insert[0] == '.' || (k.Insert[0] >= '0' && k.Insert[0] <= '9')) {
		return keypadDigitBg
	}
	return keypadOpBg
}

// Update dispatches clicks to the calculator state. It must run before
// Layout in the same frame.
func (kp *Keypad) Update(gtx layout.Context, cs *CalcState) {
	for i := range kp.Rows {
		for j := range kp.Rows[i] {
			k := &kp.Rows[i][j]
			for k.click.Clicked(gtx) {
				switch k.Action {
				case ActionClear:
					cs.Clear()
				case ActionBackspace:
					cs.Backspace()
				case ActionEquals:
					cs.Calculate()
				default:
					cs.Press(k.Insert)
				}
			}
		}
	}
}

// Layout renders the grid. Every row splits its width into four cells; a
// key with Span > 1 takes that many of them.
func (kp *Keypad) Layout(gtx C, th *material.Theme) D {
	var rows []layout.FlexChild
	for i := range kp.Rows {
		row := kp.Rows[i]
		rows = append(rows, layout.Flexed(1, func(gtx C) D {
			var cells []layout.FlexChild
			for j := range row {
				k := &row[j]
				span := k.Span
				if span == 0 {
					span = 1
				}
				cells = append(cells, layout.Flexed(float32(span), func(gtx C) D {
					return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx C) D {
						btn := material.Button(th, &k.click, k.Label)
						btn.Background = keyBg(k)
						btn.Color = keypadLabelCol
						btn.CornerRadius = unit.Dp(4)
						return btn.Layout(gtx)
					})
				}))
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, cells...)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}
