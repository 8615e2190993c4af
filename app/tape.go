package main

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var (
	tapeBg         = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	tapeDivider    = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
	resultColor    = color.NRGBA{R: 0x4E, G: 0xC9, B: 0xB0, A: 0xFF} // teal
	resultErrColor = color.NRGBA{R: 0xF4, G: 0x47, B: 0x47, A: 0xFF} // red
)

// MeasureLineHeight measures the actual rendered line height for the
// given theme.
func MeasureLineHeight(gtx layout.Context, th *material.Theme) int {
	// Record ops so the probe label doesn't actually render
	macro := op.Record(gtx.Ops)
	lbl := material.Label(th, th.TextSize, "0")
	lbl.MaxLines = 1
	probeGtx := gtx
	probeGtx.Constraints.Min = image.Point{}
	dims := lbl.Layout(probeGtx)
	macro.Stop()
	if dims.Size.Y > 0 {
		return dims.Size.Y
	}
	return gtx.Sp(th.TextSize)
}

// LayoutTape renders the history tape in a column of the given pixel
// width, newest entry at the bottom. Each entry is the colored
// expression followed by "= result" on the next line, with the result
// teal or red depending on the outcome.
func LayoutTape(gtx layout.Context, th *material.Theme, tape *History, widthPx int) layout.Dimensions {
	width := widthPx
	height := gtx.Constraints.Max.Y

	paint.FillShape(gtx.Ops, tapeBg, clip.Rect(image.Rect(0, 0, width, height)).Op())

	lineHeight := MeasureLineHeight(gtx, th)
	if lineHeight <= 0 {
		lineHeight = 16
	}
	pad := gtx.Dp(unit.Dp(8))

	// Two lines per entry plus a gap. Walk the entries newest first,
	// from the bottom edge up, and stop once off the top.
	entryHeight := 2*lineHeight + gtx.Dp(unit.Dp(4))
	y := height - pad - entryHeight
	for i := len(tape.Entries) - 1; i >= 0; i-- {
		if y+entryHeight < 0 {
			break
		}
		e := tape.Entries[i]

		x := pad
		for _, sp := range Tokenize(e.Expr) {
			x += tapeLabel(gtx, th, sp.Text, SpanColor(sp.Kind), x, y, width-pad)
		}

		rc := resultColor
		if e.IsErr {
			rc = resultErrColor
		}
		tapeLabel(gtx, th, "= "+e.Result, rc, pad+gtx.Dp(unit.Dp(12)), y+lineHeight, width-pad)

		y -= entryHeight
	}

	// Divider on the left edge
	paint.FillShape(gtx.Ops, tapeDivider, clip.Rect(image.Rect(0, 0, 1, height)).Op())

	return layout.Dimensions{Size: image.Pt(width, height)}
}

// tapeLabel draws one clipped single-line label and returns its width.
func tapeLabel(gtx layout.Context, th *material.Theme, txt string, col color.NRGBA, x, y, maxX int) int {
	if x >= maxX {
		return 0
	}
	lbl := material.Label(th, th.TextSize, txt)
	lbl.Color = col
	lbl.Font = font.Font{Typeface: "Go Mono"}
	lbl.MaxLines = 1

	off := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
	cl := clip.Rect(image.Rect(0, 0, maxX-x, gtx.Sp(th.TextSize)*2)).Push(gtx.Ops)
	lgtx := gtx
	lgtx.Constraints.Min = image.Point{}
	lgtx.Constraints.Max = image.Pt(maxX-x, gtx.Constraints.Max.Y)
	dims := lbl.Layout(lgtx)
	cl.Pop()
	off.Pop()
	return dims.Size.X
}
