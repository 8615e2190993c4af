package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"strings"

	"deskcalc/app/lang"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	windowBg  = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	displayFg = color.NRGBA{R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}
)

func main() {
	// With arguments, act as a one-shot command line calculator.
	if len(os.Args) > 1 {
		fmt.Println(lang.Display(strings.Join(os.Args[1:], " ")))
		return
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("deskcalc"), app.Size(unit.Dp(640), unit.Dp(560)))
		if err := run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Face = "Go Mono"
	th.TextSize = unit.Sp(16)

	cs := NewCalcState()
	kp := NewKeypad()
	registerWebCallbacks(cs, w)
	expl := explorer.NewExplorer(w)

	tapeRatio := 1.0 / 3.0 // tape as fraction of window width
	tapeWidth := 0
	var divider DragDivider

	var shortcutTag = new(bool)
	var loadCh <-chan LoadResult
	var saveCh <-chan SaveResult

	// Channel-forward pattern for explorer compatibility
	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()

	var ops op.Ops
	for {
		select {
		case result := <-loadCh:
			loadCh = nil
			if result.Err != nil {
				log.Printf("Load error: %v", result.Err)
			} else {
				cs.Tape.Load(result.Data)
			}
			w.Invalidate()

		case result := <-saveCh:
			saveCh = nil
			if result.Err != nil {
				log.Printf("Save error: %v", result.Err)
			} else {
				cs.Tape.Dirty = false
			}
			w.Invalidate()

		case e := <-events:
			expl.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				return e.Err
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)

				// Compute tape width from ratio; update ratio if the
				// user dragged the divider
				windowW := gtx.Constraints.Max.X
				expectedWidth := int(tapeRatio * float64(windowW))
				if tapeWidth != 0 && tapeWidth != expectedWidth {
					tapeRatio = float64(tapeWidth) / float64(windowW)
				}
				tapeWidth = clampTapeWidth(int(tapeRatio * float64(windowW)))

				// Keyboard shortcuts
				event.Op(gtx.Ops, shortcutTag)
				for {
					ev, ok := gtx.Event(
						key.Filter{Required: key.ModShortcut, Name: "O"},
						key.Filter{Required: key.ModShortcut, Name: "S"},
						key.Filter{Required: key.ModShortcut, Name: "L"},
						key.Filter{Required: key.ModShortcut, Name: "="},
						key.Filter{Required: key.ModShortcut, Name: "-"},
						key.Filter{Name: key.NameEscape},
					)
					if !ok {
						break
					}
					if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
						switch ke.Name {
						case "O":
							if loadCh == nil {
								loadCh = LoadTapeAsync(expl)
							}
						case "S":
							if saveCh == nil && len(cs.Tape.Entries) > 0 {
								saveCh = SaveTapeAsync(expl, []byte(cs.Tape.Text()), "tape.txt")
							}
						case "L":
							cs.Tape.Clear()
						case "=": // Cmd+= (Cmd+Plus)
							if th.TextSize < unit.Sp(48) {
								th.TextSize += unit.Sp(2)
							}
						case "-": // Cmd+-
							if th.TextSize > unit.Sp(8) {
								th.TextSize -= unit.Sp(2)
							}
						case key.NameEscape:
							cs.Clear()
						}
					}
				}

				// Editor events: expand ^ as it is typed, evaluate on
				// Enter
				for {
					ev, ok := cs.Editor.Update(gtx)
					if !ok {
						break
					}
					switch ev.(type) {
					case widget.ChangeEvent:
						txt := cs.Editor.Text()
						if strings.ContainsRune(txt, '^') {
							caret, _ := cs.Editor.Selection()
							newText, newCaret := expandCaret(txt, caret)
							cs.Editor.SetText(newText)
							cs.Editor.SetCaret(newCaret, newCaret)
						}
					case widget.SubmitEvent:
						cs.Calculate()
					}
				}

				kp.Update(gtx, cs)

				paint.FillShape(gtx.Ops, windowBg,
					clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())

				layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Flexed(1, func(gtx C) D {
						return layoutCalculator(gtx, th, cs, kp)
					}),
					layout.Rigid(func(gtx C) D {
						return divider.Layout(gtx, &tapeWidth)
					}),
					layout.Rigid(func(gtx C) D {
						return LayoutTape(gtx, th, &cs.Tape, tapeWidth)
					}),
				)

				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}

// layoutCalculator renders the input line, the result, and the keypad in
// a vertical stack.
func layoutCalculator(gtx C, th *material.Theme, cs *CalcState, kp *Keypad) D {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layoutInput(gtx, th, cs)
			}),
			layout.Rigid(func(gtx C) D {
				return layoutResult(gtx, th, cs)
			}),
			layout.Rigid(func(gtx C) D {
				return layout.Spacer{Height: unit.Dp(8)}.Layout(gtx)
			}),
			layout.Flexed(1, func(gtx C) D {
				return kp.Layout(gtx, th)
			}),
		)
	})
}

func layoutInput(gtx C, th *material.Theme, cs *CalcState) D {
	ed := material.Editor(th, &cs.Editor, "0")
	ed.Font = font.Font{Typeface: "Go Mono"}
	ed.Color = displayFg
	ed.HintColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	ed.TextSize = th.TextSize * 1.5
	ed.SelectionColor = color.NRGBA{R: 0x26, G: 0x4F, B: 0x78, A: 0xFF}
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, ed.Layout)
}

// layoutResult shows the last outcome right-aligned under the input.
func layoutResult(gtx C, th *material.Theme, cs *CalcState) D {
	lbl := material.Label(th, th.TextSize*1.25, cs.Result)
	lbl.Font = font.Font{Typeface: "Go Mono"}
	lbl.Alignment = text.End
	lbl.MaxLines = 1
	lbl.Color = resultColor
	if cs.ResultIsErr {
		lbl.Color = resultErrColor
	}
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, lbl.Layout)
}
