package main

import "testing"

func TestBackspaceRunes(t *testing.T) {
	tests := []struct {
		text  string
		caret int
		want  int
	}{
		{"", 0, 0},
		{"5", 0, 0},
		{"5", 1, 1},
		{"2**", 3, 2},
		{"2**", 2, 1},
		{"2**3", 4, 1},
		{"2**3", 3, 2},
		{"2*", 2, 1},
		{"×÷", 2, 1},
		{"1+2", 99, 1}, // caret clamps to the end
	}
	for _, tt := range tests {
		if got := backspaceRunes(tt.text, tt.caret); got != tt.want {
			t.Errorf("backspaceRunes(%q, %d) = %d, want %d", tt.text, tt.caret, got, tt.want)
		}
	}
}

func TestExpandCaret(t *testing.T) {
	tests := []struct {
		text      string
		caret     int
		wantText  string
		wantCaret int
	}{
		{"", 0, "", 0},
		{"2+3", 2, "2+3", 2},
		{"2^", 2, "2**", 3},
		{"2^3", 2, "2**3", 3},
		{"2^3", 3, "2**3", 4},
		{"2^3", 1, "2**3", 1},
		{"^^", 2, "****", 4},
		{"1^2^3", 5, "1**2**3", 7},
	}
	for _, tt := range tests {
		text, caret := expandCaret(tt.text, tt.caret)
		if text != tt.wantText || caret != tt.wantCaret {
			t.Errorf("expandCaret(%q, %d) = (%q, %d), want (%q, %d)",
				tt.text, tt.caret, text, caret, tt.wantText, tt.wantCaret)
		}
	}
}

func TestCalculate(t *testing.T) {
	cs := NewCalcState()

	cs.Editor.SetText("2+3*4")
	cs.Calculate()
	if cs.Result != "14" || cs.ResultIsErr {
		t.Errorf("after 2+3*4: Result = %q, IsErr = %v", cs.Result, cs.ResultIsErr)
	}
	if len(cs.Tape.Entries) != 1 || cs.Tape.Entries[0].Expr != "2+3*4" {
		t.Errorf("tape after one calculation: %+v", cs.Tape.Entries)
	}

	cs.Editor.SetText("5/0")
	cs.Calculate()
	if cs.Result != "Error: ÷ by 0" || !cs.ResultIsErr {
		t.Errorf("after 5/0: Result = %q, IsErr = %v", cs.Result, cs.ResultIsErr)
	}

	// Blank input shows 0 and records nothing.
	cs.Editor.SetText("   ")
	cs.Calculate()
	if cs.Result != "0" || cs.ResultIsErr {
		t.Errorf("after blank: Result = %q, IsErr = %v", cs.Result, cs.ResultIsErr)
	}
	if len(cs.Tape.Entries) != 2 {
		t.Errorf("tape has %d entries, want 2", len(cs.Tape.Entries))
	}

	cs.Clear()
	if cs.Result != "0" || cs.Editor.Text() != "" {
		t.Errorf("after Clear: Result = %q, text = %q", cs.Result, cs.Editor.Text())
	}
}
