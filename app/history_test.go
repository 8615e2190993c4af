package main

import "testing"

func TestHistoryText(t *testing.T) {
	var h History
	h.Add(Entry{Expr: "2+3", Result: "5"})
	h.Add(Entry{Expr: "5/0", Result: "Error: ÷ by 0", IsErr: true})

	want := "2+3 = 5\n5/0 = Error: ÷ by 0\n"
	if got := h.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if !h.Dirty {
		t.Error("tape not marked dirty after Add")
	}
}

func TestHistoryLoad(t *testing.T) {
	var h History
	h.Load([]byte("2+3 = 5\r\n7//2 = wrong\n\n5/0 = Error: ÷ by 0\n"))

	want := []Entry{
		{Expr: "2+3", Result: "5"},
		{Expr: "7//2", Result: "3"}, // results are recomputed, not trusted
		{Expr: "5/0", Result: "Error: ÷ by 0", IsErr: true},
	}
	if len(h.Entries) != len(want) {
		t.Fatalf("Load produced %d entries, want %d: %+v", len(h.Entries), len(want), h.Entries)
	}
	for i := range want {
		if h.Entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, h.Entries[i], want[i])
		}
	}
	if h.Dirty {
		t.Error("tape dirty after Load")
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	var h History
	h.Add(Entry{Expr: "2**10", Result: "1024"})
	h.Add(Entry{Expr: "6÷2×3", Result: "9"})

	var h2 History
	h2.Load([]byte(h.Text()))
	if len(h2.Entries) != len(h.Entries) {
		t.Fatalf("round trip produced %d entries, want %d", len(h2.Entries), len(h.Entries))
	}
	for i := range h.Entries {
		if h2.Entries[i] != h.Entries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, h2.Entries[i], h.Entries[i])
		}
	}
}
