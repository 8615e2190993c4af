package main

import (
	"strings"

	"deskcalc/app/lang"
)

// Entry is one evaluated expression on the tape.
type Entry struct {
	Expr   string
	Result string
	IsErr  bool
}

// History is the calculator's tape: every submitted expression with its
// result, oldest first.
type History struct {
	Entries []Entry
	Dirty   bool
}

// Add appends an entry to the tape.
func (h *History) Add(e Entry) {
	h.Entries = append(h.Entries, e)
	h.Dirty = true
}

// Clear drops all entries.
func (h *History) Clear() {
	h.Entries = nil
	h.Dirty = true
}

// Text serializes the tape as one "expr = result" line per entry.
func (h *History) Text() string {
	var b strings.Builder
	for _, e := range h.Entries {
		b.WriteString(e.Expr)
		b.WriteString(" = ")
		b.WriteString(e.Result)
		b.WriteByte('\n')
	}
	return b.String()
}

// Load replaces the tape with entries parsed from a saved file. Only the
// expression before the first " = " is trusted; results are recomputed,
// so a stale or edited file still shows correct values.
func (h *History) Load(data []byte) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var entries []Entry
	for _, line := range strings.Split(content, "\n") {
		expr, _, _ := strings.Cut(line, " = ")
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}
		r := lang.Evaluate(expr)
		entries = append(entries, Entry{Expr: expr, Result: r.Text, IsErr: r.Err != nil})
	}
	h.Entries = entries
	h.Dirty = false
}
