// Package diag collects positioned compiler diagnostics.
//
// The parser never prints anything itself; it hands every problem to a [Sink].
// [List] is the standard sink: it remembers every report in order and can be
// turned into a single Go error with [List.Err].
package diag

import (
	"fmt"
	"sort"
)

// Sink receives diagnostics. Line and col are 1-based.
type Sink interface {
	Report(file string, line, col int, msg string)
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	File string
	Line int
	Col  int
	Msg  string
}

// Error formats the diagnostic as file:line:col: msg. The file part is
// omitted when empty.
func (d Diagnostic) Error() string {
	if d.File == "" {
		return fmt.Sprintf("%d:%d: %s", d.Line, d.Col, d.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Col, d.Msg)
}

// List is a Sink that keeps every diagnostic in report order.
type List []Diagnostic

// Report appends a diagnostic.
func (l *List) Report(file string, line, col int, msg string) {
	*l = append(*l, Diagnostic{File: file, Line: line, Col: col, Msg: msg})
}

// Len returns the number of diagnostics collected.
func (l List) Len() int { return len(l) }

func (l List) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

func (l List) Less(i, j int) bool {
	a, b := l[i], l[j]
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.Msg < b.Msg
}

// Sort orders the list by file, line, column and message.
func (l List) Sort() { sort.Stable(l) }

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Err returns l as an error, or nil when it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(string, int, int, string) {}
