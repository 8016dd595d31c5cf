/*
File    : golox/diagnostics/diagnostics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diagnostics centralizes golox's two sticky error flags and the
// exact wire format scan/parse/runtime errors are rendered in. The teacher
// repo (go-mix) formats each error inline wherever it's raised
// (eval/evaluator.go's CreateError, parser.Parser's addError); golox's
// diagnostic format is part of the spec's external interface, so it lives
// in one place instead.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errColor = color.New(color.FgRed)
)

// Diagnostics writes each scan/parse/runtime error to Writer as it is
// reported and records in two sticky flags which kinds occurred during the
// current run. A session (REPL turn or file
// execution) owns one Diagnostics value; the REPL constructs a fresh one
// per line so errors from an earlier turn never leak into the next.
type Diagnostics struct {
	Writer          io.Writer
	HadParseError   bool
	HadRuntimeError bool
}

// New returns a Diagnostics that writes formatted error lines to w.
func New(w io.Writer) *Diagnostics {
	return &Diagnostics{Writer: w}
}

// Reset clears both sticky flags, for reuse across REPL turns.
func (d *Diagnostics) Reset() {
	d.HadParseError = false
	d.HadRuntimeError = false
}

// ReportLexError implements lexer.Reporter: a bare scan error has no
// offending lexeme, so `<where>` is empty.
func (d *Diagnostics) ReportLexError(line int, message string) {
	d.report(line, "", message)
	d.HadParseError = true
}

// ReportParseError renders a parse error at the given token. atEOF selects
// the " at end" form; otherwise the error is attributed to lexeme.
func (d *Diagnostics) ReportParseError(line int, lexeme string, atEOF bool, message string) {
	where := fmt.Sprintf(" at '%s'", lexeme)
	if atEOF {
		where = " at end"
	}
	d.report(line, where, message)
	d.HadParseError = true
}

// report prints "[line <n>] Error<where>: <message>" to d.Writer, matching
// the spec's scan/parse diagnostic format exactly.
func (d *Diagnostics) report(line int, where, message string) {
	line_ := fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
	errColor.Fprintln(d.Writer, line_)
}

// ReportRuntimeError prints "<message>\n[line <n>]" to d.Writer and sets
// HadRuntimeError, matching the spec's runtime diagnostic format exactly.
func (d *Diagnostics) ReportRuntimeError(line int, message string) {
	errColor.Fprintf(d.Writer, "%s\n[line %d]\n", message, line)
	d.HadRuntimeError = true
}
