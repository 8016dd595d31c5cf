/*
File    : golox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for golox. The REPL
provides an interactive environment where users can:
- Enter golox code line by line
- See immediate results of expression statements
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the lexer, parser, and interpreter to execute user
input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. Grounded on the
// teacher's repl.Repl (repl/repl.go) — same banner/version/author/line/
// license/prompt fields and constructor shape, rewired underneath to
// lexer/parser/interp instead of the teacher's single-pass parser+eval.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to golox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. A single Interpreter is created before
// the loop and reused for every line, so top-level variable and function
// declarations persist across turns (spec §5: globals survives across
// REPL turns). Each turn gets its own Diagnostics so a bad line's sticky
// flags never bleed into the next one — unlike file mode, the REPL never
// exits on error.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interpreter := interp.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, interpreter)
	}
}

// executeWithRecovery scans, parses, and interprets one line, recovering
// from any unexpected panic so a single bad line never kills the session.
// Scan/parse errors are reported via Diagnostics and the line is
// discarded without reaching the interpreter, matching file mode's
// ordering (spec §6: syntax errors preempt evaluation).
func (r *Repl) executeWithRecovery(writer io.Writer, line string, interpreter *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[unexpected error] %v\n", recovered)
		}
	}()

	diags := diagnostics.New(writer)

	lex := lexer.New(line, diags)
	tokens := lex.ScanTokens()

	par := parser.New(tokens, diags)
	statements := par.Parse()

	if diags.HadParseError {
		return
	}

	if err := interpreter.RunRepl(statements); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			diags.ReportRuntimeError(rerr.Token.Line, rerr.Message)
			return
		}
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
