/*
File    : golox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for golox. It provides two modes of
operation:
1. REPL Mode (default, no arguments): interactive Read-Eval-Print Loop
2. File Mode (one argument): execute a golox source file

The interpreter runs a lexer -> parser -> interpreter pipeline over the
source.
*/
package main

import (
	"os"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of golox.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of golox's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = ">>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ▄████▄   ▄▄▄▄▄     ▄▄▄▄▄  ▄▄▄  ▄▄▄
  ██▀  ▀██  ██  ██   ██  ██   ██   ██
  ██    ██  ██  ██   ██  ██    ██ ██
  ██▄▄▄▄██  ██▄▄██   ██  ██     ███
   ▀▀▀▀▀▀    ▀▀▀▀     ▀▀▀▀      ▀
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Usage:
//
//	golox              - start in REPL (interactive) mode
//	golox <script>     - execute the given golox source file
//	golox --help       - display help information
//	golox --version    - display version information
//
// Any other argument count is a usage error, matching spec §6's "golox
// [script]" contract: zero or one positional argument only.
func main() {
	if len(os.Args) > 2 {
		cyanColor.Println("Usage: golox [script]")
		os.Exit(64)
	}

	if len(os.Args) == 2 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("golox - a tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  golox                     Start interactive REPL mode")
	yellowColor.Println("  golox <path-to-file>      Execute a golox file (.lox)")
	yellowColor.Println("  golox --help              Display this help message")
	yellowColor.Println("  golox --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Println("golox - a tree-walking interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a golox source file, then exits with the
// code spec §6 mandates: 65 if any scan/parse error occurred (checked
// before the program ever runs), 70 if a runtime error occurred during
// execution, 0 otherwise. A scan/parse error takes priority over a
// runtime error because a program that failed to parse never executes
// at all.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	diags := diagnostics.New(os.Stderr)

	lex := lexer.New(string(source), diags)
	tokens := lex.ScanTokens()

	par := parser.New(tokens, diags)
	statements := par.Parse()

	if diags.HadParseError {
		os.Exit(65)
	}

	interpreter := interp.New(os.Stdout)
	if err := interpreter.Run(statements); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			diags.ReportRuntimeError(rerr.Token.Line, rerr.Message)
			os.Exit(70)
		}
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(70)
	}

	if diags.HadRuntimeError {
		os.Exit(70)
	}
}
