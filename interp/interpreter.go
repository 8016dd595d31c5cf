/*
File    : golox/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/parser"
)

// Interpreter is the long-lived handle the CLI and REPL hold across a
// whole run (file mode: one program; REPL: every turn). It owns the global
// environment and the current environment pointer, matching spec §3/§5 —
// exactly one "current environment" at any time, globals has no parent,
// and globals persists across REPL turns while env is swapped in and out
// as blocks and calls push/pop scopes.
//
// Grounded on the teacher's eval.Evaluator (eval/evaluator.go): Writer for
// print output, a globals-rooted scope chain. golox drops the teacher's
// Builtins map / Types map / Reader field since the narrowed language has
// exactly one builtin and no struct types or input builtins to register.
type Interpreter struct {
	globals *Environment
	env     *Environment
	Writer  io.Writer
}

// New creates an Interpreter with clock() pre-defined in globals, writing
// print output to w.
func New(w io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	clock := newClockBuiltin()
	globals.Define(clock.Name, clock)
	return &Interpreter{globals: globals, env: globals, Writer: w}
}

// Run executes a parsed program's top-level statements in the global
// environment. It returns the first RuntimeError encountered (spec §7: a
// runtime error aborts the current top-level statement — in file mode that
// is the whole program, since Run stops at the first error; in REPL mode
// the caller runs one line's statements per call, so "whole program" and
// "current turn" coincide).
func (in *Interpreter) Run(statements []parser.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execute dispatches one statement by concrete type (spec §9's "tagged
// variants" dispatch, replacing the teacher's Visitor double-dispatch).
func (in *Interpreter) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		return in.execExpressionStmt(s)
	case *parser.PrintStmt:
		return in.execPrintStmt(s)
	case *parser.VarStmt:
		return in.execVarStmt(s)
	case *parser.BlockStmt:
		_, err := in.executeBlock(s.Statements, NewEnvironment(in.env))
		return err
	case *parser.IfStmt:
		return in.execIfStmt(s)
	case *parser.WhileStmt:
		return in.execWhileStmt(s)
	case *parser.FunctionStmt:
		return in.execFunctionStmt(s)
	case *parser.ReturnStmt:
		return in.execReturnStmt(s)
	default:
		return nil
	}
}

// RunRepl executes one REPL turn's top-level statements. It behaves like
// Run except that a bare top-level ExpressionStmt has its value printed
// when non-nil, matching the interactive convenience every Lox-lineage
// REPL offers and the teacher's own repl.Start (which prints
// result.ToString() after every line). File-mode execution uses Run
// instead, which never prints an expression statement's value — see
// SPEC_FULL.md §9a for this split.
func (in *Interpreter) RunRepl(statements []parser.Stmt) error {
	for _, stmt := range statements {
		if exprStmt, ok := stmt.(*parser.ExpressionStmt); ok {
			value, err := in.evalExpr(exprStmt.Expr)
			if err != nil {
				return err
			}
			if value != nil {
				fmt.Fprintln(in.Writer, Stringify(value))
			}
			continue
		}
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeBlock pushes env as the current environment, runs statements in
// order, and restores the previous environment on every exit path —
// including a runtime error or a return transfer escaping partway through
// — matching spec §5's block-discipline invariant (scoped acquisition with
// guaranteed release).
func (in *Interpreter) executeBlock(statements []parser.Stmt, env *Environment) (Value, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return nil, err
		}
	}
	return nil, nil
}
