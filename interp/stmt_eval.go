/*
File    : golox/interp/stmt_eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/parser"
)

// execExpressionStmt evaluates and discards the result — side effects
// only. This differs from the REPL, which prints a top-level expression
// statement's value; see Interpreter.RunRepl and SPEC_FULL.md §9a for the
// split this repository settles on.
func (in *Interpreter) execExpressionStmt(s *parser.ExpressionStmt) error {
	_, err := in.evalExpr(s.Expr)
	return err
}

func (in *Interpreter) execPrintStmt(s *parser.PrintStmt) error {
	value, err := in.evalExpr(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.Writer, Stringify(value))
	return nil
}

func (in *Interpreter) execVarStmt(s *parser.VarStmt) error {
	var value Value
	if s.Initializer != nil {
		v, err := in.evalExpr(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.env.Define(s.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) execIfStmt(s *parser.IfStmt) error {
	cond, err := in.evalExpr(s.Condition)
	if err != nil {
		return err
	}
	switch {
	case IsTruthy(cond):
		return in.execute(s.Then)
	case s.Else != nil:
		return in.execute(s.Else)
	default:
		return nil
	}
}

func (in *Interpreter) execWhileStmt(s *parser.WhileStmt) error {
	for {
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if !IsTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

// execFunctionStmt defines the function in the current environment under
// its declared name, per spec §4.3. Because golox functions always call
// against globals rather than a captured defining scope (SPEC_FULL.md
// §9a), there is no scope to snapshot here — just wrap the declaration.
func (in *Interpreter) execFunctionStmt(s *parser.FunctionStmt) error {
	in.env.Define(s.Name.Lexeme, NewFunction(s))
	return nil
}

// execReturnStmt evaluates the return value (nil if absent) and raises it
// as a returnSignal, which unwinds execute/executeBlock until
// Function.Call catches it. A `return` with no enclosing function call
// simply unwinds to Interpreter.Run, which — like any other error —
// stops the current top-level statement; it is never treated as a syntax
// error since the grammar accepts `return` anywhere a statement may
// appear (spec §4.2).
func (in *Interpreter) execReturnStmt(s *parser.ReturnStmt) error {
	var value Value
	if s.Value != nil {
		v, err := in.evalExpr(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{Value: value}
}
