/*
File    : golox/parser/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser builds golox's abstract syntax tree out of a token stream.
//
// Expr and Stmt are tagged sum types: each variant is a distinct struct, and
// an unexported marker method confines implementers to this package. The
// interp package dispatches on the concrete type with a type switch rather
// than through a Visitor — the teacher repo's AST (parser/node.go) uses an
// Accept(Visitor) double-dispatch; this rewrite follows the simpler
// structural-pattern-matching shape the spec's design notes call for.
package parser

import "github.com/akashmaji946/golox/lexer"

// Expr is any expression AST node.
type Expr interface {
	exprNode()
}

// Stmt is any statement AST node.
type Stmt interface {
	stmtNode()
}

// --- Expressions ---

// LiteralExpr is a constant value baked in at parse time: a number,
// string, boolean, or nil.
type LiteralExpr struct {
	Value interface{}
}

// UnaryExpr is a prefix operator applied to a single operand (`-x`, `!x`).
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

// BinaryExpr is an infix arithmetic or comparison operator.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// LogicalExpr is `and`/`or`, which short-circuits and is therefore kept
// distinct from BinaryExpr (which always evaluates both operands).
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// GroupingExpr is a parenthesized sub-expression, kept as its own node so
// error messages and (absent here) AST printers can distinguish `(a)` from
// `a`.
type GroupingExpr struct {
	Inner Expr
}

// VariableExpr reads the value bound to Name in the environment chain.
type VariableExpr struct {
	Name lexer.Token
}

// AssignExpr assigns Value to the nearest environment frame that already
// defines Name.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// CallExpr invokes Callee with Args. Paren is the closing `)`, retained
// solely so arity/type errors can report the call's source line.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (LiteralExpr) exprNode()  {}
func (UnaryExpr) exprNode()    {}
func (BinaryExpr) exprNode()   {}
func (LogicalExpr) exprNode()  {}
func (GroupingExpr) exprNode() {}
func (VariableExpr) exprNode() {}
func (AssignExpr) exprNode()   {}
func (CallExpr) exprNode()     {}

// --- Statements ---

// ExpressionStmt evaluates Expr and, in file-mode execution, discards the
// result; the REPL prints it (see SPEC_FULL.md §9a).
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr, stringifies it, and writes it to stdout.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name in the current environment, bound to Initializer's
// value or nil if Initializer is absent.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil if absent
}

// BlockStmt executes Statements in a fresh child environment.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes Then if Condition is truthy, else Else (which may be nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

// WhileStmt executes Body while Condition is truthy. `for` loops desugar
// into this at parse time (see Parser.forStatement); there is no ForStmt.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function and defines it in the current
// environment under Name.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt unwinds to the nearest enclosing function call, carrying
// Value's result (nil if Value is absent). Keyword is retained for line
// attribution. A top-level `return` is still accepted by the parser; with
// no function to unwind to, the evaluator's return signal reaches
// Interpreter.Run, which stops there like on any other error.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil if absent
}

func (ExpressionStmt) stmtNode() {}
func (PrintStmt) stmtNode()      {}
func (VarStmt) stmtNode()        {}
func (BlockStmt) stmtNode()      {}
func (IfStmt) stmtNode()         {}
func (WhileStmt) stmtNode()      {}
func (FunctionStmt) stmtNode()   {}
func (ReturnStmt) stmtNode()     {}
