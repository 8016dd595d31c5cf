/*
File    : golox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/golox/lexer"
)

// maxArgs is the arity cap for both call arguments and function parameters.
const maxArgs = 255

// Reporter receives parse diagnostics. diagnostics.Diagnostics implements
// this; tests may supply a stub.
type Reporter interface {
	ReportParseError(line int, lexeme string, atEOF bool, message string)
}

// parseError signals that a production failed and panic-mode recovery
// should run. It is never allowed to escape Parser.Parse.
type parseError struct{}

// Parser is a hand-written recursive-descent parser: one method per
// grammar production in SPEC_FULL.md §4.2, with a single token of
// lookahead. It collects diagnostics rather than aborting on the first
// error, following the teacher's Errors-collection idiom
// (parser/parser.go's par.Errors/addError/HasErrors), but reports through
// the shared diagnostics.Diagnostics instead of a private slice so the
// exact wire format (spec §6) lives in one place.
type Parser struct {
	tokens   []lexer.Token
	current  int
	reporter Reporter
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []lexer.Token, reporter Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse runs the `program` production, returning every successfully parsed
// top-level declaration. A declaration that failed to parse is omitted
// (panic-mode recovery skips it); the caller must check the Reporter's
// HadParseError flag (or equivalent) before evaluating, per spec §4.2's
// failure semantics.
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// --- declarations ---

func (p *Parser) declaration() (stmt Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseError := r.(parseError); !isParseError {
				panic(r)
			}
			p.synchronize()
			stmt, ok = nil, false
		}
	}()

	switch {
	case p.match(lexer.VAR):
		return p.varDeclaration(), true
	case p.match(lexer.FUN):
		return p.function("function"), true
	default:
		return p.statement(), true
	}
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) function(kind string) Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

// --- statements ---

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &PrintStmt{Expr: value}
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ExpressionStmt{Expr: expr}
}

func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }` at parse time, per spec §4.2.
// The evaluator never sees a for-loop node.
func (p *Parser) forStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expr: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Value: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

// --- expressions, low to high precedence ---

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment is right-associative: it parses the left side as a full
// logic_or production, and on `=` re-parses the right side recursively.
// The left side is only a valid assignment target if it is a VariableExpr;
// any other shape reports "Invalid assignment target." without panicking
// (the rest of the expression already parsed successfully).
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.STAR, lexer.SLASH) {
		operator := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: operator, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by zero or more argument
// lists, left-associatively, so `f()()()` parses as nested calls.
func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpr{Value: false}
	case p.match(lexer.TRUE):
		return &LiteralExpr{Value: true}
	case p.match(lexer.NIL):
		return &LiteralExpr{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &LiteralExpr{Value: p.previous().Literal}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Inner: expr}
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}

// --- token-stream primitives ---

func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(kind lexer.TokenType, message string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a diagnostic at tok and returns a sentinel value the
// caller panics with to unwind to the nearest declaration() recovery
// point. It does not itself unwind, so callers that want to keep parsing
// past a reported error (e.g. an arity-cap warning) can call it directly
// without panicking.
func (p *Parser) errorAt(tok lexer.Token, message string) parseError {
	if p.reporter != nil {
		p.reporter.ReportParseError(tok.Line, tok.Lexeme, tok.Type == lexer.EOF, message)
	}
	return parseError{}
}

// synchronize discards tokens until it is positioned at a likely statement
// boundary, so one parse error reports once instead of cascading. Matches
// spec §4.2's panic-mode recovery: the token the error was reported at is
// always discarded first, then scanning stops once the previous token was
// `;` or the next token starts a new declaration/statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
