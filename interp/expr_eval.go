/*
File    : golox/interp/expr_eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
)

// evalExpr dispatches one expression by concrete type, matching spec §4.3
// exactly. Grounded on the control shape of the teacher's
// eval/evaluator_expressions.go, narrowed to the eight expression variants
// spec §3 names.
func (in *Interpreter) evalExpr(expr parser.Expr) (Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return e.Value, nil
	case *parser.GroupingExpr:
		return in.evalExpr(e.Inner)
	case *parser.UnaryExpr:
		return in.evalUnary(e)
	case *parser.BinaryExpr:
		return in.evalBinary(e)
	case *parser.LogicalExpr:
		return in.evalLogical(e)
	case *parser.VariableExpr:
		return in.env.Get(e.Name)
	case *parser.AssignExpr:
		return in.evalAssign(e)
	case *parser.CallExpr:
		return in.evalCall(e)
	default:
		return nil, nil
	}
}

func (in *Interpreter) evalUnary(e *parser.UnaryExpr) (Value, error) {
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{Token: e.Operator, Message: "Operand must be a number."}
		}
		return -n, nil
	case lexer.BANG:
		return !IsTruthy(right), nil
	}
	return nil, &RuntimeError{Token: e.Operator, Message: "Unknown unary operator."}
}

func (in *Interpreter) evalBinary(e *parser.BinaryExpr) (Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		return numericBinary(e.Operator, left, right, func(a, b float64) Value { return a - b })
	case lexer.STAR:
		return numericBinary(e.Operator, left, right, func(a, b float64) Value { return a * b })
	case lexer.SLASH:
		return numericBinary(e.Operator, left, right, func(a, b float64) Value { return a / b })
	case lexer.PLUS:
		return evalPlus(e.Operator, left, right)
	case lexer.GREATER:
		return numericBinary(e.Operator, left, right, func(a, b float64) Value { return a > b })
	case lexer.GREATER_EQUAL:
		return numericBinary(e.Operator, left, right, func(a, b float64) Value { return a >= b })
	case lexer.LESS:
		return numericBinary(e.Operator, left, right, func(a, b float64) Value { return a < b })
	case lexer.LESS_EQUAL:
		return numericBinary(e.Operator, left, right, func(a, b float64) Value { return a <= b })
	case lexer.EQUAL_EQUAL:
		return ValuesEqual(left, right), nil
	case lexer.BANG_EQUAL:
		return !ValuesEqual(left, right), nil
	}
	return nil, &RuntimeError{Token: e.Operator, Message: "Unknown binary operator."}
}

// numericBinary requires both operands to be numbers (spec §4.3: "-", "*",
// "/", and all four comparisons) and applies op; division by zero is left
// to IEEE-754 semantics, per spec.
func numericBinary(op lexer.Token, left, right Value, apply func(a, b float64) Value) (Value, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, &RuntimeError{Token: op, Message: "Operands must be numbers."}
	}
	return apply(l, r), nil
}

// evalPlus implements spec §4.3's dual "+": numeric addition when both
// operands are numbers, string concatenation when both are strings,
// otherwise a runtime error.
func evalPlus(op lexer.Token, left, right Value) (Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, &RuntimeError{Token: op, Message: "Operands must be two numbers or two strings."}
}

// evalLogical implements short-circuiting `and`/`or`: the operand's own
// value is returned (not a coerced boolean), and the right side is
// evaluated only when the short-circuit does not fire, per spec §4.3/§8.
func (in *Interpreter) evalLogical(e *parser.LogicalExpr) (Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return in.evalExpr(e.Right)
}

func (in *Interpreter) evalAssign(e *parser.AssignExpr) (Value, error) {
	value, err := in.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	if err := in.env.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// evalCall implements spec §4.3's Call semantics: evaluate the callee,
// then each argument left to right, then validate callability and arity
// before invoking.
func (in *Interpreter) evalCall(e *parser.CallExpr) (Value, error) {
	callee, err := in.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, argExpr := range e.Args {
		arg, err := in.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, &RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}
	return fn.Call(in, args)
}
