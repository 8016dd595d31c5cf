/*
File    : golox/interp/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp walks the AST produced by parser and executes it: variable
// binding, control flow, function calls, and the built-in print/clock
// surface. Its value model mirrors the teacher repo's objects package
// (objects/objects.go's GoMixObject interface and per-type structs) but
// narrowed to the five variants spec §3 names — nil, boolean, number,
// string, and callable.
package interp

import (
	"fmt"
	"strconv"
)

// ValueType identifies which of the five runtime value variants a Value is.
type ValueType string

const (
	NilType      ValueType = "nil"
	BooleanType  ValueType = "boolean"
	NumberType   ValueType = "number"
	StringType   ValueType = "string"
	CallableType ValueType = "callable"
)

// Value is any golox runtime value. Unlike the teacher's GoMixObject (which
// every value type implements as a pointer receiver, objects/objects.go),
// Nil/Boolean/Number/String are represented directly by Go's nil/bool/
// float64/string through the empty interface: there is nothing a wrapper
// struct would add for scalars with no methods of their own, and
// stringifying them is the one operation both the spec and the teacher
// need (see Stringify below). Callable remains a proper interface because
// it really does have two implementations with behavior (Function,
// Builtin).
type Value = interface{}

// Callable is a value that can be invoked via a CallExpr: either a
// user-defined Function or a native Builtin.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}

// TypeOf classifies a Value into one of the five spec variants.
func TypeOf(v Value) ValueType {
	switch v.(type) {
	case nil:
		return NilType
	case bool:
		return BooleanType
	case float64:
		return NumberType
	case string:
		return StringType
	case Callable:
		return CallableType
	default:
		return NilType
	}
}

// IsTruthy implements spec §3's truthiness rule: nil and false are falsey,
// everything else — including 0 and "" — is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// ValuesEqual implements spec §3's equality rule.
func ValuesEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case Callable:
		bv, ok := b.(Callable)
		return ok && sameCallable(av, bv)
	default:
		return false
	}
}

// sameCallable compares callables by identity, as spec §3 requires.
func sameCallable(a, b Callable) bool {
	af, aIsFn := a.(*Function)
	bf, bIsFn := b.(*Function)
	if aIsFn || bIsFn {
		return aIsFn && bIsFn && af == bf
	}
	ab, aIsBuiltin := a.(*Builtin)
	bb, bIsBuiltin := b.(*Builtin)
	if aIsBuiltin || bIsBuiltin {
		return aIsBuiltin && bIsBuiltin && ab == bb
	}
	return false
}

// Stringify renders a Value exactly as spec §6 requires for print: numbers
// with integer magnitude and no fractional part print without a trailing
// ".0"; nil/true/false print as their literal spellings; strings print
// verbatim without quotes; callables print as "<fn name>" or "<native fn>".
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatNumber(val)
	case string:
		return val
	case Callable:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatNumber(n float64) string {
	text := strconv.FormatFloat(n, 'f', -1, 64)
	if text == "-0" {
		return "0"
	}
	return text
}
