/*
File    : golox/interp/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/parser"
)

// Function is a user-defined callable, grounded on the teacher's
// function.Function (function/function.go) — name, parameter tokens, and
// body. The teacher's Function also stores Scp, the scope captured at
// definition, to support closures over arbitrary enclosing scopes. golox
// deliberately drops that field: per SPEC_FULL.md §9a, a function call
// always runs against the global environment, not its defining scope, so
// there is nothing to capture.
type Function struct {
	Decl *parser.FunctionStmt
}

// NewFunction wraps a parsed function declaration as a callable value.
func NewFunction(decl *parser.FunctionStmt) *Function {
	return &Function{Decl: decl}
}

// Arity is the declared parameter count.
func (f *Function) Arity() int {
	return len(f.Decl.Params)
}

// Call binds each argument to its parameter in a fresh environment whose
// parent is globals (not the call site, and not a captured defining
// scope — see SPEC_FULL.md §9a), executes the body, and unwraps any
// returnSignal that escaped it into a plain Value. A body that completes
// normally yields nil, matching spec §4.3's function-invocation rule.
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	callEnv := NewEnvironment(in.globals)
	for i, param := range f.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result, err := in.executeBlock(f.Decl.Body, callEnv)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}
	_ = result
	return nil, nil
}

// String renders the function the way spec §6 requires: "<fn name>".
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}

// returnSignal is the non-local-transfer sentinel carrying a `return`
// statement's value up through execStmt/executeBlock until Function.Call
// catches it. It implements error purely so it can travel through the same
// (Value, error) plumbing as a genuine RuntimeError without a second
// parallel return channel — exactly the "result type threaded through
// evaluation" option spec §9 calls out, modeled on the teacher's
// ReturnValue sentinel (objects/objects.go, eval/eval_helpers.go's
// UnwrapReturnValue) rather than a native panic/recover unwind.
type returnSignal struct {
	Value Value
}

func (r *returnSignal) Error() string {
	return "return outside of function"
}
