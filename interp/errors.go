/*
File    : golox/interp/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import "github.com/akashmaji946/golox/lexer"

// RuntimeError carries the source token responsible (for line attribution,
// spec §7) alongside the message. It implements the standard error
// interface so evalExpr/execute can return it like any other Go error;
// Interpreter.Run stops at the first one and returns it, and its callers
// (main.go's runFile and the REPL) format it through diagnostics,
// matching the "caught at interpret()" boundary spec §5/§7 describe.
//
// This plays the role of the teacher's *std.Error / objects.Error sentinel
// value (objects/objects.go), but as a proper Go error instead of a
// GoMixObject, since golox's evalExpr returns (Value, error) pairs rather
// than threading error-as-value through every call site.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}
