/*
File    : golox/interp/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import "time"

// Builtin is a native callable, grounded on the shape of the teacher's
// std.Builtin (std/builtins.go) — a name plus a callback — but narrowed to
// golox's single built-in. The teacher's std.Builtin.Callback also takes a
// std.Runtime (to call back into user functions) and an io.Writer (to
// print); golox's one builtin needs neither, so Fn is simply
// func([]Value) (Value, error).
type Builtin struct {
	Name     string
	ArityVal int
	Fn       func(args []Value) (Value, error)
}

func (b *Builtin) Arity() int { return b.ArityVal }

func (b *Builtin) Call(in *Interpreter, args []Value) (Value, error) {
	return b.Fn(args)
}

// String renders the builtin as spec §6 requires: "<native fn>".
func (b *Builtin) String() string { return "<native fn>" }

// clockEpoch anchors clock()'s return value so repeated calls within one
// process measure elapsed seconds monotonically, per spec §4.3 ("implementation
// defined epoch; monotonic across a single run").
var clockEpoch = time.Now()

// newClockBuiltin constructs the clock() builtin: zero arguments, returns
// seconds elapsed since the interpreter process started, as a float64.
// Grounded on the shape of the teacher's std/time.go `now` builtin, which
// returns Unix-epoch seconds as an Integer; golox returns a Number instead
// since it has no separate integer type.
func newClockBuiltin() *Builtin {
	return &Builtin{
		Name:     "clock",
		ArityVal: 0,
		Fn: func(args []Value) (Value, error) {
			return time.Since(clockEpoch).Seconds(), nil
		},
	}
}
