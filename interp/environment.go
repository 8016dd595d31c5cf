/*
File    : golox/interp/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/lexer"
)

// Environment is a single lexical-scope frame: a name-to-value map plus a
// link to the enclosing frame. Environments form a tree rooted at globals
// (Parent == nil), matching spec §3/§4.4. This is the teacher's scope.Scope
// (scope/scope.go) renamed to the spec's own vocabulary (Define/Get/Assign
// instead of Bind/LookUp/Assign) and stripped of the teacher's Consts/
// LetVars/LetTypes bookkeeping, which has no counterpart in a language with
// a single `var` declaration form.
type Environment struct {
	values map[string]Value
	Parent *Environment
}

// NewEnvironment creates a child of parent, or a root environment when
// parent is nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), Parent: parent}
}

// Define binds name to value in this frame only. A name already defined in
// this frame is silently overwritten — redeclaration is permitted (spec
// §3 explicitly allows this at global scope, and nothing restricts it for
// blocks/function frames either, since a frame with a duplicate parameter
// name is a parser-level concern, not this one's).
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name in this frame, then parents, matching spec §4.4. The
// token is only used for the error's line attribution.
func (e *Environment) Get(name lexer.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// Assign finds the nearest frame (this one, or a parent) that already
// defines name and overwrites it there, matching spec §4.4. It never
// creates a new binding.
func (e *Environment) Assign(name lexer.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
