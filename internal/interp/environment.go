package interp

import (
	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/token"
)

// cell is an environment slot. A cell with initialized == false models a
// `let x;` with no initializer — present, but not yet readable.
type cell struct {
	value       Value
	initialized bool
}

// Environment is a single scope frame in the lexical chain: every Block,
// function call, superclass scope and method call allocates one, per
// spec.md §4.5. Grounded on sam-decook-lox/codecrafters/cmd/environment.go,
// generalized to track declared-but-uninitialized bindings and to expose
// GetAt/AssignAt for the static resolver's depths (the teacher's Get/Assign
// only ever walk the whole chain linearly and never consult its own
// resolver output, which is the "rough edge" spec.md's resolver section
// exists to fix).
type Environment struct {
	parent *Environment
	values map[string]*cell
}

// NewEnvironment constructs a child scope of parent (nil for the global
// scope).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, values: make(map[string]*cell, 8)}
}

// Define always writes the innermost frame, silently shadowing, per
// spec.md §4.5.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = &cell{value: value, initialized: true}
}

// DeclareUninitialized records name as present but not yet readable, for
// `let x;` with no initializer.
func (e *Environment) DeclareUninitialized(name string) {
	e.values[name] = &cell{initialized: false}
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// Get walks outward from e until it finds name. An uninitialized cell in
// the frame it's found in is VariableIsNotInit; a name nowhere in the
// chain is UndefinedVariable.
func (e *Environment) Get(tok token.Token) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if c, ok := env.values[tok.Lexeme]; ok {
			if !c.initialized {
				return nil, errs.At(errs.KindError, errs.CodeVariableIsNotInit, tok,
					"Variable '"+tok.Lexeme+"' is not initialized")
			}
			return c.value, nil
		}
	}
	return nil, errs.At(errs.KindError, errs.CodeUndefinedVariable, tok,
		"Undefined variable '"+tok.Lexeme+"'")
}

// GetAt reads name directly out of the distance-th enclosing frame, as
// computed by the static resolver. A missing cell here means the resolver
// and the runtime environment chain disagree — an implementation bug, not
// a user error.
func (e *Environment) GetAt(distance int, tok token.Token) (Value, error) {
	env := e.ancestor(distance)
	c, ok := env.values[tok.Lexeme]
	if !ok {
		return nil, errs.At(errs.KindPanic, errs.CodeBugEnvironmentNotInit, tok,
			"resolver/environment mismatch for '"+tok.Lexeme+"'")
	}
	if !c.initialized {
		return nil, errs.At(errs.KindError, errs.CodeVariableIsNotInit, tok,
			"Variable '"+tok.Lexeme+"' is not initialized")
	}
	return c.value, nil
}

// Assign walks outward, writing to the first frame that already declares
// name. Undeclared anywhere in the chain is UndefinedVariable.
func (e *Environment) Assign(tok token.Token, value Value) error {
	for env := e; env != nil; env = env.parent {
		if c, ok := env.values[tok.Lexeme]; ok {
			c.value = value
			c.initialized = true
			return nil
		}
	}
	return errs.At(errs.KindError, errs.CodeUndefinedVariable, tok,
		"Undefined variable '"+tok.Lexeme+"'")
}

// AssignAt writes directly into the distance-th enclosing frame.
func (e *Environment) AssignAt(distance int, tok token.Token, value Value) error {
	env := e.ancestor(distance)
	c, ok := env.values[tok.Lexeme]
	if !ok {
		return errs.At(errs.KindPanic, errs.CodeBugEnvironmentNotInit, tok,
			"resolver/environment mismatch for '"+tok.Lexeme+"'")
	}
	c.value = value
	c.initialized = true
	return nil
}
