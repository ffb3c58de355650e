// Package interp merges the runtime value model, environment chain,
// callables, classes, instances and the tree-walking evaluator into one
// package, avoiding the import cycle a split (value <-> environment <->
// interpreter all refer to each other) would otherwise force. This mirrors
// sam-decook-lox/codecrafters/cmd's own choice to keep Object, Callable,
// Environment and Interpreter in a single `package main`.
package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the tagged-union runtime value described in spec.md §3. Unlike
// the teacher's Object interface (Type() ObjectType, String() string), this
// adds nothing beyond String()/TypeName() — type switches, not a Type()
// enum, drive dispatch everywhere a caller needs to know the concrete kind,
// matching how the rest of this package is written.
type Value interface {
	TypeName() string
	String() string
}

// String is the Yun string value. Named to collide (deliberately) with the
// builtin string type only inside this package's vocabulary; call sites
// disambiguate via interp.String.
type String string

func (String) TypeName() string  { return "String" }
func (s String) String() string  { return string(s) }

// Number is a 64-bit IEEE-754 float, printed via the shortest round-trip
// representation. Integral values display bare (`3`, not `3.0`).
type Number float64

func (Number) TypeName() string { return "Number" }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Bool is a boolean value.
type Bool bool

func (Bool) TypeName() string { return "Bool" }
func (b Bool) String() string  { return strconv.FormatBool(bool(b)) }

// Nil is the absence of a value.
type Nil struct{}

func (Nil) TypeName() string { return "Nil" }
func (Nil) String() string    { return "nil" }

// Void is produced only by statements; it never participates in arithmetic
// and displays as the empty string, per spec.md §3.
type Void struct{}

func (Void) TypeName() string { return "Void" }
func (Void) String() string    { return "" }

// List is an ordered, mutable-by-replacement sequence of values. `+` never
// mutates a List in place; it returns a new one, so List itself need not be
// copy-on-write.
type List struct {
	Elements []Value
}

func (*List) TypeName() string { return "List" }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NativeObject is an opaque host handle, used by the `instant`/`elapsed`
// builtins to carry a monotonic timestamp without exposing it as a Number
// the script could do arithmetic on directly.
type NativeObject struct {
	Label string
	Data  any
}

func (*NativeObject) TypeName() string { return "NativeObject" }
func (n *NativeObject) String() string  { return fmt.Sprintf("<native %s>", n.Label) }

// Shared is a transparent shared-ownership wrapper: a class value wrapped
// in Shared can be referenced by its own methods and by subclasses without
// copying the class body. Equality, arithmetic and truthiness all delegate
// to the wrapped value via unwrap.
type Shared struct {
	Inner Value
}

func (s *Shared) TypeName() string { return s.Inner.TypeName() }
func (s *Shared) String() string    { return s.Inner.String() }

// unwrap strips any number of Shared layers, per spec.md §3's "Shared(v)
// is transparent to equality, arithmetic, and comparison."
func unwrap(v Value) Value {
	for {
		s, ok := v.(*Shared)
		if !ok {
			return v
		}
		v = s.Inner
	}
}

// isTruthy implements spec.md §3's truthiness rule: a Bool carries its own
// truth value; Nil and Void are falsy; every other value (String, Number,
// List, Callable, Class, Instance, NativeObject) is truthy.
func isTruthy(v Value) bool {
	switch t := unwrap(v).(type) {
	case Bool:
		return bool(t)
	case Nil:
		return false
	case Void:
		return false
	default:
		return true
	}
}

// valuesEqual implements structural equality for scalars/Nil/Void/List-by-
// identity and identity equality (by assigned id) for Callables, per
// spec.md §3.
func valuesEqual(a, b Value) bool {
	a, b = unwrap(a), unwrap(b)

	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Void:
		_, ok := b.(Void)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Callable:
		y, ok := b.(Callable)
		return ok && x.ID() == y.ID()
	default:
		return a == b
	}
}
