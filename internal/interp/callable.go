package interp

import (
	"sync/atomic"

	"github.com/morphqdd/yun/internal/ast"
)

var nextCallableID uint64

func newCallableID() uint64 { return atomic.AddUint64(&nextCallableID, 1) }

// Callable is a uniform abstraction over user-defined functions, classes
// (as construction callables) and host-provided native functions, per
// spec.md §4.10.
type Callable interface {
	Value
	Arity() int
	Call(ip *Interpreter, args []Value) (Value, error)
	ID() uint64
}

// Function is a user-defined closure: a declaration paired with the
// environment it closed over. Grounded on
// sam-decook-lox/codecrafters/cmd/object.go's LoxFunction, generalized to
// carry its own id (for Callable equality) and to route through the
// resolver-aware Environment instead of assuming a flat chain walk.
type Function struct {
	Declaration   *ast.Fun
	Closure       *Environment
	IsInitializer bool
	id            uint64
}

// NewFunction constructs a top-level/closure function value.
func NewFunction(decl *ast.Fun, closure *Environment, isInitializer bool) *Function {
	return &Function{Declaration: decl, Closure: closure, IsInitializer: isInitializer, id: newCallableID()}
}

func (*Function) TypeName() string { return "Callable" }

func (f *Function) String() string { return "<fn " + f.Declaration.Name.Lexeme + ">" }

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) ID() uint64 { return f.id }

// Bind produces a new Callable whose closure is a fresh environment with
// `self` defined to instance, enclosing f's own closure — spec.md §4.8.
// The bound method gets a freshly assigned id: a bound method is never
// Callable-equal to the unbound method it was bound from (see DESIGN.md's
// Open Question notes on Callable equality).
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("self", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

// Call invokes the function's body in a fresh environment, per spec.md
// §4.6/§4.9: a Return signal short-circuits the body; an initializer
// always resolves to the bound `self`, return value notwithstanding.
func (f *Function) Call(ip *Interpreter, args []Value) (Value, error) {
	callEnv := NewEnvironment(f.Closure)
	for i, p := range f.Declaration.Params {
		callEnv.Define(p.Lexeme, args[i])
	}

	prevEnv := ip.Env
	ip.Env = callEnv
	err := ip.execStmts(f.Declaration.Body)
	ip.Env = prevEnv

	if err != nil {
		ret, ok := err.(*returnSignal)
		if !ok {
			return nil, err
		}
		if f.IsInitializer {
			return f.boundSelf()
		}
		return ret.Value, nil
	}

	if f.IsInitializer {
		return f.boundSelf()
	}
	return Nil{}, nil
}

func (f *Function) boundSelf() (Value, error) {
	c, ok := f.Closure.values["self"]
	if !ok || !c.initialized {
		return nil, errBugEnvironmentNotInit(f.Declaration.Name)
	}
	return c.value, nil
}

// NativeFunction wraps a host-provided builtin as a Callable, per
// spec.md §4.11.
type NativeFunction struct {
	Name   string
	ArityN int
	Fn     func(ip *Interpreter, args []Value) (Value, error)
	id     uint64
}

// NewNativeFunction constructs a native builtin with a fresh Callable id.
func NewNativeFunction(name string, arity int, fn func(ip *Interpreter, args []Value) (Value, error)) *NativeFunction {
	return &NativeFunction{Name: name, ArityN: arity, Fn: fn, id: newCallableID()}
}

func (*NativeFunction) TypeName() string { return "Callable" }

func (n *NativeFunction) String() string { return "<native fn " + n.Name + ">" }

func (n *NativeFunction) Arity() int { return n.ArityN }

func (n *NativeFunction) ID() uint64 { return n.id }

func (n *NativeFunction) Call(ip *Interpreter, args []Value) (Value, error) {
	return n.Fn(ip, args)
}
