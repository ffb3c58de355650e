package interp

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/token"
)

// registerBuiltins installs the native builtins spec.md §4.11 requires the
// root environment to predefine. Grounded on
// sam-decook-lox/codecrafters/cmd/evaluate.go's ad hoc special-casing of
// `clock` inside CallExpr.Evaluate ("Couldn't figure out a cleaner way to
// bolt on native functions") — this registers every builtin uniformly as a
// Callable in globals instead, so CallExpr never needs to special-case a
// builtin's name.
func registerBuiltins(ip *Interpreter) {
	def := func(name string, arity int, fn func(ip *Interpreter, args []Value) (Value, error)) {
		ip.Globals.Define(name, NewNativeFunction(name, arity, fn))
	}

	def("clock", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		return Number(time.Now().UnixMicro()), nil
	})

	def("instant", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		return &NativeObject{Label: "instant:" + uuid.NewString(), Data: time.Now()}, nil
	})

	def("elapsed", 1, func(_ *Interpreter, args []Value) (Value, error) {
		obj, ok := unwrap(args[0]).(*NativeObject)
		if !ok {
			return nil, nativeArgError("elapsed", "a value returned by instant()")
		}
		start, ok := obj.Data.(time.Time)
		if !ok {
			return nil, nativeArgError("elapsed", "a value returned by instant()")
		}
		return Number(time.Since(start).Microseconds()), nil
	})

	def("exit", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		os.Exit(0)
		return Void{}, nil
	})

	def("exitWithCode", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, ok := unwrap(args[0]).(Number)
		if !ok {
			return nil, nativeArgError("exitWithCode", "a Number")
		}
		os.Exit(int(n))
		return Void{}, nil
	})

	def("panic", 1, func(_ *Interpreter, args []Value) (Value, error) {
		return nil, errs.At(errs.KindPanic, errs.CodeUserPanic, token.Token{},
			args[0].String())
	})

	def("string", 1, func(_ *Interpreter, args []Value) (Value, error) {
		return String(args[0].String()), nil
	})

	def("get", 2, func(_ *Interpreter, args []Value) (Value, error) {
		list, ok := unwrap(args[0]).(*List)
		if !ok {
			return nil, nativeArgError("get", "a List")
		}
		idxN, ok := unwrap(args[1]).(Number)
		if !ok {
			return nil, nativeArgError("get", "a Number index")
		}
		idx := int(idxN)
		if idx < 0 || idx >= len(list.Elements) {
			return Nil{}, nil
		}
		return list.Elements[idx], nil
	})
}

func nativeArgError(name, want string) error {
	return errs.At(errs.KindError, errs.CodeCantToNum, token.Token{},
		fmt.Sprintf("%s expects %s", name, want))
}
