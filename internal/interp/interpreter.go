package interp

import (
	"fmt"
	"io"

	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/resolver"
)

// Interpreter is the tree-walking evaluator. Grounded on
// sam-decook-lox/codecrafters/cmd/interpreter.go's Interpreter struct,
// generalized to hold the static resolver's depth table and an injectable
// output writer (the teacher always writes straight to stdout via
// fmt.Println, which makes its PrintStmt untestable without capturing the
// process's real stdout).
type Interpreter struct {
	Globals *Environment
	Env     *Environment
	Depths  resolver.Depths
	Out     io.Writer
}

// New constructs an Interpreter with the native builtins registered in its
// global environment, per spec.md §4.11.
func New(depths resolver.Depths, out io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	ip := &Interpreter{Globals: globals, Env: globals, Depths: depths, Out: out}
	registerBuiltins(ip)
	return ip
}

// Interpret executes every top-level statement in program order, stopping
// at the first error.
func (ip *Interpreter) Interpret(prog *ast.Program) error {
	return ip.execStmts(prog.Stmts)
}

// InterpretREPL behaves like Interpret, except a top-level expression
// statement has its value printed when it is not Void, per spec.md §6's
// "non-Void results are printed" REPL contract.
func (ip *Interpreter) InterpretREPL(prog *ast.Program) error {
	for _, s := range prog.Stmts {
		es, ok := s.(*ast.ExprStmt)
		if !ok {
			if err := ip.execStmt(s); err != nil {
				return err
			}
			continue
		}
		v, err := ip.evalExpr(es.Expr)
		if err != nil {
			return err
		}
		if _, isVoid := v.(Void); !isVoid {
			ip.println(v)
		}
	}
	return nil
}

func (ip *Interpreter) execStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := ip.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// execBlock runs stmts in a fresh child environment, restoring the prior
// environment on any exit path (normal, error, or Return signal) —
// spec.md §4.7.
func (ip *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) error {
	prev := ip.Env
	ip.Env = env
	defer func() { ip.Env = prev }()
	return ip.execStmts(stmts)
}

func (ip *Interpreter) println(v Value) {
	fmt.Fprintln(ip.Out, v.String())
}
