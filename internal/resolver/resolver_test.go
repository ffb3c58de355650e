package resolver_test

import (
	"testing"

	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/parser"
	"github.com/morphqdd/yun/internal/resolver"
	"github.com/morphqdd/yun/internal/scanner"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) (*ast.Program, resolver.Depths, error) {
	t.Helper()
	toks, err := scanner.New(src).Scan()
	require.NoError(t, err)
	prog, err := parser.New(toks).Parse()
	require.NoError(t, err)
	depths, err := resolver.Resolve(prog)
	return prog, depths, err
}

func TestResolveClosureVariableDepth(t *testing.T) {
	prog, depths, err := resolve(t, `
		{
			let a = 1;
			{
				let b = 2;
				print a;
				print b;
			}
		}
	`)
	require.NoError(t, err)
	block := prog.Stmts[0].(*ast.Block).Stmts[1].(*ast.Block)
	printA := block.Stmts[1].(*ast.Print)
	printB := block.Stmts[2].(*ast.Print)
	// a is declared one scope further out than the block it's printed in.
	require.Equal(t, 1, depths[printA.Expr.(*ast.Variable).ID()])
	require.Equal(t, 0, depths[printB.Expr.(*ast.Variable).ID()])
}

func TestResolveGlobalHasNoDepthEntry(t *testing.T) {
	_, depths, err := resolve(t, `
		let g = 1;
		fun f() { print g; }
	`)
	require.NoError(t, err)
	require.Empty(t, depths)
}

func TestResolveCantReadLocalInOwnInitializer(t *testing.T) {
	_, _, err := resolve(t, `{ let a = a; }`)
	require.Error(t, err)
}

func TestResolveCantReturnFromTopLevel(t *testing.T) {
	_, _, err := resolve(t, `return 1;`)
	require.Error(t, err)
}

func TestResolveCantReturnValueFromInitializer(t *testing.T) {
	_, _, err := resolve(t, `
		class C {
			init() { return 1; }
		}
	`)
	require.Error(t, err)
}

func TestResolveCantInheritSelf(t *testing.T) {
	_, _, err := resolve(t, `class C < C {}`)
	require.Error(t, err)
}

func TestResolveSelfOutsideClass(t *testing.T) {
	_, _, err := resolve(t, `print self;`)
	require.Error(t, err)
}

func TestResolveSuperWithoutSuperclass(t *testing.T) {
	_, _, err := resolve(t, `
		class C {
			m() { super.m(); }
		}
	`)
	require.Error(t, err)
}

func TestResolveValidSuperUsage(t *testing.T) {
	_, _, err := resolve(t, `
		class A { m() { return 1; } }
		class B < A {
			m() { return super.m(); }
		}
	`)
	require.NoError(t, err)
}
