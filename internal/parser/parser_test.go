package parser_test

import (
	"testing"

	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/parser"
	"github.com/morphqdd/yun/internal/scanner"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := scanner.New(src).Scan()
	require.NoError(t, err)
	prog, err := parser.New(toks).Parse()
	require.NoError(t, err)
	return prog
}

func TestParseLetAndPrint(t *testing.T) {
	prog := parse(t, `let x = 1 + 2; print x;`)
	require.Len(t, prog.Stmts, 2)
	let, ok := prog.Stmts[0].(*ast.Let)
	require.True(t, ok)
	require.Equal(t, "x", let.Name.Lexeme)
	require.Equal(t, "(+ 1 2)", let.Init.String())
}

func TestParseForDesugarsToWhile(t *testing.T) {
	prog := parse(t, `for (let i = 0; i < 3; i = i + 1) { print i; }`)
	require.Len(t, prog.Stmts, 1)
	block, ok := prog.Stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
	_, isLet := block.Stmts[0].(*ast.Let)
	require.True(t, isLet)
	while, ok := block.Stmts[1].(*ast.While)
	require.True(t, ok)
	require.Equal(t, "(< i 3)", while.Cond.String())
	whileBody, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, whileBody.Stmts, 2)
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	prog := parse(t, `
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			speak() { print "woof"; }
		}
	`)
	require.Len(t, prog.Stmts, 2)
	dog, ok := prog.Stmts[1].(*ast.Class)
	require.True(t, ok)
	require.Equal(t, "Dog", dog.Name.Lexeme)
	require.NotNil(t, dog.Superclass)
	require.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 1)
}

func TestParseAssignmentTargets(t *testing.T) {
	prog := parse(t, `x = 1; obj.field = 2;`)
	assign, ok := prog.Stmts[0].(*ast.ExprStmt).Expr.(*ast.Assign)
	require.True(t, ok)
	require.Equal(t, "x", assign.Name.Lexeme)

	set, ok := prog.Stmts[1].(*ast.ExprStmt).Expr.(*ast.Set)
	require.True(t, ok)
	require.Equal(t, "field", set.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetIsAggregatedError(t *testing.T) {
	toks, err := scanner.New(`1 = 2;`).Scan()
	require.NoError(t, err)
	_, err = parser.New(toks).Parse()
	require.Error(t, err)
}

func TestParseUseAndExportTopLevel(t *testing.T) {
	prog := parse(t, `
		use "./math.yun";
		export fun add(a, b) { return a + b; }
	`)
	require.Len(t, prog.Stmts, 2)
	_, isUse := prog.Stmts[0].(*ast.Use)
	require.True(t, isUse)
	export, ok := prog.Stmts[1].(*ast.Export)
	require.True(t, ok)
	_, isFun := export.Decl.(*ast.Fun)
	require.True(t, isFun)
}

func TestParseListLiteral(t *testing.T) {
	prog := parse(t, `let xs = [1, 2, 3];`)
	let := prog.Stmts[0].(*ast.Let)
	list, ok := let.Init.(*ast.List)
	require.True(t, ok)
	require.Len(t, list.Elements, 3)
}

func TestParseSynchronizesAfterErrorAndKeepsGoing(t *testing.T) {
	toks, err := scanner.New(`let = ; let y = 2;`).Scan()
	require.NoError(t, err)
	prog, err := parser.New(toks).Parse()
	require.Error(t, err)
	found := false
	for _, s := range prog.Stmts {
		if l, ok := s.(*ast.Let); ok && l.Name.Lexeme == "y" {
			found = true
		}
	}
	require.True(t, found, "parser should recover and still parse 'y'")
}
