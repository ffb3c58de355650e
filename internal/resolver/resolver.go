// Package resolver implements the static resolver: a single preorder walk
// over the final (module-spliced) AST that records, for every Variable,
// Assign, Self and Super node, how many enclosing scopes separate it from
// its declaration — spec.md §4.4.
//
// Grounded on sam-decook-lox/codecrafters/cmd/resolver.go's
// BeginScope/EndScope/declare/define/resolveLocal scope-stack machinery,
// generalized per spec.md §9: the teacher writes straight to stderr and
// calls os.Exit(65) from inside resolve(); this resolver instead aggregates
// every violation into an errs.List and keys its depth table by ast.ID
// (the teacher keys by the Expr interface value itself, an approach that
// cannot survive Go's AST nodes being compared by pointer identity across
// unrelated trees). Dispatch is a type switch over concrete *ast.Xxx
// pointer types rather than a visitor interface, per spec.md §9's explicit
// allowance for either style.
package resolver

import (
	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/errs"
)

// FunctionType tracks what kind of function body the resolver is currently
// inside, needed to validate `return` placement.
type FunctionType int

const (
	FunctionTypeNone FunctionType = iota
	FunctionTypeFunction
	FunctionTypeMethod
	FunctionTypeInitializer
)

// ClassType tracks whether the resolver is inside a class body and whether
// that class has a superclass, needed to validate `self`/`super` usage.
type ClassType int

const (
	ClassTypeNone ClassType = iota
	ClassTypeClass
	ClassTypeSubClass
)

// Depths is the side table handed to the interpreter: node id -> number of
// enclosing scopes between the reference and its declaring scope. A
// variable with no entry is resolved as a global.
type Depths map[ast.ID]int

type scope map[string]bool

// Resolver performs the static analysis pass described in spec.md §4.4.
type Resolver struct {
	scopes    []scope
	depths    Depths
	funcType  FunctionType
	classType ClassType
	errors    errs.List
}

// New constructs a Resolver ready to walk a top-level program.
func New() *Resolver {
	return &Resolver{depths: Depths{}}
}

// Resolve walks prog's statements and returns the scope-depth side table.
// A non-nil error is the aggregated set of every `CantReadLocalVariable...`,
// `CantReturnFrom...`, `CantUseSelf...`/`CantUseSuper...` and
// `CantInheritItSelf` violation found.
func Resolve(prog *ast.Program) (Depths, error) {
	r := New()
	r.resolveStmts(prog.Stmts)
	return r.depths, r.errors.Err()
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

func (r *Resolver) resolveLocal(id ast.ID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}
