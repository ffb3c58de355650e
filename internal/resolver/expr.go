package resolver

import (
	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/errs"
)

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch ex := e.(type) {
	case *ast.Literal:
		// nothing to resolve

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][ex.Name.Lexeme]; declared && !defined {
				r.errors = append(r.errors, errs.At(errs.KindError, errs.CodeCantReadLocalVariableInItsOwnInit,
					ex.Name, "Can't read local variable in its own initializer"))
			}
		}
		r.resolveLocal(ex.ID(), ex.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(ex.Value)
		r.resolveLocal(ex.ID(), ex.Name.Lexeme)

	case *ast.Unary:
		r.resolveExpr(ex.Right)

	case *ast.Binary:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)

	case *ast.Logical:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)

	case *ast.Grouping:
		r.resolveExpr(ex.Inner)

	case *ast.Call:
		r.resolveExpr(ex.Callee)
		for _, a := range ex.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(ex.Object)

	case *ast.Set:
		r.resolveExpr(ex.Value)
		r.resolveExpr(ex.Object)

	case *ast.Self:
		if r.classType == ClassTypeNone {
			r.errors = append(r.errors, errs.At(errs.KindError, errs.CodeCantUseSelfOutsideClass,
				ex.Keyword, "Can't use 'self' outside of a class"))
			return
		}
		r.resolveLocal(ex.ID(), ex.Keyword.Lexeme)

	case *ast.Super:
		switch r.classType {
		case ClassTypeNone:
			r.errors = append(r.errors, errs.At(errs.KindError, errs.CodeCantUseSuperOutsideOfClass,
				ex.Keyword, "Can't use 'super' outside of a class"))
			return
		case ClassTypeClass:
			r.errors = append(r.errors, errs.At(errs.KindError, errs.CodeCantUseSuperInClassWithoutSuperClasses,
				ex.Keyword, "Can't use 'super' in a class with no superclass"))
			return
		}
		r.resolveLocal(ex.ID(), ex.Keyword.Lexeme)

	case *ast.List:
		for _, elem := range ex.Elements {
			r.resolveExpr(elem)
		}
	}
}
