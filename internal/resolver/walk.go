package resolver

import (
	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/errs"
)

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(st.Expr)

	case *ast.Print:
		r.resolveExpr(st.Expr)

	case *ast.Let:
		r.declare(st.Name.Lexeme)
		if st.Init != nil {
			r.resolveExpr(st.Init)
		}
		r.define(st.Name.Lexeme)

	case *ast.Block:
		r.beginScope()
		r.resolveStmts(st.Stmts)
		r.endScope()

	case *ast.If:
		r.resolveExpr(st.Cond)
		r.resolveStmt(st.Then)
		if st.Else != nil {
			r.resolveStmt(st.Else)
		}

	case *ast.While:
		r.resolveExpr(st.Cond)
		r.resolveStmt(st.Body)

	case *ast.Fun:
		r.declare(st.Name.Lexeme)
		r.define(st.Name.Lexeme)
		r.resolveFunction(st, FunctionTypeFunction)

	case *ast.Return:
		if r.funcType == FunctionTypeNone {
			r.errors = append(r.errors, errs.At(errs.KindError, errs.CodeCantReturnFromTopLevelCode,
				st.Keyword, "Can't return from top-level code"))
			return
		}
		if st.Value != nil {
			if r.funcType == FunctionTypeInitializer {
				r.errors = append(r.errors, errs.At(errs.KindError, errs.CodeCantReturnFromInitializer,
					st.Keyword, "Can't return a value from an initializer"))
				return
			}
			r.resolveExpr(st.Value)
		}

	case *ast.Class:
		r.resolveClass(st)

	case *ast.Use:
		if st.Path != nil {
			r.resolveExpr(st.Path)
		}

	case *ast.Export:
		if st.Decl != nil {
			r.resolveStmt(st.Decl)
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Fun, kind FunctionType) {
	enclosing := r.funcType
	r.funcType = kind

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p.Lexeme)
		r.define(p.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.funcType = enclosing
}

func (r *Resolver) resolveClass(c *ast.Class) {
	enclosingClass := r.classType
	r.classType = ClassTypeClass

	r.declare(c.Name.Lexeme)
	r.define(c.Name.Lexeme)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.errors = append(r.errors, errs.At(errs.KindError, errs.CodeCantInheritItSelf,
				c.Superclass.Name, "A class can't inherit from itself"))
		} else {
			r.classType = ClassTypeSubClass
			r.resolveExpr(c.Superclass)
			r.beginScope()
			r.declare("super")
			r.define("super")
		}
	}

	r.beginScope()
	r.declare("self")
	r.define("self")

	for _, method := range c.Methods {
		kind := FunctionTypeMethod
		if method.Name.Lexeme == "init" {
			kind = FunctionTypeInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if c.Superclass != nil && c.Superclass.Name.Lexeme != c.Name.Lexeme {
		r.endScope()
	}

	r.classType = enclosingClass
}
