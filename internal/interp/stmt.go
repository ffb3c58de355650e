package interp

import (
	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/errs"
)

// execStmt dispatches on the concrete statement type via a type switch,
// per spec.md §9's explicit allowance (no visitor interface), matching how
// the resolver package is also structured.
func (ip *Interpreter) execStmt(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.ExprStmt:
		_, err := ip.evalExpr(st.Expr)
		return err

	case *ast.Print:
		v, err := ip.evalExpr(st.Expr)
		if err != nil {
			return err
		}
		ip.println(v)
		return nil

	case *ast.Let:
		if st.Init == nil {
			ip.Env.DeclareUninitialized(st.Name.Lexeme)
			return nil
		}
		v, err := ip.evalExpr(st.Init)
		if err != nil {
			return err
		}
		ip.Env.Define(st.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return ip.execBlock(st.Stmts, NewEnvironment(ip.Env))

	case *ast.If:
		cond, err := ip.evalExpr(st.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return ip.execStmt(st.Then)
		}
		if st.Else != nil {
			return ip.execStmt(st.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := ip.evalExpr(st.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := ip.execStmt(st.Body); err != nil {
				return err
			}
		}

	case *ast.Fun:
		fn := NewFunction(st, ip.Env, false)
		ip.Env.Define(st.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		if st.Value == nil {
			return &returnSignal{Value: Nil{}}
		}
		v, err := ip.evalExpr(st.Value)
		if err != nil {
			return err
		}
		return &returnSignal{Value: v}

	case *ast.Class:
		return ip.execClass(st)

	case *ast.Use:
		return nil

	case *ast.Export:
		return ip.execStmt(st.Decl)
	}
	return nil
}

func (ip *Interpreter) execClass(c *ast.Class) error {
	var superclass *Class
	if c.Superclass != nil {
		v, err := ip.evalExpr(c.Superclass)
		if err != nil {
			return err
		}
		sc, ok := unwrap(v).(*Class)
		if !ok {
			return errs.At(errs.KindError, errs.CodeSuperclassMustBeClass, c.Superclass.Name,
				"Superclass must be a class")
		}
		superclass = sc
	}

	ip.Env.Define(c.Name.Lexeme, Nil{})

	methodEnv := ip.Env
	if superclass != nil {
		methodEnv = NewEnvironment(ip.Env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(c.Methods))
	for _, m := range c.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := NewClass(c.Name.Lexeme, superclass, methods)
	return ip.Env.Assign(c.Name, &Shared{Inner: class})
}
