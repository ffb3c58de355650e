package interp

import (
	"strings"

	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/token"
)

// evalExpr dispatches on the concrete expression type via a type switch,
// per spec.md §9.
func (ip *Interpreter) evalExpr(e ast.Expr) (Value, error) {
	switch ex := e.(type) {
	case *ast.Literal:
		return literalValue(ex.Tok), nil

	case *ast.Variable:
		return ip.lookupVariable(ex.ID(), ex.Name)

	case *ast.Self:
		return ip.lookupVariable(ex.ID(), ex.Keyword)

	case *ast.Assign:
		v, err := ip.evalExpr(ex.Value)
		if err != nil {
			return nil, err
		}
		if d, ok := ip.Depths[ex.ID()]; ok {
			if err := ip.Env.AssignAt(d, ex.Name, v); err != nil {
				return nil, err
			}
			return v, nil
		}
		if err := ip.Globals.Assign(ex.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Unary:
		return ip.evalUnary(ex)

	case *ast.Binary:
		return ip.evalBinary(ex)

	case *ast.Logical:
		left, err := ip.evalExpr(ex.Left)
		if err != nil {
			return nil, err
		}
		isOr := ex.Op.Type == token.Or
		if isOr == isTruthy(left) {
			return left, nil
		}
		return ip.evalExpr(ex.Right)

	case *ast.Grouping:
		return ip.evalExpr(ex.Inner)

	case *ast.Call:
		return ip.evalCall(ex)

	case *ast.Get:
		return ip.evalGet(ex)

	case *ast.Set:
		return ip.evalSet(ex)

	case *ast.Super:
		return ip.evalSuper(ex)

	case *ast.List:
		elems := make([]Value, len(ex.Elements))
		for i, e := range ex.Elements {
			v, err := ip.evalExpr(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &List{Elements: elems}, nil
	}
	return Nil{}, nil
}

func literalValue(tok token.Token) Value {
	switch tok.Type {
	case token.True:
		return Bool(true)
	case token.False:
		return Bool(false)
	case token.Nil:
		return Nil{}
	case token.String:
		s, _ := tok.Literal.(string)
		return String(s)
	case token.Number:
		f, _ := tok.Literal.(float64)
		return Number(f)
	}
	return Nil{}
}

func (ip *Interpreter) lookupVariable(id ast.ID, tok token.Token) (Value, error) {
	if d, ok := ip.Depths[id]; ok {
		return ip.Env.GetAt(d, tok)
	}
	return ip.Globals.Get(tok)
}

func (ip *Interpreter) evalUnary(ex *ast.Unary) (Value, error) {
	right, err := ip.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}
	switch ex.Op.Type {
	case token.Minus:
		n, ok := unwrap(right).(Number)
		if !ok {
			return nil, errs.At(errs.KindError, errs.CodeCannotNegateType, ex.Op,
				"Cannot negate type '"+lowerType(unwrap(right))+"'")
		}
		return -n, nil
	case token.Bang:
		return Bool(!isTruthy(right)), nil
	}
	return nil, errs.At(errs.KindError, errs.CodeUnsupportedUnaryOp, ex.Op,
		"Unsupported unary operator '"+ex.Op.Lexeme+"'")
}

func (ip *Interpreter) evalBinary(ex *ast.Binary) (Value, error) {
	left, err := ip.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := ip.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}
	l, r := unwrap(left), unwrap(right)

	switch ex.Op.Type {
	case token.Plus:
		if ls, ok := l.(String); ok {
			if rs, ok := r.(String); ok {
				return ls + rs, nil
			}
		}
		if ln, ok := l.(Number); ok {
			if rn, ok := r.(Number); ok {
				return ln + rn, nil
			}
		}
		if ll, ok := l.(*List); ok {
			elems := make([]Value, len(ll.Elements)+1)
			copy(elems, ll.Elements)
			elems[len(ll.Elements)] = right
			return &List{Elements: elems}, nil
		}
		return nil, errs.At(errs.KindError, errs.CodeCannotAddTypes, ex.Op,
			"Cannot add types '"+lowerType(l)+"' and '"+lowerType(r)+"'")

	case token.Minus:
		ln, rn, ok := numberPair(l, r)
		if !ok {
			return nil, errs.At(errs.KindError, errs.CodeCannotSubtractTypes, ex.Op,
				"Cannot subtract types '"+lowerType(l)+"' and '"+lowerType(r)+"'")
		}
		return ln - rn, nil

	case token.Star:
		ln, rn, ok := numberPair(l, r)
		if !ok {
			return nil, errs.At(errs.KindError, errs.CodeCannotMultiplyTypes, ex.Op,
				"Cannot multiply types '"+lowerType(l)+"' and '"+lowerType(r)+"'")
		}
		return ln * rn, nil

	case token.Slash:
		ln, rn, ok := numberPair(l, r)
		if !ok {
			return nil, errs.At(errs.KindError, errs.CodeCannotDivideTypes, ex.Op,
				"Cannot divide types '"+lowerType(l)+"' and '"+lowerType(r)+"'")
		}
		return ln / rn, nil

	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return ip.evalComparison(ex.Op, l, r)

	case token.EqualEqual:
		return Bool(valuesEqual(l, r)), nil

	case token.BangEqual:
		return Bool(!valuesEqual(l, r)), nil
	}

	return nil, errs.At(errs.KindError, errs.CodeUnsupportedBinaryOp, ex.Op,
		"Unsupported binary operator '"+ex.Op.Lexeme+"'")
}

func lowerType(v Value) string { return strings.ToLower(v.TypeName()) }

func numberPair(l, r Value) (Number, Number, bool) {
	ln, ok1 := l.(Number)
	rn, ok2 := r.(Number)
	return ln, rn, ok1 && ok2
}

func (ip *Interpreter) evalComparison(op token.Token, l, r Value) (Value, error) {
	if ln, rn, ok := numberPair(l, r); ok {
		return Bool(compareOrdered(op.Type, float64(ln), float64(rn))), nil
	}
	ls, lok := l.(String)
	rs, rok := r.(String)
	if lok && rok {
		return Bool(compareOrdered(op.Type, strings.Compare(string(ls), string(rs)), 0)), nil
	}
	return nil, errs.At(errs.KindError, errs.CodeIncomparableTypes, op,
		"Cannot compare types '"+lowerType(l)+"' and '"+lowerType(r)+"'")
}

func compareOrdered[T int | float64](op token.Type, a, b T) bool {
	switch op {
	case token.Greater:
		return a > b
	case token.GreaterEqual:
		return a >= b
	case token.Less:
		return a < b
	case token.LessEqual:
		return a <= b
	}
	return false
}

func (ip *Interpreter) evalCall(ex *ast.Call) (Value, error) {
	calleeV, err := ip.evalExpr(ex.Callee)
	if err != nil {
		return nil, err
	}
	callee, ok := unwrap(calleeV).(Callable)
	if !ok {
		return nil, errs.At(errs.KindError, errs.CodeNotCallable, ex.Paren,
			"Can only call functions and classes")
	}

	args := make([]Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := ip.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if callee.Arity() != len(args) {
		return nil, errs.Atf(errs.KindError, errs.CodeArityMismatch, ex.Paren,
			"Expected %d arguments but got %d", callee.Arity(), len(args))
	}

	v, err := callee.Call(ip, args)
	if err != nil {
		if e, ok := err.(*errs.Error); ok && e.Code == errs.CodeUserPanic {
			return nil, errs.At(e.Kind, e.Code, ex.Paren, e.Message)
		}
		return nil, err
	}
	return v, nil
}

func (ip *Interpreter) evalGet(ex *ast.Get) (Value, error) {
	objV, err := ip.evalExpr(ex.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := unwrap(objV).(*Instance)
	if !ok {
		return nil, errs.At(errs.KindError, errs.CodeOnlyInstancesHaveProps, ex.Name,
			"Only instances have properties")
	}
	v, found := inst.Get(ex.Name.Lexeme)
	if !found {
		return nil, errs.At(errs.KindError, errs.CodeUndefinedProperty, ex.Name,
			"Undefined property '"+ex.Name.Lexeme+"'")
	}
	return v, nil
}

func (ip *Interpreter) evalSet(ex *ast.Set) (Value, error) {
	objV, err := ip.evalExpr(ex.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := unwrap(objV).(*Instance)
	if !ok {
		return nil, errs.At(errs.KindError, errs.CodeOnlyInstancesHaveProps, ex.Name,
			"Only instances have properties")
	}
	v, err := ip.evalExpr(ex.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(ex.Name.Lexeme, v)
	return v, nil
}

func (ip *Interpreter) evalSuper(ex *ast.Super) (Value, error) {
	distance := ip.Depths[ex.ID()]

	superV, err := ip.Env.GetAt(distance, ex.Keyword)
	if err != nil {
		return nil, err
	}
	superclass, ok := unwrap(superV).(*Class)
	if !ok {
		return nil, errBugEnvironmentNotInit(ex.Keyword)
	}

	selfTok := ex.Keyword
	selfTok.Lexeme = "self"
	selfV, err := ip.Env.GetAt(distance-1, selfTok)
	if err != nil {
		return nil, err
	}
	inst, ok := unwrap(selfV).(*Instance)
	if !ok {
		return nil, errBugEnvironmentNotInit(ex.Keyword)
	}

	method := superclass.FindMethod(ex.Method.Lexeme)
	if method == nil {
		return nil, errs.At(errs.KindError, errs.CodeUndefinedProperty, ex.Method,
			"Undefined property '"+ex.Method.Lexeme+"'")
	}
	return method.Bind(inst), nil
}
