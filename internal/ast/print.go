package ast

import (
	"fmt"
	"strings"

	"github.com/morphqdd/yun/internal/token"
)

// String implementations below follow sam-decook-lox/codecrafters/cmd/ast.go's
// style: a compact, parenthesized, Lisp-ish rendering useful for debugging
// and for the `yun ast` CLI subcommand, not a faithful re-print of source.

func (l *Literal) String() string {
	if l.Tok.Type == token.String {
		return fmt.Sprintf("%q", l.Tok.Literal)
	}
	return l.Tok.Lexeme
}

func (v *Variable) String() string { return v.Name.Lexeme }

func (a *Assign) String() string { return fmt.Sprintf("(= %s %s)", a.Name.Lexeme, a.Value) }

func (u *Unary) String() string { return fmt.Sprintf("(%s %s)", u.Op.Lexeme, u.Right) }

func (b *Binary) String() string { return fmt.Sprintf("(%s %s %s)", b.Op.Lexeme, b.Left, b.Right) }

func (l *Logical) String() string { return fmt.Sprintf("(%s %s %s)", l.Op.Lexeme, l.Left, l.Right) }

func (g *Grouping) String() string { return fmt.Sprintf("(group %s)", g.Inner) }

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("(call %s %s)", c.Callee, strings.Join(args, " "))
}

func (g *Get) String() string { return fmt.Sprintf("(get %s %s)", g.Object, g.Name.Lexeme) }

func (s *Set) String() string {
	return fmt.Sprintf("(set %s %s %s)", s.Object, s.Name.Lexeme, s.Value)
}

func (s *Self) String() string { return "self" }

func (s *Super) String() string { return fmt.Sprintf("(super %s)", s.Method.Lexeme) }

func (l *List) String() string {
	elems := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		elems[i] = e.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(elems, " "))
}

func (e *ExprStmt) String() string { return e.Expr.String() }

func (p *Print) String() string { return fmt.Sprintf("(print %s)", p.Expr) }

func (l *Let) String() string {
	if l.Init == nil {
		return fmt.Sprintf("(let %s)", l.Name.Lexeme)
	}
	return fmt.Sprintf("(let %s %s)", l.Name.Lexeme, l.Init)
}

func (b *Block) String() string {
	stmts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		stmts[i] = s.String()
	}
	return fmt.Sprintf("(block %s)", strings.Join(stmts, " "))
}

func (i *If) String() string {
	if i.Else == nil {
		return fmt.Sprintf("(if %s %s)", i.Cond, i.Then)
	}
	return fmt.Sprintf("(if %s %s %s)", i.Cond, i.Then, i.Else)
}

func (w *While) String() string { return fmt.Sprintf("(while %s %s)", w.Cond, w.Body) }

func (f *Fun) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Lexeme
	}
	return fmt.Sprintf("(fun %s (%s))", f.Name.Lexeme, strings.Join(params, " "))
}

func (r *Return) String() string {
	if r.Value == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", r.Value)
}

func (c *Class) String() string {
	if c.Superclass == nil {
		return fmt.Sprintf("(class %s)", c.Name.Lexeme)
	}
	return fmt.Sprintf("(class %s < %s)", c.Name.Lexeme, c.Superclass.Name.Lexeme)
}

func (u *Use) String() string { return fmt.Sprintf("(use %s)", u.Path) }

func (e *Export) String() string { return fmt.Sprintf("(export %s)", e.Decl) }

func (p *Program) String() string {
	stmts := make([]string, len(p.Stmts))
	for i, s := range p.Stmts {
		stmts[i] = s.String()
	}
	return strings.Join(stmts, "\n")
}
