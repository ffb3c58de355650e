package ast

import "github.com/morphqdd/yun/internal/token"

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	Node
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// Print evaluates an expression and writes its display form.
type Print struct {
	Node
	Keyword token.Token
	Expr    Expr
}

func (*Print) stmtNode() {}

// Let declares a variable, optionally with an initializer. Init is nil for
// `let x;`.
type Let struct {
	Node
	Name token.Token
	Init Expr
}

func (*Let) stmtNode() {}

// Block is a `{ ... }` sequence executed in a fresh environment.
type Block struct {
	Node
	Stmts []Stmt
}

func (*Block) stmtNode() {}

// If is `if (cond) then [else else_]`.
type If struct {
	Node
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (*If) stmtNode() {}

// While is `while (cond) body`. `for` is desugared into this by the parser.
type While struct {
	Node
	Cond Expr
	Body Stmt
}

func (*While) stmtNode() {}

// Fun is a function (or method) declaration.
type Fun struct {
	Node
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*Fun) stmtNode() {}

// Return carries an optional expression; Value is nil for a bare `return;`,
// which the interpreter treats as returning Nil.
type Return struct {
	Node
	Keyword token.Token
	Value   Expr
}

func (*Return) stmtNode() {}

// Class is a class declaration with an optional superclass reference.
type Class struct {
	Node
	Name       token.Token
	Superclass *Variable // nil if no `< Superclass` clause
	Methods    []*Fun
}

func (*Class) stmtNode() {}

// Use is `use "path";`, spliced away by the module resolver before the
// static resolver or interpreter ever see it; Execute on a remaining Use is
// a no-op (spec.md §4.7).
type Use struct {
	Node
	Keyword token.Token
	Path    Expr
}

func (*Use) stmtNode() {}

// Export wraps a top-level declaration so the module resolver knows it may
// be spliced into an importing file.
type Export struct {
	Node
	Keyword token.Token
	Decl    Stmt
}

func (*Export) stmtNode() {}

// Program is the parsed, module-resolved top-level statement sequence.
type Program struct {
	Stmts []Stmt
}
