// Package parser implements a recursive-descent parser with panic-mode
// error recovery, turning a token stream into an ast.Program.
//
// Grounded on sam-decook-lox/codecrafters/cmd/parser.go's
// program/declaration/statement/expression/.../primary structure,
// generalized per spec.md §4.2: the teacher calls os.Exit(65) from
// p.error() and therefore can never recover past its first mistake; this
// parser instead synchronizes at a statement boundary and aggregates every
// diagnostic it hits into an errs.List, and adds the 255-argument/parameter
// caps, `use`/`export` top-level statements and class/superclass syntax the
// teacher's grammar never had.
package parser

import (
	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/token"
)

const maxArgs = 255

// Parser consumes a token stream produced by the scanner.
type Parser struct {
	tokens  []token.Token
	current int
	errors  errs.List
}

// New constructs a Parser over tokens (expected to end with an EOF token).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse returns the top-level program. On any syntax error it recovers at
// the next statement boundary, continues, and returns the aggregated
// diagnostics as a non-nil error alongside whatever statements it managed
// to parse.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.atEnd() {
		stmt := p.topLevelDeclaration()
		if stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	return prog, p.errors.Err()
}

// topLevelDeclaration accepts `use` and `export` only at the top of the
// program, per spec.md §4.2. `use` parses eagerly with panic-mode recovery
// of its own (declaration() only guards the default branch), so a
// malformed `use` synchronizes at the next statement boundary instead of
// panicking out of Parse — spec.md §4.2's recovery contract and §8's
// "parsing is a total function" apply to every top-level form, not just
// the ones declaration() happens to cover.
func (p *Parser) topLevelDeclaration() (stmt ast.Stmt) {
	if p.match(token.Use) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(parseError); ok {
					p.synchronize()
					stmt = nil
					return
				}
				panic(r)
			}
		}()
		return p.useStmt()
	}
	if p.match(token.Export) {
		return p.exportStmt()
	}
	return p.declaration()
}

func (p *Parser) useStmt() ast.Stmt {
	kw := p.previous()
	path := p.expression()
	p.consume(token.Semicolon, "Expect ';' after use path")
	return &ast.Use{Node: ast.NewNode(), Keyword: kw, Path: path}
}

func (p *Parser) exportStmt() ast.Stmt {
	kw := p.previous()
	decl := p.declaration()
	return &ast.Export{Node: ast.NewNode(), Keyword: kw, Decl: decl}
}

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.Fun):
		return p.funDecl("function")
	case p.match(token.Let):
		return p.letDecl()
	case p.match(token.Class):
		return p.classDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) classDecl() ast.Stmt {
	name := p.consume(token.Identifier, "Expect class name")

	var superclass *ast.Variable
	if p.match(token.Less) {
		p.consume(token.Identifier, "Expect superclass name")
		superclass = &ast.Variable{Node: ast.NewNode(), Name: p.previous()}
	}

	p.consume(token.LeftBrace, "Expect '{' before class body")
	var methods []*ast.Fun
	for !p.check(token.RightBrace) && !p.atEnd() {
		methods = append(methods, p.funDecl("method").(*ast.Fun))
	}
	p.consume(token.RightBrace, "Expect '}' after class body")

	return &ast.Class{Node: ast.NewNode(), Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) funDecl(kind string) ast.Stmt {
	name := p.consume(token.Identifier, "Expect "+kind+" name")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(errs.CodeCountOfParamsGreaterThen255, p.peek(), "Can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name"))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters")

	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body")
	body := p.blockBody()

	return &ast.Fun{Node: ast.NewNode(), Name: name, Params: params, Body: body}
}

func (p *Parser) letDecl() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name")

	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration")
	return &ast.Let{Node: ast.NewNode(), Name: name, Init: init}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStmt()
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.Return):
		return p.returnStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.LeftBrace):
		return &ast.Block{Node: ast.NewNode(), Stmts: p.blockBody()}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) blockBody() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RightBrace, "Expect '}' after block")
	return stmts
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression")
	return &ast.ExprStmt{Node: ast.NewNode(), Expr: expr}
}

func (p *Parser) printStmt() ast.Stmt {
	kw := p.previous()
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value")
	return &ast.Print{Node: ast.NewNode(), Keyword: kw, Expr: expr}
}

func (p *Parser) returnStmt() ast.Stmt {
	kw := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value")
	return &ast.Return{Node: ast.NewNode(), Keyword: kw, Value: value}
}

func (p *Parser) ifStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition")
	then := p.statement()
	var els ast.Stmt
	if p.match(token.Else) {
		els = p.statement()
	}
	return &ast.If{Node: ast.NewNode(), Cond: cond, Then: then, Else: els}
}

func (p *Parser) whileStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition")
	body := p.statement()
	return &ast.While{Node: ast.NewNode(), Cond: cond, Body: body}
}

// forStmt desugars `for (init; cond; step) body` into
// `{ init; while (cond) { body; step; } }`, per spec.md §4.2.
func (p *Parser) forStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Let):
		init = p.letDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition")

	var step ast.Expr
	if !p.check(token.RightParen) {
		step = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses")

	body := p.statement()

	if step != nil {
		body = &ast.Block{Node: ast.NewNode(), Stmts: []ast.Stmt{body, &ast.ExprStmt{Node: ast.NewNode(), Expr: step}}}
	}
	if cond == nil {
		cond = &ast.Literal{Node: ast.NewNode(), Tok: token.Token{Type: token.True, Lexeme: "true"}}
	}
	body = &ast.While{Node: ast.NewNode(), Cond: cond, Body: body}

	if init != nil {
		body = &ast.Block{Node: ast.NewNode(), Stmts: []ast.Stmt{init, body}}
	}
	return body
}
