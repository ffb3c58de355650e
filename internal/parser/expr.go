package parser

import (
	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/token"
)

// expression is the entry point into the precedence-climbing expression
// grammar, grounded on sam-decook-lox/codecrafters/cmd/parser.go's
// expression/assignment/or/and/equality/.../unary/call/primary chain.
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment handles `target = value`, validating that target is an
// l-value (Variable or Get) and rewriting it to Assign/Set. Any other
// target is a parse error, per spec.md §4.2.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch t := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Node: ast.NewNode(), Name: t.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Node: ast.NewNode(), Object: t.Object, Name: t.Name, Value: value}
		default:
			p.errorAt(errs.CodeInvalidAssignmentTarget, equals, "Invalid assignment target")
		}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Node: ast.NewNode(), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Node: ast.NewNode(), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Node: ast.NewNode(), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Node: ast.NewNode(), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Node: ast.NewNode(), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Node: ast.NewNode(), Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Node: ast.NewNode(), Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'")
			expr = &ast.Get{Node: ast.NewNode(), Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(errs.CodeCountOfArgsGreaterThen255, p.peek(), "Can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments")
	return &ast.Call{Node: ast.NewNode(), Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False, token.True, token.Nil, token.Number, token.String):
		return &ast.Literal{Node: ast.NewNode(), Tok: p.previous()}
	case p.match(token.Self):
		return &ast.Self{Node: ast.NewNode(), Keyword: p.previous()}
	case p.match(token.Super):
		kw := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'")
		method := p.consume(token.Identifier, "Expect superclass method name")
		return &ast.Super{Node: ast.NewNode(), Keyword: kw, Method: method}
	case p.match(token.Identifier):
		return &ast.Variable{Node: ast.NewNode(), Name: p.previous()}
	case p.match(token.LeftParen):
		inner := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression")
		return &ast.Grouping{Node: ast.NewNode(), Inner: inner}
	case p.match(token.LeftBracket):
		return p.listLiteral()
	default:
		panic(p.errorAt(errs.CodeExpected, p.peek(), "Expect expression"))
	}
}

func (p *Parser) listLiteral() ast.Expr {
	var elems []ast.Expr
	if !p.check(token.RightBracket) {
		for {
			elems = append(elems, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightBracket, "Expect ']' after list elements")
	return &ast.List{Node: ast.NewNode(), Elements: elems}
}
