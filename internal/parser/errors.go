package parser

import (
	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/token"
)

// parseError is the panic value, returned by errorAt, that unwinds to the
// nearest declaration boundary. It is never propagated past this package.
type parseError struct{}

// errorAt records a diagnostic and returns a parseError. Callers that cannot
// continue panic with it, to be caught by declaration()'s recover and handled
// via synchronize(); callers that can continue (an invalid assignment target,
// too many arguments or parameters) only record the diagnostic. Grounded on
// sam-decook-lox/codecrafters/cmd/parser.go's p.error(), generalized to
// collect rather than exit.
func (p *Parser) errorAt(code errs.Code, tok token.Token, message string) parseError {
	p.errors = append(p.errors, errs.At(errs.KindError, code, tok, message))
	return parseError{}
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so one syntax error does not cascade into dozens of bogus
// follow-on diagnostics.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Class, token.Fun, token.Let, token.For, token.If, token.While, token.Print, token.Return, token.Use, token.Export:
			return
		}
		p.advance()
	}
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

// consume advances past the next token if it has type t, otherwise raises a
// parse error and panics (to be recovered by declaration()).
func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(errs.CodeExpected, p.peek(), message))
}
