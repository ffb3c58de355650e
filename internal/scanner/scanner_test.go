package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/scanner"
	"github.com/morphqdd/yun/internal/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := scanner.New(src).Scan()
	require.NoError(t, err)
	return toks
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scan(t, "(){};,.+-*!= == <= >=")
	assert.Equal(t, []token.Type{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Semicolon, token.Comma, token.Dot, token.Plus, token.Minus,
		token.Star, token.BangEqual, token.EqualEqual, token.LessEqual,
		token.GreaterEqual, token.EOF,
	}, types(toks))
}

func TestScanKeywordsVsIdentifiers(t *testing.T) {
	toks := scan(t, "let x = self and super")
	assert.Equal(t, token.Let, toks[0].Type)
	assert.Equal(t, token.Identifier, toks[1].Type)
	assert.Equal(t, token.Self, toks[3].Type)
	assert.Equal(t, token.And, toks[4].Type)
	assert.Equal(t, token.Super, toks[5].Type)
}

func TestScanNumberLiteral(t *testing.T) {
	toks := scan(t, "10 3.5")
	require.Len(t, toks, 3)
	assert.Equal(t, 10.0, toks[0].Literal)
	assert.Equal(t, 3.5, toks[1].Literal)
}

func TestScanStringLiteralDecodesNewlineEscape(t *testing.T) {
	toks := scan(t, `"a\nb"`)
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb", toks[0].Literal)
}

func TestScanMultiLineString(t *testing.T) {
	toks := scan(t, "\"a\nb\" 1")
	require.Len(t, toks, 3)
	assert.Equal(t, "a\nb", toks[0].Literal)
	// the token after the string should have its line bumped by the embedded newline
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.New(`"abc`).Scan()
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.CodeUnterminatedString, e.Code)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, err := scanner.New("let x = 1 @ 2;").Scan()
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.CodeUnexpectedCharacter, e.Code)
}

func TestLineCommentsAreSkipped(t *testing.T) {
	toks := scan(t, "let x = 1; // comment\nprint x;")
	assert.Equal(t, token.Print, toks[5].Type)
	assert.Equal(t, 2, toks[5].Line)
}

func TestColumnsAreMonotonicPerLine(t *testing.T) {
	toks := scan(t, "let x = 1;")
	for i := 1; i < len(toks)-1; i++ {
		if toks[i].Line == toks[i-1].Line {
			assert.Greater(t, toks[i].Column, toks[i-1].Column)
		}
	}
}
