package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/token"
)

func TestFormatRendersPositionKindAndMessage(t *testing.T) {
	err := errs.At(errs.KindError, errs.CodeUndefinedVariable,
		token.Token{Type: token.Identifier, Line: 3, Column: 7, Lexeme: "x"}, "Undefined variable 'x'")

	out := Format(err)
	assert.Contains(t, out, "[3:7]")
	assert.Contains(t, out, "at 'x'")
	assert.Contains(t, out, "Undefined variable 'x'")
}

func TestFormatJoinsAggregatedList(t *testing.T) {
	list := errs.List{
		errs.At(errs.KindError, errs.CodeExpected, token.Token{Line: 1, Column: 1}, "first"),
		errs.At(errs.KindError, errs.CodeExpected, token.Token{Line: 2, Column: 1}, "second"),
	}

	out := Format(list)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
}

func TestPromptContainsArrow(t *testing.T) {
	assert.Contains(t, Prompt(), "@>")
}
