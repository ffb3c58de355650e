package interp

import (
	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/token"
)

func errBugEnvironmentNotInit(tok token.Token) error {
	return errs.At(errs.KindPanic, errs.CodeBugEnvironmentNotInit, tok,
		"self not bound in initializer closure")
}

// returnSignal is the non-error control signal described in spec.md §5. It
// implements error purely so it can travel through the same execStmt/
// evalExpr error-return plumbing as genuine diagnostics; callers must type-
// assert for it explicitly rather than ever surfacing it to a user.
type returnSignal struct {
	Value Value
}

func (*returnSignal) Error() string { return "return (not a real error)" }
