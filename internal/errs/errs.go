// Package errs is the error taxonomy shared by every stage of the pipeline:
// scanner, parser, module resolver, static resolver and interpreter.
//
// Diagnostics are formatted the way CWBudde-go-dws's errors package attaches
// a source position to a message, but collapsed to the single-line form
// spec.md mandates: "[<line>:<col>] <Kind>[ at '<lexeme>'|at end]: <message>".
package errs

import (
	"fmt"
	"strings"

	"github.com/morphqdd/yun/internal/token"
)

// Kind distinguishes a recoverable diagnostic from a user-triggered panic.
type Kind string

const (
	KindError Kind = "Error"
	KindPanic Kind = "Panic"
)

// Code is a closed set of error identifiers, one per taxonomy entry in
// spec.md §7. Codes are not shown to the user (the Message already carries
// human text); they exist so callers (tests, for example) can
// switch on the kind of failure without string-matching messages.
type Code string

const (
	// Scanner
	CodeUnexpectedCharacter Code = "UnexpectedCharacter"
	CodeUnterminatedString  Code = "UnterminatedString"

	// Parser
	CodeExpected                              Code = "Expected"
	CodeInvalidAssignmentTarget                Code = "InvalidAssignmentTarget"
	CodeCountOfArgsGreaterThen255              Code = "CountOfArgsGreaterThen255"
	CodeCountOfParamsGreaterThen255            Code = "CountOfParamsGreaterThen255"
	CodeCantReadLocalVariableInItsOwnInit      Code = "CantReadLocalVariableInItsOwnInit"
	CodeCantReturnFromTopLevelCode             Code = "CantReturnFromTopLevelCode"
	CodeCantReturnFromInitializer              Code = "CantReturnFromInitializer"
	CodeCantInheritItSelf                      Code = "CantInheritItSelf"
	CodeCantUseSelfOutsideClass                Code = "CantUseSelfOutsideClass"
	CodeCantUseSuperOutsideOfClass             Code = "CantUseSuperOutsideOfClass"
	CodeCantUseSuperInClassWithoutSuperClasses Code = "CantUseSuperInClassWithoutSuperClasses"

	// Module resolver
	CodeExpectedPathStringAfterUse Code = "ExpectedPathStringAfterUse"
	CodeCyclicImport               Code = "CyclicImport"

	// Runtime
	CodeCannotAddTypes          Code = "CannotAddTypes"
	CodeCannotSubtractTypes     Code = "CannotSubtractTypes"
	CodeCannotMultiplyTypes     Code = "CannotMultiplyTypes"
	CodeCannotDivideTypes       Code = "CannotDivideTypes"
	CodeCannotNegateType        Code = "CannotNegateType"
	CodeUnsupportedUnaryOp      Code = "UnsupportedUnaryOperator"
	CodeUnsupportedBinaryOp     Code = "UnsupportedBinaryOperator"
	CodeUndefinedVariable       Code = "UndefinedVariable"
	CodeVariableIsNotInit       Code = "VariableIsNotInit"
	CodeArityMismatch           Code = "ArityOfFuncNotEqSizeOfArgs"
	CodeNotCallable             Code = "NotCallable"
	CodeOnlyInstancesHaveProps  Code = "OnlyInstancesHaveProperties"
	CodeUndefinedProperty       Code = "UndefinedProperty"
	CodeSuperclassMustBeClass   Code = "SuperclassMustBeClass"
	CodeCantToNum               Code = "CantToNum"
	CodeUserPanic               Code = "UserPanicWithMsg"
	CodeBugEnvironmentNotInit   Code = "BugEnvironmentNotInit"
	CodeIncomparableTypes       Code = "IncomparableTypes"
)

// Error is a single positioned diagnostic. It implements the standard error
// interface so it composes with %w and errors.As/errors.Is.
type Error struct {
	Kind    Kind
	Code    Code
	Line    int
	Column  int
	Lexeme  string
	AtEnd   bool
	Message string
}

func (e *Error) Error() string {
	var where string
	switch {
	case e.AtEnd:
		where = " at end"
	case e.Lexeme != "":
		where = fmt.Sprintf(" at '%s'", e.Lexeme)
	}
	return fmt.Sprintf("[%d:%d] %s%s: %s", e.Line, e.Column, e.Kind, where, e.Message)
}

// At builds a diagnostic positioned at tok.
func At(kind Kind, code Code, tok token.Token, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Line:    tok.Line,
		Column:  tok.Column,
		Lexeme:  tok.Lexeme,
		AtEnd:   tok.AtEnd(),
		Message: message,
	}
}

// Atf is At with a formatted message.
func Atf(kind Kind, code Code, tok token.Token, format string, args ...any) *Error {
	return At(kind, code, tok, fmt.Sprintf(format, args...))
}

// AtPos builds a diagnostic from a raw line/column pair, for scanner errors
// raised before a token exists.
func AtPos(code Code, line, column int, lexeme, message string) *Error {
	return &Error{Kind: KindError, Code: code, Line: line, Column: column, Lexeme: lexeme, Message: message}
}

// List aggregates the diagnostics produced by a single parser run. parse()
// in spec.md §4.2 "returns the concatenated error display if any occurred" —
// List.Error() is exactly that concatenation.
type List []error

func (l List) Error() string {
	lines := make([]string, len(l))
	for i, err := range l {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Err adapts List to a nil-if-empty error, the shape every stage returns.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
