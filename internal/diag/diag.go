// Package diag formats diagnostics for a terminal, colorizing the `Kind`
// tag in an *errs.Error the way sam-decook-lox/test/compare.go colors its
// pass/fail summary lines with color.GreenString/color.RedString.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/morphqdd/yun/internal/errs"
)

// Format renders err for the terminal: a plain error keeps
// errs.Error.Error()'s format, an errs.List formats each aggregated
// diagnostic on its own line, and a *errs.Error gets its Kind colored red
// (Error) or magenta (Panic).
func Format(err error) string {
	if list, ok := err.(errs.List); ok {
		lines := make([]string, len(list))
		for i, e := range list {
			lines[i] = Format(e)
		}
		return strings.Join(lines, "\n")
	}

	yunErr, ok := err.(*errs.Error)
	if !ok {
		return err.Error()
	}

	var kind string
	switch yunErr.Kind {
	case errs.KindPanic:
		kind = color.MagentaString(string(yunErr.Kind))
	default:
		kind = color.RedString(string(yunErr.Kind))
	}

	var where string
	switch {
	case yunErr.AtEnd:
		where = " at end"
	case yunErr.Lexeme != "":
		where = fmt.Sprintf(" at '%s'", yunErr.Lexeme)
	}
	return fmt.Sprintf("[%d:%d] %s%s: %s", yunErr.Line, yunErr.Column, kind, where, yunErr.Message)
}

// Prompt is the REPL's colored `@> ` prompt, grounded on
// original_source/src/interpreter/mod.rs::run_shell's bare `@> ` prompt.
func Prompt() string {
	return color.CyanString("@> ")
}
