// Package modresolve implements the module resolver: it walks a parsed
// program's top-level statements and replaces each `use` with the exported
// statements of the `use`d file, unwrapped from their `export` nodes. The
// program's own other top-level statements, its `export`s included, pass
// through unchanged.
//
// Grounded on original_source/src/interpreter/exporter/mod.rs's
// resolve-then-splice shape, adapted to Go: the Rust original threads a
// single HashMap<PathBuf, ()> through its recursion purely to mirror this
// implementation's own cycle rule, since spec.md §4.3 leaves cyclic `use`
// undefined behavior "reject ... or detect-and-break at implementation's
// discretion, but document the choice" — this implementation rejects, via
// an in-progress set of absolute paths threaded through the recursion.
// Splicing and export-filtering happen in the same recursive pass
// (resolveExports) so a nested `use` is still reachable after an outer
// file's exports are filtered — filtering before recursing would discard
// every nested `use` before it could ever splice or cycle-check.
package modresolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/parser"
	"github.com/morphqdd/yun/internal/scanner"
	"github.com/morphqdd/yun/internal/token"
)

// Resolve splices exported declarations from every `use`d file into prog,
// recursively. baseDir is the directory `use "rel";` paths are resolved
// relative to — the directory of the currently running script, per
// spec.md §6.
func Resolve(prog *ast.Program, baseDir string) (*ast.Program, error) {
	r := &resolver{inProgress: map[string]bool{}}
	stmts, err := r.resolveStmts(prog.Stmts, baseDir)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Stmts: stmts}, nil
}

type resolver struct {
	inProgress map[string]bool
}

func (r *resolver) resolveStmts(stmts []ast.Stmt, baseDir string) ([]ast.Stmt, error) {
	var out []ast.Stmt
	for _, stmt := range stmts {
		use, ok := stmt.(*ast.Use)
		if !ok {
			out = append(out, stmt)
			continue
		}

		spliced, err := r.resolveUse(use, baseDir)
		if err != nil {
			return nil, err
		}
		out = append(out, spliced...)
	}
	return out, nil
}

func (r *resolver) resolveUse(use *ast.Use, baseDir string) ([]ast.Stmt, error) {
	lit, ok := use.Path.(*ast.Literal)
	if !ok || lit.Tok.Type != token.String {
		return nil, errs.At(errs.KindError, errs.CodeExpectedPathStringAfterUse, use.Keyword,
			"Expect a string literal path after 'use'")
	}
	rel, _ := lit.Tok.Literal.(string)

	abs := filepath.Join(baseDir, rel+".yun")
	absClean, err := filepath.Abs(abs)
	if err != nil {
		absClean = abs
	}

	if r.inProgress[absClean] {
		return nil, errs.At(errs.KindError, errs.CodeCyclicImport, use.Keyword,
			fmt.Sprintf("cyclic import of %q", rel))
	}

	source, err := os.ReadFile(absClean)
	if err != nil {
		return nil, errs.Atf(errs.KindError, errs.CodeExpectedPathStringAfterUse, use.Keyword,
			"cannot read module %q: %v", displayPath(baseDir, absClean), err)
	}

	toks, err := scanner.New(string(source)).Scan()
	if err != nil {
		return nil, err
	}
	childProg, err := parser.New(toks).Parse()
	if err != nil {
		return nil, err
	}

	r.inProgress[absClean] = true
	defer delete(r.inProgress, absClean)

	return r.resolveExports(childProg.Stmts, filepath.Dir(absClean))
}

// resolveExports walks an imported file's own top-level statements: a
// nested `use` is resolved recursively (so the cycle guard in resolveUse
// stays reachable through transitive imports, and a transitively `use`d
// file's own exports are carried up alongside the directly imported file's),
// an `export` is unwrapped to its declaration, and anything else is
// dropped — spec.md §4.3's "non-exported top-level statements in an
// imported file are dropped, not executed."
//
// This must run as a single pass, not sift-then-recurse: sifting first
// would discard every top-level Use before recursion ever saw it, so
// transitive imports would never splice and cyclic imports could never be
// detected.
func (r *resolver) resolveExports(stmts []ast.Stmt, baseDir string) ([]ast.Stmt, error) {
	var out []ast.Stmt
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.Use:
			spliced, err := r.resolveUse(s, baseDir)
			if err != nil {
				return nil, err
			}
			out = append(out, spliced...)
		case *ast.Export:
			out = append(out, s.Decl)
		}
	}
	return out, nil
}

// displayPath renders an absolute path relative to baseDir when possible,
// purely for nicer error messages.
func displayPath(baseDir, abs string) string {
	if rel, err := filepath.Rel(baseDir, abs); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return abs
}
